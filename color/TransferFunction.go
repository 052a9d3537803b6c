package color

import (
	"errors"
	"fmt"
	"math"

	"github.com/kpfaulkner/grain-go/util"
)

var ErrUnsupportedTransferFunction = errors.New("unsupported transfer function")

// TransferFunction converts between encoded (non-linear) sample values and
// linear light, both normalized to [0,1]. MidTone is the linear output level
// used as the reference "18% grey card" exposure. For the SDR curves that is
// 0.18, but the HDR curves encode absolute luminance, where 18% of peak
// output (1800 cd/m2 for PQ) is nowhere near a mid-tone.
type TransferFunction struct {
	ToLinear   func(float64) float64
	FromLinear func(float64) float64
	MidTone    float64
}

var (
	gamma22TransferFunction = &TransferFunction{
		ToLinear:   func(g float64) float64 { return math.Pow(g, 2.2) },
		FromLinear: func(l float64) float64 { return math.Pow(l, 1/2.2) },
		MidTone:    0.18,
	}

	gamma28TransferFunction = &TransferFunction{
		ToLinear:   func(g float64) float64 { return math.Pow(g, 2.8) },
		FromLinear: func(l float64) float64 { return math.Pow(l, 1/2.8) },
		MidTone:    0.18,
	}

	srgbTransferFunction = &TransferFunction{
		ToLinear:   srgbToLinear,
		FromLinear: srgbFromLinear,
		MidTone:    0.18,
	}

	pqTransferFunction = &TransferFunction{
		ToLinear:   pqToLinear,
		FromLinear: pqFromLinear,
		// https://www.itu.int/pub/R-REP-BT.2408-4-2021 page 6 (PDF page 8)
		MidTone: 26.0 / 10000,
	}

	hlgTransferFunction = &TransferFunction{
		ToLinear:   hlgToLinear,
		FromLinear: hlgFromLinear,
		MidTone:    26.0 / 1000,
	}
)

// GetTransferFunction returns the conversion pair for the given CICP
// transfer characteristics code.
func GetTransferFunction(tc int32) (*TransferFunction, error) {
	switch tc {
	case TC_BT470M:
		return gamma22TransferFunction, nil
	case TC_BT470BG:
		return gamma28TransferFunction, nil
	case TC_SRGB:
		return srgbTransferFunction, nil
	case TC_SMPTE2084:
		return pqTransferFunction, nil
	case TC_HLG:
		return hlgTransferFunction, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedTransferFunction, tc)
}

func srgbToLinear(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

func srgbFromLinear(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1/2.4) - 0.055
}

// SMPTE ST 2084 constants.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 128 * 2523.0 / 4096
	pqC1 = 3424.0 / 4096
	pqC2 = 32 * 2413.0 / 4096
	pqC3 = 32 * 2392.0 / 4096
)

func pqToLinear(pq float64) float64 {
	pqPowInvM2 := math.Pow(pq, 1/pqM2)
	// pqPowInvM2 can dip below c1 for inputs near 0.
	return math.Pow(util.Max(0, pqPowInvM2-pqC1)/(pqC2-pqC3*pqPowInvM2), 1/pqM1)
}

func pqFromLinear(linear float64) float64 {
	linearPowM1 := math.Pow(linear, pqM1)
	return math.Pow((pqC1+pqC2*linearPowM1)/(1+pqC3*linearPowM1), pqM2)
}

// "Linear" for HLG is taken to mean display light on a nominal 1000 cd/m2
// peak display, hence the 1.2 system gamma below. Scene light is arguably
// also valid; that would drop the math.Pow(x, 1.2) OOTF and its inverse and
// change MidTone to math.Pow(26.0/1000, 1/1.2). Existing consumers of the
// emitted tables expect display light, so keep it.
const (
	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

func hlgToLinear(hlg float64) float64 {
	// EOTF = OOTF(OETF^-1(x))
	var linear float64
	if hlg <= 0.5 {
		linear = hlg * hlg / 3
	} else {
		linear = (math.Exp((hlg-hlgC)/hlgA) + hlgB) / 12
	}
	return math.Pow(linear, 1.2)
}

func hlgFromLinear(linear float64) float64 {
	// EOTF^-1 = OETF(OOTF^-1(x))
	linear = math.Pow(linear, 1/1.2)
	if linear <= 1.0/12 {
		return math.Sqrt(3 * linear)
	}
	return hlgA*math.Log(12*linear-hlgB) + hlgC
}
