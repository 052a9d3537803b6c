package grain

import (
	"github.com/kpfaulkner/grain-go/noise"
)

// Fixed values used for photon-noise grain records. The grain pattern is
// white noise (zero AR lag) scaled by the luma curve alone; the seed is
// arbitrary but stable so identical inputs give identical tables.
const (
	photonNoiseScalingShift = 8
	photonNoiseARCoeffShift = 6
	photonNoiseRandomSeed   = 7391
)

// FilmGrainParams is the per-entry film grain parameter set of an AV1
// stream, limited to the fields the table format carries.
type FilmGrainParams struct {
	ApplyGrain       bool
	UpdateParameters bool

	ScalingPointsY  []noise.ScalingPoint
	ScalingPointsCb []noise.ScalingPoint
	ScalingPointsCr []noise.ScalingPoint
	ScalingShift    int32

	ARCoeffLag      int32
	ARCoeffShift    int32
	GrainScaleShift int32
	ARCoeffsY       []int32
	ARCoeffsCb      []int32
	ARCoeffsCr      []int32

	CbMult     int32
	CbLumaMult int32
	CbOffset   int32
	CrMult     int32
	CrLumaMult int32
	CrOffset   int32

	OverlapFlag           bool
	ChromaScalingFromLuma bool
	RandomSeed            uint16
}

// NumPosLuma is the number of luma AR coefficients implied by the lag.
func (p *FilmGrainParams) NumPosLuma() int {
	return int(2 * p.ARCoeffLag * (p.ARCoeffLag + 1))
}

// NumPosChroma is the number of chroma AR coefficients implied by the lag;
// one extra coefficient references the luma plane when luma points exist.
func (p *FilmGrainParams) NumPosChroma() int {
	n := p.NumPosLuma()
	if len(p.ScalingPointsY) > 0 {
		return n + 1
	}
	return n
}

// NewPhotonNoiseParams wraps a sampled luma scaling curve into a full grain
// parameter record: monochrome grain, no autoregression, overlapped blocks.
func NewPhotonNoiseParams(curve noise.ScalingCurve) *FilmGrainParams {
	p := &FilmGrainParams{
		ApplyGrain:       true,
		UpdateParameters: true,
		ScalingPointsY:   curve[:],
		ScalingShift:     photonNoiseScalingShift,
		ARCoeffLag:       0,
		ARCoeffShift:     photonNoiseARCoeffShift,
		OverlapFlag:      true,
		RandomSeed:       photonNoiseRandomSeed,
	}
	p.ARCoeffsCb = make([]int32, p.NumPosChroma())
	p.ARCoeffsCr = make([]int32, p.NumPosChroma())
	return p
}
