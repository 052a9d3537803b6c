package noise

import (
	"errors"
	"math"

	"github.com/kpfaulkner/grain-go/color"
)

// Physical constants for the sensor model. These are calibrated defaults for
// digital cameras of the 2010-2020 decade rather than user-facing knobs.
const (
	// Photon flux for a daylight-like spectrum, per um^2 per lx.s.
	// https://www.strollswithmydog.com/effective-quantum-efficiency-of-sensor/
	photonsPerLxSPerUm2 = 11260.0

	// Takes the CFA into account.
	effectiveQuantumEfficiency = 0.20

	photoResponseNonUniformity = 0.005

	// Read noise is typically higher than this at low ISO settings but it
	// matters less there.
	inputReferredReadNoise = 1.5
)

// Full-frame (35mm format) sensor dimensions in microns. ISO settings for
// other sensor sizes must be converted to their 35mm-equivalent value by the
// caller.
const (
	sensorWidthUm  = 36000.0
	sensorHeightUm = 24000.0
)

var (
	ErrInvalidDimensions  = errors.New("width and height must be positive")
	ErrInvalidISO         = errors.New("iso setting must be positive")
	ErrNoTransferFunction = errors.New("transfer function must be set")
)

// Config describes the capture whose noise is being modelled: the output
// resolution (which fixes the per-pixel sensor area), the 35mm-equivalent
// ISO setting, and the transfer function the encoded stream will use.
type Config struct {
	Width            int32
	Height           int32
	ISOSetting       float64
	TransferFunction *color.TransferFunction
}

// Model predicts sensor noise in electrons at a given linear exposure level.
type Model struct {
	cfg Config

	pixelAreaUm2         float64
	midToneExposure      float64
	maxElectronsPerPixel float64
}

func NewModel(cfg Config) (*Model, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if cfg.ISOSetting <= 0 {
		return nil, ErrInvalidISO
	}
	if cfg.TransferFunction == nil {
		return nil, ErrNoTransferFunction
	}

	m := &Model{cfg: cfg}

	// Focal plane exposure for a mid-tone (typically an 18% reflectance
	// card), in lx.s.
	m.midToneExposure = 10.0 / cfg.ISOSetting

	m.pixelAreaUm2 = (sensorWidthUm * sensorHeightUm) /
		(float64(cfg.Width) * float64(cfg.Height))

	midToneElectronsPerPixel := effectiveQuantumEfficiency *
		photonsPerLxSPerUm2 * m.midToneExposure * m.pixelAreaUm2
	m.maxElectronsPerPixel = midToneElectronsPerPixel / cfg.TransferFunction.MidTone

	return m, nil
}

func (m *Model) PixelAreaUm2() float64 {
	return m.pixelAreaUm2
}

func (m *Model) MidToneExposure() float64 {
	return m.midToneExposure
}

// MaxElectronsPerPixel is the expected electron count at full scale
// (linear = 1).
func (m *Model) MaxElectronsPerPixel() float64 {
	return m.maxElectronsPerPixel
}

// NoiseInElectrons returns the expected noise, in electrons rms, at the given
// linear exposure level in [0,1]. Quadrature sum of read noise, photon shot
// noise and PRNU; shot noise variance equals the electron count itself so it
// enters the sum unsquared.
// https://en.wikipedia.org/wiki/Addition_in_quadrature
func (m *Model) NoiseInElectrons(linear float64) float64 {
	electronsPerPixel := m.maxElectronsPerPixel * linear
	return math.Sqrt(inputReferredReadNoise*inputReferredReadNoise +
		electronsPerPixel +
		(photoResponseNonUniformity*electronsPerPixel)*
			(photoResponseNonUniformity*electronsPerPixel))
}
