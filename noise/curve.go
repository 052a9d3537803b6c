package noise

import (
	"math"

	"github.com/kpfaulkner/grain-go/util"
)

// NumScalingPoints is the number of points in a luma scaling curve.
const NumScalingPoints = 14

// Fixed-point amplitude scale of the grain table's scaling values. Consumers
// of the emitted tables depend on this exact value.
const noiseAmplitudeScale = 7.88

// ScalingPoint maps an encoded sample value to a noise amplitude, both in
// [0,255].
type ScalingPoint struct {
	X     int32
	Noise int32
}

// ScalingCurve is the piecewise-linear luma noise curve, ordered by strictly
// increasing X from 0 to 255.
type ScalingCurve [NumScalingPoints]ScalingPoint

// ScalingCurve samples the model at evenly spaced encoded values and
// quantizes the result to grain table units.
func (m *Model) ScalingCurve() ScalingCurve {
	tf := m.cfg.TransferFunction

	var curve ScalingCurve
	for i := range curve {
		x := float64(i) / (NumScalingPoints - 1)
		linear := tf.ToLinear(x)

		noiseInElectrons := m.NoiseInElectrons(linear)
		linearNoise := noiseInElectrons / m.maxElectronsPerPixel

		// The noise std deviation lives in linear light; convert it to the
		// encoded domain using the transfer function's local slope over a
		// +/- 2 sigma window around the sample, clamped to [0,1].
		rangeStart := util.Max(0.0, linear-2*linearNoise)
		rangeEnd := util.Min(1.0, linear+2*linearNoise)
		var slope float64
		if rangeEnd > rangeStart {
			slope = (tf.FromLinear(rangeEnd) - tf.FromLinear(rangeStart)) /
				(rangeEnd - rangeStart)
		}
		// A zero-width window can only happen hard against a domain
		// boundary; no noise is representable there.
		encodedNoise := linearNoise * slope

		curve[i] = ScalingPoint{
			X:     int32(math.Round(255 * x)),
			Noise: int32(util.Clamp3(math.Round(255*noiseAmplitudeScale*encodedNoise), 0, 255)),
		}
	}
	return curve
}
