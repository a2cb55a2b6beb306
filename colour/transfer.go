package colour

import (
	"math"

	"github.com/chromago/chroma/util"
)

// TransferFunc is the nonlinear relationship between a linear light
// intensity and its stored, gamma-encoded value. Both directions are
// exact at 0 and 1 and monotonically non-decreasing. Inputs outside
// [0, 1] pass through the same formula unclamped, except for PqFn and
// HlgFn, whose forms are undefined below zero and pin negative inputs
// to 0; clamping is otherwise the caller's concern.
type TransferFunc interface {
	// Encode maps a linear intensity to its stored value.
	Encode(linear float64) float64
	// Decode maps a stored value back to a linear intensity.
	Decode(encoded float64) float64
}

// LinearFn stores intensities as-is.
type LinearFn struct{}

func (LinearFn) Encode(x float64) float64 { return x }
func (LinearFn) Decode(x float64) float64 { return x }

// SrgbFn is the IEC 61966-2-1 sRGB transfer function.
type SrgbFn struct{}

func (SrgbFn) Encode(x float64) float64 {
	switch {
	case x <= 0.0031308:
		return 12.92 * x
	case x == 1:
		return 1
	default:
		return 1.055*math.Pow(x, 1/2.4) - 0.055
	}
}

func (SrgbFn) Decode(x float64) float64 {
	switch {
	case x <= 0.04045:
		return x / 12.92
	case x == 1:
		return 1
	default:
		return math.Pow((x+0.055)/1.055, 2.4)
	}
}

// GammaFn is a pure power-law transfer function. Encoding raises the
// linear value to 1/Gamma, decoding raises the stored value to Gamma.
type GammaFn struct {
	Gamma float64
}

func (g GammaFn) Encode(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	return util.SignedPow(x, 1/g.Gamma)
}

func (g GammaFn) Decode(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	return util.SignedPow(x, g.Gamma)
}

// Bt709Fn is the ITU-R BT.709 opto-electronic transfer function, also
// used by BT.2020 content.
type Bt709Fn struct{}

func (Bt709Fn) Encode(x float64) float64 {
	switch {
	case x < 0.018:
		return 4.5 * x
	case x == 1:
		return 1
	default:
		return 1.099*math.Pow(x, 0.45) - 0.099
	}
}

func (Bt709Fn) Decode(x float64) float64 {
	switch {
	case x < 0.081:
		return x / 4.5
	case x == 1:
		return 1
	default:
		return math.Pow((x+0.099)/1.099, 1/0.45)
	}
}

// SMPTE ST 2084 constants.
const (
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0
	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0
)

// PqFn is the SMPTE ST 2084 perceptual quantizer, with the signal
// normalized so that 1.0 corresponds to peak luminance. Negative
// inputs are pinned to 0.
type PqFn struct{}

func (PqFn) Encode(x float64) float64 {
	if x <= 0 {
		return 0
	}
	xm := math.Pow(x, pqM1)
	return math.Pow((pqC1+pqC2*xm)/(1+pqC3*xm), pqM2)
}

func (PqFn) Decode(x float64) float64 {
	if x <= 0 {
		return 0
	}
	xm := math.Pow(x, 1/pqM2)
	num := xm - pqC1
	if num < 0 {
		num = 0
	}
	return math.Pow(num/(pqC2-pqC3*xm), 1/pqM1)
}

// ARIB STD-B67 constants.
const (
	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

// HlgFn is the ARIB STD-B67 hybrid log-gamma transfer function.
// Negative inputs are pinned to 0.
type HlgFn struct{}

func (HlgFn) Encode(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x <= 1.0/12.0:
		return math.Sqrt(3 * x)
	case x == 1:
		return 1
	default:
		return hlgA*math.Log(12*x-hlgB) + hlgC
	}
}

func (HlgFn) Decode(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x <= 0.5:
		return x * x / 3
	case x == 1:
		return 1
	default:
		return (math.Exp((x-hlgC)/hlgA) + hlgB) / 12
	}
}
