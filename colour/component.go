package colour

import (
	"math"

	"github.com/chromago/chroma/util"
)

// Component is the set of supported component types. Float components
// are normalized so 1.0 is full intensity; integer components use their
// full range.
type Component interface {
	uint8 | uint16 | float32 | float64
}

// toFloat normalizes a component to the [0, 1] intensity scale.
func toFloat[T Component](v T) float64 {
	switch x := any(v).(type) {
	case uint8:
		return float64(x) / 255
	case uint16:
		return float64(x) / 65535
	case float32:
		return float64(x)
	default:
		return x.(float64)
	}
}

// fromFloat converts a normalized intensity back to a component.
// Integer components round half away from zero and saturate at their
// range bounds; float components pass through untouched.
func fromFloat[T Component](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		*p = uint8(util.Clamp(math.Round(v*255), 0, 255))
	case *uint16:
		*p = uint16(util.Clamp(math.Round(v*65535), 0, 65535))
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	}
	return out
}

// componentToByte quantizes a component to 8 bits. Exact for uint8,
// round-to-nearest for wider types; floats are clamped to [0, 1] first
// and rounded half away from zero.
func componentToByte[T Component](v T) uint8 {
	switch x := any(v).(type) {
	case uint8:
		return x
	case uint16:
		return uint8((uint32(x)*255 + 32767) / 65535)
	case float32:
		return floatToByte(float64(x))
	default:
		return floatToByte(x.(float64))
	}
}

func floatToByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// byteToComponent widens an 8 bit value to the component type.
func byteToComponent[T Component](b uint8) T {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		*p = b
	case *uint16:
		*p = uint16(b) * 257
	case *float32:
		*p = float32(b) / 255
	case *float64:
		*p = float64(b) / 255
	}
	return out
}
