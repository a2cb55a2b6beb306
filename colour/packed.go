package colour

import "github.com/chromago/chroma/channels"

// Packed is a 32 bit packed pixel whose byte-lane assignment is fixed
// by the ordering tag O. Packing quantizes each component to 8 bits, so
// it is lossless only for colors already representable in 8 bits per
// channel; for wider component types it is a documented one-way
// reduction, not an error.
type Packed[O channels.Order] struct {
	Value uint32
}

// opaqueLane is the value written to the alpha lane when packing a
// color that carries no alpha.
const opaqueLane uint8 = 0xFF

// PackRgb packs a color under ordering O with the alpha lane fixed to
// 0xFF.
func PackRgb[O channels.Order, S Standard, T Component](c RGB[S, T]) Packed[O] {
	var order O
	return Packed[O]{Value: order.Pack(
		componentToByte(c.R),
		componentToByte(c.G),
		componentToByte(c.B),
		opaqueLane)}
}

// PackRgba packs a color and its alpha under ordering O.
func PackRgba[O channels.Order, S Standard, T Component](c RGBA[S, T]) Packed[O] {
	var order O
	return Packed[O]{Value: order.Pack(
		componentToByte(c.R),
		componentToByte(c.G),
		componentToByte(c.B),
		componentToByte(c.A))}
}

// UnpackRgb extracts the color lanes of a packed pixel, discarding the
// alpha lane.
func UnpackRgb[S Standard, T Component, O channels.Order](p Packed[O]) RGB[S, T] {
	var order O
	r, g, b, _ := order.Unpack(p.Value)
	return RGB[S, T]{
		R: byteToComponent[T](r),
		G: byteToComponent[T](g),
		B: byteToComponent[T](b),
	}
}

// UnpackRgba extracts all four lanes of a packed pixel.
func UnpackRgba[S Standard, T Component, O channels.Order](p Packed[O]) RGBA[S, T] {
	var order O
	r, g, b, a := order.Unpack(p.Value)
	return RGBA[S, T]{
		RGB: RGB[S, T]{
			R: byteToComponent[T](r),
			G: byteToComponent[T](g),
			B: byteToComponent[T](b),
		},
		A: byteToComponent[T](a),
	}
}

// RgbIntoU32 packs under the default ARGB ordering.
func RgbIntoU32[S Standard, T Component](c RGB[S, T]) uint32 {
	return PackRgb[channels.Argb](c).Value
}

// RgbFromU32 unpacks a value packed under the default ARGB ordering.
func RgbFromU32[S Standard, T Component](v uint32) RGB[S, T] {
	return UnpackRgb[S, T](Packed[channels.Argb]{Value: v})
}

// RgbaIntoU32 packs under the default RGBA ordering.
func RgbaIntoU32[S Standard, T Component](c RGBA[S, T]) uint32 {
	return PackRgba[channels.Rgba](c).Value
}

// RgbaFromU32 unpacks a value packed under the default RGBA ordering.
func RgbaFromU32[S Standard, T Component](v uint32) RGBA[S, T] {
	return UnpackRgba[S, T](Packed[channels.Rgba]{Value: v})
}
