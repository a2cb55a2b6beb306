package colour

// RGB is a generic RGB color value. The standard S it is encoded in is
// carried as a type parameter and occupies no space in the value; T is
// the component type.
type RGB[S Standard, T Component] struct {
	R T
	G T
	B T
}

// NewRGB creates a color from its components.
func NewRGB[S Standard, T Component](r T, g T, b T) RGB[S, T] {
	return RGB[S, T]{R: r, G: g, B: b}
}

// Components returns the (red, green, blue) tuple.
func (c RGB[S, T]) Components() (T, T, T) {
	return c.R, c.G, c.B
}

// WithAlpha attaches an alpha component.
func (c RGB[S, T]) WithAlpha(a T) RGBA[S, T] {
	return RGBA[S, T]{RGB: c, A: a}
}

// RGBA is an RGB color with an alpha component. Alpha is always stored
// linearly, regardless of the color's transfer function.
type RGBA[S Standard, T Component] struct {
	RGB[S, T]
	A T
}

// NewRGBA creates a color with transparency from its components.
func NewRGBA[S Standard, T Component](r T, g T, b T, a T) RGBA[S, T] {
	return RGBA[S, T]{RGB: RGB[S, T]{R: r, G: g, B: b}, A: a}
}

// Components returns the (red, green, blue, alpha) tuple.
func (c RGBA[S, T]) Components() (T, T, T, T) {
	return c.R, c.G, c.B, c.A
}

// Opaque discards the alpha component.
func (c RGBA[S, T]) Opaque() RGB[S, T] {
	return c.RGB
}

// Convert re-encodes a color under another standard. Components are
// decoded to linear intensities under the source transfer function,
// moved through the linear transform between the two spaces when those
// differ (white-point adapted if needed), and re-encoded under the
// destination transfer function. Integer components travel through a
// float64 intermediate and are rounded half away from zero on return.
func Convert[D Standard, S Standard, T Component](c RGB[S, T]) RGB[D, T] {
	var src S
	var dst D

	r := toFloat(c.R)
	g := toFloat(c.G)
	b := toFloat(c.B)

	tf := src.Transfer()
	r, g, b = tf.Decode(r), tf.Decode(g), tf.Decode(b)

	srcSpace := src.Space()
	dstSpace := dst.Space()
	if !srcSpace.Primaries().Matches(dstSpace.Primaries()) || !srcSpace.WhitePoint().Matches(dstSpace.WhitePoint()) {
		m := conversionMatrix(dstSpace, srcSpace)
		r, g, b = m[0][0]*r+m[0][1]*g+m[0][2]*b,
			m[1][0]*r+m[1][1]*g+m[1][2]*b,
			m[2][0]*r+m[2][1]*g+m[2][2]*b
	}

	tf = dst.Transfer()
	return RGB[D, T]{
		R: fromFloat[T](tf.Encode(r)),
		G: fromFloat[T](tf.Encode(g)),
		B: fromFloat[T](tf.Encode(b)),
	}
}

// ConvertAlpha re-encodes a color with transparency. The alpha
// component is linear and passes through untouched.
func ConvertAlpha[D Standard, S Standard, T Component](c RGBA[S, T]) RGBA[D, T] {
	return RGBA[D, T]{RGB: Convert[D](c.RGB), A: c.A}
}

// ConvertFormat changes the component type without re-encoding.
func ConvertFormat[U Component, S Standard, T Component](c RGB[S, T]) RGB[S, U] {
	return RGB[S, U]{
		R: fromFloat[U](toFloat(c.R)),
		G: fromFloat[U](toFloat(c.G)),
		B: fromFloat[U](toFloat(c.B)),
	}
}

// ConvertFormatAlpha changes the component type of a color with
// transparency without re-encoding.
func ConvertFormatAlpha[U Component, S Standard, T Component](c RGBA[S, T]) RGBA[S, U] {
	return RGBA[S, U]{RGB: ConvertFormat[U](c.RGB), A: fromFloat[U](toFloat(c.A))}
}
