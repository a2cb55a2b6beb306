package colour

// XYZ is a CIE 1931 XYZ tristimulus value, the linear hub all
// cross-space conversions pass through. Y carries luminance. Values are
// relative to the white point of the space they were derived from.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

func NewXYZ(x float64, y float64, z float64) XYZ {
	return XYZ{X: x, Y: y, Z: z}
}

// xyzCache holds the per-space RGB→XYZ matrices and their inverses.
type xyzMatrices struct {
	toXYZ   [][]float64
	fromXYZ [][]float64
}

var xyzCache = newSpaceCache[xyzMatrices]()

func matricesFor(sp Space) xyzMatrices {
	return xyzCache.get(sp, func() xyzMatrices {
		m, err := PrimariesToXYZ(sp.Primaries(), sp.WhitePoint())
		if err != nil {
			panic("colour: invalid space definition: " + err.Error())
		}
		inv := invertOrPanic(m)
		return xyzMatrices{toXYZ: m, fromXYZ: inv}
	})
}

// IntoXYZ decodes a color to linear intensities and projects it into
// XYZ, relative to its own space's white point.
func IntoXYZ[S Standard, T Component](c RGB[S, T]) XYZ {
	var src S
	tf := src.Transfer()
	r := tf.Decode(toFloat(c.R))
	g := tf.Decode(toFloat(c.G))
	b := tf.Decode(toFloat(c.B))
	m := matricesFor(src.Space()).toXYZ
	return XYZ{
		X: m[0][0]*r + m[0][1]*g + m[0][2]*b,
		Y: m[1][0]*r + m[1][1]*g + m[1][2]*b,
		Z: m[2][0]*r + m[2][1]*g + m[2][2]*b,
	}
}

// FromXYZ projects an XYZ value into the space of standard S and
// encodes it. The XYZ value is taken to be relative to S's white point.
func FromXYZ[S Standard, T Component](v XYZ) RGB[S, T] {
	var dst S
	m := matricesFor(dst.Space()).fromXYZ
	r := m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z
	g := m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z
	b := m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z
	tf := dst.Transfer()
	return RGB[S, T]{
		R: fromFloat[T](tf.Encode(r)),
		G: fromFloat[T](tf.Encode(g)),
		B: fromFloat[T](tf.Encode(b)),
	}
}
