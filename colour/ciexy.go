// Package colour implements generic RGB color representations. A color
// value is tagged at the type level with the standard (color space plus
// transfer function) it is encoded in, so conversions between standards
// resolve statically and carry no runtime dispatch.
package colour

// CIEXY is a chromaticity coordinate in the CIE xy plane.
type CIEXY struct {
	X float64
	Y float64
}

func NewCIEXY(x float64, y float64) CIEXY {
	return CIEXY{X: x, Y: y}
}

func (c CIEXY) Matches(other CIEXY) bool {
	return c.X == other.X && c.Y == other.Y
}

// CIEPrimaries holds the chromaticities of the three reference colors
// of an RGB color space.
type CIEPrimaries struct {
	Red   CIEXY
	Green CIEXY
	Blue  CIEXY
}

func NewCIEPrimaries(red CIEXY, green CIEXY, blue CIEXY) CIEPrimaries {
	return CIEPrimaries{Red: red, Green: green, Blue: blue}
}

func (p CIEPrimaries) Matches(other CIEPrimaries) bool {
	return p.Red.Matches(other.Red) && p.Green.Matches(other.Green) && p.Blue.Matches(other.Blue)
}

// Reference primaries.
var (
	PriSrgb = NewCIEPrimaries(
		NewCIEXY(0.640, 0.330),
		NewCIEXY(0.300, 0.600),
		NewCIEXY(0.150, 0.060))

	PriDisplayP3 = NewCIEPrimaries(
		NewCIEXY(0.680, 0.320),
		NewCIEXY(0.265, 0.690),
		NewCIEXY(0.150, 0.060))

	PriBt2020 = NewCIEPrimaries(
		NewCIEXY(0.708, 0.292),
		NewCIEXY(0.170, 0.797),
		NewCIEXY(0.131, 0.046))
)

// Reference white points.
var (
	WpD65 = NewCIEXY(0.3127, 0.3290)
	WpD50 = NewCIEXY(0.34567, 0.35850)
	WpE   = NewCIEXY(1.0/3.0, 1.0/3.0)
	WpDci = NewCIEXY(0.314, 0.351)
)
