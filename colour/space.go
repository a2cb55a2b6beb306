package colour

// Space describes an RGB color space: a set of primaries and the white
// point they are balanced against. Implementations are zero-size marker
// structs so a space can be used as a type argument; the returned data
// must never change between calls.
type Space interface {
	Primaries() CIEPrimaries
	WhitePoint() CIEXY
}

// SrgbSpace is the sRGB / BT.709 color space with a D65 white point.
type SrgbSpace struct{}

func (SrgbSpace) Primaries() CIEPrimaries { return PriSrgb }
func (SrgbSpace) WhitePoint() CIEXY       { return WpD65 }

// DisplayP3Space is the Display P3 color space: DCI-P3 primaries with a
// D65 white point.
type DisplayP3Space struct{}

func (DisplayP3Space) Primaries() CIEPrimaries { return PriDisplayP3 }
func (DisplayP3Space) WhitePoint() CIEXY       { return WpD65 }

// Bt2020Space is the ITU-R BT.2020 wide-gamut space with a D65 white
// point, shared by BT.2100 content.
type Bt2020Space struct{}

func (Bt2020Space) Primaries() CIEPrimaries { return PriBt2020 }
func (Bt2020Space) WhitePoint() CIEXY       { return WpD65 }

// DciP3Space is the theatrical DCI-P3 space: P3 primaries balanced
// against the DCI white point rather than D65.
type DciP3Space struct{}

func (DciP3Space) Primaries() CIEPrimaries { return PriDisplayP3 }
func (DciP3Space) WhitePoint() CIEXY       { return WpDci }
