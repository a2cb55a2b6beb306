package colour

// Standard is a complete description of a concrete RGB encoding: a
// color space plus the transfer function its components are stored
// under. Implementations are zero-size marker structs used as type
// arguments on RGB and RGBA, so the compiler resolves exactly one
// (space, transfer function) pair per color type.
//
// Two distinct marker types are distinct standards even when their
// numeric data matches; matching data only means the linear transform
// between them is the identity.
type Standard interface {
	Space() Space
	Transfer() TransferFunc
}

// Srgb is the standard nonlinear sRGB encoding.
type Srgb struct{}

func (Srgb) Space() Space           { return SrgbSpace{} }
func (Srgb) Transfer() TransferFunc { return SrgbFn{} }

// Linear is the linear encoding of any space Sp.
type Linear[Sp Space] struct{}

func (Linear[Sp]) Space() Space           { var sp Sp; return sp }
func (Linear[Sp]) Transfer() TransferFunc { return LinearFn{} }

// Gamma is the 2.2 power-law encoding of any space Sp.
type Gamma[Sp Space] struct{}

func (Gamma[Sp]) Space() Space           { var sp Sp; return sp }
func (Gamma[Sp]) Transfer() TransferFunc { return GammaFn{Gamma: 2.2} }

// DisplayP3 is the Display P3 encoding: P3 gamut with the sRGB transfer
// function, as used by wide-gamut displays.
type DisplayP3 struct{}

func (DisplayP3) Space() Space           { return DisplayP3Space{} }
func (DisplayP3) Transfer() TransferFunc { return SrgbFn{} }

// Bt2020 is the ITU-R BT.2020 encoding with the BT.709 transfer
// function.
type Bt2020 struct{}

func (Bt2020) Space() Space           { return Bt2020Space{} }
func (Bt2020) Transfer() TransferFunc { return Bt709Fn{} }

// Bt2100Pq is the BT.2100 HDR encoding using the SMPTE ST 2084
// perceptual quantizer.
type Bt2100Pq struct{}

func (Bt2100Pq) Space() Space           { return Bt2020Space{} }
func (Bt2100Pq) Transfer() TransferFunc { return PqFn{} }

// Bt2100Hlg is the BT.2100 HDR encoding using hybrid log-gamma.
type Bt2100Hlg struct{}

func (Bt2100Hlg) Space() Space           { return Bt2020Space{} }
func (Bt2100Hlg) Transfer() TransferFunc { return HlgFn{} }

// DciP3 is the theatrical DCI-P3 encoding: P3 primaries, DCI white
// point and a pure 2.6 gamma.
type DciP3 struct{}

func (DciP3) Space() Space           { return DciP3Space{} }
func (DciP3) Transfer() TransferFunc { return GammaFn{Gamma: 2.6} }

// Shorthand for the common standards.
type (
	LinSrgb   = Linear[SrgbSpace]
	GammaSrgb = Gamma[SrgbSpace]
)

// Shorthand for the common color types.
type (
	Srgb8        = RGB[Srgb, uint8]
	Srgba8       = RGBA[Srgb, uint8]
	SrgbF32      = RGB[Srgb, float32]
	SrgbaF32     = RGBA[Srgb, float32]
	SrgbF64      = RGB[Srgb, float64]
	SrgbaF64     = RGBA[Srgb, float64]
	LinSrgbF32   = RGB[LinSrgb, float32]
	LinSrgbaF32  = RGBA[LinSrgb, float32]
	LinSrgbF64   = RGB[LinSrgb, float64]
	LinSrgbaF64  = RGBA[LinSrgb, float64]
	GammaSrgbF32 = RGB[GammaSrgb, float32]
	GammaSrgbF64 = RGB[GammaSrgb, float64]
)
