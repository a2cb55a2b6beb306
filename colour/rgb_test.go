package colour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chromago/chroma/testcommon"
)

func TestConvertLinearToGamma(t *testing.T) {
	lin := NewRGB[LinSrgb](0.5, 0.5, 0.5)
	enc := Convert[GammaSrgb](lin)

	want := math.Pow(0.5, 1/2.2)
	testcommon.AssertFloatNear(t, want, enc.R, 1e-12, "R")
	testcommon.AssertFloatNear(t, want, enc.G, 1e-12, "G")
	testcommon.AssertFloatNear(t, want, enc.B, 1e-12, "B")
	testcommon.AssertFloatNear(t, 0.729, enc.R, 1e-3, "R")
}

func TestConvertIdempotentWhenLinear(t *testing.T) {
	lin := NewRGB[LinSrgb](0.25, 0.5, 0.75)
	again := Convert[LinSrgb](lin)
	assert.Equal(t, lin, again)
}

func TestConvertSameSpaceRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    SrgbF64
	}{
		{"gray", NewRGB[Srgb](0.5, 0.5, 0.5)},
		{"saturated", NewRGB[Srgb](1.0, 0.0, 0.25)},
		{"dark", NewRGB[Srgb](0.01, 0.02, 0.03)},
		{"white", NewRGB[Srgb](1.0, 1.0, 1.0)},
		{"black", NewRGB[Srgb](0.0, 0.0, 0.0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lin := Convert[LinSrgb](tc.c)
			back := Convert[Srgb](lin)
			testcommon.AssertFloatNear(t, tc.c.R, back.R, 1e-9, "R")
			testcommon.AssertFloatNear(t, tc.c.G, back.G, 1e-9, "G")
			testcommon.AssertFloatNear(t, tc.c.B, back.B, 1e-9, "B")
		})
	}
}

func TestConvertCrossSpaceRoundTrip(t *testing.T) {
	c := NewRGB[Srgb](0.8, 0.4, 0.1)

	p3 := Convert[DisplayP3](c)
	back := Convert[Srgb](p3)
	testcommon.AssertFloatNear(t, c.R, back.R, 1e-6, "R")
	testcommon.AssertFloatNear(t, c.G, back.G, 1e-6, "G")
	testcommon.AssertFloatNear(t, c.B, back.B, 1e-6, "B")

	// through a different white point (DCI) as well.
	dci := Convert[DciP3](c)
	back = Convert[Srgb](dci)
	testcommon.AssertFloatNear(t, c.R, back.R, 1e-6, "R")
	testcommon.AssertFloatNear(t, c.G, back.G, 1e-6, "G")
	testcommon.AssertFloatNear(t, c.B, back.B, 1e-6, "B")
}

func TestConvertWhitePreserved(t *testing.T) {
	// white maps to white across spaces sharing the D65 white point.
	white := NewRGB[Srgb](1.0, 1.0, 1.0)

	p3 := Convert[DisplayP3](white)
	testcommon.AssertFloatNear(t, 1, p3.R, 1e-6, "R")
	testcommon.AssertFloatNear(t, 1, p3.G, 1e-6, "G")
	testcommon.AssertFloatNear(t, 1, p3.B, 1e-6, "B")

	bt := Convert[Bt2020](white)
	testcommon.AssertFloatNear(t, 1, bt.R, 1e-6, "R")
	testcommon.AssertFloatNear(t, 1, bt.G, 1e-6, "G")
	testcommon.AssertFloatNear(t, 1, bt.B, 1e-6, "B")
}

func TestConvertGamutExpansion(t *testing.T) {
	// a saturated sRGB red sits inside the P3 gamut, so its P3
	// encoding pulls in toward the white point: red drops below 1 and
	// green rises above 0.
	red := NewRGB[Srgb](1.0, 0.0, 0.0)
	p3 := Convert[DisplayP3](red)

	if p3.R >= 1.0 || p3.R < 0.85 {
		t.Errorf("P3 red component = %v; want just below 1", p3.R)
	}
	if p3.G <= 0.0 {
		t.Errorf("P3 green component = %v; want > 0", p3.G)
	}
}

func TestConvertIntegerComponents(t *testing.T) {
	c := NewRGB[Srgb](uint8(200), 100, 50)

	lin := Convert[LinSrgb](c)
	back := Convert[Srgb](lin)

	// linear u8 quantization is coarse in the dark range, but a
	// round trip must land back on the original within one step.
	assert.InDelta(t, float64(c.R), float64(back.R), 1)
	assert.InDelta(t, float64(c.G), float64(back.G), 1)
	assert.InDelta(t, float64(c.B), float64(back.B), 1)

	// float intermediates keep integer conversion unbiased at the ends.
	ends := NewRGB[Srgb](uint8(255), 0, 255)
	linEnds := Convert[LinSrgb](ends)
	assert.Equal(t, uint8(255), linEnds.R)
	assert.Equal(t, uint8(0), linEnds.G)
	assert.Equal(t, uint8(255), linEnds.B)
}

func TestConvertAlphaPassthrough(t *testing.T) {
	c := NewRGBA[Srgb](0.5, 0.25, 0.125, 0.66)
	lin := ConvertAlpha[LinSrgb](c)

	assert.Equal(t, 0.66, lin.A)
	testcommon.AssertFloatNear(t, SrgbFn{}.Decode(0.5), lin.R, 1e-12, "R")
}

func TestConvertFormat(t *testing.T) {
	c := NewRGB[Srgb](uint8(255), 128, 0)
	f := ConvertFormat[float64](c)

	assert.Equal(t, 1.0, f.R)
	assert.InDelta(t, 128.0/255.0, f.G, 1e-12)
	assert.Equal(t, 0.0, f.B)

	back := ConvertFormat[uint8](f)
	assert.Equal(t, c, back)

	wide := ConvertFormat[uint16](c)
	assert.Equal(t, uint16(65535), wide.R)

	ca := NewRGBA[Srgb](uint8(255), 0, 0, 51)
	fa := ConvertFormatAlpha[float32](ca)
	assert.InDelta(t, 0.2, float64(fa.A), 1e-6)
}

func TestWithAlphaAndOpaque(t *testing.T) {
	c := NewRGB[Srgb](uint8(1), 2, 3)
	ca := c.WithAlpha(uint8(77))
	assert.Equal(t, uint8(77), ca.A)
	assert.Equal(t, c, ca.Opaque())

	r, g, b, a := ca.Components()
	assert.Equal(t, [4]uint8{1, 2, 3, 77}, [4]uint8{r, g, b, a})
}
