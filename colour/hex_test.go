package colour

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		name      string
		input     string
		expected  Srgb8
		expectErr error
	}{
		{
			name:     "full red with prefix",
			input:    "#FF0000",
			expected: NewRGB[Srgb](uint8(255), 0, 0),
		},
		{
			name:     "shorthand red",
			input:    "f00",
			expected: NewRGB[Srgb](uint8(255), 0, 0),
		},
		{
			name:     "shorthand with prefix",
			input:    "#abc",
			expected: NewRGB[Srgb](uint8(0xaa), 0xbb, 0xcc),
		},
		{
			name:     "mixed case",
			input:    "60Ff00",
			expected: NewRGB[Srgb](uint8(0x60), 0xff, 0x00),
		},
		{
			name:      "too short",
			input:     "#12",
			expectErr: ErrHexLength,
		},
		{
			name:      "alpha form rejected for plain rgb",
			input:     "#607f00ff",
			expectErr: ErrHexAlpha,
		},
		{
			name:      "shorthand alpha form rejected for plain rgb",
			input:     "f008",
			expectErr: ErrHexAlpha,
		},
		{
			name:      "empty",
			input:     "",
			expectErr: ErrHexEmpty,
		},
		{
			name:      "prefix only",
			input:     "#",
			expectErr: ErrHexEmpty,
		},
		{
			name:      "non hex character",
			input:     "#12345g",
			expectErr: ErrHexDigit,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseHex[Srgb, uint8](tc.input)
			if tc.expectErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestParseHexAlpha(t *testing.T) {
	for _, tc := range []struct {
		name      string
		input     string
		expected  Srgba8
		expectErr error
	}{
		{
			name:     "six digits default opaque",
			input:    "#607f00",
			expected: NewRGBA[Srgb](uint8(0x60), 0x7f, 0x00, 0xff),
		},
		{
			name:     "eight digits",
			input:    "607f00c0",
			expected: NewRGBA[Srgb](uint8(0x60), 0x7f, 0x00, 0xc0),
		},
		{
			name:     "four digit shorthand",
			input:    "#f008",
			expected: NewRGBA[Srgb](uint8(0xff), 0x00, 0x00, 0x88),
		},
		{
			name:     "three digit shorthand default opaque",
			input:    "f00",
			expected: NewRGBA[Srgb](uint8(0xff), 0x00, 0x00, 0xff),
		},
		{
			name:      "five digits",
			input:     "#12345",
			expectErr: ErrHexLength,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseHexAlpha[Srgb, uint8](tc.input)
			if tc.expectErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestParseHexErrorDetail(t *testing.T) {
	_, err := ParseHex[Srgb, uint8]("#12z456")

	var hexErr *FromHexError
	assert.True(t, errors.As(err, &hexErr))
	assert.Equal(t, "#12z456", hexErr.Input)
	assert.Equal(t, 3, hexErr.Pos)

	_, err = ParseHex[Srgb, uint8]("#12")
	assert.True(t, errors.As(err, &hexErr))
	assert.Equal(t, -1, hexErr.Pos)
}

func TestHexFormat(t *testing.T) {
	c := NewRGB[Srgb](uint8(0x60), 0x7f, 0x00)
	assert.Equal(t, "#607f00", Hex(c))

	ca := c.WithAlpha(uint8(0xc0))
	assert.Equal(t, "#607f00c0", HexAlpha(ca))

	// formatting quantizes wider component types to 8 bits.
	cf := NewRGB[Srgb](float32(1), 0, 0.5)
	assert.Equal(t, "#ff0080", Hex(cf))
}

func TestHexRoundTrip(t *testing.T) {
	// every 8-bit color round-trips exactly; stride keeps the sweep fast
	// while still crossing all byte values per channel.
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 31 {
				c := NewRGB[Srgb](uint8(r), uint8(g), uint8(b))
				s := Hex(c)
				parsed, err := ParseHex[Srgb, uint8](s)
				if err != nil {
					t.Fatalf("ParseHex(%q) returned error %v", s, err)
				}
				if parsed != c {
					t.Fatalf("ParseHex(Hex(%v)) = %v", c, parsed)
				}
				if Hex(parsed) != s {
					t.Fatalf("Hex not stable for %q", s)
				}
			}
		}
	}
}

func TestParseHexNeverPanics(t *testing.T) {
	inputs := []string{"", "#", "##", "#1", "zz", "#ggg", "#fffff", "123456789", "#☃☃☃", "\x00\x01\x02"}
	for _, in := range inputs {
		if _, err := ParseHex[Srgb, uint8](in); err == nil {
			t.Errorf("ParseHex(%q) unexpectedly succeeded", in)
		}
		if _, err := ParseHexAlpha[Srgb, uint8](in); err == nil {
			t.Errorf("ParseHexAlpha(%q) unexpectedly succeeded", in)
		}
	}
}

func TestFromHexErrorMessage(t *testing.T) {
	_, err := ParseHex[Srgb, uint8]("#12")
	assert.NotNil(t, err)
	msg := fmt.Sprintf("%v", err)
	assert.Contains(t, msg, "#12")
}
