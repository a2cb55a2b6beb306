package colour

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes for hex parse failures, usable with errors.Is.
var (
	ErrHexEmpty  = errors.New("empty hex code")
	ErrHexLength = errors.New("hex code must have 3, 4, 6 or 8 digits")
	ErrHexDigit  = errors.New("invalid hexadecimal digit")
	ErrHexAlpha  = errors.New("hex code carries an alpha channel")
)

// FromHexError reports why a hex color string could not be parsed.
type FromHexError struct {
	// Input is the original string, including any '#' prefix.
	Input string
	// Pos is the byte offset of the offending character in Input, or
	// -1 when the failure concerns the string as a whole.
	Pos int

	cause error
}

func (e *FromHexError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("invalid hex code %q: %v at position %d", e.Input, e.cause, e.Pos)
	}
	return fmt.Sprintf("invalid hex code %q: %v", e.Input, e.cause)
}

func (e *FromHexError) Unwrap() error {
	return e.cause
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseHexBytes decodes an optionally '#'-prefixed hex code of 3, 4, 6
// or 8 digits into up to four channel bytes. Shorthand digits are
// duplicated (f -> ff). hasAlpha reports whether an alpha channel was
// present in the input.
func parseHexBytes(input string) (out [4]uint8, hasAlpha bool, err error) {
	code := strings.TrimPrefix(input, "#")
	offset := len(input) - len(code)

	if len(code) == 0 {
		return out, false, &FromHexError{Input: input, Pos: -1, cause: ErrHexEmpty}
	}

	var digitsPerChannel, numChannels int
	switch len(code) {
	case 3:
		digitsPerChannel, numChannels = 1, 3
	case 4:
		digitsPerChannel, numChannels = 1, 4
	case 6:
		digitsPerChannel, numChannels = 2, 3
	case 8:
		digitsPerChannel, numChannels = 2, 4
	default:
		return out, false, &FromHexError{Input: input, Pos: -1, cause: ErrHexLength}
	}

	for i := 0; i < numChannels; i++ {
		pos := i * digitsPerChannel
		hi, ok := hexDigit(code[pos])
		if !ok {
			return out, false, &FromHexError{Input: input, Pos: offset + pos, cause: ErrHexDigit}
		}
		lo := hi
		if digitsPerChannel == 2 {
			lo, ok = hexDigit(code[pos+1])
			if !ok {
				return out, false, &FromHexError{Input: input, Pos: offset + pos + 1, cause: ErrHexDigit}
			}
		}
		out[i] = hi<<4 | lo
	}
	return out, numChannels == 4, nil
}

// ParseHex parses a 3 or 6 digit hex code, optionally prefixed with
// '#', into a color. Digits are case-insensitive; 3 digit shorthand
// duplicates each digit. Codes carrying an alpha channel are rejected
// with ErrHexAlpha; use ParseHexAlpha for those.
func ParseHex[S Standard, T Component](input string) (RGB[S, T], error) {
	b, hasAlpha, err := parseHexBytes(input)
	if err != nil {
		return RGB[S, T]{}, err
	}
	if hasAlpha {
		return RGB[S, T]{}, &FromHexError{Input: input, Pos: -1, cause: ErrHexAlpha}
	}
	return RGB[S, T]{
		R: byteToComponent[T](b[0]),
		G: byteToComponent[T](b[1]),
		B: byteToComponent[T](b[2]),
	}, nil
}

// ParseHexAlpha parses a 3, 4, 6 or 8 digit hex code, optionally
// prefixed with '#', into a color with transparency. When the code
// carries no alpha digits the color is fully opaque.
func ParseHexAlpha[S Standard, T Component](input string) (RGBA[S, T], error) {
	b, hasAlpha, err := parseHexBytes(input)
	if err != nil {
		return RGBA[S, T]{}, err
	}
	alpha := uint8(0xFF)
	if hasAlpha {
		alpha = b[3]
	}
	return RGBA[S, T]{
		RGB: RGB[S, T]{
			R: byteToComponent[T](b[0]),
			G: byteToComponent[T](b[1]),
			B: byteToComponent[T](b[2]),
		},
		A: byteToComponent[T](alpha),
	}, nil
}

// Hex formats a color as a lowercase '#rrggbb' string. Shorthand is
// never emitted, so formatting and parsing round-trip for every 8 bit
// color. Wider components are quantized to 8 bits first.
func Hex[S Standard, T Component](c RGB[S, T]) string {
	return fmt.Sprintf("#%02x%02x%02x",
		componentToByte(c.R), componentToByte(c.G), componentToByte(c.B))
}

// HexAlpha formats a color with transparency as a lowercase
// '#rrggbbaa' string.
func HexAlpha[S Standard, T Component](c RGBA[S, T]) string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		componentToByte(c.R), componentToByte(c.G), componentToByte(c.B), componentToByte(c.A))
}
