// Package channels defines how color components map onto the four byte
// lanes of a packed 32 bit unsigned integer. Lane 3 is the most
// significant byte, lane 0 the least significant.
package channels

// Order maps red, green, blue and alpha bytes into a uint32 and back.
// The mapping is fixed per implementing type and bijective.
type Order interface {
	Pack(r, g, b, a uint8) uint32
	Unpack(v uint32) (r, g, b, a uint8)
}

// Argb stores the alpha byte in the most significant lane: 0xAARRGGBB.
type Argb struct{}

func (Argb) Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func (Argb) Unpack(v uint32) (r, g, b, a uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v), uint8(v >> 24)
}

// Rgba stores the red byte in the most significant lane: 0xRRGGBBAA.
type Rgba struct{}

func (Rgba) Pack(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

func (Rgba) Unpack(v uint32) (r, g, b, a uint8) {
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Bgra stores the blue byte in the most significant lane: 0xBBGGRRAA.
type Bgra struct{}

func (Bgra) Pack(r, g, b, a uint8) uint32 {
	return uint32(b)<<24 | uint32(g)<<16 | uint32(r)<<8 | uint32(a)
}

func (Bgra) Unpack(v uint32) (r, g, b, a uint8) {
	return uint8(v >> 8), uint8(v >> 16), uint8(v >> 24), uint8(v)
}

// Abgr stores the alpha byte in the most significant lane and reverses
// the color lanes: 0xAABBGGRR.
type Abgr struct{}

func (Abgr) Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func (Abgr) Unpack(v uint32) (r, g, b, a uint8) {
	return uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)
}
