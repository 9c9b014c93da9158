// Package zcurve implements the Z-order (Morton) curve for two
// dimensions: bit-interleaved 64-bit keys over unsigned 32-bit
// coordinates, and the BIGMIN jump computation used for range search
// pruning.
package zcurve

import "fmt"

// Key is a 64-bit Z-order key. The x coordinate occupies the even bit
// positions and the y coordinate the odd ones, so keys sort along the
// Morton curve.
type Key uint64

// MaxCoord is the largest representable coordinate value.
const MaxCoord = 1<<32 - 1

// nibbleSpread maps a 4-bit value to its 8-bit spread form, with bit k
// of the input at bit 2k of the output.
var nibbleSpread = [16]uint16{
	0x00, 0x01, 0x04, 0x05,
	0x10, 0x11, 0x14, 0x15,
	0x40, 0x41, 0x44, 0x45,
	0x50, 0x51, 0x54, 0x55,
}

func spread8(v uint8) uint16 {
	return nibbleSpread[v>>4]<<8 | nibbleSpread[v&0xf]
}

func spread16(v uint16) uint32 {
	return uint32(spread8(uint8(v>>8)))<<16 | uint32(spread8(uint8(v)))
}

// Spread widens v so that bit k of the input occupies bit 2k of the
// result, leaving the odd bit positions zero.
func Spread(v uint32) uint64 {
	return uint64(spread16(uint16(v>>16)))<<32 | uint64(spread16(uint16(v)))
}

// compact is the inverse of Spread: it collects the even bit positions
// of z back into a contiguous 32-bit value.
func compact(z uint64) uint32 {
	z &= 0x5555555555555555
	z = (z ^ z>>1) & 0x3333333333333333
	z = (z ^ z>>2) & 0x0f0f0f0f0f0f0f0f
	z = (z ^ z>>4) & 0x00ff00ff00ff00ff
	z = (z ^ z>>8) & 0x0000ffff0000ffff
	z = (z ^ z>>16) & 0x00000000ffffffff
	return uint32(z)
}

// Encode interleaves x and y into a Key. It is injective over the full
// uint32 domain; callers are responsible for rejecting coordinates
// that do not fit in 32 bits before narrowing.
func Encode(x, y uint32) Key {
	return Key(Spread(y)<<1 | Spread(x))
}

// Decode returns the coordinate pair whose Encode is k.
func Decode(k Key) (x, y uint32) {
	return compact(uint64(k)), compact(uint64(k) >> 1)
}

// String renders the key together with its decoded point, which reads
// better than a raw 20-digit integer in test failures.
func (k Key) String() string {
	x, y := Decode(k)
	return fmt.Sprintf("Key(0x%016x:%d,%d)", uint64(k), x, y)
}
