//go:build !386 && !arm && !mips && !mipsle
// +build !386,!arm,!mips,!mipsle

package fxhash

const wordBits = 64

// Mixing constant for 64-bit words.
const k uint = 0x517cc1b727220a95

func uword[B []byte | string](buf B) uint {
	// go compiler recognizes this pattern
	// and optimizes it on little endian platforms
	return uint(buf[0]) |
		uint(buf[1])<<8 |
		uint(buf[2])<<16 |
		uint(buf[3])<<24 |
		uint(buf[4])<<32 |
		uint(buf[5])<<40 |
		uint(buf[6])<<48 |
		uint(buf[7])<<56
}
