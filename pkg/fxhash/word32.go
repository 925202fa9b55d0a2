//go:build 386 || arm || mips || mipsle
// +build 386 arm mips mipsle

package fxhash

const wordBits = 32

// Mixing constant for 32-bit words, floor(2^32 / golden ratio).
const k uint = 0x9e3779b9

func uword[B []byte | string](buf B) uint {
	// go compiler recognizes this pattern
	// and optimizes it on little endian platforms
	return uint(buf[0]) |
		uint(buf[1])<<8 |
		uint(buf[2])<<16 |
		uint(buf[3])<<24
}
