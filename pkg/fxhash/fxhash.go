// Package fxhash provides fast non-cryptographic hashing
// for hash tables and sets on non-adversarial input.
//
// The algorithm is the one used by the Rust compiler and Firefox:
// per machine word the state is rotated left by 5, xored with the
// word and multiplied by a large odd constant. Input is consumed
// up to one word at a time, which makes it faster than
// byte-at-a-time hashes like FNV at a similar collision rate
// on structured keys.
//
// The hash provides no protection against flooding attacks and its
// output depends on the target word width. Hash values must not be
// persisted or compared across processes.
package fxhash

import "math/bits"

// The state must be widenable to the 64-bit sum.
const _ uint = 64 - wordBits

// The build constraints selecting the mixing constant must agree
// with the platform word width.
const _ uint = wordBits - bits.UintSize
const _ uint = bits.UintSize - wordBits

const wordLen = wordBits / 8

// Hash is a hash state accumulator. The zero value is ready to use.
// Assigning a Hash copies the state, the copies are independent.
type Hash struct {
	sum uint
}

// New returns a new Hash instance.
func New() Hash {
	return Hash{}
}

// WriteWord mixes one machine word into the hash state.
func WriteWord(h *Hash, word uint) {
	h.sum = mix(h.sum, word)
}

// Write adds input bytes to the hash state consuming the largest
// available power-of-two sized prefix first: whole words, then 4 bytes,
// 2 bytes and finally a single byte. Chunks are read in little-endian
// byte order and zero-extended to a word when narrower.
//
// Chunking restarts on every call. Writing b1 and then b2 therefore
// equals writing the concatenation of both only if the split leaves
// the chunking decisions unchanged, that is len(b1) is a multiple of
// the word length or falls where single-call chunking would have cut
// the tail anyway. Streams split at arbitrary offsets may hash
// differently.
func Write[B []byte | string](h *Hash, input B) {
	sum := h.sum
	for len(input) >= wordLen {
		sum = mix(sum, uword(input))
		input = input[wordLen:]
	}
	if len(input) >= 4 {
		sum = mix(sum, uint(u32(input)))
		input = input[4:]
	}
	if len(input) >= 2 {
		sum = mix(sum, uint(u16(input)))
		input = input[2:]
	}
	if len(input) >= 1 {
		sum = mix(sum, uint(input[0]))
	}
	h.sum = sum
}

// Sum64 returns the 64 bit hash value widening the state with zero
// upper bits on 32-bit targets. It doesn't mutate the state: writes
// after Sum64 continue the accumulation.
func (h *Hash) Sum64() uint64 {
	return uint64(h.sum)
}

// Reset restores the initial state, equivalent to a new instance.
func (h *Hash) Reset() {
	h.sum = 0
}

// Sum64 returns the hash of input in a single call.
func Sum64[B []byte | string](input B) uint64 {
	var h Hash
	Write(&h, input)
	return h.Sum64()
}

func mix(sum, word uint) uint {
	return (bits.RotateLeft(sum, 5) ^ word) * k
}

func u32[B []byte | string](buf B) uint32 {
	return uint32(buf[0]) |
		uint32(buf[1])<<8 |
		uint32(buf[2])<<16 |
		uint32(buf[3])<<24
}

func u16[B []byte | string](buf B) uint16 {
	return uint16(buf[0]) | uint16(buf[1])<<8
}
