package fxhash_test

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"testing"

	"github.com/graph-guard/fxhash/pkg/fxhash"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

const k64 = 0x517cc1b727220a95

// refSum64 recomputes the hash independently for 64-bit words:
// a fold of rotate-xor-multiply over the chunks produced by
// decreasing power-of-two chunking of the input.
func refSum64(input []byte) uint64 {
	var sum uint64
	mix := func(word uint64) {
		sum = (bits.RotateLeft64(sum, 5) ^ word) * k64
	}
	for len(input) >= 8 {
		mix(binary.LittleEndian.Uint64(input))
		input = input[8:]
	}
	if len(input) >= 4 {
		mix(uint64(binary.LittleEndian.Uint32(input)))
		input = input[4:]
	}
	if len(input) >= 2 {
		mix(uint64(binary.LittleEndian.Uint16(input)))
		input = input[2:]
	}
	if len(input) >= 1 {
		mix(uint64(input[0]))
	}
	return sum
}

func requireWord64(t *testing.T) {
	t.Helper()
	if bits.UintSize != 64 {
		t.Skip("fixture requires a 64-bit word")
	}
}

// TestSum64Fixtures pins known hash values on 64-bit targets
// as a regression guard.
func TestSum64Fixtures(t *testing.T) {
	requireWord64(t)
	for _, td := range []struct {
		input  []byte
		expect uint64
	}{
		// One whole word: (rotl(0,5) ^ 0x0102030405060708) * k.
		{
			[]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
			0xc0128e204fd867a8,
		},
		{[]byte("abc"), 0xc360d75917ea8923},
		{[]byte("hello, world"), 0x2e725f56f4ea74d8},
	} {
		t.Run(fmt.Sprintf("%q", td.input), func(t *testing.T) {
			require.Equal(t, td.expect, fxhash.Sum64(td.input))
		})
	}
}

// TestWordBoundaries checks inputs around the word length against
// an independent computation of the expected chunk fold.
func TestWordBoundaries(t *testing.T) {
	requireWord64(t)
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 15, 16, 17, 1000} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			in := make([]byte, n)
			for i := range in {
				in[i] = byte(i + 1)
			}
			require.Equal(t, refSum64(in), fxhash.Sum64(in))
		})
	}
}

func TestSum64Empty(t *testing.T) {
	h := fxhash.New()
	require.Zero(t, h.Sum64())
	require.Zero(t, fxhash.Sum64(""))
	fxhash.Write(&h, []byte{})
	require.Zero(t, h.Sum64())
}

func TestDeterminism(t *testing.T) {
	for _, in := range corpus() {
		require.Equal(t, fxhash.Sum64(in), fxhash.Sum64(in))
	}
}

func TestStringBytesEquivalence(t *testing.T) {
	for _, in := range corpus() {
		require.Equal(t, fxhash.Sum64(in), fxhash.Sum64(string(in)))
	}
}

// TestWriteWord makes sure word-wise and byte-wise writes
// of the same data agree.
func TestWriteWord(t *testing.T) {
	requireWord64(t)
	in := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	byWords, byBytes := fxhash.New(), fxhash.New()
	fxhash.WriteWord(&byWords, uint(binary.LittleEndian.Uint64(in)))
	fxhash.WriteWord(&byWords, uint(binary.LittleEndian.Uint64(in[8:])))
	fxhash.Write(&byBytes, in)
	require.Equal(t, byBytes.Sum64(), byWords.Sum64())
}

// TestWriteSplit checks that sequential writes compose with
// single-call hashing when split at chunking boundaries and
// pins the documented caveat that arbitrary splits don't.
func TestWriteSplit(t *testing.T) {
	in := make([]byte, 27)
	for i := range in {
		in[i] = byte(i + 1)
	}
	whole := fxhash.Sum64(in)

	wordLen := bits.UintSize / 8
	t.Run("word_aligned", func(t *testing.T) {
		h := fxhash.New()
		for p := in; len(p) > 0; {
			n := wordLen
			if n > len(p) {
				n = len(p)
			}
			fxhash.Write(&h, p[:n])
			p = p[n:]
		}
		require.Equal(t, whole, h.Sum64())
	})

	t.Run("tail_aligned", func(t *testing.T) {
		// 24 is a word multiple on both widths; the 3-byte tail
		// is cut 2+1 exactly like single-call chunking would.
		h := fxhash.New()
		fxhash.Write(&h, in[:24])
		fxhash.Write(&h, in[24:26])
		fxhash.Write(&h, in[26:])
		require.Equal(t, whole, h.Sum64())
	})

	t.Run("misaligned", func(t *testing.T) {
		h := fxhash.New()
		fxhash.Write(&h, in[:5])
		fxhash.Write(&h, in[5:])
		require.NotEqual(t, whole, h.Sum64())
	})
}

func TestSum64Idempotent(t *testing.T) {
	h := fxhash.New()
	fxhash.Write(&h, "foobar")
	sum := h.Sum64()
	require.Equal(t, sum, h.Sum64())

	// Writing after Sum64 continues the accumulation.
	fxhash.Write(&h, "bazzfuzz")
	require.NotEqual(t, sum, h.Sum64())
	require.Equal(t, h.Sum64(), h.Sum64())
}

func TestCopy(t *testing.T) {
	h := fxhash.New()
	fxhash.Write(&h, "prefix")
	fork := h
	fxhash.Write(&fork, "suffix")
	require.Equal(t, fxhash.Sum64("prefix"), h.Sum64())
	require.NotEqual(t, h.Sum64(), fork.Sum64())
}

func TestReset(t *testing.T) {
	h := fxhash.New()
	fxhash.Write(&h, "foobar")
	h.Reset()
	require.Zero(t, h.Sum64())
	fxhash.Write(&h, "foobar")
	require.Equal(t, fxhash.Sum64("foobar"), h.Sum64())
}

// TestNoCollisions makes sure a corpus of distinct structured inputs
// of varying lengths produces no colliding hash values.
func TestNoCollisions(t *testing.T) {
	c := corpus()
	sums := make([]uint64, len(c))
	for i := range c {
		sums[i] = fxhash.Sum64(c[i])
	}
	slices.Sort(sums)
	for i := 1; i < len(sums); i++ {
		require.NotEqual(t, sums[i-1], sums[i])
	}
}

// corpus returns distinct byte sequences of varying lengths,
// including the empty sequence.
func corpus() [][]byte {
	var c [][]byte
	for _, n := range []int{0, 1, 2, 3, 4, 7, 8, 9, 16, 17, 1000} {
		a, b := make([]byte, n), make([]byte, n)
		for i := 0; i < n; i++ {
			a[i] = 'a' + byte(i%26)
			b[i] = '0' + byte(i%10)
		}
		c = append(c, a)
		if n > 0 {
			c = append(c, b)
		}
	}
	return c
}
