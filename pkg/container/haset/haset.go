// package haset provides a collision-safe unordered hashset
// backed by the same sorted-bucket layout as package hamap,
// allowing allocation-free reseting efficiently reusing memory.
// Allocations are made only in case of rare hash collisions.
// Any custom hasher can be provided during initialization.
// By default, keys are hashed with the fxhash algorithm.
package haset

import (
	"github.com/graph-guard/fxhash/pkg/fxhash"
	"github.com/graph-guard/fxhash/pkg/math"

	"github.com/google/go-cmp/cmp"
)

type KeyInterface interface{ string | []byte }

type bucket[K KeyInterface] struct {
	KeyHash uint64
	item[K]
}

type item[K KeyInterface] struct {
	Key  K
	Next *item[K]
}

// Hasher is the hashing strategy of the set.
type Hasher[K KeyInterface] interface{ Hash(K) uint64 }

// HasherFx is the default hashing strategy.
type HasherFx[K KeyInterface] struct{}

// Hash hashes k to a 64-bit hash value.
func (h *HasherFx[K]) Hash(k K) uint64 {
	return fxhash.Sum64(k)
}

var (
	defaultHasherS = &HasherFx[string]{}
	defaultHasherB = &HasherFx[[]byte]{}
)

// Set is backed by a slice and utilizes binary search.
//
// WARNING: In case of []byte typed keys the keys will
// be aliased and must remain immutable until the set is reset!
type Set[K KeyInterface] struct {
	size   int
	d      []bucket[K]
	hasher Hasher[K]
}

// New creates a new set instance.
// If hasher is nil the default fxhash-based hasher is used.
func New[K KeyInterface](capacity int, hasher Hasher[K]) *Set[K] {
	if hasher == nil {
		var zeroKey K
		switch any(zeroKey).(type) {
		case string:
			hasher = (*HasherFx[K])(defaultHasherS)
		case []byte:
			hasher = (*HasherFx[K])(defaultHasherB)
		}
	}
	return &Set[K]{
		d:      make([]bucket[K], 0, capacity),
		hasher: hasher,
	}
}

func (s *Set[K]) Equal(ss *Set[K]) bool {
	return s.size == ss.size && s.hasher == ss.hasher && cmp.Equal(
		s.d, ss.d, cmp.AllowUnexported(bucket[K]{}, item[K]{}),
	)
}

// Reset resets the set
func (s *Set[K]) Reset() {
	s.d, s.size = s.d[:0], 0
}

// Add adds key to the set and returns true
// if it wasn't in the set before, otherwise noop returning false.
//
// WARNING: In case of []byte typed keys the set will alias keys!
// Make sure key remains immutable during the life-time of the set
// or until the set is reset.
func (s *Set[K]) Add(key K) (added bool) {
	hash := s.hasher.Hash(key)
	i, found := s.index(hash)
	if found {
		for p := &s.d[i].item; ; p = p.Next {
			if string(p.Key) == string(key) {
				return false
			}
			if p.Next == nil {
				// Key doesn't yet exist
				s.size++
				p.Next = &item[K]{Key: key}
				return true
			}
		}
	}

	s.size++
	if i == len(s.d) {
		s.d = append(s.d, bucket[K]{hash, item[K]{Key: key}})
		return true
	}
	s.d = append(s.d[:i+1], s.d[i:]...)
	s.d[i] = bucket[K]{hash, item[K]{Key: key}}
	return true
}

// Has returns true if key is in the set.
func (s *Set[K]) Has(key K) bool {
	hash := s.hasher.Hash(key)
	if i, found := s.index(hash); found {
		if s.d[i].Next == nil {
			return string(s.d[i].Key) == string(key)
		}
		for p := &s.d[i].item; p != nil; p = p.Next {
			if string(p.Key) == string(key) {
				return true
			}
		}
	}
	return false
}

func (s *Set[K]) index(keyHash uint64) (i int, found bool) {
	if len(s.d) >= 256 {
		return findExp(s.d, keyHash)
	}
	return findBin(s.d, keyHash, 0, len(s.d)-1)
}

// Delete deletes the key if it exists.
// Noop if the key doesn't exist.
func (s *Set[K]) Delete(key K) {
	hash := s.hasher.Hash(key)
	if i, found := s.index(hash); found {
		if s.d[i].Next == nil && string(key) == string(s.d[i].Key) {
			s.d = append(s.d[:i], s.d[i+1:]...)
			s.size--
			return
		}

		// Hash collision
		var prev *item[K]
		for p := &s.d[i].item; ; {
			if string(p.Key) == string(key) {
				if prev == nil {
					// No parent
					if p.Next != nil {
						s.d[i].item = *p.Next
					}
				} else {
					// Has parent
					prev.Next = p.Next
				}
				s.size--
				return
			}
			if p.Next == nil {
				return
			}
			prev, p = p, p.Next
		}
	}
}

// Len returns the number of stored keys.
func (s *Set[K]) Len() int {
	return s.size
}

// Visit calls fn for every stored key.
// Returns immediately if fn returns true.
func (s *Set[K]) Visit(fn func(key K) (stop bool)) {
	for i := range s.d {
		if s.d[i].Next != nil {
			// Traverse linked list
			for p := &s.d[i].item; p != nil; p = p.Next {
				if fn(p.Key) {
					break
				}
			}
			continue
		}
		if fn(s.d[i].Key) {
			break
		}
	}
}

// VisitAll calls fn for every stored key.
func (s *Set[K]) VisitAll(fn func(key K)) {
	for i := range s.d {
		if s.d[i].Next != nil {
			// Traverse linked list
			for p := &s.d[i].item; p != nil; p = p.Next {
				fn(p.Key)
			}
			continue
		}
		fn(s.d[i].Key)
	}
}

// Keys returns all stored keys
func (s *Set[K]) Keys() (keys []K) {
	s.VisitAll(func(key K) {
		keys = append(keys, key)
	})

	return
}

// findExp utilizes exponential binary search and returns index and true if
// the element was found, otherwise returns bound and false.
func findExp[K KeyInterface](
	e []bucket[K],
	keyHash uint64,
) (int, bool) {
	l, r := 0, 1

	if len(e) > 1 {
		for r < len(e) && e[r].KeyHash < keyHash {
			l = r
			r = r << 1
		}
	}

	return findBin(e, keyHash, l, math.Min(r, len(e)-1))
}

// findBin utilizes binary search and returns index and true if
// the element was found, otherwise returns left bound and false.
func findBin[K KeyInterface](
	e []bucket[K],
	keyHash uint64,
	l, r int,
) (int, bool) {
	for l <= r {
		m := l + (r-l)>>1

		if e[m].KeyHash == keyHash {
			return m, true
		}

		if e[m].KeyHash > keyHash {
			r = m - 1
		} else {
			l = m + 1
		}
	}

	return l, false
}
