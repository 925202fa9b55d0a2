// package linear provides a container.Mapper implementation
// backed by a slice and linear search for benchmark reference.
package linear

type KeyInterface interface{ string | []byte }

type bucket[K KeyInterface, V any] struct {
	Key   K
	Value V
}

// Map keeps pairs in insertion order and scans linearly,
// the baseline every hash-based implementation must beat.
type Map[K KeyInterface, V any] struct {
	d []bucket[K, V]
}

// New creates a new map instance.
func New[K KeyInterface, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		d: make([]bucket[K, V], 0, capacity),
	}
}

func (m *Map[K, V]) Set(key K, value V) {
	for i := 0; i < len(m.d); i++ {
		if string(m.d[i].Key) == string(key) {
			m.d[i].Value = value
			return
		}
	}
	m.d = append(m.d, bucket[K, V]{
		Key:   key,
		Value: value,
	})
}

func (m *Map[K, V]) Delete(key K) {
	for i := 0; i < len(m.d); i++ {
		if string(m.d[i].Key) == string(key) {
			m.d[i] = m.d[len(m.d)-1]
			m.d = m.d[:len(m.d)-1]
			return
		}
	}
}

func (m *Map[K, V]) Get(key K) (v V, ok bool) {
	for i := 0; i < len(m.d); i++ {
		if string(m.d[i].Key) == string(key) {
			return m.d[i].Value, true
		}
	}
	return v, false
}

func (m *Map[K, V]) Reset() {
	m.d = m.d[:0]
}

func (m *Map[K, V]) Len() int {
	return len(m.d)
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for i := 0; i < len(m.d); i++ {
		if fn(m.d[i].Key, m.d[i].Value) {
			break
		}
	}
}
