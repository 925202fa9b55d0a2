// package gomap provides a container.Mapper implementation
// backed by Go's native map for benchmark reference.
package gomap

type KeyInterface interface{ string | []byte }

// Map wraps a native Go map (and therefore the runtime's own hashing)
// behind the shared Mapper contract.
type Map[K KeyInterface, V any] struct {
	m map[string]V
}

// New creates a new map instance.
func New[K KeyInterface, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		m: make(map[string]V, capacity),
	}
}

func (m *Map[K, V]) Set(key K, value V) {
	m.m[string(key)] = value
}

func (m *Map[K, V]) Delete(key K) {
	delete(m.m, string(key))
}

func (m *Map[K, V]) Get(key K) (v V, ok bool) {
	v, ok = m.m[string(key)]
	return v, ok
}

func (m *Map[K, V]) Reset() {
	for k := range m.m {
		delete(m.m, k)
	}
}

func (m *Map[K, V]) Len() int {
	return len(m.m)
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for k, v := range m.m {
		if fn(K(k), v) {
			break
		}
	}
}
