// Package container defines the contracts shared by the hash-based
// container implementations and their benchmark references.
package container

// KeyInterface is the set of supported container key types.
type KeyInterface interface{ string | []byte }

// Mapper is a key-unique unordered mapping of K to V.
type Mapper[K KeyInterface, V any] interface {
	Set(key K, value V)
	Get(key K) (value V, ok bool)
	Delete(key K)
	Len() int
	Reset()
	Visit(fn func(key K, value V) (stop bool))
}

// Setter is a key-unique unordered set of K.
type Setter[K KeyInterface] interface {
	Add(key K) (added bool)
	Has(key K) bool
	Delete(key K)
	Len() int
	Reset()
	Visit(fn func(key K) (stop bool))
}
