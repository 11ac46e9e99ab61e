package Maps

import "cmp"

// Map with ordered keys: iteration through Keys, Values, and Pairs visits
// entries in ascending key order. At most one value per key. The closure
// iterators follow the usual convention: the returns are meaningful only
// while the bool is true, and the map mustn't be modified while an
// iterator is in use.
type Map[K cmp.Ordered, V any] interface {
	//Put v under k, returning the value previously stored there (the zero
	//value if none).
	Put(k K, v V) V
	HasKey(k K) bool
	//Get the value under k, the zero value if none. Use HasKey or Pairs to
	//distinguish a stored zero value.
	Get(k K) V
	//Remove the entry under k, reporting whether one existed.
	Remove(k K) bool
	//Take removes and returns the entry with the smallest key.
	Take() (K, V)
	Keys() func() (K, bool)
	Values() func() (V, bool)
	Pairs() func() (K, V, bool)
	Size() uint
}
