package TreeMap

import (
	"cmp"

	"github.com/orderedcol/go-utils/Maps"
	"github.com/orderedcol/go-utils/Trees"
)

// Entry is one key/value pair of a TreeMap.
type Entry[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// TreeMap is an ordered map over a keyed Trees.SortedTree holding Entry
// values with Entry.Key as the extracted sort key. Keys are unique: Put
// replaces. Lookups and updates are O(D) for the current tree depth, with
// no balancing guarantee. Not thread-safe.
type TreeMap[K cmp.Ordered, V any] struct {
	t *Trees.SortedTree[Entry[K, V], K, uint32]
}

var _ Maps.Map[int, int] = (*TreeMap[int, int])(nil)

// New TreeMap with room for hint entries before the backing arena grows.
func New[K cmp.Ordered, V any](hint uint32) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.NewKeyed[Entry[K, V], K, uint32](func(e Entry[K, V]) K { return e.Key }, hint)}
}

// Put [Maps.Map.Put]
func (u *TreeMap[K, V]) Put(k K, v V) V {
	old, _ := u.t.Pop(k) // a miss is fine, the slot was just vacant.
	u.t.Insert(Entry[K, V]{k, v})
	return old.Val
}

// Get [Maps.Map.Get]
func (u *TreeMap[K, V]) Get(k K) V {
	e, _ := u.t.Find(k)
	return e.Val
}

func (u *TreeMap[K, V]) HasKey(k K) bool {
	return u.t.Has(k)
}

// Remove [Maps.Map.Remove]
func (u *TreeMap[K, V]) Remove(k K) bool {
	_, err := u.t.Pop(k)
	return err == nil
}

// Take [Maps.Map.Take]. The zero pair when empty.
func (u *TreeMap[K, V]) Take() (K, V) {
	e, _ := u.t.PopMin()
	return e.Key, e.Val
}

// Min returns the entry with the smallest key without removing it.
func (u *TreeMap[K, V]) Min() (K, V, error) {
	e, err := u.t.Minimum()
	return e.Key, e.Val, err
}

// Max returns the entry with the greatest key without removing it.
func (u *TreeMap[K, V]) Max() (K, V, error) {
	e, err := u.t.Maximum()
	return e.Key, e.Val, err
}

func (u *TreeMap[K, V]) Keys() func() (K, bool) {
	f := u.t.Values(false)
	return func() (K, bool) {
		e, ok := f()
		return e.Key, ok
	}
}

func (u *TreeMap[K, V]) Values() func() (V, bool) {
	f := u.t.Values(false)
	return func() (V, bool) {
		e, ok := f()
		return e.Val, ok
	}
}

func (u *TreeMap[K, V]) Pairs() func() (K, V, bool) {
	f := u.t.Values(false)
	return func() (K, V, bool) {
		e, ok := f()
		return e.Key, e.Val, ok
	}
}

// PairsR is Pairs in descending key order.
func (u *TreeMap[K, V]) PairsR() func() (K, V, bool) {
	f := u.t.Values(true)
	return func() (K, V, bool) {
		e, ok := f()
		return e.Key, e.Val, ok
	}
}

func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}
