package Trees

import (
	"cmp"
	"errors"
	"fmt"
)

// Sorted is an ordered multiset of values of type T positioned by sort keys
// of type K. A tree may be self keyed (K==T, every value is its own sort
// key) or keyed through an extraction function fixed at construction.
// Duplicate keys are allowed; the relative order of equal keys is
// deterministic for a fixed insertion sequence but not otherwise specified.
// Receivers returning (T, error) report failure through the error: ErrEmpty
// for extreme access on an empty collection, KeyNotFoundError for a missed
// key lookup. In both cases the T return value is undefined and shouldn't
// be used. Failed operations never mutate the collection.
// Receivers with a bool second return value follow the usual convention:
// the first return value is defined only when the bool is true.
// Implementations aren't thread-safe; synchronize externally for shared
// use, including iteration.
type Sorted[T any, K cmp.Ordered] interface {
	//Insert v into the collection. Never fails; duplicates accumulate.
	Insert(v T)
	//Minimum value by sort key.
	Minimum() (T, error)
	//Maximum value by sort key.
	Maximum() (T, error)
	//Find a value whose sort key equals k.
	Find(k K) (T, error)
	//Pop removes and returns a value whose sort key equals k.
	Pop(k K) (T, error)
	//PopMin removes and returns the minimum value.
	PopMin() (T, error)
	//PopMax removes and returns the maximum value.
	PopMax() (T, error)
	//Predecessor returns a value with the greatest key strictly less than k.
	Predecessor(k K) (T, bool)
	//Successor returns a value with the smallest key strictly greater than k.
	Successor(k K) (T, bool)
	//Has reports whether some value has sort key k. Prefer this over Find
	//for existence checks.
	Has(k K) bool
	//Values returns a closure iterator over the values in ascending
	//(descending if reverse) key order. Each call starts a fresh traversal
	//of the current contents. val, valid = f(); val is meaningful only while
	//valid is true, and valid can't turn true after it first became false.
	//The collection mustn't be modified while an iterator is in use; no
	//panic guards against it, so design with this in mind.
	Values(reverse bool) func() (T, bool)
	//Size of the collection.
	Size() uint
	//Clear removes everything. Doesn't release the underlying storage.
	Clear()
	//Corrupt reports whether some node violates the ordering property of
	//the implementation. This is a diagnostic; it should always be false.
	Corrupt() bool
}

// ErrEmpty is returned by extreme-value access on an empty collection.
var ErrEmpty = errors.New("empty sorted collection")

// KeyNotFoundError is returned by Find and Pop when no value has the
// requested sort key.
type KeyNotFoundError[K cmp.Ordered] struct {
	Key K
}

func (e KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

// UnsortedSliceError is the panic value of the checked From build when the
// given slice isn't strictly ascending. Prev and Cur are the offending
// adjacent elements.
type UnsortedSliceError[T cmp.Ordered] struct {
	Prev, Cur T
}

func (e UnsortedSliceError[T]) Error() string {
	return fmt.Sprintf("slice not strictly ascending: %v followed by %v", e.Prev, e.Cur)
}
