package Sets

// Set of distinct elements. Put rejects an element already present. Take
// removes and returns an implementation-chosen element (the minimum for
// the sorted implementation); the zero value when empty. Range calls f on
// each element until f returns false; the visiting order and the behavior
// under concurrent modification are up to the implementation.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}
