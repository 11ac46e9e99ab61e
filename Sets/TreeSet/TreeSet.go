package TreeSet

import (
	"cmp"

	"github.com/orderedcol/go-utils/Sets"
	"github.com/orderedcol/go-utils/Trees"
)

// TreeSet is a sorted set over an unbalanced Trees.SortedTree: Range
// visits elements ascending and Take removes the minimum. Put, Has and
// Remove are O(D) for the current tree depth. Not thread-safe.
type TreeSet[E cmp.Ordered] struct {
	t *Trees.SortedTree[E, E, uint32]
}

var _ Sets.Set[int] = (*TreeSet[int])(nil)

// Make a TreeSet with room for hint elements before the backing arena
// grows.
func Make[E cmp.Ordered](hint uint32) *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E, uint32](hint)}
}

// Put [Sets.Set.Put]
func (u *TreeSet[E]) Put(e E) bool {
	if u.t.Has(e) {
		return false
	}
	u.t.Insert(e)
	return true
}

// Has [Sets.Set.Has]
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove [Sets.Set.Remove]
func (u *TreeSet[E]) Remove(e E) bool {
	_, err := u.t.Pop(e)
	return err == nil
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take [Sets.Set.Take]. Removes and returns the minimum.
func (u *TreeSet[E]) Take() E {
	v, _ := u.t.PopMin()
	return v
}

// Range [Sets.Set.Range]. Ascending.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.InOrder(func(p *E) bool { return f(*p) }, nil)
}

// RangeR is Range in descending order.
func (u *TreeSet[E]) RangeR(f func(E) bool) {
	u.t.InOrderR(func(p *E) bool { return f(*p) }, nil)
}

// Min returns the smallest element without removing it.
func (u *TreeSet[E]) Min() (E, error) {
	return u.t.Minimum()
}

// Max returns the greatest element without removing it.
func (u *TreeSet[E]) Max() (E, error) {
	return u.t.Maximum()
}
