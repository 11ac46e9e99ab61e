package PQueue

import (
	"cmp"

	"github.com/orderedcol/go-utils/Queues"
	"github.com/orderedcol/go-utils/Trees"
)

// PQueue is a min-priority queue: Pop hands back the smallest element
// pushed so far. It is a facade over an unbalanced Trees.SortedTree, so
// Push and Pop cost O(D) where D is the current tree depth. Equal elements
// pop in an unspecified but deterministic order. Not thread-safe.
type PQueue[T cmp.Ordered] struct {
	t *Trees.SortedTree[T, T, uint32]
}

var _ Queues.Queue[int] = (*PQueue[int])(nil)

// Make a PQueue with room for hint elements before the backing arena grows.
func Make[T cmp.Ordered](hint uint32) *PQueue[T] {
	return &PQueue[T]{Trees.New[T, uint32](hint)}
}

func (u *PQueue[T]) Push(item T) {
	u.t.Insert(item)
}

func (u *PQueue[T]) Pop() (T, error) {
	v, err := u.t.PopMin()
	if err != nil {
		return v, &Queues.EmptyQueueError{}
	}
	return v, nil
}

// Peek returns the smallest element without removing it, or the zero value
// when empty.
func (u *PQueue[T]) Peek() T {
	v, _ := u.t.Minimum()
	return v
}

func (u *PQueue[T]) Empty() bool {
	return u.t.Size() == 0
}

func (u *PQueue[T]) Size() uint {
	return u.t.Size()
}

func (u *PQueue[T]) Clear() {
	u.t.Clear()
}
