package Queues

// ringQueue is a FIFO over a circular slice that grows by half when full.
// head is the next index to Pop, tail the next to Push.
type ringQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeRing returns a FIFO Queue holding initCap elements before growing.
func MakeRing[T any](initCap uint) Queue[T] {
	return &ringQueue[T]{0, 0, 0, make([]T, initCap|1)}
}

func (u *ringQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ringQueue[T]) grow(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else {
		copy(nc, u.content[u.head:])
		copy(nc[uint(len(u.content))-u.head:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz
	u.content = nc
}

func (u *ringQueue[T]) Clear() {
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ringQueue[T]) Size() uint {
	return u.sz
}

func (u *ringQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.grow(u.sz*3/2 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ringQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ringQueue[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
