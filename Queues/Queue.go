package Queues

// Queue hands back elements one at a time; the order depends on the
// implementation (FIFO for the ring queue, ascending for the priority
// queue). Pop fails with *EmptyQueueError when there's nothing to hand
// back; Peek returns the zero value instead.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
