package PQueue

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/orderedcol/go-utils/Queues"
)

var rg = *rand.New(rand.NewSource(0))

func TestPQueue_Order(t *testing.T) {
	q := Make[int](16)
	a := make([]int, 5000)
	for i := range a {
		a[i] = rg.Intn(1000) // duplicates welcome
		q.Push(a[i])
	}
	if int(q.Size()) != len(a) {
		t.Fatalf("queue size is %d, want %d", q.Size(), len(a))
	}
	slices.Sort(a)
	for i, want := range a {
		if p := q.Peek(); p != want {
			t.Fatalf("peek %d returned %v, want %v", i, p, want)
		}
		v, err := q.Pop()
		if err != nil {
			t.Fatalf("pop %d failed: %v", i, err)
		}
		if v != want {
			t.Fatalf("pop %d returned %v, want %v", i, v, want)
		}
	}
	if !q.Empty() {
		t.Error("queue is not empty after draining")
	}
	var eq *Queues.EmptyQueueError
	if _, err := q.Pop(); !errors.As(err, &eq) {
		t.Errorf("pop on empty queue returned %v", err)
	}
}

func TestPQueue_Clear(t *testing.T) {
	q := Make[int](4)
	q.Push(2)
	q.Push(1)
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Fatal("queue not empty after clear")
	}
	if v := q.Peek(); v != 0 {
		t.Errorf("peek on empty queue returned %v", v)
	}
	q.Push(9)
	if v, err := q.Pop(); err != nil || v != 9 {
		t.Errorf("pop after reuse returned (%v, %v)", v, err)
	}
}
