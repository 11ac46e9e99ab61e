package Trees

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// The child links of a node in the arena.
// The zero value is meaningful: index 0 is the shared empty sentinel, whose
// links stay 0 forever.
type link[S constraints.Unsigned] struct {
	l, r S
}

// addFree pushes slot a onto the free list, which is threaded through
// link.l. The slot's value (and key) are zeroed so removed elements aren't
// retained by the arena.
func (u *SortedTree[T, K, S]) addFree(a S) {
	u.ifs[a] = link[S]{l: u.free}
	u.vs[a-1] = *new(T)
	if u.ks != nil {
		u.ks[a-1] = *new(K)
	}
	u.free = a
}

// popFree removes one index from the free list. Returns 0 when there's no
// free index (u.free==0 reads the sentinel, whose l is 0).
func (u *SortedTree[T, K, S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].l
	return b
}

// alloc claims a slot for (v, k), filling free-list holes before growing
// the arena, and returns its index. Callers must link the index into the
// tree themselves, after alloc, since growing may move the arrays.
func (u *SortedTree[T, K, S]) alloc(v T, k K) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = link[S]{}
		u.vs[i-1] = v
		if u.ks != nil {
			u.ks[i-1] = k
		}
		return i
	}
	u.ifs = append(u.ifs, link[S]{})
	u.vs = append(u.vs, v)
	if u.ks != nil {
		u.ks = append(u.ks, k)
	}
	return S(len(u.ifs) - 1)
}

// mid is equivalent to (a+b)/2 for a<=b but can't overflow.
func mid[S constraints.Unsigned](a, b S) S {
	return a + (b-a)>>1
}

// buildLinks lays a complete binary tree over arena slots 1..n, where slot
// order equals in-order position. Returns the root and the link array
// (with the sentinel at 0).
func buildLinks[S constraints.Unsigned](n S) (root S, ifs []link[S]) {
	ifs = make([]link[S], n+1)
	if n == 0 {
		return
	}
	st := make([][3]S, 0, bits.Len64(uint64(n))) //[first,last,mid]
	root = mid(S(1), n)
	st = append(st, [3]S{1, n, root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] < top[2] {
			last := top[2] - 1
			ifs[top[2]].l = mid(top[0], last)
			st = append(st, [3]S{top[0], last, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			first := top[2] + 1
			ifs[top[2]].r = mid(first, top[1])
			st = append(st, [3]S{first, top[1], ifs[top[2]].r})
		}
	}
	return
}
