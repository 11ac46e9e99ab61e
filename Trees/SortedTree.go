package Trees

import (
	"cmp"
	"github.com/orderedcol/go-utils/Queues"
	"golang.org/x/exp/constraints"
)

// SortedTree is an unbalanced binary search tree holding an ordered
// multiset of T positioned by sort keys of type K. Nodes live in an index
// arena: index 0 is the empty sentinel, node i has links ifs[i] and value
// vs[i-1], and removed slots are recycled through an intrusive free list.
// Indexes are stable: no operation moves a live node to another slot.
// S is the index type; pick one wide enough for the maximum size the tree
// can reach, plus one for the sentinel.
// Since no rebalancing is ever performed, the depth D is O(log n) only in
// expectation over random insertion orders and degrades to O(n) for sorted
// insertion. Every operation is bounded by O(D) and runs synchronously on
// the caller's goroutine.
type SortedTree[T any, K cmp.Ordered, S constraints.Unsigned] struct {
	ifs   []link[S] // ifs[0] is the sentinel. len(ifs)=arena size+1.
	vs    []T       // vs[i-1] is the value of node i.
	ks    []K       // extracted sort keys, parallel to vs; nil when self keyed.
	root  S
	free  S // head of the free list threaded through link.l.
	len   S
	keyFn func(T) K
}

var _ Sorted[int, int] = (*SortedTree[int, int, uint32])(nil)

// New returns an empty tree ordered by the values themselves, with room
// for hint elements before the arena grows.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *SortedTree[T, T, S] {
	return &SortedTree[T, T, S]{ifs: make([]link[S], 1, hint+1), vs: make([]T, 0, hint), keyFn: func(v T) T { return v }}
}

// NewKeyed returns an empty tree ordered by key(v). key must be pure: a
// value's sort key is extracted once, on Insert, and cached for its
// lifetime in the tree.
func NewKeyed[T any, K cmp.Ordered, S constraints.Unsigned](key func(T) K, hint S) *SortedTree[T, K, S] {
	return &SortedTree[T, K, S]{ifs: make([]link[S], 1, hint+1), vs: make([]T, 0, hint), ks: make([]K, 0, hint), keyFn: key}
}

// From directly builds a self-keyed tree of minimum depth from a strictly
// ascending slice in O(n). The slice is handed to the tree and mustn't be
// modified by the caller later. If safe==true the ordering precondition is
// checked first and violations panic with UnsortedSliceError; set it to
// false when the input is known good to skip the scan.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, safe bool) *SortedTree[T, T, S] {
	if safe {
		for i := 1; i < len(vs); i++ {
			if vs[i] <= vs[i-1] {
				panic(UnsortedSliceError[T]{vs[i-1], vs[i]})
			}
		}
	}
	root, ifs := buildLinks[S](S(len(vs)))
	return &SortedTree[T, T, S]{ifs: ifs, vs: vs, root: root, len: S(len(vs)), keyFn: func(v T) T { return v }}
}

// key of node i. Self-keyed trees read the value directly instead of a
// stored copy.
func (u *SortedTree[T, K, S]) key(i S) K {
	if u.ks == nil {
		return u.keyFn(u.vs[i-1])
	}
	return u.ks[i-1]
}

// Insert [Sorted.Insert]. Walks down to the first empty slot: strictly
// smaller keys go left, everything else (duplicates included) goes right.
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Insert(v T) {
	k := u.keyFn(v)
	ni := u.alloc(v, k)
	slot := &u.root
	for *slot != 0 {
		if k < u.key(*slot) {
			slot = &u.ifs[*slot].l
		} else {
			slot = &u.ifs[*slot].r
		}
	}
	*slot = ni
	u.len++
}

// extreme walks down one fixed side from the root: left yields the node
// with the minimum key, right the maximum. Returns 0 on an empty tree.
func (u *SortedTree[T, K, S]) extreme(right bool) S {
	cur := u.root
	if right {
		for cur != 0 && u.ifs[cur].r != 0 {
			cur = u.ifs[cur].r
		}
	} else {
		for cur != 0 && u.ifs[cur].l != 0 {
			cur = u.ifs[cur].l
		}
	}
	return cur
}

// Minimum [Sorted.Minimum]. Which of several equal-key minimums is
// returned is unspecified but deterministic for a fixed tree shape.
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Minimum() (T, error) {
	if cur := u.extreme(false); cur != 0 {
		return u.vs[cur-1], nil
	}
	return *new(T), ErrEmpty
}

// Maximum [Sorted.Maximum]
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Maximum() (T, error) {
	if cur := u.extreme(true); cur != 0 {
		return u.vs[cur-1], nil
	}
	return *new(T), ErrEmpty
}

// Find [Sorted.Find]. Returns the first equal node on the descent path,
// which isn't necessarily the first-inserted one among duplicates.
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Find(k K) (T, error) {
	for cur := u.root; cur != 0; {
		if nk := u.key(cur); k < nk {
			cur = u.ifs[cur].l
		} else if k > nk {
			cur = u.ifs[cur].r
		} else {
			return u.vs[cur-1], nil
		}
	}
	return *new(T), KeyNotFoundError[K]{k}
}

// Has [Sorted.Has]
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Has(k K) bool {
	for cur := u.root; cur != 0; {
		if nk := u.key(cur); k < nk {
			cur = u.ifs[cur].l
		} else if k > nk {
			cur = u.ifs[cur].r
		} else {
			return true
		}
	}
	return false
}

// removeAt splices the node in *slot out of the tree. slot points at the
// child field (or root) holding the node's index, so rewriting it keeps
// the former parent seeing a valid subtree without any parent links.
// With two children the node instead receives its in-order successor's
// value and key, and the successor (which has no left child) is spliced
// out of the right subtree; that case can't recurse.
func (u *SortedTree[T, K, S]) removeAt(slot *S) {
	n := *slot
	if u.ifs[n].l == 0 {
		r := u.ifs[n].r
		u.addFree(n)
		*slot = r
	} else if u.ifs[n].r == 0 {
		l := u.ifs[n].l
		u.addFree(n)
		*slot = l
	} else {
		si := &u.ifs[n].r
		for u.ifs[*si].l != 0 {
			si = &u.ifs[*si].l
		}
		s := *si
		u.vs[n-1] = u.vs[s-1]
		if u.ks != nil {
			u.ks[n-1] = u.ks[s-1]
		}
		r := u.ifs[s].r
		u.addFree(s)
		*si = r
	}
	u.len--
}

// Pop [Sorted.Pop]. Which of several equal-key values is removed is
// unspecified; exactly one is.
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Pop(k K) (T, error) {
	for slot := &u.root; *slot != 0; {
		if nk := u.key(*slot); k < nk {
			slot = &u.ifs[*slot].l
		} else if k > nk {
			slot = &u.ifs[*slot].r
		} else {
			v := u.vs[*slot-1]
			u.removeAt(slot)
			return v, nil
		}
	}
	return *new(T), KeyNotFoundError[K]{k}
}

// PopMin [Sorted.PopMin]
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) PopMin() (T, error) {
	if u.root == 0 {
		return *new(T), ErrEmpty
	}
	slot := &u.root
	for u.ifs[*slot].l != 0 {
		slot = &u.ifs[*slot].l
	}
	v := u.vs[*slot-1]
	u.removeAt(slot)
	return v, nil
}

// PopMax [Sorted.PopMax]
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) PopMax() (T, error) {
	if u.root == 0 {
		return *new(T), ErrEmpty
	}
	slot := &u.root
	for u.ifs[*slot].r != 0 {
		slot = &u.ifs[*slot].r
	}
	v := u.vs[*slot-1]
	u.removeAt(slot)
	return v, nil
}

// Predecessor [Sorted.Predecessor]
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Predecessor(k K) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if k <= u.key(cur) {
			cur = u.ifs[cur].l
		} else {
			p = cur
			cur = u.ifs[cur].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.vs[p-1], true
}

// Successor [Sorted.Successor]
// Time: O(D); Space: O(1)
func (u *SortedTree[T, K, S]) Successor(k K) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if k < u.key(cur) {
			p = cur
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.vs[p-1], true
}

// InOrder calls f on each value in ascending key order until f returns
// false. st is an optional stack buffer reused across the traversal (and
// returned for reuse by later calls); nil allocates as needed. The tree
// mustn't be modified during the traversal.
// Time: O(n); Space: O(D)
func (u *SortedTree[T, K, S]) InOrder(f func(*T) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(&u.vs[curI-1]) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// InOrderR is InOrder in descending key order.
// Time: O(n); Space: O(D)
func (u *SortedTree[T, K, S]) InOrderR(f func(*T) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].r {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(&u.vs[curI-1]) {
			break
		}
		for curI = u.ifs[curI].l; curI != 0; curI = u.ifs[curI].r {
			st = append(st, curI)
		}
	}
	return st
}

// Values [Sorted.Values]
// Time: f(): amortized O(1) at each call to the returned function.
// Space: O(D) held by the closure.
func (u *SortedTree[T, K, S]) Values(reverse bool) func() (T, bool) {
	var st []S
	push := func(i S) {
		if reverse {
			for ; i != 0; i = u.ifs[i].r {
				st = append(st, i)
			}
		} else {
			for ; i != 0; i = u.ifs[i].l {
				st = append(st, i)
			}
		}
	}
	push(u.root)
	return func() (T, bool) {
		if len(st) == 0 {
			return *new(T), false
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if reverse {
			push(u.ifs[cur].l)
		} else {
			push(u.ifs[cur].r)
		}
		return u.vs[cur-1], true
	}
}

// LevelOrder calls f on each value in breadth-first order, top level first,
// until f returns false. Mostly useful for diagnostics; the order within a
// level is left to right.
// Time: O(n); Space: O(n)
func (u *SortedTree[T, K, S]) LevelOrder(f func(*T) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeRing[S](uint(u.len)/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		if !f(&u.vs[cur-1]) {
			return
		}
		if u.ifs[cur].l != 0 {
			q.Push(u.ifs[cur].l)
		}
		if u.ifs[cur].r != 0 {
			q.Push(u.ifs[cur].r)
		}
	}
}

// Size [Sorted.Size]
// Time: O(1)
func (u *SortedTree[T, K, S]) Size() uint {
	return uint(u.len)
}

// Clear [Sorted.Clear]. O(1); keeps the underlying arrays.
func (u *SortedTree[T, K, S]) Clear() {
	u.ifs = u.ifs[:1]
	u.vs = u.vs[:0]
	u.ks = u.ks[:0]
	u.root, u.free, u.len = 0, 0, 0
}

// Corrupt [Sorted.Corrupt]. Checks recursively that within every subtree
// the left keys are strictly less than the node's key and the right keys
// greater or equal, against the tight ancestor bounds.
// Time: O(n); Space: O(D)
func (u *SortedTree[T, K, S]) Corrupt() bool {
	var walk func(i S, lo, hi *K) bool
	walk = func(i S, lo, hi *K) bool {
		if i == 0 {
			return false
		}
		k := u.key(i)
		if lo != nil && k < *lo {
			return true
		}
		if hi != nil && k >= *hi {
			return true
		}
		return walk(u.ifs[i].l, lo, &k) || walk(u.ifs[i].r, &k, hi)
	}
	return walk(u.root, nil, nil)
}
