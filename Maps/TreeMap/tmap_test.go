package TreeMap

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const tAddN = 5000

func TestTreeMap_PutGet(t *testing.T) {
	m := New[int, int](16)
	content := make(map[int]int)
	for it0 := 0; it0 < tAddN; it0++ {
		k, v := rg.Intn(tAddN/2), rg.Int()
		old := m.Put(k, v)
		if prev, in := content[k]; in && old != prev {
			t.Fatalf("put %v returned old value %v, want %v", k, old, prev)
		}
		content[k] = v
	}
	if int(m.Size()) != len(content) {
		t.Errorf("map size is %d, want %d", m.Size(), len(content))
	}
	for k, v := range content {
		if !m.HasKey(k) {
			t.Errorf("map does not have key %v", k)
		}
		if m.Get(k) != v {
			t.Errorf("get %v returned %v, want %v", k, m.Get(k), v)
		}
	}
	if m.HasKey(tAddN) {
		t.Error("map has a key that was never put")
	}
}

func TestTreeMap_Remove(t *testing.T) {
	m := New[int, int](16)
	for i := 0; i < 100; i++ {
		m.Put(i, i*10)
	}
	for i := 0; i < 100; i += 2 {
		if !m.Remove(i) {
			t.Fatalf("remove %v failed", i)
		}
		if m.Remove(i) {
			t.Fatalf("removed %v twice", i)
		}
	}
	if m.Size() != 50 {
		t.Fatalf("map size is %d, want 50", m.Size())
	}
	for i := 0; i < 100; i++ {
		if m.HasKey(i) != (i%2 == 1) {
			t.Errorf("wrong membership for %v", i)
		}
	}
}

func TestTreeMap_Ordered(t *testing.T) {
	m := New[int, int](16)
	a := rg.Perm(tAddN)
	for _, k := range a {
		m.Put(k, -k)
	}
	var ks []int
	for f := m.Keys(); ; {
		k, ok := f()
		if !ok {
			break
		}
		ks = append(ks, k)
	}
	if len(ks) != tAddN || !slices.IsSorted(ks) {
		t.Fatal("keys are not ascending")
	}
	prev := -1
	for f := m.Pairs(); ; {
		k, v, ok := f()
		if !ok {
			break
		}
		if k <= prev {
			t.Fatal("pairs are not ascending")
		}
		if v != -k {
			t.Fatalf("pair (%v, %v) mismatched", k, v)
		}
		prev = k
	}
	var rs []int
	for f := m.PairsR(); ; {
		k, _, ok := f()
		if !ok {
			break
		}
		rs = append(rs, k)
	}
	if slices.Reverse(rs); !slices.Equal(rs, ks) {
		t.Fatal("descending pairs differ from ascending keys")
	}
}

func TestTreeMap_MinMaxTake(t *testing.T) {
	m := New[int, string](4)
	if _, _, err := m.Min(); err == nil {
		t.Error("min on empty map didn't fail")
	}
	m.Put(2, "b")
	m.Put(1, "a")
	m.Put(3, "c")
	if k, v, err := m.Min(); err != nil || k != 1 || v != "a" {
		t.Errorf("min returned (%v, %v, %v)", k, v, err)
	}
	if k, v, err := m.Max(); err != nil || k != 3 || v != "c" {
		t.Errorf("max returned (%v, %v, %v)", k, v, err)
	}
	if k, v := m.Take(); k != 1 || v != "a" {
		t.Errorf("take returned (%v, %v)", k, v)
	}
	if m.Size() != 2 || m.HasKey(1) {
		t.Error("take didn't remove the minimum")
	}
}
