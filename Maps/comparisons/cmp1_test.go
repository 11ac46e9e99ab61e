package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/orderedcol/go-utils/Maps/TreeMap"
)

// compares with https://github.com/cornelk/hashmap and
// https://github.com/alphadose/haxmap using the shape of
// https://github.com/cornelk/hashmap/blob/main/benchmarks/benchmark_test.go,
// plus https://github.com/emirpasic/gods/tree/master/maps/treemap as the
// ordered reference. The hash maps don't keep key order and shard for
// concurrency; the interesting number is the price TreeMap pays for ordered
// iteration on plain lookups.
const benchmarkItemCount = 1024

func setupTreeMap(b *testing.B) *TreeMap.TreeMap[uintptr, uintptr] {
	b.Helper()
	m := TreeMap.New[uintptr, uintptr](benchmarkItemCount)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

func setupGodsMap(b *testing.B) *treemap.Map {
	b.Helper()
	m := treemap.NewWithIntComparator()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func Benchmark1ReadTreeMap(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for it0 := 0; it0 < b.N; it0++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadGodsMap(b *testing.B) {
	m := setupGodsMap(b)
	b.ResetTimer()
	for it1 := 0; it1 < b.N; it1++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, ok := m.Get(i); !ok || j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				if j, _ := m.Get(i); j != i {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark1ReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				if j, _ := m.Get(i); j != i {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark2WriteTreeMap(b *testing.B) {
	for it2 := 0; it2 < b.N; it2++ {
		m := TreeMap.New[uintptr, uintptr](benchmarkItemCount)
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Put(i, i)
		}
	}
}

func Benchmark2WriteGodsMap(b *testing.B) {
	for it3 := 0; it3 < b.N; it3++ {
		m := treemap.NewWithIntComparator()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Put(i, i)
		}
	}
}

func Benchmark2WriteHashMap(b *testing.B) {
	for it4 := 0; it4 < b.N; it4++ {
		m := hashmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark2WriteHaxMap(b *testing.B) {
	for it5 := 0; it5 < b.N; it5++ {
		m := haxmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}
