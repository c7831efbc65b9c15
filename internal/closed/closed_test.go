package closed_test

import (
	"testing"

	"github.com/katalvlaran/heurisearch/internal/closed"
)

type rec struct {
	key string
	val int
}

func fnv1a(s string) uint64 {
	var h uint64 = 1469598103934665603
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

func newTable() *closed.Table[rec, string] {
	return closed.New[rec, string](fnv1a, func(a, b string) bool { return a == b }, func(r rec) string { return r.key })
}

func TestClosed_AddFind(t *testing.T) {
	tbl := newTable()
	tbl.Add(rec{key: "a", val: 1})
	tbl.Add(rec{key: "b", val: 2})

	got, ok := tbl.Find("a")
	if !ok || got.val != 1 {
		t.Fatalf("Find(a) = %+v, %v", got, ok)
	}
	if _, ok := tbl.Find("missing"); ok {
		t.Fatal("Find(missing) unexpectedly found a record")
	}
}

func TestClosed_Uniqueness(t *testing.T) {
	tbl := newTable()
	for i := 0; i < 500; i++ {
		key := string(rune('a' + i%26))
		if _, ok := tbl.Find(key); !ok {
			tbl.Add(rec{key: key, val: i})
		}
	}
	if tbl.Len() != 26 {
		t.Fatalf("Len() = %d, want 26", tbl.Len())
	}
}

func TestClosed_Remove(t *testing.T) {
	tbl := newTable()
	tbl.Add(rec{key: "x", val: 9})
	if !tbl.Remove("x") {
		t.Fatal("Remove(x) reported false")
	}
	if _, ok := tbl.Find("x"); ok {
		t.Fatal("x still present after Remove")
	}
	if tbl.Remove("x") {
		t.Fatal("second Remove(x) reported true")
	}
}

func TestClosed_Clear(t *testing.T) {
	tbl := newTable()
	for i := 0; i < 10; i++ {
		tbl.Add(rec{key: string(rune('a' + i)), val: i})
	}
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", tbl.Len())
	}
	if _, ok := tbl.Find("a"); ok {
		t.Fatal("entry survived Clear")
	}
}

func TestClosed_GrowsAndStillFinds(t *testing.T) {
	tbl := newTable()
	const n = 2000
	for i := 0; i < n; i++ {
		key := randKey(i)
		tbl.Add(rec{key: key, val: i})
	}
	if tbl.Len() != n {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), n)
	}
	for i := 0; i < n; i++ {
		key := randKey(i)
		got, ok := tbl.Find(key)
		if !ok || got.val != i {
			t.Fatalf("Find(%q) = %+v, %v; want val %d", key, got, ok, i)
		}
	}
}

func randKey(i int) string {
	b := make([]byte, 0, 8)
	for i > 0 || len(b) == 0 {
		b = append(b, byte('a'+i%26))
		i /= 26
	}
	return string(b)
}
