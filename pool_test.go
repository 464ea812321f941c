package necs_test

import (
	"testing"

	"github.com/edwinsyarief/necs"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Health struct{ Current, Max int32 }
type Tag struct{}

// --- Tests ---

// go test -run ^TestPoolAddGet$ . -count 1
func TestPoolAddGet(t *testing.T) {
	pool := necs.NewPool[Position](128)

	p := pool.Add(7)
	if p == nil {
		t.Fatal("Add returned nil for a fresh entity")
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("Expected zero-value component, got %+v", *p)
	}
	p.X = 10
	p.Y = 20

	got := pool.Get(7)
	if got == nil {
		t.Fatal("Get returned nil for a present entity")
	}
	if got.X != 10 || got.Y != 20 {
		t.Errorf("Expected {10 20}, got %+v", *got)
	}
	if pool.Get(8) != nil {
		t.Error("Expected Get on an absent entity to return nil")
	}
}

// go test -run ^TestPoolAddDuplicate$ . -count 1
func TestPoolAddDuplicate(t *testing.T) {
	pool := necs.NewPool[Health](32)
	h := pool.Add(3)
	h.Current = 50
	h.Max = 100

	if dup := pool.Add(3); dup != nil {
		t.Error("Expected duplicate Add to return nil")
	}
	got := pool.Get(3)
	if got.Current != 50 || got.Max != 100 {
		t.Errorf("Expected existing component untouched, got %+v", *got)
	}
}

// go test -run ^TestPoolSetUpserts$ . -count 1
func TestPoolSetUpserts(t *testing.T) {
	pool := necs.NewPool[Health](32)

	pool.Set(5, Health{Current: 10, Max: 10})
	if !pool.Has(5) {
		t.Fatal("Expected Set to add the component")
	}
	pool.Set(5, Health{Current: 3, Max: 10})
	if pool.Count() != 1 {
		t.Errorf("Expected count 1 after upsert, got %d", pool.Count())
	}
	if got := pool.Get(5); got.Current != 3 {
		t.Errorf("Expected Current 3 after upsert, got %d", got.Current)
	}
}

// go test -run ^TestPoolRemove$ . -count 1
func TestPoolRemove(t *testing.T) {
	pool := necs.NewPool[Position](32)
	pool.Set(1, Position{X: 1})
	pool.Set(2, Position{X: 2})
	pool.Set(3, Position{X: 3})

	pool.Remove(2)
	if pool.Has(2) {
		t.Error("Expected Has(2) to be false after remove")
	}
	if pool.Count() != 2 {
		t.Errorf("Expected count 2, got %d", pool.Count())
	}
	if got := pool.Get(3); got == nil || got.X != 3 {
		t.Error("Expected entity 3 to survive removal of entity 2")
	}
	pool.Remove(2) // idempotent
	if pool.Count() != 2 {
		t.Errorf("Expected count to stay 2, got %d", pool.Count())
	}
}

// go test -run ^TestPoolIter$ . -count 1
func TestPoolIter(t *testing.T) {
	pool := necs.NewPool[Health](64)
	var wantSum int32
	for e := necs.Entity(0); e < 20; e++ {
		pool.Set(e, Health{Current: int32(e), Max: 100})
		wantSum += int32(e)
	}

	var sum int32
	var visited int
	it := pool.Iter()
	for it.Next() {
		h := it.Get()
		if h.Max != 100 {
			t.Fatalf("Expected Max 100 for entity %d, got %d", it.Entity(), h.Max)
		}
		if h.Current != int32(it.Entity()) {
			t.Fatalf("Expected entity %d to hold its own id, got %d", it.Entity(), h.Current)
		}
		sum += h.Current
		visited++
	}
	if visited != 20 {
		t.Errorf("Expected 20 components visited, got %d", visited)
	}
	if sum != wantSum {
		t.Errorf("Expected sum %d, got %d", wantSum, sum)
	}

	// Reset rewinds for reuse.
	it.Reset()
	visited = 0
	for it.Next() {
		visited++
	}
	if visited != 20 {
		t.Errorf("Expected 20 components after reset, got %d", visited)
	}
}

// go test -run ^TestPoolTagComponents$ . -count 1
func TestPoolTagComponents(t *testing.T) {
	pool := necs.NewPool[Tag](16)
	for e := necs.Entity(0); e < 16; e++ {
		if pool.Add(e) == nil {
			t.Fatalf("Add returned nil for tag entity %d", e)
		}
	}
	if pool.Count() != 16 {
		t.Errorf("Expected count 16, got %d", pool.Count())
	}
	pool.Remove(9)
	if pool.Has(9) {
		t.Error("Expected Has(9) to be false after remove")
	}
	if pool.Count() != 15 {
		t.Errorf("Expected count 15, got %d", pool.Count())
	}
}

// go test -run ^TestPoolRaw$ . -count 1
func TestPoolRaw(t *testing.T) {
	pool := necs.NewPool[Position](8)
	pool.Set(2, Position{X: 4})

	raw := pool.Raw()
	if raw.Count() != 1 {
		t.Errorf("Expected raw count 1, got %d", raw.Count())
	}
	if !raw.Has(2) {
		t.Error("Expected raw set to see entity 2")
	}
	if raw.SparseCap() != 8 {
		t.Errorf("Expected raw sparse capacity 8, got %d", raw.SparseCap())
	}
}
