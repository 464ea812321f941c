package necs

import "unsafe"

// Pool is a typed view over a SparseSet storing components of type T.
//
// It is the bounds-checked convenience layer: absent entities surface as
// nil pointers instead of contract violations, and component bytes are
// read and written as T values. One Pool per component type is the
// expected shape for an ECS built on this package.
//
// Pointers returned by Add, Get and At follow the same rule as the raw
// layer: valid only until the next mutating call on the same pool.
type Pool[T any] struct {
	set SparseSet
}

// NewPool creates a pool for components of type T holding ids in
// [0, sparseCap).
func NewPool[T any](sparseCap uint32) *Pool[T] {
	var zero T
	return &Pool[T]{set: NewSparseSet(unsafe.Sizeof(zero), sparseCap)}
}

// Add creates the entity's component and returns a pointer to its zero-value
// storage, or nil if the entity already has one.
func (p *Pool[T]) Add(e Entity) *T {
	ptr := p.set.Add(e)
	if ptr == nil {
		return nil
	}
	t := (*T)(ptr)
	var zero T
	*t = zero
	return t
}

// Get returns a pointer to the entity's component, or nil if not present.
func (p *Pool[T]) Get(e Entity) *T {
	return (*T)(p.set.Get(e))
}

// Set stores val as the entity's component, adding it if not present.
func (p *Pool[T]) Set(e Entity, val T) {
	ptr := p.set.Get(e)
	if ptr == nil {
		ptr = p.set.Add(e)
	}
	*(*T)(ptr) = val
}

// Has reports whether the entity currently holds a component.
func (p *Pool[T]) Has(e Entity) bool {
	return p.set.Has(e)
}

// Remove deletes the entity's component. Removing an absent entity is a
// no-op.
func (p *Pool[T]) Remove(e Entity) {
	p.set.Remove(e)
}

// Count returns the number of live components.
func (p *Pool[T]) Count() uint32 {
	return p.set.Count()
}

// At returns a pointer to the component at the given dense index.
func (p *Pool[T]) At(index uint32) *T {
	return (*T)(p.set.ComponentAt(index))
}

// EntityAt returns the entity owning the dense slot at index.
func (p *Pool[T]) EntityAt(index uint32) Entity {
	return p.set.EntityAt(index)
}

// Clear removes every component while retaining allocated capacity.
func (p *Pool[T]) Clear() {
	p.set.Clear()
}

// Raw exposes the underlying SparseSet for callers that need the
// type-erased surface.
func (p *Pool[T]) Raw() *SparseSet {
	return &p.set
}

// Iter returns an iterator over the pool's components in dense order.
func (p *Pool[T]) Iter() PoolIter[T] {
	return PoolIter[T]{pool: p, index: -1}
}

// PoolIter walks a pool's live components in dense, cache-friendly order.
// The order is unspecified and changes on removal. Mutating the pool while
// iterating invalidates the iterator.
type PoolIter[T any] struct {
	pool  *Pool[T]
	index int
}

// Reset rewinds the iterator for reuse.
func (self *PoolIter[T]) Reset() {
	self.index = -1
}

// Next advances to the next component. Returns false if no more remain.
func (self *PoolIter[T]) Next() bool {
	self.index++
	return self.index < int(self.pool.Count())
}

// Entity returns the entity owning the current component.
func (self *PoolIter[T]) Entity() Entity {
	return self.pool.EntityAt(uint32(self.index))
}

// Get returns a pointer to the current component.
func (self *PoolIter[T]) Get() *T {
	return self.pool.At(uint32(self.index))
}
