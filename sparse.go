// Package necs implements the type-erased storage substrate for an
// Entity-Component-System: a growable contiguous buffer (Vec) and a sparse
// set (SparseSet) that maps entity ids to densely packed component slots.
//
// Features:
// - Type-erased storage: components are fixed-size byte blocks.
// - O(1) add, lookup and remove via sparse-to-dense index translation.
// - Swap-remove keeps live components contiguous for cache-friendly iteration.
// - Unsafe pointers for zero-GC overhead on the hot path.
// - Generic Pool API layered on top for type-safe access.
//
// The package is deliberately oblivious to everything above it: entity id
// allocation and recycling, queries across component types and system
// scheduling belong to the caller. Nothing here is safe for concurrent
// mutation without external synchronization.
package necs

import "unsafe"

// Tombstone is the sparse slot value marking "no component for this id".
const Tombstone = ^uint32(0)

const entitySize = unsafe.Sizeof(Entity(0))

// SparseSet maps sparse entity ids to densely packed component storage.
//
// Components live in a dense Vec with a parallel Vec of owning entity ids,
// so iteration touches only live data. A fixed-length sparse array, indexed
// by entity id, translates ids into dense positions; absent ids hold the
// Tombstone sentinel. The sparse capacity is fixed at construction and
// bounds the ids the set can represent.
//
// Pointers returned by Add, Get and ComponentAt are invalidated by any
// subsequent mutating call on the same set.
type SparseSet struct {
	components Vec      // component bytes, one slot per live entity
	entities   Vec      // owning Entity per dense slot, parallel to components
	sparse     []uint32 // entity id -> dense index, Tombstone when absent
	count      uint32
}

// NewSparseSet creates a sparse set for components of the given size in
// bytes, able to hold ids in [0, sparseCap). The dense buffers start empty
// and grow on demand; the sparse array is allocated once, fully
// tombstoned.
func NewSparseSet(elementSize uintptr, sparseCap uint32) SparseSet {
	s := SparseSet{
		components: NewVec(elementSize, 0),
		entities:   NewVec(entitySize, 0),
		sparse:     make([]uint32, sparseCap),
	}
	for i := range s.sparse {
		s.sparse[i] = Tombstone
	}
	return s
}

// Has reports whether the entity currently holds a component. Ids at or
// above the sparse capacity are never present. O(1), no mutation.
func (s *SparseSet) Has(e Entity) bool {
	return uint32(e) < uint32(len(s.sparse)) && s.sparse[e] != Tombstone
}

// Add creates a component slot for the entity and returns a pointer to its
// uninitialized storage for the caller to populate. It returns nil when
// the entity already holds a component; Add never overwrites. The id must
// be below SparseCap.
func (s *SparseSet) Add(e Entity) unsafe.Pointer {
	slot := &s.sparse[e]
	if *slot != Tombstone {
		return nil
	}
	ptr := s.components.Append()
	*(*Entity)(s.entities.Append()) = e
	*slot = s.count
	s.count++
	if debugChecks && s.components.Len() != s.entities.Len() {
		panic("necs: dense arrays out of lockstep")
	}
	return ptr
}

// Get returns a pointer to the entity's component, or nil when the entity
// holds none.
func (s *SparseSet) Get(e Entity) unsafe.Pointer {
	if !s.Has(e) {
		return nil
	}
	return s.components.Get(s.sparse[e])
}

// Remove deletes the entity's component. Removing an absent entity is a
// no-op, so Remove is idempotent.
//
// When the removed slot is not the last one, the last dense entry is about
// to be relocated into it by the swap-remove; that entity's sparse mapping
// is rewritten first so the sparse and dense views stay consistent. Both
// dense arrays shrink together.
func (s *SparseSet) Remove(e Entity) {
	if !s.Has(e) {
		return
	}
	idx := s.sparse[e]
	last := s.count - 1
	if idx != last {
		moved := *(*Entity)(s.entities.Get(last))
		s.sparse[moved] = idx
	}
	s.components.Remove(idx)
	s.entities.Remove(idx)
	s.sparse[e] = Tombstone
	s.count = last
}

// ComponentAt returns a pointer to the component at the given dense index.
// Use together with EntityAt to iterate all live components in dense order
// without translating ids. The index must be below Count.
func (s *SparseSet) ComponentAt(index uint32) unsafe.Pointer {
	return s.components.Get(index)
}

// EntityAt returns the entity owning the dense slot at index. The index
// must be below Count.
func (s *SparseSet) EntityAt(index uint32) Entity {
	return *(*Entity)(s.entities.Get(index))
}

// Count returns the number of live entries.
func (s *SparseSet) Count() uint32 {
	return s.count
}

// SparseCap returns the fixed upper bound on representable entity ids.
func (s *SparseSet) SparseCap() uint32 {
	return uint32(len(s.sparse))
}

// Clear removes every entry while retaining the allocated capacity of both
// dense buffers. Only the mappings of live entities are tombstoned, so the
// reset costs O(count), not O(sparse capacity).
func (s *SparseSet) Clear() {
	for i := uint32(0); i < s.count; i++ {
		s.sparse[s.EntityAt(i)] = Tombstone
	}
	s.components.Clear()
	s.entities.Clear()
	s.count = 0
}
