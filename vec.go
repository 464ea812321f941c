package necs

import "unsafe"

// zeroSized backs every slot of a zero-size element, so pointers handed out
// for tag-style components are never nil.
var zeroSized struct{}

// Vec is a dynamic array of fixed-size, type-erased elements.
//
// Elements live in one contiguous block, stored densely and indexed from 0
// to Len()-1. The element size is fixed at construction and Vec never
// interprets the bytes it stores; callers read and write slots through the
// unsafe.Pointer values it returns. Every returned pointer is valid only
// until the next mutating call (Append, Reserve, Remove), which may
// relocate the buffer.
type Vec struct {
	data     []byte
	elemSize uintptr
	count    uint32
	cap      uint32
}

// NewVec creates a vector for elements of the given size in bytes.
// An initial capacity of zero is legal; allocation is deferred until the
// first growth. Zero-size elements are supported.
func NewVec(elementSize uintptr, initialCap uint32) Vec {
	v := Vec{elemSize: elementSize}
	if initialCap > 0 {
		v.data = make([]byte, uintptr(initialCap)*elementSize)
		v.cap = initialCap
	}
	return v
}

// Reserve grows the capacity to exactly newCap, copying the live elements
// into the new buffer. It is a no-op when newCap does not exceed the
// current capacity; Vec never shrinks.
func (v *Vec) Reserve(newCap uint32) {
	if newCap <= v.cap {
		return
	}
	buf := make([]byte, uintptr(newCap)*v.elemSize)
	copy(buf, v.data[:uintptr(v.count)*v.elemSize])
	v.data = buf
	v.cap = newCap
}

// Clear resets the element count to zero. Capacity and buffer contents are
// untouched, so the allocation is reused by later appends.
func (v *Vec) Clear() {
	v.count = 0
}

// Append creates one new element at the end of the vector and returns a
// pointer to its uninitialized storage. When the vector is full the
// capacity doubles (minimum 1), so repeated appends are amortized O(1).
func (v *Vec) Append() unsafe.Pointer {
	if v.count == v.cap {
		newCap := v.cap * 2
		if newCap == 0 {
			newCap = 1
		}
		v.Reserve(newCap)
	}
	idx := v.count
	v.count++
	return v.ptrAt(idx)
}

// Data returns the base pointer of the live region, or nil when no buffer
// has been allocated.
func (v *Vec) Data() unsafe.Pointer {
	if len(v.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&v.data[0])
}

// Get returns a pointer to the element at index. The index must be below
// Len(); release builds do not check it against the live count.
func (v *Vec) Get(index uint32) unsafe.Pointer {
	if debugChecks && index >= v.count {
		panic("necs: vec index out of range")
	}
	return v.ptrAt(index)
}

// GetLast returns a pointer to the last element. The vector must not be
// empty.
func (v *Vec) GetLast() unsafe.Pointer {
	if debugChecks && v.count == 0 {
		panic("necs: vec is empty")
	}
	return v.ptrAt(v.count - 1)
}

// Remove deletes the element at index by overwriting it with the last
// element and shrinking the count by one. O(1), does not preserve order.
func (v *Vec) Remove(index uint32) {
	if debugChecks && index >= v.count {
		panic("necs: vec index out of range")
	}
	last := v.count - 1
	if index != last {
		memCopy(v.ptrAt(index), v.ptrAt(last), v.elemSize)
	}
	v.count = last
}

// Len returns the number of live elements.
func (v *Vec) Len() uint32 {
	return v.count
}

// Cap returns the number of allocated element slots.
func (v *Vec) Cap() uint32 {
	return v.cap
}

// ElementSize returns the fixed per-element size in bytes.
func (v *Vec) ElementSize() uintptr {
	return v.elemSize
}

func (v *Vec) ptrAt(index uint32) unsafe.Pointer {
	if v.elemSize == 0 {
		return unsafe.Pointer(&zeroSized)
	}
	return unsafe.Pointer(&v.data[uintptr(index)*v.elemSize])
}
