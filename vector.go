package vec

import (
	"fmt"

	"github.com/baxromumarov/vec/rawbuf"
)

// Vector is a contiguous, growable sequence of elements of type T.
// The zero value is an empty, ready-to-use vector.
//
// Live elements occupy the first [Vector.Len] slots of the underlying
// storage; the remaining slots up to [Vector.Cap] are dead. Appending
// past the capacity reallocates with doubling growth, so a run of
// appends costs amortized O(1) each.
//
// A Vector owns its storage exclusively. Like [bytes.Buffer], a
// Vector must not be copied by assignment after first use; duplicate
// with [Vector.Clone] and transfer with [Vector.MoveFrom] or
// [Vector.Swap] instead.
//
// A Vector is not safe for concurrent use. Callers that share one
// across goroutines must synchronize externally.
type Vector[T any] struct {
	data rawbuf.Block[T]
	size int

	grows  int
	onGrow func(oldCap, newCap int)
}

// Stats is a point-in-time snapshot of a vector's shape.
type Stats struct {
	Len   int // live element count
	Cap   int // slot capacity
	Grows int // reallocations performed so far
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the slot capacity of the current storage.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Stats returns a snapshot of the vector's shape.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:   v.size,
		Cap:   v.data.Cap(),
		Grows: v.grows,
	}
}

// At returns the element at index i. Panics unless 0 <= i < Len.
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return *v.data.Slot(i)
}

// Ref returns the address of the element at index i. Panics unless
// 0 <= i < Len.
//
// The pointer is valid until the next reallocation; any operation
// that grows storage invalidates it.
func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex(i)
	return v.data.Slot(i)
}

// Set overwrites the element at index i with val, destroying the
// previous value. Panics unless 0 <= i < Len.
func (v *Vector[T]) Set(i int, val T) {
	v.checkIndex(i)
	slot := v.data.Slot(i)
	destroyRange(v.data.Slots(i, i+1))
	*slot = val
}

// Swap exchanges contents with other in O(1). It never allocates and
// never fails. Grow hooks and counters travel with the storage they
// observed.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.grows, other.grows = other.grows, v.grows
	v.onGrow, other.onGrow = other.onGrow, v.onGrow
}

// Clear destroys all live elements and resets the length to zero.
// Capacity is retained.
func (v *Vector[T]) Clear() {
	destroyRange(v.data.Slots(0, v.size))
	v.size = 0
}

// Release destroys all live elements and surrenders the storage,
// returning the vector to the zero state. Use it as the terminal
// cleanup when the element type implements [Destroyer].
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
}
