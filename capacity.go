package vec

import (
	"fmt"

	"github.com/baxromumarov/vec/rawbuf"
)

// Reserve grows the storage to hold at least n elements. It is a
// no-op when n does not exceed the current capacity; capacity never
// shrinks implicitly.
//
// On growth, live elements are transferred into the new storage using
// the relocation strategy resolved for T (see [Mover] and [Cloner]).
// Reserve gives the strong guarantee: if allocation or a clone fails,
// the vector is left exactly as it was.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	return v.regrow(n)
}

// Resize changes the length to n. Shrinking destroys the trailing
// elements in place. Growing reserves storage for n elements, then
// extends the length with zero-valued elements.
//
// Panics if n is negative. On failure nothing has changed.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vec: Resize requires non-negative length, got %d", n))
	}
	switch {
	case n < v.size:
		destroyRange(v.data.Slots(n, v.size))
		v.size = n
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		// Dead slots are kept zeroed by every destroy and move path,
		// so the new tail already holds default values.
		v.size = n
	}
	return nil
}

// grownCap is the capacity used when a full vector must reallocate:
// max(1, 2*len).
func (v *Vector[T]) grownCap() int {
	if v.size == 0 {
		return 1
	}
	return v.size * 2
}

// regrow is the single growth primitive shared by every reallocating
// path: allocate a block of exactly n slots, transfer the live
// elements, destroy the originals, swap storage in.
func (v *Vector[T]) regrow(n int) error {
	next, err := rawbuf.Alloc[T](n)
	if err != nil {
		return err
	}
	if err := v.transferOut(next.Slots(0, v.size)); err != nil {
		next.Release()
		return err
	}
	v.installBlock(&next)
	return nil
}

// transferOut relocates the live elements [0, Len) into dst, one
// slot each, using the strategy resolved for T. Clone failures
// destroy the partially built dst range and leave the source
// untouched. On success the source slots are dead (destroyed or
// moved out).
func (v *Vector[T]) transferOut(dst []T) error {
	src := v.data.Slots(0, v.size)
	switch strategyFor[T]() {
	case byClone:
		if k, err := cloneInto(dst, src); err != nil {
			return &ElemError{Op: "clone", Index: k, Err: err}
		}
		destroyRange(src)
	case byMove:
		moveInto(dst, src, true)
	default:
		moveInto(dst, src, false)
	}
	return nil
}

// installBlock swaps the fully prepared block in, releases the old
// storage, and reports the growth.
func (v *Vector[T]) installBlock(next *rawbuf.Block[T]) {
	oldCap := v.data.Cap()
	v.data.Swap(next)
	next.Release()
	v.grows++
	if v.onGrow != nil {
		v.onGrow(oldCap, v.data.Cap())
	}
}
