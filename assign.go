package vec

import (
	"github.com/baxromumarov/vec/rawbuf"
)

// Clone returns a deep, independent copy of the vector: same length,
// element-wise equal values, storage sized exactly to the length.
// Elements are duplicated in index order through [Cloner.Clone] when
// T implements it, by plain assignment otherwise.
//
// Clone gives the strong guarantee: a mid-copy failure destroys the
// partially built copy and propagates the error; the source is never
// touched. The copy starts with no grow hook and fresh counters.
//
// Panics if T is move-only (implements [Mover] but not [Cloner]);
// such values cannot be duplicated.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	block, err := rawbuf.Alloc[T](v.size)
	if err != nil {
		return nil, err
	}
	if k, err := dupInto(block.Slots(0, v.size), v.data.Slots(0, v.size)); err != nil {
		block.Release()
		return nil, &ElemError{Op: "clone", Index: k, Err: err}
	}
	return &Vector[T]{data: block, size: v.size}, nil
}

// CopyFrom replaces the vector's contents with a deep copy of src.
// Self-assignment is a no-op.
//
// When src does not fit in the current capacity, a complete copy is
// built first and swapped in, so failure leaves the vector untouched
// (strong guarantee) at the cost of transient memory for the copy.
//
// When the current capacity suffices, storage is reused: the common
// prefix is overwritten element by element, then the surplus tail is
// destroyed (shrinking) or the extra source tail is copied in
// (growing). A failure on this path leaves the already overwritten
// prefix in place: the basic guarantee only, in exchange for an
// allocation-free assignment whenever capacity allows. Build the copy
// explicitly via [Vector.Clone] if the strong guarantee is required
// regardless of capacity.
//
// Panics if T is move-only.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}

	if src.size > v.data.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		destroyRange(v.data.Slots(0, v.size))
		v.data.Swap(&tmp.data)
		tmp.data.Release()
		v.size = src.size
		return nil
	}

	n := min(v.size, src.size)
	if k, err := overwriteRange(v.data.Slots(0, n), src.data.Slots(0, n)); err != nil {
		return &ElemError{Op: "copy-assign", Index: k, Err: err}
	}
	switch {
	case src.size < v.size:
		destroyRange(v.data.Slots(src.size, v.size))
	case src.size > v.size:
		if k, err := dupInto(v.data.Slots(v.size, src.size), src.data.Slots(v.size, src.size)); err != nil {
			return &ElemError{Op: "clone", Index: v.size + k, Err: err}
		}
	}
	v.size = src.size
	return nil
}

// MoveFrom takes src's contents in O(1) by swapping storage: the
// vector's previous elements are destroyed, and src ends empty,
// holding the vector's former (now element-free) storage. It never
// fails. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Clear()
	v.data.Swap(&src.data)
	v.size = src.size
	src.size = 0
}

// dupInto duplicates src[k] into dst[k] for every k, in index order:
// deep copies when T implements [Cloner], plain assignment otherwise.
// On failure the already built elements are destroyed and the failing
// index returned. Panics when T is move-only.
func dupInto[T any](dst, src []T) (int, error) {
	if isCloner[T]() {
		return cloneInto(dst, src)
	}
	if isMover[T]() {
		panic("vec: element type is move-only and cannot be copied")
	}
	copy(dst, src)
	return -1, nil
}

// overwriteRange copy-assigns src[k] over the live element dst[k] for
// every k: the replacement is prepared first, then the old value is
// destroyed and replaced. On failure the failing index is returned;
// elements before it stay overwritten, elements from it on stay
// intact. Panics when T is move-only.
func overwriteRange[T any](dst, src []T) (int, error) {
	cloner := isCloner[T]()
	if !cloner && isMover[T]() {
		panic("vec: element type is move-only and cannot be copied")
	}
	destroyer := hasDestroyer[T]()

	for k := range src {
		val := src[k]
		if cloner {
			c, err := any(src[k]).(Cloner[T]).Clone()
			if err != nil {
				return k, err
			}
			val = c
		}
		if destroyer {
			any(dst[k]).(Destroyer).Destroy()
		}
		dst[k] = val
	}
	return -1, nil
}
