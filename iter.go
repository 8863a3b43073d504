package vec

import "iter"

// All returns an iterator over index/value pairs of the live
// elements, in index order.
//
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.size {
			if !yield(i, *v.data.Slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live element values, in index
// order.
//
// The vector must not be mutated during iteration.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.size {
			if !yield(*v.data.Slot(i)) {
				return
			}
		}
	}
}

// Slice returns the live elements as a slice aliasing the vector's
// storage. The view is valid until the next reallocation; mutating
// operations that grow storage leave it pointing at the old block.
// Appending to the returned slice is a contract violation.
func (v *Vector[T]) Slice() []T {
	return v.data.Slots(0, v.size)
}
