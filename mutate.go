package vec

import (
	"fmt"

	"github.com/baxromumarov/vec/rawbuf"
)

// PushBack appends a ready-made value to the end of the vector,
// growing storage if needed. It is the convenience form of
// [Vector.EmplaceBack].
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.EmplaceBack(func() (T, error) { return val, nil })
	return err
}

// EmplaceBack constructs a new element at the end of the vector and
// returns its address. The pointer is valid until the next
// reallocation.
//
// When storage must grow, the new element is constructed into its
// final slot in the new block before any existing element is
// transferred, so a failing ctor, like a failing clone during the
// transfer, leaves the vector completely unchanged (strong
// guarantee). The length increments only after construction succeeds.
//
// Panics if ctor is nil.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if ctor == nil {
		panic("vec: EmplaceBack requires non-nil ctor")
	}
	if v.size == v.data.Cap() {
		return v.emplaceGrow(v.size, ctor)
	}

	val, err := ctor()
	if err != nil {
		return nil, &ElemError{Op: "construct", Index: v.size, Err: err}
	}
	slot := v.data.Slot(v.size)
	*slot = val
	v.size++
	return slot, nil
}

// PopBack destroys the last element and shortens the vector by one.
// It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	destroyRange(v.data.Slots(v.size-1, v.size))
	v.size--
}

// Insert places a ready-made value at index i, shifting the elements
// at [i, Len) one slot right. i may equal Len, which appends. It is
// the convenience form of [Vector.Emplace].
func (v *Vector[T]) Insert(i int, val T) error {
	_, err := v.Emplace(i, func() (T, error) { return val, nil })
	return err
}

// Emplace constructs a new element at index i, shifting the elements
// at [i, Len) one slot right, and returns the new element's address.
// i may equal Len, which appends. Panics unless 0 <= i <= Len; panics
// if ctor is nil.
//
// The ctor runs before any element is disturbed, and the reallocating
// path transfers existing elements only after the new element is
// constructed in place, so a failure of any kind leaves the vector
// unchanged (strong guarantee).
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: insertion index %d out of range [0, %d]", i, v.size))
	}
	if ctor == nil {
		panic("vec: Emplace requires non-nil ctor")
	}
	if v.size == v.data.Cap() {
		return v.emplaceGrow(i, ctor)
	}

	val, err := ctor()
	if err != nil {
		return nil, &ElemError{Op: "construct", Index: i, Err: err}
	}

	if i < v.size {
		mover := strategyFor[T]() == byMove
		s := v.data.Slots(0, v.size+1)
		// Open the gap: relocate the tail element into the first dead
		// slot, then shift the rest right back-to-front. The reverse
		// direction corrupts overlapping ranges.
		s[v.size] = take(&s[v.size-1], mover)
		for k := v.size - 1; k > i; k-- {
			s[k] = take(&s[k-1], mover)
		}
	}
	slot := v.data.Slot(i)
	*slot = val
	v.size++
	return slot, nil
}

// emplaceGrow reallocates and constructs the new element for index i
// directly into its final slot in the new block, then transfers the
// prefix [0, i) to the same offsets and the suffix [i, Len) shifted
// right by one. Any failure unwinds the new block and leaves the old
// storage untouched.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) (*T, error) {
	next, err := rawbuf.Alloc[T](v.grownCap())
	if err != nil {
		return nil, err
	}

	val, err := ctor()
	if err != nil {
		next.Release()
		return nil, &ElemError{Op: "construct", Index: i, Err: err}
	}
	*next.Slot(i) = val

	prefixSrc := v.data.Slots(0, i)
	suffixSrc := v.data.Slots(i, v.size)
	prefixDst := next.Slots(0, i)
	suffixDst := next.Slots(i+1, v.size+1)

	switch strategyFor[T]() {
	case byClone:
		if k, err := cloneInto(prefixDst, prefixSrc); err != nil {
			destroyRange(next.Slots(i, i+1))
			next.Release()
			return nil, &ElemError{Op: "clone", Index: k, Err: err}
		}
		if k, err := cloneInto(suffixDst, suffixSrc); err != nil {
			destroyRange(prefixDst)
			destroyRange(next.Slots(i, i+1))
			next.Release()
			return nil, &ElemError{Op: "clone", Index: i + k, Err: err}
		}
		destroyRange(prefixSrc)
		destroyRange(suffixSrc)
	case byMove:
		moveInto(prefixDst, prefixSrc, true)
		moveInto(suffixDst, suffixSrc, true)
	default:
		moveInto(prefixDst, prefixSrc, false)
		moveInto(suffixDst, suffixSrc, false)
	}

	v.installBlock(&next)
	v.size++
	return v.data.Slot(i), nil
}

// Erase destroys the element at index i and shifts the elements at
// (i, Len) one slot left. Panics unless 0 <= i < Len.
//
// It returns the address of the erased element's successor, now
// occupying index i, or nil when the last element was erased. Erase never fails: the left shift relocates by move, which
// cannot raise an element error.
func (v *Vector[T]) Erase(i int) *T {
	v.checkIndex(i)

	mover := strategyFor[T]() == byMove
	s := v.data.Slots(0, v.size)
	// The erased value is overwritten by its successor; from there the
	// shift proceeds left-to-right. The reverse direction corrupts
	// overlapping ranges.
	destroyRange(s[i : i+1])
	for k := i; k < v.size-1; k++ {
		s[k] = take(&s[k+1], mover)
	}
	v.size--

	if i == v.size {
		return nil
	}
	return v.data.Slot(i)
}
