package rawbuf

import (
	"fmt"
	"math"
	"unsafe"
)

// Block is a fixed-capacity run of raw element slots. The zero value
// is the null block: capacity zero, no storage.
//
// A Block tracks no liveness. Every slot is raw from the block's point
// of view; the owning container decides which slots hold live values
// and runs whatever lifetime hooks the element type needs.
//
// Blocks are move-only: transfer ownership with [Block.Move] or
// [Block.Swap]. Assigning a Block duplicates slot ownership and
// violates the contract.
type Block[T any] struct {
	slots []T
}

// Alloc acquires storage for n element slots.
//
// A zero request returns the null block and never touches the
// allocator. A negative request, or one whose total byte size cannot
// be represented, fails with [*AllocError] before anything is
// allocated.
func Alloc[T any](n int) (Block[T], error) {
	if n == 0 {
		return Block[T]{}, nil
	}
	if n < 0 {
		return Block[T]{}, &AllocError{Slots: n, Err: ErrNegativeCount}
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize < 1 {
		elemSize = 1 // zero-size types still get addressable slots
	}
	if n > math.MaxInt/elemSize {
		return Block[T]{}, &AllocError{Slots: n, Err: ErrTooLarge}
	}
	return Block[T]{slots: make([]T, n)}, nil
}

// Cap returns the slot capacity of the block.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// Slot returns the address of slot i. Panics unless 0 <= i < Cap.
func (b *Block[T]) Slot(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("rawbuf: slot index %d out of range [0, %d)", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Slots returns the half-open slot range [i, j) as a slice view into
// the block. Panics unless 0 <= i <= j <= Cap.
//
// The view aliases the block's storage and is valid only while this
// block owns it.
func (b *Block[T]) Slots(i, j int) []T {
	if i < 0 || j < i || j > len(b.slots) {
		panic(fmt.Sprintf("rawbuf: slot range [%d, %d) invalid for capacity %d", i, j, len(b.slots)))
	}
	return b.slots[i:j:j]
}

// Swap exchanges storage ownership with other in O(1). It never
// allocates and never fails.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Move transfers ownership of the storage out of b, leaving b null.
func (b *Block[T]) Move() Block[T] {
	out := Block[T]{slots: b.slots}
	b.slots = nil
	return out
}

// Release returns the block to the null state, surrendering its
// storage to the garbage collector. Releasing the null block is a
// no-op. The owner must not call Release while slots still hold live
// values it has not destroyed.
func (b *Block[T]) Release() {
	b.slots = nil
}
