// Package rawbuf provides raw, fixed-capacity element storage for
// container implementations.
//
// A [Block] owns a run of element slots without knowing which of them
// hold live values. It is the storage leaf underneath a container that
// tracks liveness itself: the block answers only for acquiring,
// addressing, exchanging, and releasing slots.
//
//   - [Alloc]: acquire storage for a fixed number of slots. A zero
//     request yields the null block without touching the allocator;
//     impossible requests fail with [*AllocError] before any
//     allocation happens.
//   - [Block.Slot] and [Block.Slots]: address a single slot or a
//     half-open slot range.
//   - [Block.Swap] and [Block.Move]: exchange or transfer ownership
//     in O(1) without allocating.
//   - [Block.Release]: return the block to the null state.
//
// Blocks are move-only. The owner must not duplicate a Block: two
// owners of the same slots would disagree about liveness. Duplication
// of contents belongs to the owning container, which knows how to
// construct copies of the live values.
//
// The block never constructs or destroys elements. Callers that give
// slots back (shrink, erase, release) are responsible for clearing
// them first so the garbage collector can reclaim what the dead
// values referenced.
package rawbuf
