// Package vec provides a contiguous, growable vector with explicit
// element-lifetime discipline.
//
// A [Vector] keeps its live elements in the leading slots of a single
// raw storage block (see [github.com/baxromumarov/vec/rawbuf]) and
// tracks the live count itself. Appends are amortized O(1) through
// doubling growth, indexing is O(1), and every mutating operation
// states the failure guarantee it honors.
//
// # Basic Use
//
// The zero value is an empty, ready-to-use vector:
//
//	var v vec.Vector[int]
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	fmt.Println(v.Len(), v.At(0)) // 2 1
//
// [New] configures capacity or initial length up front, and [Of]
// builds a vector from values.
//
// # Element Capabilities
//
// The vector is polymorphic over what the element type can do:
//
//   - Plain types copy and relocate by assignment and are destroyed
//     by zeroing. Nothing to implement.
//   - [Cloner] types are deep copied wherever a duplicate is needed,
//     and cloning may fail.
//   - [Mover] types sanction relocation by ownership transfer.
//   - [Destroyer] types get their Destroy hook run exactly once per
//     logical destruction, and never for moved-from slots.
//
// When storage must grow, all live elements transfer with one
// strategy, resolved once per operation: move when the type
// implements [Mover] or neither hook, clone when it implements only
// [Cloner]. Clone is the only fallible transfer, and every operation
// that can hit it documents whether partial work is rolled back.
//
// # Failure Guarantees
//
// Allocation failures ([*rawbuf.AllocError]) and element hook
// failures ([*ElemError]) are returned to the caller; nothing is
// retried or swallowed, and no failure leaks an element lifetime.
// Growth-triggering appends and inserts, [Vector.Clone], and
// [Vector.Reserve] give the strong guarantee: on failure the vector
// is exactly as it was. The storage-reusing path of
// [Vector.CopyFrom] gives the basic guarantee only; its
// documentation spells out the trade.
//
// Index misuse panics; it is a programmer error, not a recoverable
// condition.
//
// # Iteration
//
// [Vector.All] and [Vector.Values] yield elements in index order.
// [Vector.Slice] exposes the live prefix as a slice sharing the
// vector's storage; like element pointers returned by [Vector.Ref]
// and [Vector.EmplaceBack], it is invalidated by the next
// reallocation.
package vec
