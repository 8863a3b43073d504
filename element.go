package vec

// Cloner is implemented by element types whose values must be deep
// copied. [Vector.Clone], [Vector.CopyFrom], and any relocation that
// falls back to copying call Clone instead of plain assignment.
//
// Clone may fail; the failing operation reports the error wrapped in
// [*ElemError] and honors the guarantee documented on that operation.
//
// Element types must implement Cloner with a value receiver, or be
// pointer types, for the vector to detect the capability.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by element types that sanction relocation by
// ownership transfer. Move returns the transferred value and never
// fails; the vector zeroes the source slot afterwards.
//
// Types implementing neither [Mover] nor [Cloner] relocate by plain
// assignment, which is equivalent and always safe for value types.
// Types implementing only [Cloner] declare that shallow relocation is
// not sanctioned, so every relocation clones.
type Mover[T any] interface {
	Move() T
}

// Destroyer is implemented by element types holding resources that
// must be released when the element's lifetime ends. The vector calls
// Destroy exactly once per logical destruction (pop, erase, shrink,
// clear, release, overwrite) and never for slots a value was moved
// out of.
type Destroyer interface {
	Destroy()
}

// strategy selects how a bulk relocation transfers elements. It is
// resolved once per operation so that every element of a transfer
// uses the same mechanism.
type strategy int

const (
	// byAssign relocates by plain assignment. Plain value types.
	byAssign strategy = iota
	// byMove relocates through the element's Move hook.
	byMove
	// byClone relocates by deep copy; the only fallible strategy.
	byClone
)

func strategyFor[T any]() strategy {
	if isMover[T]() {
		return byMove
	}
	if isCloner[T]() {
		return byClone
	}
	return byAssign
}

func isMover[T any]() bool {
	var zero T
	_, ok := any(zero).(Mover[T])
	return ok
}

func isCloner[T any]() bool {
	var zero T
	_, ok := any(zero).(Cloner[T])
	return ok
}

func hasDestroyer[T any]() bool {
	var zero T
	_, ok := any(zero).(Destroyer)
	return ok
}

// take moves the value out of slot p, leaving the slot zero. When
// mover is set the element's Move hook performs the transfer.
func take[T any](p *T, mover bool) T {
	v := *p
	if mover {
		v = any(v).(Mover[T]).Move()
	}
	var zero T
	*p = zero
	return v
}

// moveInto relocates src[k] into dst[k] for every k, zeroing the
// source slots. Never fails.
func moveInto[T any](dst, src []T, mover bool) {
	for k := range src {
		dst[k] = take(&src[k], mover)
	}
}

// cloneInto deep-copies src[k] into dst[k] for every k, in index
// order. On failure it destroys the clones it already constructed and
// returns the failing index; the source is untouched.
func cloneInto[T any](dst, src []T) (int, error) {
	for k := range src {
		c, err := any(src[k]).(Cloner[T]).Clone()
		if err != nil {
			destroyRange(dst[:k])
			return k, err
		}
		dst[k] = c
	}
	return -1, nil
}

// destroyRange ends the lifetime of every element in s: the Destroy
// hook runs when the element type has one, then the slot is zeroed so
// the garbage collector can reclaim what the value referenced.
func destroyRange[T any](s []T) {
	if hasDestroyer[T]() {
		for k := range s {
			any(s[k]).(Destroyer).Destroy()
		}
	}
	clear(s)
}
