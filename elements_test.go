package vec

import "errors"

// Failure-injection element types shared by the test suite. Each one
// exercises a different corner of the capability set.

var errCloneBoom = errors.New("clone refused")

// budget arms a shared countdown: the n-th hook invocation after the
// budget runs out fails.
type budget struct {
	remaining int
}

func newBudget(successes int) *budget {
	return &budget{remaining: successes}
}

func (b *budget) spend() bool {
	if b == nil {
		return true
	}
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// deep implements only Cloner: relocation must copy, and copies can
// fail once the shared budget is exhausted.
type deep struct {
	val    int
	clones *budget
}

func (d deep) Clone() (deep, error) {
	if !d.clones.spend() {
		return deep{}, errCloneBoom
	}
	return deep{val: d.val, clones: d.clones}, nil
}

// lifetimeLog records destruction order and move/clone counts.
type lifetimeLog struct {
	destroyed []int
	moves     int
}

// tracked implements only Destroyer: plain relocation, observable
// destruction.
type tracked struct {
	id  int
	log *lifetimeLog
}

func (r tracked) Destroy() {
	if r.log != nil {
		r.log.destroyed = append(r.log.destroyed, r.id)
	}
}

// movable implements Mover and Destroyer: relocation goes through
// Move, destruction is observable, and moved-from slots must never be
// destroyed.
type movable struct {
	id  int
	log *lifetimeLog
}

func (m movable) Move() movable {
	if m.log != nil {
		m.log.moves++
	}
	return m
}

func (m movable) Destroy() {
	if m.log != nil {
		m.log.destroyed = append(m.log.destroyed, m.id)
	}
}

// deepTracked implements Cloner and Destroyer: clone-strategy
// relocation with observable destruction, for overwrite and rollback
// accounting.
type deepTracked struct {
	id     int
	clones *budget
	log    *lifetimeLog
}

func (d deepTracked) Clone() (deepTracked, error) {
	if !d.clones.spend() {
		return deepTracked{}, errCloneBoom
	}
	return deepTracked{id: d.id, clones: d.clones, log: d.log}, nil
}

func (d deepTracked) Destroy() {
	if d.log != nil {
		d.log.destroyed = append(d.log.destroyed, d.id)
	}
}

// unique implements Mover and Destroyer but not Cloner: a move-only
// type that cannot be duplicated.
type unique struct {
	id int
}

func (u unique) Move() unique { return u }
func (u unique) Destroy()     {}

func intValues[T any](v *Vector[T], get func(T) int) []int {
	out := make([]int, 0, v.Len())
	for _, e := range v.All() {
		out = append(out, get(e))
	}
	return out
}

func deepVals(v *Vector[deep]) []int {
	return intValues(v, func(d deep) int { return d.val })
}
