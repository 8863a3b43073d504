package vec

import "github.com/baxromumarov/vec/rawbuf"

// Option configures a [Vector] built by [New].
type Option func(*config)

type config struct {
	capacity int
	length   int
	onGrow   func(oldCap, newCap int)
}

// WithCapacity pre-reserves storage for n elements so that the first
// n appends never reallocate. Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("vec: WithCapacity requires non-negative capacity")
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithLen starts the vector with n zero-valued elements.
// Panics if n is negative.
func WithLen(n int) Option {
	if n < 0 {
		panic("vec: WithLen requires non-negative length")
	}
	return func(c *config) {
		c.length = n
	}
}

// WithOnGrow registers a hook invoked after every successful
// reallocation with the old and new capacities. The hook runs on the
// goroutine performing the mutation. Panics if fn is nil.
func WithOnGrow(fn func(oldCap, newCap int)) Option {
	if fn == nil {
		panic("vec: WithOnGrow requires non-nil hook")
	}
	return func(c *config) {
		c.onGrow = fn
	}
}

// New builds a vector configured by opts. With no options it is
// equivalent to the zero value. Fails with [*rawbuf.AllocError] if
// the requested storage cannot be allocated.
func New[T any](opts ...Option) (*Vector[T], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	slots := cfg.capacity
	if cfg.length > slots {
		slots = cfg.length
	}

	block, err := rawbuf.Alloc[T](slots)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{
		data:   block,
		size:   cfg.length,
		onGrow: cfg.onGrow,
	}, nil
}

// Of builds a vector holding exactly the given values, in order, with
// capacity equal to its length.
func Of[T any](vals ...T) (*Vector[T], error) {
	block, err := rawbuf.Alloc[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(block.Slots(0, len(vals)), vals)
	return &Vector[T]{
		data: block,
		size: len(vals),
	}, nil
}
