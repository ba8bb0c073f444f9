package sequence

// Where returns a sequence of the values that satisfy pred.
func (s *Sequence[T]) Where(pred func(T) bool) *Sequence[T] {
	return derive(s, &filterCursor[T]{source: s, fn: pred})
}

// Select returns a sequence of fn applied to each value of s.
// It is a function rather than a method because it changes the element type.
func Select[T, U any](s *Sequence[T], fn func(T) U) *Sequence[U] {
	return derive(s, &selectCursor[T, U]{source: s, fn: fn})
}

// Tap calls fn for each value as it is pulled, then passes the value through
// unchanged.
func (s *Sequence[T]) Tap(fn func(T)) *Sequence[T] {
	return derive(s, &tapCursor[T]{source: s, fn: fn})
}

// --- Cursor implementations ---

type filterCursor[T any] struct {
	source Cursor[T]
	fn     func(T) bool
}

func (c *filterCursor[T]) Pull() (T, bool) {
	for {
		val, ok := c.source.Pull()
		if !ok {
			return val, false
		}
		if c.fn(val) {
			return val, true
		}
	}
}

type selectCursor[T, U any] struct {
	source Cursor[T]
	fn     func(T) U
}

func (c *selectCursor[T, U]) Pull() (U, bool) {
	val, ok := c.source.Pull()
	if !ok {
		var zero U
		return zero, false
	}
	return c.fn(val), true
}

type tapCursor[T any] struct {
	source Cursor[T]
	fn     func(T)
}

func (c *tapCursor[T]) Pull() (T, bool) {
	val, ok := c.source.Pull()
	if ok {
		c.fn(val)
	}
	return val, ok
}
