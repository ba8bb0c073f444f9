package sequence

// Cursor provides single-pass, pull-based access to a stream of values.
type Cursor[T any] interface {
	// Pull returns the next value and true, or the zero value and false
	// once the cursor is exhausted.
	Pull() (T, bool)
}

// CursorFunc adapts a plain function to the Cursor interface.
type CursorFunc[T any] func() (T, bool)

// Pull calls f.
func (f CursorFunc[T]) Pull() (T, bool) { return f() }

// sliceCursor yields the elements of a slice in order.
type sliceCursor[T any] struct {
	items []T
	index int
}

func (c *sliceCursor[T]) Pull() (T, bool) {
	if c.index >= len(c.items) {
		var zero T
		return zero, false
	}
	val := c.items[c.index]
	c.index++
	return val, true
}
