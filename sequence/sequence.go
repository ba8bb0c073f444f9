package sequence

import "iter"

// Sequence is a lazy, single-pass sequence of values backed by a Cursor.
//
// Every operator and terminal operation is defined once on Sequence in terms
// of Pull; the concrete stage (identity, filter, projection, group-by) lives
// in the wrapped cursor. Sequence itself implements Cursor, so any sequence
// can be the source of another.
//
// Once the wrapped cursor reports exhaustion the sequence latches: it never
// pulls that cursor again and every later Pull reports exhaustion.
type Sequence[T any] struct {
	cursor Cursor[T]
	closer func() error
	done   bool
}

// --- Constructors ---

// Of creates a sequence over the given values.
func Of[T any](values ...T) *Sequence[T] {
	return FromSlice(values)
}

// FromSlice creates a sequence over the elements of items. The slice is not
// copied; it must not be modified while the sequence is in use.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{cursor: &sliceCursor[T]{items: items}}
}

// From creates an identity sequence over an existing cursor.
func From[T any](c Cursor[T]) *Sequence[T] {
	if s, ok := c.(*Sequence[T]); ok {
		return s
	}
	return &Sequence[T]{cursor: c}
}

// FromCloser creates an identity sequence over c whose Close calls closer.
func FromCloser[T any](c Cursor[T], closer func() error) *Sequence[T] {
	return &Sequence[T]{cursor: c, closer: closer}
}

// FromSeq creates a sequence over a Go iterator. The iterator is converted
// to pull form on the first Pull and stopped once it is exhausted. Close must
// be called when such a sequence is abandoned before exhaustion.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	c := &seqCursor[T]{seq: seq}
	return &Sequence[T]{cursor: c, closer: c.close}
}

// derive creates a sequence whose Close is forwarded to src.
func derive[S, T any](src *Sequence[S], c Cursor[T]) *Sequence[T] {
	return &Sequence[T]{cursor: c, closer: src.Close}
}

// Pull returns the next value, or the zero value and false once exhausted.
func (s *Sequence[T]) Pull() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	val, ok := s.cursor.Pull()
	if !ok {
		s.done = true
		return zero, false
	}
	return val, true
}

// Close marks the sequence exhausted and releases any resources held by the
// sources it was built from. It is only required for sequences built over
// sources that hold resources (FromSeq, source.Reader) and abandoned before
// exhaustion.
func (s *Sequence[T]) Close() error {
	s.done = true
	if s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	return closer()
}

// Values returns an iterator over the remaining values, for use with range.
// Breaking out of the loop stops pulling; the sequence keeps its position.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := s.Pull()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// ToSlice pulls every remaining value and returns them in order.
func (s *Sequence[T]) ToSlice() []T {
	var result []T
	for {
		val, ok := s.Pull()
		if !ok {
			return result
		}
		result = append(result, val)
	}
}

// seqCursor adapts a push iterator with iter.Pull.
type seqCursor[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

func (c *seqCursor[T]) Pull() (T, bool) {
	if c.next == nil {
		if c.seq == nil {
			var zero T
			return zero, false
		}
		c.next, c.stop = iter.Pull(c.seq)
		c.seq = nil
	}
	val, ok := c.next()
	if !ok {
		c.close()
	}
	return val, ok
}

func (c *seqCursor[T]) close() error {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.seq = nil
	return nil
}
