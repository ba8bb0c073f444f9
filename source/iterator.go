package source

import (
	"context"

	"github.com/kbukum/seqkit/sequence"
)

// Iterator provides pull-based sequential access to a stream of values that
// may fail.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Reader is a Cursor over an Iterator. The first error or exhaustion ends
// the stream: the iterator is closed once and never pulled again. The error,
// if any, is kept for Err.
type Reader[T any] struct {
	ctx    context.Context
	iter   Iterator[T]
	err    error
	closed bool
}

// FromIterator creates a Reader pulling it with ctx.
func FromIterator[T any](ctx context.Context, it Iterator[T]) *Reader[T] {
	return &Reader[T]{ctx: ctx, iter: it}
}

// Pull returns the next value, or false once the iterator is exhausted,
// failed or closed.
func (r *Reader[T]) Pull() (T, bool) {
	var zero T
	if r.closed {
		return zero, false
	}
	val, ok, err := r.iter.Next(r.ctx)
	if err != nil {
		r.err = err
		_ = r.Close()
		return zero, false
	}
	if !ok {
		_ = r.Close()
		return zero, false
	}
	return val, true
}

// Err returns the error that ended the stream, if any. A close error is
// reported only when the stream itself ended cleanly.
func (r *Reader[T]) Err() error { return r.err }

// Close closes the underlying iterator. It is safe to call more than once.
func (r *Reader[T]) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.iter.Close(); err != nil {
		if r.err == nil {
			r.err = err
		}
		return err
	}
	return nil
}

// Sequence returns an identity sequence over the reader. Closing the
// sequence closes the reader.
func (r *Reader[T]) Sequence() *sequence.Sequence[T] {
	return sequence.FromCloser[T](r, r.Close)
}

// SliceIterator is an Iterator over a slice. It never fails.
type SliceIterator[T any] struct {
	items  []T
	index  int
	closed bool
}

// NewSliceIterator creates an Iterator over items.
func NewSliceIterator[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: items}
}

func (it *SliceIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if it.closed || it.index >= len(it.items) {
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *SliceIterator[T]) Close() error {
	it.closed = true
	return nil
}
