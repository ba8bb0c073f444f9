package source

import "github.com/kbukum/seqkit/sequence"

// ValueIterator is the forward-iteration subset shared by the gods container
// iterators (arraylist.Iterator, treeset.Iterator, linkedhashmap.Iterator...).
type ValueIterator interface {
	Next() bool
	Value() interface{}
}

// FromGods creates a sequence over a gods container iterator. Every value
// must be a T; a value of another type panics with a type assertion error.
func FromGods[T any](it ValueIterator) *sequence.Sequence[T] {
	return sequence.From[T](sequence.CursorFunc[T](func() (T, bool) {
		if !it.Next() {
			var zero T
			return zero, false
		}
		return it.Value().(T), true
	}))
}
