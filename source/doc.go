// Package source adapts external pull sources into sequence cursors.
//
// Iterator is the usual shape of a paged or remote stream: Next takes a
// context and may fail, and Close releases the underlying resource.
// FromIterator turns one into a cursor:
//
//	r := source.FromIterator(ctx, it)
//	n := r.Sequence().Where(isValid).Count()
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// FromGods reads any gods container iterator (arraylist, treeset, ...).
package source
