package sequence

import "github.com/kbukum/seqkit/errors"

// Count pulls every remaining value and returns how many satisfy preds.
// With no predicate every value counts; with several, all must hold.
func (s *Sequence[T]) Count(preds ...func(T) bool) int {
	n := 0
	for {
		val, ok := s.Pull()
		if !ok {
			return n
		}
		if matches(preds, val) {
			n++
		}
	}
}

// First returns the first value satisfying preds. It returns a NOT_FOUND
// *errors.AppError when the sequence is exhausted without a match.
func (s *Sequence[T]) First(preds ...func(T) bool) (T, error) {
	val, ok := s.FirstOrDefault(preds...)
	if !ok {
		return val, errNoElement()
	}
	return val, nil
}

// FirstOrDefault returns the first value satisfying preds and true, or the
// zero value and false when there is none.
func (s *Sequence[T]) FirstOrDefault(preds ...func(T) bool) (T, bool) {
	for {
		val, ok := s.Pull()
		if !ok {
			return val, false
		}
		if matches(preds, val) {
			return val, true
		}
	}
}

// Any reports whether some value satisfies preds, stopping at the first one.
// With no predicate it reports whether the sequence yields anything.
func (s *Sequence[T]) Any(preds ...func(T) bool) bool {
	_, ok := s.FirstOrDefault(preds...)
	return ok
}

// All reports whether every remaining value satisfies pred. It stops at the
// first failure and is true for an empty sequence.
func (s *Sequence[T]) All(pred func(T) bool) bool {
	for {
		val, ok := s.Pull()
		if !ok {
			return true
		}
		if !pred(val) {
			return false
		}
	}
}

// ForEach calls fn with each remaining value and its 0-based position.
func (s *Sequence[T]) ForEach(fn func(T, int)) {
	for i := 0; ; i++ {
		val, ok := s.Pull()
		if !ok {
			return
		}
		fn(val, i)
	}
}

func matches[T any](preds []func(T) bool, val T) bool {
	for _, pred := range preds {
		if !pred(val) {
			return false
		}
	}
	return true
}

// IsNotFound reports whether err is the failure returned by First.
func IsNotFound(err error) bool {
	return errors.IsCode(err, errors.ErrCodeNotFound)
}

func errNoElement() *errors.AppError {
	return errors.NotFound("Sequence contains no matching element")
}
