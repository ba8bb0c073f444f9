package sequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/seqkit/errors"
)

func isEven(n int) bool { return n%2 == 0 }

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		preds []func(int) bool
		want  int
	}{
		{"no predicate", []int{1, 2, 3}, nil, 3},
		{"predicate", []int{1, 2, 3, 4}, []func(int) bool{isEven}, 2},
		{"predicates are combined", []int{2, 4, 6, 8}, []func(int) bool{isEven, func(n int) bool { return n > 4 }}, 2},
		{"empty", nil, nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromSlice(tc.input).Count(tc.preds...); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	v, err := Of(1, 3, 4, 5).First(isEven)
	if err != nil || v != 4 {
		t.Errorf("expected 4, got %d (%v)", v, err)
	}

	v, err = Of(9).First()
	if err != nil || v != 9 {
		t.Errorf("expected 9, got %d (%v)", v, err)
	}
}

func TestFirst_NoElement(t *testing.T) {
	tests := []struct {
		name string
		seq  *Sequence[int]
	}{
		{"empty", Of[int]()},
		{"no match", Of(1, 3, 5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.seq.First(isEven)
			if err == nil {
				t.Fatal("expected error")
			}
			if v != 0 {
				t.Errorf("expected zero value, got %d", v)
			}
			if !IsNotFound(err) {
				t.Errorf("expected not-found error, got %v", err)
			}
			appErr, ok := errors.AsAppError(err)
			if !ok || appErr.Code != errors.ErrCodeNotFound {
				t.Errorf("expected *errors.AppError with NOT_FOUND, got %#v", err)
			}
		})
	}
}

func TestFirstOrDefault(t *testing.T) {
	if v, ok := Of(1, 2).FirstOrDefault(isEven); !ok || v != 2 {
		t.Errorf("expected (2, true), got (%d, %v)", v, ok)
	}
	if v, ok := Of(1, 3).FirstOrDefault(isEven); ok || v != 0 {
		t.Errorf("expected (0, false), got (%d, %v)", v, ok)
	}
	// A zero value that is present is distinguishable from absence.
	if v, ok := Of(0).FirstOrDefault(); !ok || v != 0 {
		t.Errorf("expected (0, true), got (%d, %v)", v, ok)
	}
	if v, ok := Of[*point]().FirstOrDefault(); ok || v != nil {
		t.Errorf("expected (nil, false), got (%v, %v)", v, ok)
	}
}

func TestAny(t *testing.T) {
	if Of[int]().Any() {
		t.Error("expected empty sequence to have no values")
	}
	if !Of(1).Any() {
		t.Error("expected non-empty sequence to have values")
	}
	if Of(1, 3).Any(isEven) {
		t.Error("expected no even values")
	}

	c := &countingCursor[int]{items: []int{1, 2, 3, 4}}
	if !From[int](c).Any(isEven) {
		t.Error("expected an even value")
	}
	if c.pulls != 2 {
		t.Errorf("expected Any to stop at the first match, got %d pulls", c.pulls)
	}
}

func TestAll(t *testing.T) {
	if !Of[int]().All(isEven) {
		t.Error("expected All to be true for an empty sequence")
	}
	if !Of(2, 4).All(isEven) {
		t.Error("expected all even")
	}

	c := &countingCursor[int]{items: []int{2, 3, 4}}
	if From[int](c).All(isEven) {
		t.Error("expected All to be false")
	}
	if c.pulls != 2 {
		t.Errorf("expected All to stop at the first failure, got %d pulls", c.pulls)
	}
}

func TestForEach_NoTrailingCall(t *testing.T) {
	type call struct {
		Value string
		Index int
	}
	var calls []call
	Of("a", "b", "c").ForEach(func(v string, i int) {
		calls = append(calls, call{v, i})
	})
	want := []call{{"a", 0}, {"b", 1}, {"c", 2}}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", diff)
	}

	n := 0
	Of[string]().ForEach(func(string, int) { n++ })
	if n != 0 {
		t.Errorf("expected no calls for an empty sequence, got %d", n)
	}
}

func TestTerminals_SharePosition(t *testing.T) {
	s := Of(1, 2, 3, 4, 5, 6)

	if v, _ := s.First(isEven); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
	if v, _ := s.First(isEven); v != 4 {
		t.Fatalf("expected 4 from the second call, got %d", v)
	}
	if got := s.Count(); got != 2 {
		t.Errorf("expected 2 remaining values, got %d", got)
	}
	if s.Any() {
		t.Error("expected the sequence to be exhausted")
	}
}
