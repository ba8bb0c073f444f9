package source

import (
	"context"
	"errors"
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/seqkit/sequence"
)

// failingIter yields its items, then fails with err.
type failingIter struct {
	items  []int
	index  int
	err    error
	closes int
	nexts  int
}

func (it *failingIter) Next(_ context.Context) (int, bool, error) {
	it.nexts++
	if it.index >= len(it.items) {
		return 0, false, it.err
	}
	v := it.items[it.index]
	it.index++
	return v, true, nil
}

func (it *failingIter) Close() error {
	it.closes++
	return nil
}

func TestFromIterator_Collect(t *testing.T) {
	r := FromIterator[int](context.Background(), NewSliceIterator([]int{1, 2, 3}))
	got := r.Sequence().ToSlice()
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}
}

func TestFromIterator_ErrorEndsStream(t *testing.T) {
	boom := errors.New("boom")
	it := &failingIter{items: []int{1, 2}, err: boom}
	r := FromIterator[int](context.Background(), it)

	seq := sequence.Select(r.Sequence(), func(n int) int { return n * 10 })
	got := seq.ToSlice()
	if diff := cmp.Diff([]int{10, 20}, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	if !errors.Is(r.Err(), boom) {
		t.Errorf("expected boom, got %v", r.Err())
	}
	if it.closes != 1 {
		t.Errorf("expected iterator closed once, got %d", it.closes)
	}

	// Exhausted stays exhausted without touching the iterator again.
	nexts := it.nexts
	if _, ok := r.Pull(); ok {
		t.Error("expected exhaustion after error")
	}
	if it.nexts != nexts {
		t.Errorf("expected no further Next calls, got %d more", it.nexts-nexts)
	}
}

func TestFromIterator_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := FromIterator[int](ctx, NewSliceIterator([]int{1, 2, 3}))
	if r.Sequence().Any() {
		t.Error("expected no values from a cancelled context")
	}
	if !errors.Is(r.Err(), context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", r.Err())
	}
}

func TestReader_SequenceClose(t *testing.T) {
	it := &failingIter{items: []int{1, 2, 3}}
	r := FromIterator[int](context.Background(), it)
	seq := r.Sequence()

	first, err := seq.First()
	if err != nil || first != 1 {
		t.Fatalf("expected 1, got %d (%v)", first, err)
	}
	if err := seq.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if it.closes != 1 {
		t.Errorf("expected iterator closed once, got %d", it.closes)
	}
	if seq.Any() {
		t.Error("expected closed sequence to be exhausted")
	}
	if err := r.Close(); err != nil {
		t.Errorf("expected second close to be a no-op, got %v", err)
	}
	if it.closes != 1 {
		t.Errorf("expected iterator still closed once, got %d", it.closes)
	}
}

func TestFromGods_ArrayList(t *testing.T) {
	list := arraylist.New()
	list.Add(5, 1, 4, 2)
	it := list.Iterator()

	got := FromGods[int](&it).Where(func(n int) bool { return n > 1 }).ToSlice()
	if diff := cmp.Diff([]int{5, 4, 2}, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestFromGods_TreeSetIsSorted(t *testing.T) {
	set := treeset.NewWithStringComparator()
	set.Add("pear", "apple", "fig")
	it := set.Iterator()

	first, err := FromGods[string](&it).First()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "apple" {
		t.Errorf("expected apple, got %q", first)
	}
}

func TestFromGods_Empty(t *testing.T) {
	it := arraylist.New().Iterator()
	if FromGods[int](&it).Any() {
		t.Error("expected empty sequence")
	}
}
