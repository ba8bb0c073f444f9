// Package sequence provides lazy, pull-based sequences over in-memory data.
//
// A Sequence wraps a single-pass Cursor. Operators (Where, Select, GroupBy,
// Tap) return new sequences that reference their source; nothing is pulled
// until a terminal operation (Count, First, FirstOrDefault, Any, All,
// ForEach, ToSlice) drives the chain.
//
// Sequences are stateful cursors, not repeatable views. Two terminal calls on
// the same instance share one position: the second call continues where the
// first stopped. A sequence is not safe for concurrent use.
//
// GroupBy is the one eager stage: on its first pull it drains its entire
// source into an ordered index (O(n) extra space), then yields one Group per
// distinct key in order of first occurrence.
//
// # Usage
//
//	evens := sequence.Select(sequence.Of(2, 3, 4, 6, 7, 8, 10), func(x int) int {
//	    return x * 2
//	}).Where(func(x int) bool { return x%2 == 0 })
//
//	for v := range evens.Values() {
//	    fmt.Println(v)
//	}
//
// Grouping:
//
//	groups := sequence.GroupBy(sequence.FromSlice(points), func(p Point) int { return p.X })
//	groups.ForEach(func(g *sequence.Group[int, Point], _ int) {
//	    fmt.Println(g.Key(), g.Len())
//	})
package sequence
