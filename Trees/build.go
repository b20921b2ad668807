package Trees

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// btreeDegree is the degree of the ordered set used to dedupe input.
const btreeDegree = 32

// sortedSet returns the distinct values of vs in ascending order. vs isn't modified.
// Time: O(n log n).
func sortedSet[T constraints.Ordered](vs []T) []T {
	set := btree.NewG[T](btreeDegree, func(a, b T) bool { return a < b })
	for _, v := range vs {
		set.ReplaceOrInsert(v)
	}
	out := make([]T, 0, set.Len())
	set.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// build a subtree out of sorted vs[start..end], both inclusive. The root of each subtree
// is vs[mid] with mid=floor((start+end)/2), so even sized ranges put one more node on the right.
// Recursive; the recursion depth is O(log n).
func build[T constraints.Ordered](vs []T, start, end int) *Node[T] {
	if start > end {
		return nil
	}
	mid := start + (end-start)>>1
	return &Node[T]{vs[mid], build(vs, start, mid-1), build(vs, mid+1, end)}
}
