package Trees

import (
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree. For every node, values in the left
// subtree are strictly less than the node's value and values in the right subtree
// are greater than or equal to it, so repeated values route right.
// Nothing rebalances the tree implicitly: Add and Delete keep whatever shape the
// sequence of calls produces, and the height D can degrade to O(n). Call Rebalance
// to rebuild a tree of minimal height.
// The zero value is an empty tree ready to use.
type BST[T constraints.Ordered] struct {
	root *Node[T]
}

// New returns an empty BST.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{}
}

// From builds a BST of minimal height out of the distinct values of vs. vs may be
// unsorted, contain repeated values, or be nil; it isn't modified.
// Time: O(n log n).
func From[T constraints.Ordered](vs []T) *BST[T] {
	s := sortedSet(vs)
	return &BST[T]{build(s, 0, len(s)-1)}
}

// Root of the tree, nil if the tree is empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Empty reports whether the tree has no nodes.
func (u *BST[T]) Empty() bool {
	return u.root == nil
}

// Size [Tree.Size]
// Time: O(n)
func (u *BST[T]) Size() uint {
	var c uint
	u.WalkPreOrder(func(*Node[T]) bool {
		c++
		return true
	})
	return c
}

// Add [Tree.Add]
// Time: O(D); Space: O(1)
func (u *BST[T]) Add(v T) {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &Node[T]{v: v}
}

// Delete [Tree.Delete]
// curPtr always points at the child slot of the node being inspected, so every splice
// rewires the parent (or the root) in place. When the matched node has two children, its
// value is overwritten by its in-order successor's and the successor's value is then
// deleted from the right subtree, which ends at the successor itself.
// Time: O(D); Space: O(1)
func (u *BST[T]) Delete(v T) bool {
	for curPtr := &u.root; *curPtr != nil; {
		if cur := *curPtr; cur.v > v {
			curPtr = &cur.l
		} else if cur.v < v {
			curPtr = &cur.r
		} else if cur.l == nil {
			*curPtr = cur.r
			return true
		} else if cur.r == nil {
			*curPtr = cur.l
			return true
		} else {
			v = leftmost(cur.r).v
			cur.v = v
			curPtr = &cur.r
		}
	}
	return false
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if cur.v == v {
			return cur
		} else if v > cur.v {
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *BST[T]) Min() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *BST[T]) Max() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Values of the tree in ascending order, repeated values included.
// Time: O(n); Space: O(n)
func (u *BST[T]) Values() []T {
	var vs []T
	u.WalkInOrder(func(n *Node[T]) bool {
		vs = append(vs, n.v)
		return true
	})
	return vs
}

// Rebalance [Tree.Rebalance]
// The tree is rebuilt from Values like From does, except that repeated values are kept.
// Time: O(n); Space: O(n)
func (u *BST[T]) Rebalance() {
	vs := u.Values()
	u.root = build(vs, 0, len(vs)-1)
}

// boundedNode is a node with the value range its subtree must fall in.
type boundedNode[T constraints.Ordered] struct {
	n            *Node[T]
	lo, hi       T
	hasLo, hasHi bool
}

// Corrupt [Tree.Corrupt]
// Every node is checked against the bounds [lo, hi) inherited from its ancestors.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	st := []boundedNode[T]{}
	if u.root != nil {
		st = append(st, boundedNode[T]{n: u.root})
	}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if (f.hasLo && f.n.v < f.lo) || (f.hasHi && !(f.n.v < f.hi)) {
			return true
		}
		if f.n.l != nil {
			st = append(st, boundedNode[T]{f.n.l, f.lo, f.n.v, f.hasLo, true})
		}
		if f.n.r != nil {
			st = append(st, boundedNode[T]{f.n.r, f.n.v, f.hi, true, f.hasHi})
		}
	}
	return false
}
