package Trees

import "golang.org/x/exp/constraints"

// Node in a BST. A *Node is a handle: it is owned by exactly one parent
// slot (or the root slot) and can only be rewired by the tree itself.
// The zero value is a valid leaf holding the zero value of T.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
func leftmost[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n. n mustn't be nil.
func rightmost[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
