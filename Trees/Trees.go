package Trees

import "golang.org/x/exp/constraints"

// Tree represents A binary search tree implemented using nodes whose handles
// are exposed to the caller. Receivers that take a node handle treat nil as an
// absent node and answer with a sentinel instead of failing. Receivers that
// has A bool as A second return value indicates whether the first return value
// is defined.
// None of the receivers synchronize; concurrent mutation needs external locking.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T constraints.Ordered] interface {
	//Add v to the Tree. Equal values are kept and placed to the right.
	Add(v T)
	//Delete one node holding v. Returns false if v isn't in the Tree.
	Delete(v T) bool
	//Find A node holding v, nil if there's none.
	Find(v T) *Node[T]
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Min() (T, bool)
	//Maximum element of the tree.
	Max() (T, bool)
	//Size of the tree.
	Size() uint
	//Traverse the tree in the given Order, calling f on each node.
	Traverse(o Order, f Visitor[T]) error
	//InOrder returns A closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Height of the whole tree, -1 if empty.
	Height() int
	//Depth of n, -1 if n isn't reachable from the root.
	Depth(n *Node[T]) int
	//BalanceFactor of the root.
	BalanceFactor() int
	//Rebalance rebuilds the tree to minimal height.
	Rebalance()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of A binary search tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*BST[int])(nil)
