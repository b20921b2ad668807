package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
)

// Height [Tree.Height]
func (u *BST[T]) Height() int {
	return u.HeightOf(u.root)
}

// HeightOf the subtree rooting at n: the number of edges on the longest path from n
// down to a leaf, -1 if n is nil. The subtree is walked level by level.
// Time: O(n); Space: O(width)
func (u *BST[T]) HeightOf(n *Node[T]) int {
	if n == nil {
		return -1
	}
	h := -1
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(n); !q.Empty(); h++ {
		for w := q.Size(); w > 0; w-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return h
}

// path descends from the root towards n, calling f on each ancestor of n from the root down.
// Since the ordering fixes where any node can be, the value of n picks the branch at each
// step and n itself is recognized by identity, which stays exact with repeated values.
// Returns false if n is nil or isn't reachable from the root.
// Time: O(D); Space: O(1)
func (u *BST[T]) path(n *Node[T], f func(*Node[T])) bool {
	if n == nil {
		return false
	}
	for cur := u.root; cur != nil; {
		if cur == n {
			return true
		}
		f(cur)
		if n.v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return false
}

// FindParent returns the node whose left or right child is n. Returns nil if n is the
// root, nil, or not reachable from the root.
// Time: O(D); Space: O(1)
func (u *BST[T]) FindParent(n *Node[T]) (p *Node[T]) {
	if !u.path(n, func(a *Node[T]) { p = a }) {
		return nil
	}
	return p
}

// Depth [Tree.Depth]
// The root has depth 0. Returns -1 if n is nil or not reachable from the root, e.g. a node
// that has been deleted or belongs to another tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Depth(n *Node[T]) int {
	d := 0
	if !u.path(n, func(*Node[T]) { d++ }) {
		return -1
	}
	return d
}

// BalanceFactor [Tree.BalanceFactor]
func (u *BST[T]) BalanceFactor() int {
	return u.BalanceFactorOf(u.root)
}

// BalanceFactorOf n is HeightOf(n.Left())-HeightOf(n.Right()), 0 if n is nil. It describes
// n alone; see Balanced for the whole tree.
// Time: O(size of n's subtree)
func (u *BST[T]) BalanceFactorOf(n *Node[T]) int {
	if n == nil {
		return 0
	}
	return u.HeightOf(n.l) - u.HeightOf(n.r)
}

// Balanced reports whether the balance factor of every node is -1, 0 or 1. Heights are
// computed bottom up in one post-order walk, which stops at the first unbalanced node.
// Time: O(n); Space: O(n)
func (u *BST[T]) Balanced() bool {
	hs := make(map[*Node[T]]int)
	h := func(n *Node[T]) int {
		if n == nil {
			return -1
		}
		return hs[n]
	}
	ok := true
	u.WalkPostOrder(func(n *Node[T]) bool {
		l, r := h(n.l), h(n.r)
		if l-r > 1 || r-l > 1 {
			ok = false
			return false
		}
		hs[n] = max(l, r) + 1
		return true
	})
	return ok
}
