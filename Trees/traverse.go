package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Order of a traversal.
type Order uint8

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	case LevelOrder:
		return "level"
	default:
		return "unknown"
	}
}

// Visitor is called on each node of a traversal. Returning false stops the traversal.
// The tree must not be modified by a Visitor.
type Visitor[T constraints.Ordered] func(n *Node[T]) bool

// Traverse [Tree.Traverse]
// Returns an *InvalidArgumentError if f is nil or o isn't a known Order.
func (u *BST[T]) Traverse(o Order, f Visitor[T]) error {
	if f == nil {
		return &InvalidArgumentError{"Traverse", "visitor"}
	}
	switch o {
	case PreOrder:
		u.WalkPreOrder(f)
	case InOrder:
		u.WalkInOrder(f)
	case PostOrder:
		u.WalkPostOrder(f)
	case LevelOrder:
		return u.WalkLevelOrder(f)
	default:
		return &InvalidArgumentError{"Traverse", "order " + o.String()}
	}
	return nil
}

// WalkPreOrder visits self, then left, then right.
// Time: O(n); Space: O(D)
func (u *BST[T]) WalkPreOrder(f Visitor[T]) {
	if u.root == nil {
		return
	}
	st := arraystack.New()
	for st.Push(u.root); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		if !f(cur) {
			return
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
}

// WalkInOrder visits left, then self, then right, so values come in ascending order.
// Time: O(n); Space: O(D)
func (u *BST[T]) WalkInOrder(f Visitor[T]) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		if !f(cur) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}

// WalkPostOrder visits left, then right, then self.
// Time: O(n); Space: O(D)
func (u *BST[T]) WalkPostOrder(f Visitor[T]) {
	var last *Node[T]
	st := arraystack.New()
	for cur := u.root; cur != nil || !st.Empty(); {
		if cur != nil {
			st.Push(cur)
			cur = cur.l
			continue
		}
		top, _ := st.Peek()
		n := top.(*Node[T])
		if n.r != nil && n.r != last {
			cur = n.r
			continue
		}
		st.Pop()
		if !f(n) {
			return
		}
		last = n
	}
}

// WalkLevelOrder visits the nodes breadth first, left to right within each level.
// Returns an *InvalidArgumentError if f is nil. It's a no-op on an empty tree.
// Time: O(n); Space: O(n)
func (u *BST[T]) WalkLevelOrder(f Visitor[T]) error {
	if f == nil {
		return &InvalidArgumentError{"WalkLevelOrder", "visitor"}
	}
	if u.root == nil {
		return nil
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(u.root); !q.Empty(); {
		cur, err := q.Pop()
		if err != nil {
			return err
		}
		if !f(cur) {
			return nil
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return nil
}

// InOrder [Tree.InOrder]
// Each call starts an independent traversal of the current tree; the tree itself isn't touched.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BST[T]) InOrder() func() (T, bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*Node[T])
		for n := cur.r; n != nil; n = n.l {
			st.Push(n)
		}
		return cur.v, true
	}
}
