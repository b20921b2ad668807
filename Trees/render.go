package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// prettyItem is either a subtree still to be expanded or a line ready to be written.
type prettyItem[T constraints.Ordered] struct {
	n      *Node[T]
	prefix string
	isLeft bool
	emit   bool
}

// Pretty renders the tree sideways, one value per line: the right subtree is drawn above
// its parent and the left subtree below, and the indentation grows with the depth.
// Returns "" for an empty tree.
//
//	│   ┌── 3
//	└── 2
//	    └── 1
func (u *BST[T]) Pretty() string {
	var sb strings.Builder
	st := arraystack.New()
	if u.root != nil {
		st.Push(prettyItem[T]{n: u.root, isLeft: true})
	}
	for !st.Empty() {
		top, _ := st.Pop()
		it := top.(prettyItem[T])
		if it.emit {
			sb.WriteString(it.prefix)
			if it.isLeft {
				sb.WriteString("└── ")
			} else {
				sb.WriteString("┌── ")
			}
			fmt.Fprintln(&sb, it.n.v)
			continue
		}
		// pushed in reverse: right subtree, self, then left subtree are popped in this order.
		if it.n.l != nil {
			st.Push(prettyItem[T]{n: it.n.l, prefix: it.prefix + pick(it.isLeft, "    ", "│   "), isLeft: true})
		}
		st.Push(prettyItem[T]{it.n, it.prefix, it.isLeft, true})
		if it.n.r != nil {
			st.Push(prettyItem[T]{n: it.n.r, prefix: it.prefix + pick(it.isLeft, "│   ", "    "), isLeft: false})
		}
	}
	return sb.String()
}

func pick(c bool, a, b string) string {
	if c {
		return a
	}
	return b
}

type renderItem[T constraints.Ordered] struct {
	n      *Node[T]
	branch treeprint.Tree
}

// Render the tree top down with treeprint. Children are labeled L or R so a lone child
// can be told apart.
func (u *BST[T]) Render() string {
	if u.root == nil {
		return treeprint.New().String()
	}
	root := treeprint.NewWithRoot(u.root.v)
	st := arraystack.New()
	st.Push(renderItem[T]{u.root, root})
	for !st.Empty() {
		top, _ := st.Pop()
		it := top.(renderItem[T])
		for _, c := range [2]struct {
			meta string
			n    *Node[T]
		}{{"L", it.n.l}, {"R", it.n.r}} {
			if c.n == nil {
				continue
			}
			if c.n.l == nil && c.n.r == nil {
				it.branch.AddMetaNode(c.meta, c.n.v)
			} else {
				st.Push(renderItem[T]{c.n, it.branch.AddMetaBranch(c.meta, c.n.v)})
			}
		}
	}
	return root.String()
}
