package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/g-m-twostay/go-bst/Trees"

	"github.com/urfave/cli/v2"
)

var defaultValues = []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7}

var cmdDemo = &cli.Command{
	Name:      "demo",
	Usage:     "build a tree, add, delete and search values, then rebalance",
	ArgsUsage: "[<value>...]",
	Flags:     []cli.Flag{renderFlag},
	Action:    runDemo,
}

func runDemo(cctx *cli.Context) error {
	vs := defaultValues
	if cctx.Args().Present() {
		vs = make([]int, 0, cctx.Args().Len())
		for _, s := range cctx.Args().Slice() {
			v, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("parsing value %q: %w", s, err)
			}
			vs = append(vs, v)
		}
	}
	w := cctx.App.Writer
	tree := Trees.From(vs)
	slog.Debug("built tree", "values", len(vs), "size", tree.Size(), "height", tree.Height())

	for _, v := range []int{10, 2, 12} {
		tree.Add(v)
	}
	removed := tree.Delete(12)
	slog.Debug("deleted value", "value", 12, "removed", removed)

	if n := tree.Find(23); n != nil {
		fmt.Fprintln(w, "Node found:", n.Value())
	} else {
		fmt.Fprintln(w, "Node not found.")
	}
	if err := printOrder(w, tree, Trees.LevelOrder); err != nil {
		return err
	}
	fmt.Fprintln(w, "Tree height:", tree.Height())
	if n := tree.Find(5); n != nil {
		fmt.Fprintln(w, "Node depth:", tree.Depth(n))
		fmt.Fprintln(w, "Node balance factor:", tree.BalanceFactorOf(n))
	} else {
		fmt.Fprintln(w, "Node not found.")
	}

	tree.Rebalance()
	slog.Info("rebalanced tree", "size", tree.Size(), "height", tree.Height())
	s, err := render(tree, cctx.String("render"))
	if err != nil {
		return err
	}
	fmt.Fprint(w, s)
	return nil
}

// printOrder writes the values of tree in order o on one line.
func printOrder(w io.Writer, tree *Trees.BST[int], o Trees.Order) error {
	var vs []int
	err := tree.Traverse(o, func(n *Trees.Node[int]) bool {
		vs = append(vs, n.Value())
		return true
	})
	if err != nil {
		return fmt.Errorf("%s order traversal: %w", o, err)
	}
	fmt.Fprintf(w, "%s order: %v\n", o, vs)
	return nil
}

func render(tree *Trees.BST[int], mode string) (string, error) {
	switch mode {
	case "pretty", "":
		return tree.Pretty(), nil
	case "tree":
		return tree.Render(), nil
	default:
		return "", fmt.Errorf("unknown render mode %q", mode)
	}
}
