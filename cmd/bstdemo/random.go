package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/g-m-twostay/go-bst/Trees"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
)

var cmdRandom = &cli.Command{
	Name:  "random",
	Usage: "build a tree from random values, unbalance it, then rebalance it",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Usage:   "number of random values, and of values added to unbalance the tree",
			Value:   20,
			EnvVars: []string{"BST_COUNT"},
		},
		&cli.IntFlag{
			Name:    "max",
			Usage:   "random values are drawn from [0, max)",
			Value:   100,
			EnvVars: []string{"BST_MAX"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed; 0 picks one at random",
			EnvVars: []string{"BST_SEED"},
		},
		renderFlag,
	},
	Action: runRandom,
}

func runRandom(cctx *cli.Context) error {
	count, hi := cctx.Int("count"), cctx.Int("max")
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}
	if hi < 1 {
		return fmt.Errorf("max must be positive, got %d", hi)
	}
	faker := gofakeit.New(cctx.Int64("seed"))
	vs := make([]int, count)
	for i := range vs {
		vs[i] = faker.Number(0, hi-1)
	}
	w := cctx.App.Writer
	tree := Trees.From(vs)
	slog.Debug("built tree from random values", "values", vs, "size", tree.Size())
	if err := report(w, tree); err != nil {
		return err
	}

	for range count {
		tree.Add(faker.Number(hi, hi+99))
	}
	slog.Info("added values above max", "count", count, "height", tree.Height())
	fmt.Fprintln(w, "Is balanced:", tree.Balanced())

	tree.Rebalance()
	slog.Info("rebalanced tree", "size", tree.Size(), "height", tree.Height())
	if err := report(w, tree); err != nil {
		return err
	}
	s, err := render(tree, cctx.String("render"))
	if err != nil {
		return err
	}
	fmt.Fprint(w, s)
	return nil
}

// report whether tree is balanced and its values in every order.
func report(w io.Writer, tree *Trees.BST[int]) error {
	fmt.Fprintln(w, "Is balanced:", tree.Balanced())
	for _, o := range []Trees.Order{Trees.LevelOrder, Trees.PreOrder, Trees.PostOrder, Trees.InOrder} {
		if err := printOrder(w, tree, o); err != nil {
			return err
		}
	}
	return nil
}
