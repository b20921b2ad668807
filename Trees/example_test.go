package Trees_test

import (
	"fmt"

	"github.com/g-m-twostay/go-bst/Trees"
)

func ExampleFrom() {
	tree := Trees.From([]int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7})
	fmt.Println(tree.Values())
	fmt.Println(tree.Height())
	// Output:
	// [1 3 4 5 7 8 9 23]
	// 3
}

func ExampleBST_WalkLevelOrder() {
	tree := Trees.From([]int{1, 2, 3})
	_ = tree.WalkLevelOrder(func(n *Trees.Node[int]) bool {
		fmt.Println(n.Value())
		return true
	})
	// Output:
	// 2
	// 1
	// 3
}

func ExampleBST() {
	tree := Trees.From([]int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7})
	tree.Add(10)
	tree.Add(2)
	tree.Add(12)
	tree.Delete(12)
	if n := tree.Find(23); n != nil {
		fmt.Println("found:", n.Value())
	}
	var level []int
	_ = tree.Traverse(Trees.LevelOrder, func(n *Trees.Node[int]) bool {
		level = append(level, n.Value())
		return true
	})
	fmt.Println("level order:", level)
	fmt.Println("height:", tree.Height())
	five := tree.Find(5)
	fmt.Println("depth of 5:", tree.Depth(five))
	fmt.Println("balance factor of 5:", tree.BalanceFactorOf(five))
	fmt.Println("balanced:", tree.Balanced())
	tree.Rebalance()
	fmt.Println("balanced:", tree.Balanced())
	fmt.Print(tree.Pretty())
	// Output:
	// found: 23
	// level order: [5 3 8 1 4 7 9 2 23 10]
	// height: 4
	// depth of 5: 0
	// balance factor of 5: -1
	// balanced: false
	// balanced: true
	// │           ┌── 23
	// │       ┌── 10
	// │   ┌── 9
	// │   │   │   ┌── 8
	// │   │   └── 7
	// └── 5
	//     │       ┌── 4
	//     │   ┌── 3
	//     └── 2
	//         └── 1
}
