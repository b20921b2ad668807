package Trees

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBST_Pretty(t *testing.T) {
	assert.Equal(t, "", New[int]().Pretty())
	assert.Equal(t, "└── 1\n", From([]int{1}).Pretty())
	assert.Equal(t, "│   ┌── 3\n└── 2\n    └── 1\n", From([]int{1, 2, 3}).Pretty())

	want := strings.Join([]string{
		"│       ┌── 7",
		"│   ┌── 6",
		"│   │   └── 5",
		"└── 4",
		"    │   ┌── 3",
		"    └── 2",
		"        └── 1",
	}, "\n") + "\n"
	assert.Equal(t, want, From([]int{1, 2, 3, 4, 5, 6, 7}).Pretty())
}

func TestBST_PrettyLines(t *testing.T) {
	tree := sampleTree()
	lines := strings.Split(strings.TrimSuffix(tree.Pretty(), "\n"), "\n")
	assert.Len(t, lines, int(tree.Size()))
	// lines run from the largest value down to the smallest.
	vs := tree.Values()
	for i, l := range lines {
		assert.True(t, strings.HasSuffix(l, "── "+strconv.Itoa(vs[len(vs)-1-i])), l)
	}
}

func TestBST_Render(t *testing.T) {
	s := From([]int{1, 2, 3}).Render()
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if assert.Len(t, lines, 3) {
		assert.Equal(t, "2", lines[0])
		assert.Contains(t, lines[1], "[L]")
		assert.Contains(t, lines[1], "1")
		assert.Contains(t, lines[2], "[R]")
		assert.Contains(t, lines[2], "3")
	}
	s = sampleTree().Render()
	for _, v := range []string{"5", "3", "8", "1", "4", "7", "9", "2", "23", "10"} {
		assert.Contains(t, s, v)
	}
	assert.NotEmpty(t, New[int]().Render())
}
