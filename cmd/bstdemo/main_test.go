package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(append([]string{"bstdemo"}, args...), &buf)
	return buf.String(), err
}

func TestDemo(t *testing.T) {
	out, err := runArgs(t, "demo")
	require.NoError(t, err)
	want := strings.Join([]string{
		"Node found: 23",
		"level order: [5 3 8 1 4 7 9 2 23 10]",
		"Tree height: 4",
		"Node depth: 0",
		"Node balance factor: -1",
		"│           ┌── 23",
		"│       ┌── 10",
		"│   ┌── 9",
		"│   │   │   ┌── 8",
		"│   │   └── 7",
		"└── 5",
		"    │       ┌── 4",
		"    │   ┌── 3",
		"    └── 2",
		"        └── 1",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestDemo_Values(t *testing.T) {
	out, err := runArgs(t, "demo", "--render", "tree", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Node not found.")
	assert.Contains(t, out, "level order: [2 1 3 2 10]")
	assert.Contains(t, out, "[R]")
}

func TestDemo_Errors(t *testing.T) {
	_, err := runArgs(t, "demo", "1", "x")
	assert.ErrorContains(t, err, `parsing value "x"`)
	_, err = runArgs(t, "demo", "--render", "sideways")
	assert.ErrorContains(t, err, "unknown render mode")
}

func TestRandom(t *testing.T) {
	out, err := runArgs(t, "random", "--count", "30", "--seed", "7")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 11)
	assert.Equal(t, "Is balanced: true", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "level order: ["))
	assert.True(t, strings.HasPrefix(lines[4], "in order: ["))
	assert.True(t, strings.HasPrefix(lines[5], "Is balanced: "))
	assert.Equal(t, "Is balanced: true", lines[6], "rebalanced")

	again, err := runArgs(t, "random", "--count", "30", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again, "a fixed seed gives the same run")
}

func TestRandom_Errors(t *testing.T) {
	_, err := runArgs(t, "random", "--count", "-1")
	assert.Error(t, err)
	_, err = runArgs(t, "random", "--max", "0")
	assert.Error(t, err)
}
