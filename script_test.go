package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestRunScriptFile(t *testing.T) {
	s, err := LoadScript("testdata/script.yaml")
	require.NoError(t, err)
	require.Len(t, s.Ops, 8)

	var buf bytes.Buffer
	l, err := RunScript(&buf, s)
	require.NoError(t, err)
	require.True(t, l.Empty())

	want := []struct{ op, list string }{
		{"build", "[1 2 3]"},
		{"insert-after", "[1 99 2 3]"},
		{"erase-after", "[1 2 3]"},
		{"push-front", "[0 1 2 3]"},
		{"insert-after", "[-1 0 1 2 3]"},
		{"erase-after", "[-1 0 1 2]"},
		{"pop-front", "[0 1 2]"},
		{"clear", "[]"},
	}
	var expected strings.Builder
	for _, w := range want {
		fmt.Fprintf(&expected, "%-13s %s\n", w.op, w.list)
	}
	if diff := cmp.Diff(expected.String(), buf.String()); diff != "" {
		t.Fatalf("script output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunScriptErrors(t *testing.T) {
	testCases := []struct {
		name string
		ops  []ScriptOp
		err  string
		left []int
	}{
		{
			name: "unknown op",
			ops:  []ScriptOp{{Op: "reverse"}},
			err:  `op 0 (reverse): unknown op "reverse"`,
		},
		{
			name: "pop empty",
			ops:  []ScriptOp{{Op: "pop-front"}},
			err:  "op 0 (pop-front): list is empty",
		},
		{
			name: "missing pos",
			ops:  []ScriptOp{{Op: "insert-after", Value: 1}},
			err:  "op 0 (insert-after): missing pos",
		},
		{
			name: "insert past end",
			ops: []ScriptOp{
				{Op: "build", Values: []int{1, 2}},
				{Op: "insert-after", Pos: intp(2), Value: 3},
			},
			err:  "op 1 (insert-after): position 2 out of range for list of length 2",
			left: []int{1, 2},
		},
		{
			name: "erase after last",
			ops: []ScriptOp{
				{Op: "build", Values: []int{1, 2}},
				{Op: "erase-after", Pos: intp(1)},
			},
			err:  "op 1 (erase-after): position 1 has no successor in list of length 2",
			left: []int{1, 2},
		},
		{
			name: "erase after before-begin of empty list",
			ops:  []ScriptOp{{Op: "erase-after", Pos: intp(-1)}},
			err:  "op 0 (erase-after): position -1 has no successor in list of length 0",
		},
		{
			name: "position below before-begin",
			ops:  []ScriptOp{{Op: "insert-after", Pos: intp(-2)}},
			err:  "op 0 (insert-after): position -2 out of range for list of length 0",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := RunScript(&bytes.Buffer{}, Script{Ops: tc.ops})
			require.EqualError(t, err, tc.err)
			require.Equal(t, len(tc.left), l.Len())
			if len(tc.left) > 0 {
				require.Equal(t, tc.left, l.Values())
			}
		})
	}
}

func TestInsertAfterBeforeBeginOnEmptyScript(t *testing.T) {
	l, err := RunScript(&bytes.Buffer{}, Script{Ops: []ScriptOp{
		{Op: "insert-after", Pos: intp(-1), Value: 7},
		{Op: "insert-after", Pos: intp(0), Value: 8},
	}})
	require.NoError(t, err)
	require.Equal(t, []int{7, 8}, l.Values())
}

func TestLoadScriptMissingFile(t *testing.T) {
	_, err := LoadScript("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
