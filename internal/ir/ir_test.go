package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchOpcode(t *testing.T) {
	for line, want := range map[string]string{
		"  br label %a":                                  "br",
		"\tbr i1 %c, label %a, label %b":                 "br",
		"switch i32 %x, label %d [":                      "switch",
		"  indirectbr ptr %p, [label %a]":                "indirectbr",
		"  bra label %a":                                 "",
		"  %br = add i32 1, 2":                           "",
		"br":                                             "",
		"  ret void":                                     "",
		"  call void @br(label %not_a_block)":            "",
		"  invoke void @h() to label %a unwind label %b": "invoke",
		"  %r = invoke i32 @h()":                         "invoke",
		"  %x = call i32 @invoke(i32 1)":                 "",
		"  %x":                                           "",
	} {
		assert.Equal(t, want, BranchOpcode(line), line)
	}
}

func TestTerminator(t *testing.T) {
	for _, tc := range []struct {
		insts []string
		want  Term
	}{
		{nil, TermNone},
		{[]string{"  ret void"}, TermReturn},
		{[]string{"  %x = add i32 1, 2", "  ret i32 %x"}, TermReturn},
		{[]string{"  unreachable"}, TermUnreachable},
		{[]string{"  br label %a"}, TermBranch},
		{[]string{"  ret void", "  %x = add i32 1, 2"}, TermNone},
		{[]string{"  retx"}, TermNone},
	} {
		b := BasicBlock{Instructions: tc.insts}
		assert.Equal(t, tc.want, b.Terminator(), "%q", tc.insts)
	}

	assert.Equal(t, "ret", TermReturn.String())
	assert.Equal(t, "none", TermNone.String())
}

func TestLookup(t *testing.T) {
	f := Function{Blocks: []BasicBlock{{Name: ""}, {Name: "a"}, {Name: "a", Preds: []string{"%x"}}}}

	i, ok := f.Lookup("%a")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = f.Lookup("")
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = f.Lookup("b")
	assert.False(t, ok)

	f.Blocks = append(f.Blocks, BasicBlock{Name: "a b"})
	i, ok = f.Lookup(`%"a b"`)
	require.True(t, ok)
	assert.Equal(t, 3, i)
}

func TestOperandName(t *testing.T) {
	for op, want := range map[string]string{
		"%if.end": "if.end",
		`%"a b"`:  "a b",
		"12":      "12",
		`%"`:      `"`,
		"":        "",
	} {
		assert.Equal(t, want, OperandName(op), op)
	}
}

func TestFilter(t *testing.T) {
	fns := []Function{{Name: "a"}, {Name: "b"}, {Name: "a"}}

	assert.Len(t, Filter(fns, ""), 3)
	assert.Len(t, Filter(fns, "a"), 2)
	assert.Empty(t, Filter(fns, "c"))
}

func TestFunctionString(t *testing.T) {
	f := Function{
		Name: "f",
		Blocks: []BasicBlock{
			{Instructions: []string{"  br i1 %c, label %a, label %b"}, Succs: []string{"%a", "%b"}},
			{Name: "a", Preds: []string{"%0"}, Instructions: []string{"  ret void"}},
		},
	}

	want := "Function: f\n" +
		"\tBlock: \t; preds = \n" +
		"\t\t    br i1 %c, label %a, label %b\n" +
		"\t; successors = %a, %b\n" +
		"\tBlock: a\t; preds = %0\n" +
		"\t\t    ret void\n" +
		"\t; successors = \n"
	assert.Equal(t, want, f.String())
}
