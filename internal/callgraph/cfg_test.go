package callgraph

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"

	"ll2cfg/internal/ir"
	"ll2cfg/internal/llparse"
)

const sample = `define i32 @main(i32 %argc) {
entry:
  %c = icmp eq i32 %argc, 1
  call void @llvm.dbg.value(metadata i32 %argc)
  br i1 %c, label %then, label %else

then:                                             ; preds = %entry
  %r = call i32 @foo(i32 1)
  br label %join

else:                                             ; preds = %entry
  call void @bar()
  call void @bar()
  br label %missing

join:                                             ; preds = %then
  ret i32 %r
}

define i32 @foo(i32 %x) {
  %y = tail call i32 @bar.impl(i32 %x)
  ret i32 %y
}

define void @bar() {
  unreachable
}
`

func parse(t *testing.T) []ir.Function {
	t.Helper()

	fns, err := llparse.Parse(context.Background(), strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, fns, 3)

	return fns
}

func TestBuildFuncCFG(t *testing.T) {
	fns := parse(t)

	f := BuildFuncCFG(fns[0])
	assert.Equal(t, "main", f.Name)
	require.Len(t, f.Blocks, 4)

	// entry: T -> then, F -> else; the dbg intrinsic is not a call site.
	b0 := f.Blocks[0]
	assert.Equal(t, 0, b0.Start)
	assert.Equal(t, 3, b0.End)
	require.Len(t, b0.Succs, 2)
	assert.Equal(t, 1, b0.Succs[0].BlockID)
	assert.Equal(t, "T", b0.Succs[0].Cond)
	assert.Equal(t, 2, b0.Succs[1].BlockID)
	assert.Equal(t, "F", b0.Succs[1].Cond)
	assert.Empty(t, b0.Calls)

	b1 := f.Blocks[1]
	require.Len(t, b1.Calls, 1)
	assert.Equal(t, "foo", b1.Calls[0].Callee)
	assert.Equal(t, 3, b1.Calls[0].Offset)
	require.Len(t, b1.Succs, 1)
	assert.Equal(t, 3, b1.Succs[0].BlockID)
	assert.Equal(t, "", b1.Succs[0].Cond)

	// else branches to a block that does not exist.
	b2 := f.Blocks[2]
	assert.Empty(t, b2.Succs)
	assert.Len(t, b2.Calls, 2)

	b3 := f.Blocks[3]
	assert.True(t, b3.Term)
	assert.False(t, b0.Term)

	bar := BuildFuncCFG(fns[2])
	require.Len(t, bar.Blocks, 1)
	assert.True(t, bar.Blocks[0].Term)
}

func TestBuildCFG_DOTOutput(t *testing.T) {
	cfg := BuildCFG(parse(t))
	require.Len(t, cfg.Funcs, 3)

	dot := render.DOTCFG(cfg, "ll2cfg example")
	assert.Contains(t, dot, "subgraph cluster_0 {")
	assert.Regexp(t, `f0_b0 -> f0_b1 \[.*>T</font>>\];`, dot)
	assert.Regexp(t, `f0_b0 -> f0_b2 \[.*>F</font>>\];`, dot)
}

func TestBuildCallGraph_DOTOutput(t *testing.T) {
	cg := BuildCallGraph(parse(t))

	assert.ElementsMatch(t, []string{"main", "foo", "bar"}, cg.Nodes)

	var calls []string
	for _, e := range cg.Edges {
		calls = append(calls, e.Caller+"->"+e.Callee)
	}
	assert.ElementsMatch(t, []string{"main->foo", "main->bar", "foo->bar.impl"}, calls)

	dot := render.DOT(cg, "ll2cfg call graph")
	assert.Contains(t, dot, "n_main -> n_foo")
	assert.Contains(t, dot, `[label="bar.impl"`)
}

func TestCallee(t *testing.T) {
	for _, tc := range []struct {
		inst string
		want string
		ok   bool
	}{
		{"  call void @f()", "f", true},
		{"  %1 = call i32 (ptr, ...) @printf(ptr @.str, i32 %0)", "printf", true},
		{"  %x = invoke i32 @g.h(i32 1) to label %ok unwind label %lp", "g.h", true},
		{"  %x = musttail call fastcc i32 @rec(i32 %n)", "rec", true},
		{`  call void @"quoted name"()`, `"quoted name"`, true},
		{"  %r = call i32 %fp(i32 1)", "", false},
		{"  store ptr @g, ptr %p", "", false},
	} {
		got, ok := Callee(tc.inst)
		assert.Equal(t, tc.ok, ok, tc.inst)
		assert.Equal(t, tc.want, got, tc.inst)
	}
}

func TestBuildFuncCFG_Invoke(t *testing.T) {
	src := `define void @f() personality ptr @__gxx_personality_v0 {
entry:
  %r = invoke i32 @may.throw()
          to label %cont unwind label %lpad

cont:                                             ; preds = %entry
  ret void

lpad:                                             ; preds = %entry
  %lp = landingpad { ptr, i32 } cleanup
  resume { ptr, i32 } %lp
}
`
	fns, err := llparse.Parse(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, fns, 1)

	f := BuildFuncCFG(fns[0])
	require.Len(t, f.Blocks, 3)

	b0 := f.Blocks[0]
	require.Len(t, b0.Succs, 2)
	assert.Equal(t, lattice.Successor{BlockID: 1}, b0.Succs[0])
	assert.Equal(t, lattice.Successor{BlockID: 2}, b0.Succs[1])
	require.Len(t, b0.Calls, 1)
	assert.Equal(t, "may.throw", b0.Calls[0].Callee)
}
