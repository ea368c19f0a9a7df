package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArity(t *testing.T) {
	a := newArity(3)

	assert.Equal(t, "Vec3", a.Name)
	assert.Equal(t, "T0, T1, T2", a.Args)
	assert.Equal(t, "T0, T1, T2 any", a.Params)
	assert.Equal(t, []int{0, 1, 2}, a.Cols)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "e0 T0, e1 T1", join([]int{0, 1}, ", ", "e%d T%d"))
	assert.Equal(t, "sizeOf[T0]()", join([]int{0}, " + ", "sizeOf[T%d]()"))
}

func TestGenerate(t *testing.T) {
	src, err := generate("soa", 1, 12)
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "vec.gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "soa", f.Name.Name)

	s := string(src)
	assert.Contains(t, s, "// Code generated by soagen. DO NOT EDIT.")
	assert.Contains(t, s, "type Vec1[T0 any] struct {")
	assert.Contains(t, s, "func (v *Vec1[T0]) At(index int) T0 {")
	assert.Contains(t, s, "func (v *Vec3[T0, T1, T2]) Push(e0 T0, e1 T1, e2 T2) {")
	assert.Contains(t, s, "\tc10 column[T10]\n")
	assert.NotContains(t, s, "Vec13")
}

func TestGenerate_MatchesCheckedIn(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "..", "vec.gen.go"))
	require.NoError(t, err)

	got, err := generate("soa", 1, 12)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got), "vec.gen.go is stale, run go generate")
}

func TestGenerate_InvalidRange(t *testing.T) {
	_, err := generate("soa", 0, 3)
	require.Error(t, err)

	_, err = generate("soa", 4, 3)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vec.gen.go")

	require.NoError(t, run(out, "columns", 2, 3))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package columns")
	assert.Contains(t, string(src), "type Vec3[")
	assert.NotContains(t, string(src), "type Vec1[")
}
