package main

import (
	"fmt"
	"strings"
	"text/template"
)

type fileData struct {
	Package string
	Arities []arity
}

// arity holds the names used by the template for one column count.
type arity struct {
	N    int
	Cols []int

	// Vec2
	Name string
	// T0, T1 any
	Params string
	// T0, T1
	Args string
}

func newArity(n int) arity {
	a := arity{
		N:    n,
		Name: fmt.Sprintf("Vec%d", n),
	}

	args := make([]string, n)
	for i := range n {
		a.Cols = append(a.Cols, i)
		args[i] = fmt.Sprintf("T%d", i)
	}

	a.Args = strings.Join(args, ", ")
	a.Params = a.Args + " any"

	return a
}

// join renders format once per column and joins the results with sep.
// Each %d in format is replaced by the column index.
func join(cols []int, sep, format string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = strings.ReplaceAll(format, "%d", fmt.Sprint(c))
	}

	return strings.Join(parts, sep)
}

var fileTemplate = template.Must(template.New("vec").Funcs(template.FuncMap{
	"join": join,
}).Parse(vecTemplate))

const vecTemplate = `// Code generated by soagen. DO NOT EDIT.

package {{.Package}}
{{range .Arities}}{{$v := printf "%s[%s]" .Name .Args}}
// {{.Name}} is a Structure-of-Arrays container with {{.N}} {{if eq .N 1}}column{{else}}columns{{end}}.
//
// The zero value is an empty container ready to use.
type {{.Name}}[{{.Params}}] struct {
	header
{{range .Cols}}
	c{{.}} column[T{{.}}]{{end}}
}

// New{{.Name}} returns an empty {{.Name}}. Nothing is allocated until the first push.
func New{{.Name}}[{{.Params}}]() *{{$v}} {
	return &{{$v}}{}
}

// New{{.Name}}WithCapacity returns an empty {{.Name}} with capacity slots allocated in every column.
func New{{.Name}}WithCapacity[{{.Params}}](capacity int) *{{$v}} {
	v := &{{$v}}{}
	v.realloc(capacity)

	return v
}

// RowSize{{.N}} returns the size in bytes of one row across all columns.
func RowSize{{.N}}[{{.Params}}]() uintptr {
	return {{join .Cols " + " "sizeOf[T%d]()"}}
}

// Reserve grows every column to exactly capacity slots.
// It does nothing if capacity is not above the current one.
func (v *{{$v}}) Reserve(capacity int) {
	if capacity <= v.capacity {
		return
	}

	v.realloc(capacity)
}

// Push appends one row, doubling the capacity when the container is full.
func (v *{{$v}}) Push({{join .Cols ", " "e%d T%d"}}) {
	if v.full() {
		v.realloc(v.grown())
	}
{{range .Cols}}
	v.c{{.}}.set(v.length, e{{.}}){{end}}
	v.length++
}

// Remove deletes the row at index and shifts the following rows left,
// keeping their order.
func (v *{{$v}}) Remove(index int) error {
	if err := checkRemove("Remove", index, v.length); err != nil {
		return err
	}
{{range .Cols}}
	v.c{{.}}.remove(index, v.length){{end}}
	v.length--
	v.assertInvariants()

	return nil
}

// SwapRemove deletes the row at index by moving the last row into its place.
// It runs in constant time but does not keep the row order.
func (v *{{$v}}) SwapRemove(index int) error {
	if err := checkRemove("SwapRemove", index, v.length); err != nil {
		return err
	}
{{range .Cols}}
	v.c{{.}}.swapRemove(index, v.length){{end}}
	v.length--
	v.assertInvariants()

	return nil
}

// Swap exchanges the rows at i and j in every column.
func (v *{{$v}}) Swap(i, j int) error {
	if err := checkIndex("Swap", i, v.length); err != nil {
		return err
	}

	if err := checkIndex("Swap", j, v.length); err != nil {
		return err
	}
{{range .Cols}}
	v.c{{.}}.swap(i, j){{end}}

	return nil
}

// At returns a copy of the row at index.
// It panics with an *IndexError if index is out of range.
func (v *{{$v}}) At(index int) ({{.Args}}) {
	mustIndex("At", index, v.length)

	return {{join .Cols ", " "v.c%d.data[index]"}}
}

// Ref returns pointers to the row at index.
// The pointers refer to the current buffers: once the container reallocates,
// writes through them are no longer visible in the container.
// It panics with an *IndexError if index is out of range.
func (v *{{$v}}) Ref(index int) ({{join .Cols ", " "*T%d"}}) {
	mustIndex("Ref", index, v.length)

	return {{join .Cols ", " "&v.c%d.data[index]"}}
}

// Columns returns the first Len values of every column.
// The slices share memory with the container and may be written to.
// Appending to them never touches the container.
func (v *{{$v}}) Columns() ({{join .Cols ", " "[]T%d"}}) {
	return {{join .Cols ", " "v.c%d.view(v.length)"}}
}

// Pop removes and returns the last row. ok is false if the container is empty.
func (v *{{$v}}) Pop() ({{join .Cols ", " "e%d T%d"}}, ok bool) {
	if v.length == 0 {
		return {{join .Cols ", " "e%d"}}, false
	}

	v.length--

	return {{join .Cols ", " "v.c%d.take(v.length)"}}, true
}

// Truncate drops every row from n on. It does nothing if n >= Len.
func (v *{{$v}}) Truncate(n int) {
	if !v.truncateLen(n) {
		return
	}
{{range .Cols}}
	v.c{{.}}.truncate(n, v.length){{end}}
	v.length = n
}

// Clear drops all rows and keeps the capacity.
func (v *{{$v}}) Clear() {
	v.Truncate(0)
}

// ShrinkToFit reallocates every column to exactly Len slots.
func (v *{{$v}}) ShrinkToFit() {
	if v.length == v.capacity {
		return
	}

	v.realloc(v.length)
}

// Free releases the buffers of all columns at once and leaves an empty container.
func (v *{{$v}}) Free() {
{{- range .Cols}}
	v.c{{.}}.free(){{end}}
	v.header = header{}
	v.assertInvariants()
}

// Stats reports the length, capacity and memory usage of the container.
func (v *{{$v}}) Stats() Stats {
	return v.stats(RowSize{{.N}}[{{.Args}}]())
}

// realloc allocates every column before swapping any of them in.
func (v *{{$v}}) realloc(capacity int) {
	mustCapacity(capacity)
{{range .Cols}}
	d{{.}} := v.c{{.}}.resized(capacity, v.length){{end}}

	{{join .Cols ", " "v.c%d.data"}} = {{join .Cols ", " "d%d"}}
	v.capacity = capacity
	v.assertInvariants()
}

func (v *{{$v}}) assertInvariants() {
	if debug {
		v.check({{join .Cols ", " "len(v.c%d.data)"}})
	}
}
{{end}}`
