// Package soa implements a Structure-of-Arrays container.
//
// A VecN keeps N parallel columns, one slice per element type, and exposes
// them as rows: the values at the same index across all columns. Iterating
// a single column touches only that column's memory, which is what makes the
// layout cache friendly compared to a slice of structs.
//
// All columns share one length and one capacity. Growth allocates every
// column first and swaps them in together, so a VecN is never observed with
// columns of different sizes.
//
// Containers are not safe for concurrent use.
//
// Types Vec1 through Vec12 live in vec.gen.go and are produced by
// internal/cmd/soagen.
package soa

//go:generate go run ./internal/cmd/soagen -o vec.gen.go -min 1 -max 12
