//go:build soadebug

package soa

// debug enables invariant checks after every structural mutation.
const debug = true
