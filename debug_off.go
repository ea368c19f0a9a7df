//go:build !soadebug

package soa

const debug = false
