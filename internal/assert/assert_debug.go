//go:build julienne_debug

// Package assert provides zero-cost-in-release debug assertions for
// caller-contract violations that are undefined behavior rather than
// recoverable errors (e.g. a decreasing-order window underflowing past
// priority 0). Built under the
// julienne_debug tag so release builds pay nothing for them.
package assert

import "fmt"

// That panics with a formatted message if cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("julienne: assertion failed: "+format, args...))
	}
}
