//go:build !julienne_debug

package assert

// That is a no-op in release builds; see assert_debug.go.
func That(cond bool, format string, args ...any) {}
