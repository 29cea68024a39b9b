//go:build !mimirtrace

package dbg

// Enabled is true when the core is built with the mimirtrace tag.
const Enabled = false

// Log is a no-op unless the mimirtrace build tag is set.
func Log(owner any, operation, format string, args ...any) {}
