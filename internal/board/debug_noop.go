//go:build !chego_debug

package board

// debugEnabled is false here so `if debugEnabled { ... }` call sites are
// eliminated at compile time; see debug.go.
const debugEnabled = false

// debugAssert is a no-op in normal builds; see debug.go.
func debugAssert(cond bool, msg string) {}
