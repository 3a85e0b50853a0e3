//go:build dynarray_debug

package rawbuf

// debugAsserts gates precondition checks on slot addressing. Violations
// panic in debug builds; release builds skip the checks entirely.
const debugAsserts = true
