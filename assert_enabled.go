//go:build dynarray_debug

package dynarray

// debugAsserts gates precondition checks on indexing and positional
// operations. Violations panic in debug builds; release builds skip the
// checks entirely, preserving the unchecked hot-path contract.
const debugAsserts = true
