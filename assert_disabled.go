//go:build !dynarray_debug

package dynarray

const debugAsserts = false
