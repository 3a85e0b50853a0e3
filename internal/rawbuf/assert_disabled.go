//go:build !dynarray_debug

package rawbuf

const debugAsserts = false
