// Package testutil provides testing utilities for dynarray.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded RNG for reproducible randomized tests and lifecycle-instrumented
// element types for verifying clone, transfer and disposal accounting.
//
// # Instrumented Elements
//
//	c := &testutil.Counters{}
//	a := dynarray.New[testutil.Tracked]()
//	_ = a.PushBack(testutil.Tracked{V: 1, C: c})
//	a.Close()
//	// c.Disposals == 1
//
// Schedule a clone failure with Counters.FailAfter to exercise rollback
// paths; failed clones report ErrCloneRefused.
package testutil
