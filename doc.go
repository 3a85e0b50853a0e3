// Package dynarray provides a generic dynamic array that manages element
// lifecycle explicitly.
//
// An Array owns one contiguous storage block and a logical size. Slots below
// the size hold live elements, slots above it are vacant; the Array
// constructs, relocates and destroys elements itself instead of leaning on
// append semantics. This gives it defined rollback behavior when element
// duplication can fail.
//
// # Quick Start
//
//	a := dynarray.New[int]()
//	defer a.Close()
//
//	_ = a.PushBack(1)
//	_ = a.PushBack(2)
//	_ = a.Insert(1, 9)   // [1 9 2]
//	a.Erase(0)           // [9 2]
//
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//
// # Growth
//
// Appends double capacity when exhausted (0 -> 1 -> 2 -> 4 -> ...); Reserve
// and Resize allocate exactly what is requested. Capacity never shrinks.
//
// # Element Capabilities
//
// Element types may opt into lifecycle hooks, detected once per Array
// instantiation:
//
//   - Cloner: deep, fallible duplication used by copy operations.
//   - Disposer: resource release, called exactly once per destroyed element.
//   - Pinned: forbids plain slot transfer between storage blocks; paired
//     with Cloner it switches relocation to the fail-safe duplication path.
//
// Relocation during growth follows the move-if-safe policy: slots are
// transferred directly unless the type is Pinned and clonable, in which case
// elements are duplicated first and the originals are destroyed only after
// the whole relocation succeeded. A failed duplication therefore leaves the
// original sequence fully intact.
//
// # Errors and Preconditions
//
// Reported errors are storage-size failures (ErrNegativeCapacity,
// ErrCapacityOverflow) and element errors from Cloner or Emplace
// constructors, which propagate unmodified. Each growth or insertion path
// documents its rollback guarantee; most give the strong guarantee (the
// Array is observably unchanged on failure).
//
// Out-of-range indexing, popping an empty Array and use of stale views are
// precondition violations, not reported errors. They panic under the
// dynarray_debug build tag and are undefined otherwise.
//
// # Concurrency
//
// An Array is single-threaded by design. Concurrent access without external
// synchronization is undefined behavior.
package dynarray
