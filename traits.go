package dynarray

// Cloner is implemented by element types whose duplication is deep and can
// fail, typically because the element owns an external resource. When T
// implements Cloner, copy operations (Clone, CopyFrom, Insert of a value
// into a copy path) duplicate elements through it; otherwise elements are
// duplicated by plain value copy, which never fails.
//
// Capability detection is static per element type T. An interface-typed T
// always gets plain value semantics.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Disposer is implemented by element types that own resources released
// outside garbage collection. The Array calls Dispose exactly once for every
// live element it destroys. Dispose must not fail and must tolerate the zero
// value; a panicking Dispose is outside the supported contract.
type Disposer interface {
	Dispose()
}

// Pinned marks element types whose values must not be relocated between
// storage blocks by a plain slot transfer, for example values that are
// identity- or address-entangled with external state. During reallocation a
// Pinned element that also implements Cloner is duplicated via Clone and the
// original is disposed only after the whole relocation succeeded, so a
// failed duplication leaves the original sequence intact. A Pinned type
// without Clone has no fail-safe duplication path and is relocated by
// transfer as the only option.
//
// In-block shifts (the Insert fast path and Erase) always transfer slots;
// Pinned only affects relocation between storage blocks.
type Pinned interface {
	PinnedElement()
}

// traits captures the element capabilities of T, resolved once per Array
// instantiation.
type traits[T any] struct {
	cloneable      bool
	cloneViaAddr   bool
	disposable     bool
	disposeViaAddr bool
	pinned         bool
}

func resolveTraits[T any]() traits[T] {
	var zero T
	tr := traits[T]{}
	if _, ok := any(zero).(Cloner[T]); ok {
		tr.cloneable = true
	} else if _, ok := any(&zero).(Cloner[T]); ok {
		tr.cloneable = true
		tr.cloneViaAddr = true
	}
	if _, ok := any(zero).(Disposer); ok {
		tr.disposable = true
	} else if _, ok := any(&zero).(Disposer); ok {
		tr.disposable = true
		tr.disposeViaAddr = true
	}
	if _, ok := any(zero).(Pinned); ok {
		tr.pinned = true
	} else if _, ok := any(&zero).(Pinned); ok {
		tr.pinned = true
	}
	return tr
}

// moveSafe reports whether relocation between storage blocks may transfer
// slots directly. Mirrors the move-if-safe policy: transfer unless the type
// is Pinned and a fail-safe duplication path (Cloner) exists.
func (tr traits[T]) moveSafe() bool {
	return !tr.pinned || !tr.cloneable
}

// clone duplicates v. For non-Cloner types this is a plain value copy and
// never fails.
func (tr traits[T]) clone(v T) (T, error) {
	switch {
	case !tr.cloneable:
		return v, nil
	case tr.cloneViaAddr:
		return any(&v).(Cloner[T]).Clone()
	default:
		return any(v).(Cloner[T]).Clone()
	}
}

// destroy releases the live value in slot p and leaves the slot vacant.
func (tr traits[T]) destroy(p *T) {
	if tr.disposable {
		if tr.disposeViaAddr {
			any(p).(Disposer).Dispose()
		} else {
			any(*p).(Disposer).Dispose()
		}
	}
	var zero T
	*p = zero
}

// transfer moves the value from src into dst and vacates src. dst must be
// vacant; the moved value's resources are owned by dst afterwards.
func transfer[T any](dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}
