package wasm

// TypedIndexVec is an append-only vector of T indexed only by A, one of the
// Store address types or a module-local index type. The Store uses it for
// all five kinds of runtime object: the address returned by Push always
// equals the vector's length immediately before the push, and no address is
// ever reused once assigned. ModuleInst's address tables and Frame's locals
// are plain slices indexed by int, not TypedIndexVecs.
//
// This mirrors the TypedIndexVec<T, IndexT> of the reference implementation
// almost directly, using a Go generic constrained to ~uint32 in place of a
// phantom type parameter.
type TypedIndexVec[T any, A ~uint32] struct {
	data []T
}

// NewTypedIndexVec constructs a vector from a pre-built ordered sequence.
// The i-th element is addressable as A(i).
func NewTypedIndexVec[T any, A ~uint32](data []T) TypedIndexVec[T, A] {
	return TypedIndexVec[T, A]{data: data}
}

// Len returns the number of entries, and therefore the address that the
// next Push will assign.
func (v *TypedIndexVec[T, A]) Len() int {
	return len(v.data)
}

// Push appends item and returns the address assigned to it, which equals
// the vector's length before the append.
func (v *TypedIndexVec[T, A]) Push(item T) A {
	addr := A(len(v.data))
	v.data = append(v.data, item)
	return addr
}

// Get performs a bounds-checked lookup. ok is false when addr is out of
// range, in which case the returned value is the zero value of T.
func (v *TypedIndexVec[T, A]) Get(addr A) (value T, ok bool) {
	i := int(addr)
	if i < 0 || i >= len(v.data) {
		return value, false
	}
	return v.data[i], true
}

// GetMut returns a pointer into the backing array for in-place mutation,
// e.g. growing a MemInst or writing a var GlobalInst. The pointer is only
// valid until the next Push on this same vector, which may reallocate the
// backing array; callers must re-resolve the address rather than hold the
// pointer across a Push.
func (v *TypedIndexVec[T, A]) GetMut(addr A) (value *T, ok bool) {
	i := int(addr)
	if i < 0 || i >= len(v.data) {
		return nil, false
	}
	return &v.data[i], true
}

// At is the unchecked counterpart to Get: the caller guarantees addr is in
// range (as after validation), and an out-of-range addr panics exactly as
// a native Go index expression would.
func (v *TypedIndexVec[T, A]) At(addr A) T {
	return v.data[addr]
}

// PopLast undoes the most recent Push. It exists only for transient scratch
// use during instantiation or validation, where an allocation must be
// rolled back before it is observed anywhere else; once an address has been
// handed out and retained, PopLast must not be used to retire it.
func (v *TypedIndexVec[T, A]) PopLast() {
	v.data = v.data[:len(v.data)-1]
}

// Slice exposes the backing data for iteration. Callers must not retain the
// returned slice across a Push.
func (v *TypedIndexVec[T, A]) Slice() []T {
	return v.data
}
