package wasm

// FuncAddr, TableAddr, MemAddr, GlobalAddr and ModuleAddr are the five kinds
// of Store address. Each wraps a non-negative index into the Store's
// corresponding TypedIndexVec and is stable for the lifetime of the Store.
// They are distinct types so the compiler rejects using one kind where
// another is expected, even though all five share a uint32 representation.
type (
	FuncAddr   uint32
	TableAddr  uint32
	MemAddr    uint32
	GlobalAddr uint32

	// ModuleAddr is not part of the upstream Wasm spec's runtime structure.
	// Store owns ModuleInst the same way it owns the other four kinds,
	// which turns the Wasm spec's direct ModuleInst <-> FuncInst pointer
	// cycle into a pair of address lookups. See the Store doc comment.
	ModuleAddr uint32
)

// Module-local index types. Unlike the Store address kinds above, these
// number entities within a single decoded module (e.g. the 3rd function
// imported-or-defined by a module) and are assigned by the binary format,
// not by the Store. They are distinct types for the same reason addresses
// are: a TypeIdx must never be usable where a LocalIdx is expected.
type (
	TypeIdx   uint32
	FuncIdx   uint32
	TableIdx  uint32
	MemIdx    uint32
	GlobalIdx uint32
	LocalIdx  uint32
	LabelIdx  uint32
)

// Index is the generic decode-time index: the binary format does not
// distinguish kinds when it writes a LEB128 index, so the decoder reads a
// plain Index and callers convert to the kind-specific type that fits the
// context (e.g. a function import's index becomes Import.DescFunc, a TypeIdx).
type Index = uint32
