package wasm

// FuncInst is a function's runtime representation: either a closure over a
// decoded module (Internal) or a host-supplied implementation (Host). Store
// holds FuncInsts behind FuncAddr so that calling a function never needs a
// direct pointer to the owning ModuleInst.
type FuncInst struct {
	Type *FunctionType

	// Internal function fields. Module is the owning module's address, not
	// a pointer, so FuncInst never participates in a pointer cycle with
	// ModuleInst.
	Module ModuleAddr
	Code   *Code

	// Host function fields. Exactly one of (Code != nil) or (HostFunc !=
	// nil) holds for a given FuncInst.
	HostFunc HostFunc
}

// IsHost reports whether f is a host function rather than one defined by a
// decoded module.
func (f *FuncInst) IsHost() bool {
	return f.HostFunc != nil
}

// HostFunc is the embedder-supplied implementation of an imported function.
// Its argument and return slices always match f.Type's param/result arity
// and types; the core engine never constructs one directly.
type HostFunc func(args []Value) ([]Value, error)

// FuncElem is one slot of a TableInst: either empty, or the address of the
// function currently installed there. Slots start empty and are populated
// by active element segments at instantiation, or by table.init/elem.drop
// in the bulk-memory proposal (out of scope here).
type FuncElem struct {
	Addr    FuncAddr
	Present bool
}

// TableInst is a table's runtime storage: a growable vector of optional
// function addresses, bounded by an optional maximum (section 4.2.7).
type TableInst struct {
	Elem []FuncElem
	Max  *uint32
}

// MemInst is a linear memory's runtime storage: a byte vector whose length
// is always a multiple of MemoryPageSize, bounded by an optional maximum
// page count.
type MemInst struct {
	Data []byte
	Max  *uint32
}

// PageCount reports the current size of m in 64 KiB pages.
func (m *MemInst) PageCount() uint32 {
	return memoryBytesNumToPages(uint64(len(m.Data)))
}

// GlobalInst is a global variable's runtime storage: its current value plus
// whether it may be mutated after initialization (section 4.2.8).
type GlobalInst struct {
	Value   Value
	Mutable bool
}

// ExternVal is the tagged union of the four kinds of value an import or
// export may resolve to (section 4.2.11). Exactly one of the four fields is
// meaningful, selected by Kind.
type ExternVal struct {
	Kind ExportKind

	Func   FuncAddr
	Table  TableAddr
	Mem    MemAddr
	Global GlobalAddr
}

// ExternFunc constructs a function ExternVal.
func ExternFunc(addr FuncAddr) ExternVal { return ExternVal{Kind: ExportKindFunc, Func: addr} }

// ExternTable constructs a table ExternVal.
func ExternTable(addr TableAddr) ExternVal { return ExternVal{Kind: ExportKindTable, Table: addr} }

// ExternMem constructs a memory ExternVal.
func ExternMem(addr MemAddr) ExternVal { return ExternVal{Kind: ExportKindMem, Mem: addr} }

// ExternGlobal constructs a global ExternVal.
func ExternGlobal(addr GlobalAddr) ExternVal {
	return ExternVal{Kind: ExportKindGlobal, Global: addr}
}

// ExportInst is one entry of a ModuleInst's export table: the externally
// visible name bound to the extern value it resolves to.
type ExportInst struct {
	Name  string
	Value ExternVal
}

// ModuleInst is a module's runtime representation: for each of the four
// extern-value kinds, the vector of Store addresses the module owns or
// imports, indexed by that kind's module-local index space, plus the
// module's resolved exports.
//
// ModuleInst never stores FuncInst, TableInst etc. directly, nor a pointer
// back to the Store: every lookup goes FuncIdx -> FuncAddr -> Store.
type ModuleInst struct {
	Types       []*FunctionType
	FuncAddrs   []FuncAddr
	TableAddrs  []TableAddr
	MemAddrs    []MemAddr
	GlobalAddrs []GlobalAddr
	Exports     []ExportInst

	NameSection *NameSection
}

// ExportByName looks up one of m's exports, mirroring the binary format's
// guarantee that export names are unique within a module.
func (m *ModuleInst) ExportByName(name string) (ExternVal, bool) {
	for _, e := range m.Exports {
		if e.Name == name {
			return e.Value, true
		}
	}
	return ExternVal{}, false
}
