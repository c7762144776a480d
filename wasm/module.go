package wasm

// FunctionType is a function signature: a vector of parameter types and a
// vector of result types. The Wasm 1.0 grammar allows only one result;
// validation (external) is responsible for rejecting more.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}

// EqualsSignature reports whether t has exactly the given params/results,
// used by import resolution to type-check a function import.
func (t *FunctionType) EqualsSignature(params, results []ValueType) bool {
	return hasSameValues(t.Params, params) && hasSameValues(t.Results, results)
}

func hasSameValues(a, b []ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Limits is the min/max pair of the limits grammar (section 5.3.4), shared
// by table and memory types.
type Limits struct {
	Min uint32
	Max *uint32
}

// MemoryType is a memory's limits, expressed in 64 KiB pages.
type MemoryType struct {
	Min uint32
	Max *uint32
}

const (
	// ElemTypeFuncRef is the sole Wasm 1.0 table element type.
	ElemTypeFuncRef = 0x70
)

// TableType is a table's element type plus its limits, expressed in slots.
type TableType struct {
	ElemType byte
	Limits   Limits
}

// GlobalType is a global's value type plus its mutability.
type GlobalType struct {
	ValType ValueType
	Mutable bool
}

// ImportKind tags which of the four import descriptor shapes an Import
// carries (section 5.5.5).
type ImportKind byte

const (
	ImportKindFunc   ImportKind = 0x00
	ImportKindTable  ImportKind = 0x01
	ImportKindMem    ImportKind = 0x02
	ImportKindGlobal ImportKind = 0x03
)

// Import is one entry of the import section: a two-level name plus exactly
// one of the four descriptor fields, selected by Kind.
type Import struct {
	Module, Name string
	Kind         ImportKind

	DescFunc   TypeIdx
	DescTable  *TableType
	DescMem    *MemoryType
	DescGlobal *GlobalType
}

// ExportKind tags which store entity an Export refers to.
type ExportKind byte

const (
	ExportKindFunc   ExportKind = 0x00
	ExportKindTable  ExportKind = 0x01
	ExportKindMem    ExportKind = 0x02
	ExportKindGlobal ExportKind = 0x03
)

// ExportKindName renders an ExportKind the way diagnostics want it spelled.
func ExportKindName(k ExportKind) string {
	switch k {
	case ExportKindFunc:
		return "func"
	case ExportKindTable:
		return "table"
	case ExportKindMem:
		return "mem"
	case ExportKindGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Export is one entry of the export section: an externally visible name
// bound to a module-local index of the kind named by Kind.
type Export struct {
	Name  string
	Kind  ExportKind
	Index Index
}

// GlobalSegment is one entry of the global section: a global's type plus
// its initializer constant expression.
type GlobalSegment struct {
	Type *GlobalType
	Init []Instruction
}

// Code is one entry of the code section: a function's local declarations
// (already expanded to one ValueType per local, compressing the wire
// format's run-length groups) and its instruction body.
type Code struct {
	LocalTypes []ValueType
	Body       []Instruction
}

// ElementMode distinguishes an active element segment (which initializes a
// table at instantiation) from a passive one (which is only accessible to
// bulk-memory instructions external to this core).
type ElementMode int

const (
	ElementModeActive ElementMode = iota
	ElementModePassive
)

// ElementSegment is one entry of the element section.
type ElementSegment struct {
	Mode       ElementMode
	TableIndex TableIdx   // meaningful only when Mode == ElementModeActive
	Offset     []Instruction
	Init       []FuncIdx
}

// DataMode mirrors ElementMode for the data section.
type DataMode int

const (
	DataModeActive DataMode = iota
	DataModePassive
)

// DataSegment is one entry of the data section.
type DataSegment struct {
	Mode        DataMode
	MemoryIndex MemIdx // meaningful only when Mode == DataModeActive
	Offset      []Instruction
	Init        []byte
}

// NameMapEntry associates a module-local index with a debug name, as used
// by the function-names and local-names subsections of the custom "name"
// section.
type NameMapEntry struct {
	Index Index
	Name  string
}

// NameSection is the decoded custom "name" section (a de facto standard,
// not part of the Wasm 1.0 core grammar). Unlike other custom sections it
// is parsed rather than kept as raw bytes. The binary package decodes and
// encodes only ModuleName; FunctionNames is neither filled nor written.
type NameSection struct {
	ModuleName    string
	FunctionNames []NameMapEntry
}

// Module is the complete abstract syntax of a decoded Wasm binary: the
// eleven standard sections (each optional, each appearing at most once, in
// the fixed order mandated by the binary format) plus the raw payload of
// every custom section other than "name", which goes to NameSection.
type Module struct {
	TypeSection     []*FunctionType
	ImportSection   []*Import
	FunctionSection []TypeIdx
	TableSection    []*TableType
	MemorySection   []*MemoryType
	GlobalSection   []*GlobalSegment
	ExportSection   []*Export
	StartSection    *FuncIdx
	ElementSection  []*ElementSegment
	CodeSection     []*Code
	DataSection     []*DataSegment

	CustomSections map[string][]byte
	NameSection    *NameSection
}
