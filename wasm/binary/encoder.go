package binary

import (
	"sort"

	"github.com/domesticmouse/greenwasm/wasm"
)

// EncodeModule encodes m into the Wasm binary format: the magic number and
// version header, followed by each non-empty standard section in the
// fixed order the format mandates, followed by any custom sections (the
// "name" section, if present, always last, matching this decoder's
// expectation that a later occurrence of a given custom section name is a
// decode error rather than an override).
func EncodeModule(m *wasm.Module) []byte {
	out := append([]byte{}, magic...)
	out = append(out, version...)

	if len(m.TypeSection) > 0 {
		out = append(out, encodeSection(SectionIDType, encodeTypeSection(m.TypeSection))...)
	}
	if len(m.ImportSection) > 0 {
		out = append(out, encodeSection(SectionIDImport, encodeImportSection(m.ImportSection))...)
	}
	if len(m.FunctionSection) > 0 {
		out = append(out, encodeSection(SectionIDFunction, encodeFunctionSection(m.FunctionSection))...)
	}
	if len(m.TableSection) > 0 {
		out = append(out, encodeSection(SectionIDTable, encodeTableSection(m.TableSection))...)
	}
	if len(m.MemorySection) > 0 {
		out = append(out, encodeSection(SectionIDMemory, encodeMemorySection(m.MemorySection))...)
	}
	if len(m.GlobalSection) > 0 {
		out = append(out, encodeSection(SectionIDGlobal, encodeGlobalSection(m.GlobalSection))...)
	}
	if len(m.ExportSection) > 0 {
		out = append(out, encodeSection(SectionIDExport, encodeExportSection(m.ExportSection))...)
	}
	if m.StartSection != nil {
		out = append(out, encodeStartSection(*m.StartSection)...)
	}
	if len(m.ElementSection) > 0 {
		out = append(out, encodeSection(SectionIDElement, encodeElementSection(m.ElementSection))...)
	}
	if len(m.CodeSection) > 0 {
		out = append(out, encodeSection(SectionIDCode, encodeCodeSection(m.CodeSection))...)
	}
	if len(m.DataSection) > 0 {
		out = append(out, encodeSection(SectionIDData, encodeDataSection(m.DataSection))...)
	}

	if len(m.CustomSections) > 0 {
		names := make([]string, 0, len(m.CustomSections))
		for name := range m.CustomSections {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			out = append(out, encodeCustomSection(name, m.CustomSections[name])...)
		}
	}
	if m.NameSection != nil {
		out = append(out, encodeCustomSection(customSectionNameName, encodeNameSection(m.NameSection))...)
	}

	return out
}

func encodeSection(id byte, content []byte) []byte {
	return append(append([]byte{id}, encodeVaruint32(uint32(len(content)))...), content...)
}

func encodeCustomSection(name string, payload []byte) []byte {
	content := append(encodeName(name), payload...)
	return encodeSection(SectionIDCustom, content)
}

func encodeTypeSection(types []*wasm.FunctionType) []byte {
	out := encodeVaruint32(uint32(len(types)))
	for _, t := range types {
		out = append(out, encodeFunctionType(t)...)
	}
	return out
}

func encodeTableSection(tables []*wasm.TableType) []byte {
	out := encodeVaruint32(uint32(len(tables)))
	for _, t := range tables {
		out = append(out, encodeTableType(t)...)
	}
	return out
}

func encodeMemorySection(mems []*wasm.MemoryType) []byte {
	out := encodeVaruint32(uint32(len(mems)))
	for _, t := range mems {
		out = append(out, encodeMemoryType(t)...)
	}
	return out
}

func encodeGlobalSection(globals []*wasm.GlobalSegment) []byte {
	out := encodeVaruint32(uint32(len(globals)))
	for _, g := range globals {
		out = append(out, encodeGlobalType(g.Type)...)
		out = append(out, encodeExpr(g.Init)...)
	}
	return out
}

func encodeElementSection(elems []*wasm.ElementSegment) []byte {
	out := encodeVaruint32(uint32(len(elems)))
	for _, e := range elems {
		out = append(out, encodeVaruint32(0)...) // flag: active, table index 0
		out = append(out, encodeExpr(e.Offset)...)
		out = append(out, encodeVaruint32(uint32(len(e.Init)))...)
		for _, f := range e.Init {
			out = append(out, encodeVaruint32(uint32(f))...)
		}
	}
	return out
}

func encodeCodeSection(codes []*wasm.Code) []byte {
	out := encodeVaruint32(uint32(len(codes)))
	for _, c := range codes {
		body := encodeCode(c)
		out = append(out, encodeVaruint32(uint32(len(body)))...)
		out = append(out, body...)
	}
	return out
}

func encodeCode(c *wasm.Code) []byte {
	groups := groupLocals(c.LocalTypes)
	out := encodeVaruint32(uint32(len(groups)))
	for _, g := range groups {
		out = append(out, encodeVaruint32(g.count)...)
		out = append(out, encodeValueType(g.vt))
	}
	out = append(out, encodeExpr(c.Body)...)
	return out
}

type localGroup struct {
	count uint32
	vt    wasm.ValueType
}

func groupLocals(locals []wasm.ValueType) []localGroup {
	var groups []localGroup
	for _, vt := range locals {
		if len(groups) > 0 && groups[len(groups)-1].vt == vt {
			groups[len(groups)-1].count++
			continue
		}
		groups = append(groups, localGroup{count: 1, vt: vt})
	}
	return groups
}

func encodeDataSection(datas []*wasm.DataSegment) []byte {
	out := encodeVaruint32(uint32(len(datas)))
	for _, d := range datas {
		out = append(out, encodeVaruint32(0)...) // flag: active, memory index 0
		out = append(out, encodeExpr(d.Offset)...)
		out = append(out, encodeVaruint32(uint32(len(d.Init)))...)
		out = append(out, d.Init...)
	}
	return out
}
