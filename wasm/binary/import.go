package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

func decodeImport(r io.Reader) (*wasm.Import, error) {
	module, err := decodeName(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import module: %w", err)
	}
	name, err := decodeName(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import name: %w", err)
	}
	kind, err := decodeByte(r)
	if err != nil {
		return nil, err
	}

	imp := &wasm.Import{Module: module, Name: name, Kind: wasm.ImportKind(kind)}
	switch imp.Kind {
	case wasm.ImportKindFunc:
		idx, err := decodeIndex(r)
		if err != nil {
			return nil, fmt.Errorf("could not read imported function type index: %w", err)
		}
		imp.DescFunc = wasm.TypeIdx(idx)
	case wasm.ImportKindTable:
		t, err := decodeTableType(r)
		if err != nil {
			return nil, fmt.Errorf("could not read imported table type: %w", err)
		}
		imp.DescTable = t
	case wasm.ImportKindMem:
		m, err := decodeMemoryType(r)
		if err != nil {
			return nil, fmt.Errorf("could not read imported memory type: %w", err)
		}
		imp.DescMem = m
	case wasm.ImportKindGlobal:
		g, err := decodeGlobalType(r)
		if err != nil {
			return nil, fmt.Errorf("could not read imported global type: %w", err)
		}
		imp.DescGlobal = g
	default:
		return nil, fmt.Errorf("%w: invalid import kind %#x", wasm.ErrMalformedFormat, kind)
	}
	return imp, nil
}

func encodeImport(i *wasm.Import) []byte {
	out := encodeName(i.Module)
	out = append(out, encodeName(i.Name)...)
	out = append(out, byte(i.Kind))
	switch i.Kind {
	case wasm.ImportKindFunc:
		out = append(out, encodeVaruint32(uint32(i.DescFunc))...)
	case wasm.ImportKindTable:
		out = append(out, encodeTableType(i.DescTable)...)
	case wasm.ImportKindMem:
		out = append(out, encodeMemoryType(i.DescMem)...)
	case wasm.ImportKindGlobal:
		out = append(out, encodeGlobalType(i.DescGlobal)...)
	}
	return out
}

func decodeImportSection(r io.Reader) ([]*wasm.Import, error) {
	return decodeVec(r, decodeImport)
}

func encodeImportSection(imports []*wasm.Import) []byte {
	out := encodeVaruint32(uint32(len(imports)))
	for _, i := range imports {
		out = append(out, encodeImport(i)...)
	}
	return out
}
