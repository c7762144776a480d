// Package binary implements the WebAssembly binary format decoder and
// encoder (core specification section 5): magic number and version header,
// the eleven standard module sections plus recurring custom sections, and
// the LEB128/IEEE754/UTF-8 primitives those sections are built from.
package binary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

// DecodeModule decodes a complete Wasm binary module. Decode errors wrap
// one of wasm.ErrMalformed*; every other failure is reported with enough
// positional context to debug a hand-written test fixture.
func DecodeModule(data []byte) (*wasm.Module, error) {
	r := bytes.NewReader(data)

	hdr := make([]byte, 4)
	if _, err := io.ReadFull(r, hdr); err != nil || !bytes.Equal(hdr, magic) {
		return nil, fmt.Errorf("invalid magic number")
	}
	if _, err := io.ReadFull(r, hdr); err != nil || !bytes.Equal(hdr, version) {
		return nil, fmt.Errorf("invalid version header")
	}

	m := &wasm.Module{}
	seenCustom := map[string]bool{}
	var prevID byte = 0

	for r.Len() > 0 {
		id, err := decodeByte(r)
		if err != nil {
			return nil, err
		}
		size, err := decodeVaruint32(r)
		if err != nil {
			return nil, fmt.Errorf("section ID %d: failed to read section size: %w", id, err)
		}
		payload := make([]byte, size)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("%w: section ID %d: failed to read %d bytes: %v", wasm.ErrMalformedFormat, id, size, err)
		}
		sr := newReader(payload)

		if id == SectionIDCustom {
			name, err := decodeName(sr)
			if err != nil {
				return nil, fmt.Errorf("section ID 0: could not read custom section name: %w", err)
			}
			if seenCustom[name] {
				return nil, fmt.Errorf("section ID 0: redundant custom section %s", name)
			}
			seenCustom[name] = true

			rest := make([]byte, sr.Len())
			if _, err := io.ReadFull(sr, rest); err != nil {
				return nil, fmt.Errorf("%w: section ID 0: failed to read custom section payload: %v", wasm.ErrMalformedFormat, err)
			}

			if name == customSectionNameName {
				ns, err := decodeNameSection(rest)
				if err != nil {
					return nil, fmt.Errorf("section ID 0: %w", err)
				}
				m.NameSection = ns
			} else {
				if m.CustomSections == nil {
					m.CustomSections = map[string][]byte{}
				}
				m.CustomSections[name] = rest
			}
			continue
		}

		if id <= prevID {
			return nil, fmt.Errorf("%w: section ID %d out of order", wasm.ErrMalformedFormat, id)
		}
		prevID = id

		switch id {
		case SectionIDType:
			m.TypeSection, err = decodeVec(sr, decodeFunctionType)
		case SectionIDImport:
			m.ImportSection, err = decodeImportSection(sr)
		case SectionIDFunction:
			m.FunctionSection, err = decodeFunctionSection(sr)
		case SectionIDTable:
			m.TableSection, err = decodeTableSection(sr)
		case SectionIDMemory:
			m.MemorySection, err = decodeMemorySection(sr)
		case SectionIDGlobal:
			m.GlobalSection, err = decodeGlobalSection(sr)
		case SectionIDExport:
			m.ExportSection, err = decodeExportSection(sr)
		case SectionIDStart:
			var idx wasm.Index
			idx, err = decodeIndex(sr)
			fidx := wasm.FuncIdx(idx)
			m.StartSection = &fidx
		case SectionIDElement:
			m.ElementSection, err = decodeElementSection(sr)
		case SectionIDCode:
			m.CodeSection, err = decodeCodeSection(sr)
		case SectionIDData:
			m.DataSection, err = decodeDataSection(sr)
		default:
			return nil, fmt.Errorf("%w: invalid section ID %d", wasm.ErrMalformedFormat, id)
		}
		if err != nil {
			return nil, fmt.Errorf("section ID %d: %w", id, err)
		}
		if sr.Len() != 0 {
			return nil, fmt.Errorf("%w: section ID %d: %d trailing bytes", wasm.ErrMalformedFormat, id, sr.Len())
		}
	}

	return m, nil
}

