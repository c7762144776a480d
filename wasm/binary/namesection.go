package binary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

const customSectionNameName = "name"

// decodeNameSection decodes the payload of a custom section named "name":
// currently only the module-name subsection (id 0) is collected, matching
// what this engine's diagnostics consume; function- and local-name
// subsections are skipped by their declared size. A truncated subsection
// or an invalid module name is still an error.
func decodeNameSection(data []byte) (*wasm.NameSection, error) {
	r := bytes.NewReader(data)
	ns := &wasm.NameSection{}

	for r.Len() > 0 {
		id, err := decodeByte(r)
		if err != nil {
			return nil, err
		}
		size, err := decodeVaruint32(r)
		if err != nil {
			return nil, fmt.Errorf("could not read name subsection size: %w", err)
		}

		if id == subsectionIDModuleName {
			name, err := decodeName(r)
			if err != nil {
				return nil, fmt.Errorf("could not read module name: %w", err)
			}
			ns.ModuleName = name
			continue
		}

		// An unrecognized subsection (function names, local names, ...) is
		// skipped wholesale: its declared size is the only thing needed to
		// find the next subsection.
		if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
			return nil, fmt.Errorf("%w: failed to skip name subsection %d: %v", wasm.ErrMalformedFormat, id, err)
		}
	}
	return ns, nil
}

func encodeNameSection(ns *wasm.NameSection) []byte {
	sub := encodeName(ns.ModuleName)
	payload := append([]byte{subsectionIDModuleName}, encodeVaruint32(uint32(len(sub)))...)
	payload = append(payload, sub...)
	return payload
}

func encodeStartSection(idx wasm.FuncIdx) []byte {
	content := encodeVaruint32(uint32(idx))
	return append(append([]byte{SectionIDStart}, encodeVaruint32(uint32(len(content)))...), content...)
}
