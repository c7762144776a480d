package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

func decodeExport(r io.Reader) (*wasm.Export, error) {
	name, err := decodeName(r)
	if err != nil {
		return nil, fmt.Errorf("could not read export name: %w", err)
	}
	kind, err := decodeByte(r)
	if err != nil {
		return nil, err
	}
	idx, err := decodeIndex(r)
	if err != nil {
		return nil, fmt.Errorf("could not read export index: %w", err)
	}
	return &wasm.Export{Name: name, Kind: wasm.ExportKind(kind), Index: idx}, nil
}

func encodeExport(e *wasm.Export) []byte {
	out := encodeName(e.Name)
	out = append(out, byte(e.Kind))
	out = append(out, encodeVaruint32(e.Index)...)
	return out
}

// decodeExportSection decodes the export section into a vector preserving
// the binary's declared order, rejecting the duplicate names the binary
// format's uniqueness invariant forbids.
func decodeExportSection(r io.Reader) ([]*wasm.Export, error) {
	n, err := decodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read count: %w", err)
	}

	exports := make([]*wasm.Export, 0, n)
	seen := make(map[string]bool, n)
	for i := uint32(0); i < n; i++ {
		e, err := decodeExport(r)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("export[%d] duplicates name %q", i, e.Name)
		}
		seen[e.Name] = true
		exports = append(exports, e)
	}
	return exports, nil
}

func encodeExportSection(exports []*wasm.Export) []byte {
	out := encodeVaruint32(uint32(len(exports)))
	for _, e := range exports {
		out = append(out, encodeExport(e)...)
	}
	return out
}
