package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

// decodeElementSegment decodes one entry of the element section. Only the
// active-segment encoding (flag 0: table index 0 implied, offset
// expression, vector of function indices) is in scope; the bulk-memory
// proposal's passive/declarative flags are rejected as malformed here
// since this core never observes them.
func decodeElementSegment(r io.Reader) (*wasm.ElementSegment, error) {
	flag, err := decodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("could not read element segment flag: %w", err)
	}
	if flag != 0 {
		return nil, fmt.Errorf("%w: unsupported element segment flag %d", wasm.ErrMalformedFormat, flag)
	}

	offset, err := decodeExpr(r)
	if err != nil {
		return nil, fmt.Errorf("could not read element segment offset: %w", err)
	}

	init, err := decodeVec(r, decodeIndex)
	if err != nil {
		return nil, fmt.Errorf("could not read element segment init: %w", err)
	}
	funcIdxs := make([]wasm.FuncIdx, len(init))
	for i, idx := range init {
		funcIdxs[i] = wasm.FuncIdx(idx)
	}

	return &wasm.ElementSegment{
		Mode:       wasm.ElementModeActive,
		TableIndex: 0,
		Offset:     offset,
		Init:       funcIdxs,
	}, nil
}

func decodeElementSection(r io.Reader) ([]*wasm.ElementSegment, error) {
	return decodeVec(r, decodeElementSegment)
}

// decodeDataSegment mirrors decodeElementSegment for the data section's
// active-segment encoding.
func decodeDataSegment(r io.Reader) (*wasm.DataSegment, error) {
	flag, err := decodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("could not read data segment flag: %w", err)
	}
	if flag != 0 {
		return nil, fmt.Errorf("%w: unsupported data segment flag %d", wasm.ErrMalformedFormat, flag)
	}

	offset, err := decodeExpr(r)
	if err != nil {
		return nil, fmt.Errorf("could not read data segment offset: %w", err)
	}

	size, err := decodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("could not read data segment size: %w", err)
	}
	init := make([]byte, size)
	if _, err := io.ReadFull(r, init); err != nil {
		return nil, fmt.Errorf("%w: failed to read %d bytes of data segment init: %v", wasm.ErrMalformedFormat, size, err)
	}

	return &wasm.DataSegment{Mode: wasm.DataModeActive, MemoryIndex: 0, Offset: offset, Init: init}, nil
}

func decodeDataSection(r io.Reader) ([]*wasm.DataSegment, error) {
	return decodeVec(r, decodeDataSegment)
}
