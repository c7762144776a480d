package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

func decodeFunctionSection(r io.Reader) ([]wasm.TypeIdx, error) {
	idxs, err := decodeVec(r, decodeIndex)
	if err != nil {
		return nil, fmt.Errorf("could not read function section: %w", err)
	}
	out := make([]wasm.TypeIdx, len(idxs))
	for i, idx := range idxs {
		out[i] = wasm.TypeIdx(idx)
	}
	return out, nil
}

func encodeFunctionSection(idxs []wasm.TypeIdx) []byte {
	out := encodeVaruint32(uint32(len(idxs)))
	for _, idx := range idxs {
		out = append(out, encodeVaruint32(uint32(idx))...)
	}
	return out
}

func decodeTableSection(r io.Reader) ([]*wasm.TableType, error) {
	return decodeVec(r, decodeTableType)
}

func decodeMemorySection(r io.Reader) ([]*wasm.MemoryType, error) {
	return decodeVec(r, decodeMemoryType)
}
