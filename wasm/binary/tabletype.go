package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

func decodeTableType(r io.Reader) (*wasm.TableType, error) {
	elemType, err := decodeByte(r)
	if err != nil {
		return nil, err
	}
	if elemType != wasm.ElemTypeFuncRef {
		return nil, fmt.Errorf("%w: invalid element type %#x", wasm.ErrMalformedType, elemType)
	}

	min, max, err := decodeLimits(r)
	if err != nil {
		return nil, fmt.Errorf("could not read table limits: %w", err)
	}

	return &wasm.TableType{ElemType: elemType, Limits: wasm.Limits{Min: min, Max: max}}, nil
}

func encodeTableType(t *wasm.TableType) []byte {
	out := []byte{t.ElemType}
	return append(out, encodeLimits(t.Limits.Min, t.Limits.Max)...)
}
