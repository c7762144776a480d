package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

const functionTypeTag = 0x60

func decodeFunctionType(r io.Reader) (*wasm.FunctionType, error) {
	b, err := decodeByte(r)
	if err != nil {
		return nil, err
	}
	if b != functionTypeTag {
		return nil, fmt.Errorf("%w: function type must start with %#x, got %#x", wasm.ErrMalformedType, functionTypeTag, b)
	}

	params, err := decodeValueTypes(r)
	if err != nil {
		return nil, fmt.Errorf("could not read parameter types: %w", err)
	}

	results, err := decodeValueTypes(r)
	if err != nil {
		return nil, fmt.Errorf("could not read result types: %w", err)
	}

	return &wasm.FunctionType{Params: params, Results: results}, nil
}

func encodeFunctionType(t *wasm.FunctionType) []byte {
	out := []byte{functionTypeTag}
	out = append(out, encodeValueTypes(t.Params)...)
	out = append(out, encodeValueTypes(t.Results)...)
	return out
}
