package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

func decodeValueType(r io.Reader) (wasm.ValueType, error) {
	b, err := decodeByte(r)
	if err != nil {
		return 0, err
	}
	switch vt := wasm.ValueType(b); vt {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return vt, nil
	default:
		return 0, fmt.Errorf("%w: invalid value type byte %#x", wasm.ErrMalformedType, b)
	}
}

func encodeValueType(vt wasm.ValueType) byte {
	return byte(vt)
}

func decodeValueTypes(r io.Reader) ([]wasm.ValueType, error) {
	return decodeVec(r, decodeValueType)
}

func encodeValueTypes(vts []wasm.ValueType) []byte {
	out := encodeVaruint32(uint32(len(vts)))
	for _, vt := range vts {
		out = append(out, encodeValueType(vt))
	}
	return out
}
