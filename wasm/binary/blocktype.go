package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

const blockTypeEmpty = 0x40

// decodeBlockType decodes the result-type annotation on block/loop/if: the
// single byte 0x40 (no result), a valtype byte (one result), or a signed
// 33-bit type-section index for multi-value blocks. Multi-value blocks are
// out of scope for this core; encountering a non-negative s33 value is
// reported the same as any other unrecognized tag.
func decodeBlockType(r io.Reader) (wasm.BlockType, error) {
	n, err := decodeVarint33AsInt64(r)
	if err != nil {
		return wasm.BlockType{}, err
	}
	// the s33 encoding of byte 0x40 round-trips to -64 under sign extension.
	switch {
	case n == -64:
		return wasm.BlockType{Empty: true}, nil
	case n < 0:
		switch wasm.ValueType(n & 0x7f) {
		case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
			return wasm.BlockType{ValType: wasm.ValueType(n & 0x7f)}, nil
		}
		return wasm.BlockType{}, fmt.Errorf("%w: invalid block type %d", wasm.ErrMalformedType, n)
	default:
		return wasm.BlockType{}, fmt.Errorf("%w: multi-value block types are not supported", wasm.ErrMalformedType)
	}
}

func encodeBlockType(bt wasm.BlockType) []byte {
	if bt.Empty {
		return []byte{blockTypeEmpty}
	}
	return []byte{encodeValueType(bt.ValType)}
}
