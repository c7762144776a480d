package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

const (
	globalMutConst = 0x00
	globalMutVar   = 0x01
)

func decodeGlobalType(r io.Reader) (*wasm.GlobalType, error) {
	vt, err := decodeValueType(r)
	if err != nil {
		return nil, fmt.Errorf("could not read value type: %w", err)
	}

	m, err := decodeByte(r)
	if err != nil {
		return nil, err
	}

	switch m {
	case globalMutConst:
		return &wasm.GlobalType{ValType: vt, Mutable: false}, nil
	case globalMutVar:
		return &wasm.GlobalType{ValType: vt, Mutable: true}, nil
	default:
		return nil, fmt.Errorf("%w: invalid mutability byte %#x", wasm.ErrMalformedFormat, m)
	}
}

func encodeGlobalType(t *wasm.GlobalType) []byte {
	mut := byte(globalMutConst)
	if t.Mutable {
		mut = globalMutVar
	}
	return []byte{encodeValueType(t.ValType), mut}
}
