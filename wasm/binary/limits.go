package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

const (
	limitsFlagNoMax   = 0x00
	limitsFlagWithMax = 0x01
)

func decodeLimits(r io.Reader) (min uint32, max *uint32, err error) {
	flag, err := decodeByte(r)
	if err != nil {
		return 0, nil, err
	}

	min, err = decodeVaruint32(r)
	if err != nil {
		return 0, nil, fmt.Errorf("could not read min of limits: %w", err)
	}

	switch flag {
	case limitsFlagNoMax:
		return min, nil, nil
	case limitsFlagWithMax:
		m, err := decodeVaruint32(r)
		if err != nil {
			return 0, nil, fmt.Errorf("could not read max of limits: %w", err)
		}
		return min, &m, nil
	default:
		return 0, nil, fmt.Errorf("%w: invalid limits flag %#x", wasm.ErrMalformedFormat, flag)
	}
}

func encodeLimits(min uint32, max *uint32) []byte {
	if max == nil {
		return append([]byte{limitsFlagNoMax}, encodeVaruint32(min)...)
	}
	out := append([]byte{limitsFlagWithMax}, encodeVaruint32(min)...)
	return append(out, encodeVaruint32(*max)...)
}
