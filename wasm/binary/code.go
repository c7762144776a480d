package binary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

// decodeCode decodes one entry of the code section: a u32 byte size
// (consumed but not separately validated beyond bounding the body reader),
// a vector of compressed local-declaration groups, and the function body
// expression.
func decodeCode(r io.Reader) (*wasm.Code, error) {
	size, err := decodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("could not read code entry size: %w", err)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: failed to read %d bytes of code entry: %v", wasm.ErrMalformedFormat, size, err)
	}

	br := bytes.NewReader(body)

	groupCount, err := decodeVaruint32(br)
	if err != nil {
		return nil, fmt.Errorf("could not read local declaration count: %w", err)
	}

	var locals []wasm.ValueType
	for i := uint32(0); i < groupCount; i++ {
		n, err := decodeVaruint32(br)
		if err != nil {
			return nil, fmt.Errorf("could not read local group %d count: %w", i, err)
		}
		vt, err := decodeValueType(br)
		if err != nil {
			return nil, fmt.Errorf("could not read local group %d type: %w", i, err)
		}
		for j := uint32(0); j < n; j++ {
			locals = append(locals, vt)
		}
	}

	instrs, err := decodeExpr(br)
	if err != nil {
		return nil, fmt.Errorf("could not read function body: %w", err)
	}

	return &wasm.Code{LocalTypes: locals, Body: instrs}, nil
}

func decodeCodeSection(r io.Reader) ([]*wasm.Code, error) {
	return decodeVec(r, decodeCode)
}
