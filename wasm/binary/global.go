package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

func decodeGlobalSegment(r io.Reader) (*wasm.GlobalSegment, error) {
	gt, err := decodeGlobalType(r)
	if err != nil {
		return nil, fmt.Errorf("could not read global type: %w", err)
	}
	init, err := decodeExpr(r)
	if err != nil {
		return nil, fmt.Errorf("could not read global initializer: %w", err)
	}
	return &wasm.GlobalSegment{Type: gt, Init: init}, nil
}

func decodeGlobalSection(r io.Reader) ([]*wasm.GlobalSegment, error) {
	return decodeVec(r, decodeGlobalSegment)
}
