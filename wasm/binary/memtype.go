package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

// maxMemoryPages is the hard ceiling of 65536 pages (4 GiB) that the Wasm
// 1.0 core imposes on both a memory's declared minimum and maximum,
// independent of any engine-specific limit.
const maxMemoryPages = 65536

func decodeMemoryType(r io.Reader) (*wasm.MemoryType, error) {
	min, max, err := decodeLimits(r)
	if err != nil {
		return nil, fmt.Errorf("could not read memory limits: %w", err)
	}
	if min > maxMemoryPages {
		return nil, fmt.Errorf("memory min must be at most %d pages (4GiB)", maxMemoryPages)
	}
	if max != nil {
		if *max > maxMemoryPages {
			return nil, fmt.Errorf("memory max must be at most %d pages (4GiB)", maxMemoryPages)
		}
		if *max < min {
			return nil, fmt.Errorf("memory size minimum must not be greater than maximum")
		}
	}
	return &wasm.MemoryType{Min: min, Max: max}, nil
}

func encodeMemoryType(t *wasm.MemoryType) []byte {
	return encodeLimits(t.Min, t.Max)
}
