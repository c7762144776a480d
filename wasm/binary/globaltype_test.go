package binary

import (
	"testing"

	"github.com/domesticmouse/greenwasm/wasm"
	"github.com/stretchr/testify/require"
)

func TestDecodeGlobalType(t *testing.T) {
	gt, err := decodeGlobalType(newReader([]byte{0x7f, 0x01}))
	require.NoError(t, err)
	require.Equal(t, &wasm.GlobalType{ValType: wasm.ValueTypeI32, Mutable: true}, gt)

	gt, err = decodeGlobalType(newReader([]byte{0x7e, 0x00}))
	require.NoError(t, err)
	require.Equal(t, &wasm.GlobalType{ValType: wasm.ValueTypeI64, Mutable: false}, gt)
}

func TestDecodeGlobalType_InvalidMutability(t *testing.T) {
	_, err := decodeGlobalType(newReader([]byte{0x7f, 0x02}))
	require.ErrorIs(t, err, wasm.ErrMalformedFormat)
}

func TestEncodeGlobalType_RoundTrips(t *testing.T) {
	gt := &wasm.GlobalType{ValType: wasm.ValueTypeF64, Mutable: true}
	encoded := encodeGlobalType(gt)
	decoded, err := decodeGlobalType(newReader(encoded))
	require.NoError(t, err)
	require.Equal(t, gt, decoded)
}
