package binary

import (
	"testing"

	"github.com/domesticmouse/greenwasm/wasm"
	"github.com/stretchr/testify/require"
)

func TestDecodeElementSegment(t *testing.T) {
	var buf []byte
	buf = append(buf, encodeVaruint32(0)...) // flag: active
	buf = append(buf, encodeExpr([]wasm.Instruction{{Opcode: wasm.OpcodeI32Const, Imm: wasm.NewI32(0)}})...)
	buf = append(buf, encodeVaruint32(2)...)
	buf = append(buf, encodeVaruint32(1)...)
	buf = append(buf, encodeVaruint32(2)...)

	seg, err := decodeElementSegment(newReader(buf))
	require.NoError(t, err)
	require.Equal(t, wasm.ElementModeActive, seg.Mode)
	require.Equal(t, []wasm.FuncIdx{1, 2}, seg.Init)
}

func TestDecodeElementSegment_RejectsNonZeroFlag(t *testing.T) {
	_, err := decodeElementSegment(newReader(encodeVaruint32(1)))
	require.ErrorIs(t, err, wasm.ErrMalformedFormat)
}

func TestDecodeDataSegment(t *testing.T) {
	var buf []byte
	buf = append(buf, encodeVaruint32(0)...)
	buf = append(buf, encodeExpr([]wasm.Instruction{{Opcode: wasm.OpcodeI32Const, Imm: wasm.NewI32(0)}})...)
	buf = append(buf, encodeVaruint32(3)...)
	buf = append(buf, []byte("abc")...)

	seg, err := decodeDataSegment(newReader(buf))
	require.NoError(t, err)
	require.Equal(t, wasm.DataModeActive, seg.Mode)
	require.Equal(t, []byte("abc"), seg.Init)
}

func TestDecodeDataSegment_RejectsNonZeroFlag(t *testing.T) {
	_, err := decodeDataSegment(newReader(encodeVaruint32(1)))
	require.ErrorIs(t, err, wasm.ErrMalformedFormat)
}
