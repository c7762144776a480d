package binary

import (
	"testing"

	"github.com/domesticmouse/greenwasm/wasm"
	"github.com/stretchr/testify/require"
)

func TestDecodeExpr_SimpleArithmetic(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(wasm.OpcodeLocalGet))
	buf = append(buf, encodeVaruint32(0)...)
	buf = append(buf, byte(wasm.OpcodeLocalGet))
	buf = append(buf, encodeVaruint32(1)...)
	buf = append(buf, byte(wasm.OpcodeI32Add))
	buf = append(buf, byte(wasm.OpcodeEnd))

	instrs, err := decodeExpr(newReader(buf))
	require.NoError(t, err)
	require.Len(t, instrs, 3)
	require.Equal(t, wasm.OpcodeI32Add, instrs[2].Opcode)
}

func TestDecodeInstr_IfWithoutElse(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(wasm.OpcodeIf))
	buf = append(buf, 0x40) // empty block type
	buf = append(buf, byte(wasm.OpcodeNop))
	buf = append(buf, byte(wasm.OpcodeEnd))
	buf = append(buf, byte(wasm.OpcodeEnd))

	instrs, err := decodeExpr(newReader(buf))
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	require.Equal(t, wasm.OpcodeIf, instrs[0].Opcode)
	require.Len(t, instrs[0].Then, 1)
	require.Nil(t, instrs[0].Else)
}

func TestDecodeInstr_IfWithElse(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(wasm.OpcodeIf))
	buf = append(buf, 0x40)
	buf = append(buf, byte(wasm.OpcodeNop))
	buf = append(buf, byte(wasm.OpcodeElse))
	buf = append(buf, byte(wasm.OpcodeUnreachable))
	buf = append(buf, byte(wasm.OpcodeEnd))
	buf = append(buf, byte(wasm.OpcodeEnd))

	instrs, err := decodeExpr(newReader(buf))
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	require.Len(t, instrs[0].Then, 1)
	require.Len(t, instrs[0].Else, 1)
	require.Equal(t, wasm.OpcodeUnreachable, instrs[0].Else[0].Opcode)
}

func TestDecodeInstr_BrTable(t *testing.T) {
	var buf []byte
	buf = append(buf, byte(wasm.OpcodeBrTable))
	buf = append(buf, encodeVaruint32(2)...)
	buf = append(buf, encodeVaruint32(0)...)
	buf = append(buf, encodeVaruint32(1)...)
	buf = append(buf, encodeVaruint32(2)...)
	buf = append(buf, byte(wasm.OpcodeEnd))

	instrs, err := decodeExpr(newReader(buf))
	require.NoError(t, err)
	imm := instrs[0].Imm.(wasm.BrTableImm)
	require.Equal(t, []wasm.LabelIdx{0, 1}, imm.Targets)
	require.Equal(t, wasm.LabelIdx(2), imm.Default)
}

func TestDecodeInstr_CallIndirectRejectsNonZeroReserved(t *testing.T) {
	var buf []byte // the opcode byte itself is already consumed by the caller
	buf = append(buf, encodeVaruint32(0)...)
	buf = append(buf, 0x01)

	_, err := decodeInstr(newReader(buf), wasm.OpcodeCallIndirect)
	require.ErrorIs(t, err, wasm.ErrMalformedFormat)
}

func TestDecodeInstr_UnknownOpcode(t *testing.T) {
	_, err := decodeInstr(newReader(nil), wasm.Opcode(0xfc))
	require.ErrorIs(t, err, wasm.ErrMalformedOpcode)
}

func TestEncodeInstr_RoundTripsConstAndMemArg(t *testing.T) {
	instrs := []wasm.Instruction{
		{Opcode: wasm.OpcodeI32Const, Imm: wasm.NewI32(-5)},
		{Opcode: wasm.OpcodeI64Const, Imm: wasm.NewI64(123456789)},
		{Opcode: wasm.OpcodeF32Const, Imm: wasm.NewF32(1.5)},
		{Opcode: wasm.OpcodeI32Load, Imm: wasm.MemArg{Align: 2, Offset: 4}},
	}
	decoded, err := decodeExpr(newReader(encodeExpr(instrs)))
	require.NoError(t, err)
	require.Len(t, decoded, len(instrs))
	require.Equal(t, int32(-5), decoded[0].Imm.(wasm.Value).I32())
	require.Equal(t, int64(123456789), decoded[1].Imm.(wasm.Value).I64())
	require.Equal(t, float32(1.5), decoded[2].Imm.(wasm.Value).F32())
	require.Equal(t, wasm.MemArg{Align: 2, Offset: 4}, decoded[3].Imm)
}
