package binary

import (
	"github.com/domesticmouse/greenwasm/wasm"
	"github.com/domesticmouse/greenwasm/wasm/leb128"
)

// encodeExpr is the inverse of decodeExpr: it encodes an instruction
// sequence followed by the terminating End byte.
func encodeExpr(instrs []wasm.Instruction) []byte {
	var out []byte
	for _, in := range instrs {
		out = append(out, encodeInstr(in)...)
	}
	return append(out, byte(wasm.OpcodeEnd))
}

func encodeInstr(in wasm.Instruction) []byte {
	out := []byte{byte(in.Opcode)}

	switch in.Opcode {
	case wasm.OpcodeBlock, wasm.OpcodeLoop:
		out = append(out, encodeBlockType(in.BlockType)...)
		out = append(out, encodeExpr(in.Then)...)
		return out

	case wasm.OpcodeIf:
		out = append(out, encodeBlockType(in.BlockType)...)
		if in.Else == nil {
			out = append(out, encodeExpr(in.Then)...)
			return out
		}
		for _, i := range in.Then {
			out = append(out, encodeInstr(i)...)
		}
		out = append(out, byte(wasm.OpcodeElse))
		out = append(out, encodeExpr(in.Else)...)
		return out

	case wasm.OpcodeBr, wasm.OpcodeBrIf:
		out = append(out, encodeVaruint32(uint32(in.Imm.(wasm.LabelIdx)))...)

	case wasm.OpcodeBrTable:
		imm := in.Imm.(wasm.BrTableImm)
		out = append(out, encodeVaruint32(uint32(len(imm.Targets)))...)
		for _, t := range imm.Targets {
			out = append(out, encodeVaruint32(uint32(t))...)
		}
		out = append(out, encodeVaruint32(uint32(imm.Default))...)

	case wasm.OpcodeCall:
		out = append(out, encodeVaruint32(uint32(in.Imm.(wasm.FuncIdx)))...)

	case wasm.OpcodeCallIndirect:
		out = append(out, encodeVaruint32(uint32(in.Imm.(wasm.TypeIdx)))...)
		out = append(out, 0x00)

	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		out = append(out, encodeVaruint32(uint32(in.Imm.(wasm.LocalIdx)))...)

	case wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		out = append(out, encodeVaruint32(uint32(in.Imm.(wasm.GlobalIdx)))...)

	case wasm.OpcodeI32Load, wasm.OpcodeI64Load, wasm.OpcodeF32Load, wasm.OpcodeF64Load,
		wasm.OpcodeI32Load8S, wasm.OpcodeI32Load8U, wasm.OpcodeI32Load16S, wasm.OpcodeI32Load16U,
		wasm.OpcodeI64Load8S, wasm.OpcodeI64Load8U, wasm.OpcodeI64Load16S, wasm.OpcodeI64Load16U,
		wasm.OpcodeI64Load32S, wasm.OpcodeI64Load32U,
		wasm.OpcodeI32Store, wasm.OpcodeI64Store, wasm.OpcodeF32Store, wasm.OpcodeF64Store,
		wasm.OpcodeI32Store8, wasm.OpcodeI32Store16, wasm.OpcodeI64Store8, wasm.OpcodeI64Store16,
		wasm.OpcodeI64Store32:
		ma := in.Imm.(wasm.MemArg)
		out = append(out, encodeVaruint32(ma.Align)...)
		out = append(out, encodeVaruint32(ma.Offset)...)

	case wasm.OpcodeMemorySize, wasm.OpcodeMemoryGrow:
		out = append(out, 0x00)

	case wasm.OpcodeI32Const:
		out = append(out, leb128.EncodeInt32(in.Imm.(wasm.Value).I32())...)

	case wasm.OpcodeI64Const:
		out = append(out, leb128.EncodeInt64(in.Imm.(wasm.Value).I64())...)

	case wasm.OpcodeF32Const:
		out = append(out, encodeFloat32(in.Imm.(wasm.Value).F32())...)

	case wasm.OpcodeF64Const:
		out = append(out, encodeFloat64(in.Imm.(wasm.Value).F64())...)
	}

	return out
}
