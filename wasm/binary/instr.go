package binary

import (
	"fmt"
	"io"

	"github.com/domesticmouse/greenwasm/wasm"
)

// decodeExpr decodes an instruction sequence terminated by a bare 0x0B end
// byte (binary format section 5.4.9), consuming the terminator but not
// including it in the result.
func decodeExpr(r io.Reader) ([]wasm.Instruction, error) {
	instrs, _, err := decodeInstrsUntil(r, wasm.OpcodeEnd)
	return instrs, err
}

// decodeInstrsUntil decodes instructions until it consumes a byte equal to
// one of terminators, which is not appended to the result. It returns
// which terminator was hit, so a single top-level scan can serve both a
// block's body (terminated only by End) and an if's then-branch (which may
// end early on Else instead of End).
func decodeInstrsUntil(r io.Reader, terminators ...wasm.Opcode) ([]wasm.Instruction, wasm.Opcode, error) {
	var out []wasm.Instruction
	for {
		op, err := decodeByte(r)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read opcode: %w", err)
		}
		for _, t := range terminators {
			if wasm.Opcode(op) == t {
				return out, t, nil
			}
		}
		instr, err := decodeInstr(r, wasm.Opcode(op))
		if err != nil {
			return nil, 0, err
		}
		out = append(out, instr)
	}
}

func decodeMemArg(r io.Reader) (wasm.MemArg, error) {
	align, err := decodeVaruint32(r)
	if err != nil {
		return wasm.MemArg{}, fmt.Errorf("could not read memarg align: %w", err)
	}
	offset, err := decodeVaruint32(r)
	if err != nil {
		return wasm.MemArg{}, fmt.Errorf("could not read memarg offset: %w", err)
	}
	return wasm.MemArg{Align: align, Offset: offset}, nil
}

func decodeIndex(r io.Reader) (wasm.Index, error) {
	return decodeVaruint32(r)
}

// decodeInstr decodes the immediate (if any) belonging to an already-read
// opcode byte op. Block, Loop and If additionally recurse into their
// nested instruction sequence.
func decodeInstr(r io.Reader, op wasm.Opcode) (wasm.Instruction, error) {
	switch op {
	case wasm.OpcodeBlock, wasm.OpcodeLoop:
		bt, err := decodeBlockType(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read block type: %w", err)
		}
		body, _, err := decodeInstrsUntil(r, wasm.OpcodeEnd)
		if err != nil {
			return wasm.Instruction{}, err
		}
		return wasm.Instruction{Opcode: op, BlockType: bt, Then: body}, nil

	case wasm.OpcodeIf:
		bt, err := decodeBlockType(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read block type: %w", err)
		}
		then, hit, err := decodeInstrsUntil(r, wasm.OpcodeElse, wasm.OpcodeEnd)
		if err != nil {
			return wasm.Instruction{}, err
		}
		if hit == wasm.OpcodeEnd {
			return wasm.Instruction{Opcode: op, BlockType: bt, Then: then}, nil
		}
		// hit Else: the then-branch ended early; read the else-branch up
		// to the matching End.
		els, _, err := decodeInstrsUntil(r, wasm.OpcodeEnd)
		if err != nil {
			return wasm.Instruction{}, err
		}
		return wasm.Instruction{Opcode: op, BlockType: bt, Then: then, Else: els}, nil

	case wasm.OpcodeBr, wasm.OpcodeBrIf:
		idx, err := decodeIndex(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read label index: %w", err)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.LabelIdx(idx)}, nil

	case wasm.OpcodeBrTable:
		targets, err := decodeVec(r, decodeIndex)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read br_table targets: %w", err)
		}
		def, err := decodeIndex(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read br_table default: %w", err)
		}
		labels := make([]wasm.LabelIdx, len(targets))
		for i, t := range targets {
			labels[i] = wasm.LabelIdx(t)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.BrTableImm{Targets: labels, Default: wasm.LabelIdx(def)}}, nil

	case wasm.OpcodeCall:
		idx, err := decodeIndex(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read call target: %w", err)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.FuncIdx(idx)}, nil

	case wasm.OpcodeCallIndirect:
		typeIdx, err := decodeIndex(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read call_indirect type: %w", err)
		}
		reserved, err := decodeByte(r)
		if err != nil {
			return wasm.Instruction{}, err
		}
		if reserved != 0x00 {
			return wasm.Instruction{}, fmt.Errorf("%w: call_indirect reserved byte must be 0x00", wasm.ErrMalformedFormat)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.TypeIdx(typeIdx)}, nil

	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		idx, err := decodeIndex(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read local index: %w", err)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.LocalIdx(idx)}, nil

	case wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		idx, err := decodeIndex(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read global index: %w", err)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.GlobalIdx(idx)}, nil

	case wasm.OpcodeI32Load, wasm.OpcodeI64Load, wasm.OpcodeF32Load, wasm.OpcodeF64Load,
		wasm.OpcodeI32Load8S, wasm.OpcodeI32Load8U, wasm.OpcodeI32Load16S, wasm.OpcodeI32Load16U,
		wasm.OpcodeI64Load8S, wasm.OpcodeI64Load8U, wasm.OpcodeI64Load16S, wasm.OpcodeI64Load16U,
		wasm.OpcodeI64Load32S, wasm.OpcodeI64Load32U,
		wasm.OpcodeI32Store, wasm.OpcodeI64Store, wasm.OpcodeF32Store, wasm.OpcodeF64Store,
		wasm.OpcodeI32Store8, wasm.OpcodeI32Store16, wasm.OpcodeI64Store8, wasm.OpcodeI64Store16,
		wasm.OpcodeI64Store32:
		ma, err := decodeMemArg(r)
		if err != nil {
			return wasm.Instruction{}, err
		}
		return wasm.Instruction{Opcode: op, Imm: ma}, nil

	case wasm.OpcodeMemorySize, wasm.OpcodeMemoryGrow:
		reserved, err := decodeByte(r)
		if err != nil {
			return wasm.Instruction{}, err
		}
		if reserved != 0x00 {
			return wasm.Instruction{}, fmt.Errorf("%w: memory.size/memory.grow reserved byte must be 0x00", wasm.ErrMalformedFormat)
		}
		return wasm.Instruction{Opcode: op}, nil

	case wasm.OpcodeI32Const:
		n, err := decodeVarint32(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read i32.const operand: %w", err)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.NewI32(n)}, nil

	case wasm.OpcodeI64Const:
		n, err := decodeVarint64(r)
		if err != nil {
			return wasm.Instruction{}, fmt.Errorf("could not read i64.const operand: %w", err)
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.NewI64(n)}, nil

	case wasm.OpcodeF32Const:
		f, err := decodeFloat32(r)
		if err != nil {
			return wasm.Instruction{}, err
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.NewF32(f)}, nil

	case wasm.OpcodeF64Const:
		f, err := decodeFloat64(r)
		if err != nil {
			return wasm.Instruction{}, err
		}
		return wasm.Instruction{Opcode: op, Imm: wasm.NewF64(f)}, nil

	case wasm.OpcodeUnreachable, wasm.OpcodeNop, wasm.OpcodeReturn,
		wasm.OpcodeDrop, wasm.OpcodeSelect,
		wasm.OpcodeI32Eqz, wasm.OpcodeI32Eq, wasm.OpcodeI32Ne,
		wasm.OpcodeI32LtS, wasm.OpcodeI32LtU, wasm.OpcodeI32GtS, wasm.OpcodeI32GtU,
		wasm.OpcodeI32LeS, wasm.OpcodeI32LeU, wasm.OpcodeI32GeS, wasm.OpcodeI32GeU,
		wasm.OpcodeI64Eqz, wasm.OpcodeI64Eq, wasm.OpcodeI64Ne,
		wasm.OpcodeI64LtS, wasm.OpcodeI64LtU, wasm.OpcodeI64GtS, wasm.OpcodeI64GtU,
		wasm.OpcodeI64LeS, wasm.OpcodeI64LeU, wasm.OpcodeI64GeS, wasm.OpcodeI64GeU,
		wasm.OpcodeF32Eq, wasm.OpcodeF32Ne, wasm.OpcodeF32Lt, wasm.OpcodeF32Gt, wasm.OpcodeF32Le, wasm.OpcodeF32Ge,
		wasm.OpcodeF64Eq, wasm.OpcodeF64Ne, wasm.OpcodeF64Lt, wasm.OpcodeF64Gt, wasm.OpcodeF64Le, wasm.OpcodeF64Ge,
		wasm.OpcodeI32Clz, wasm.OpcodeI32Ctz, wasm.OpcodeI32Popcnt,
		wasm.OpcodeI32Add, wasm.OpcodeI32Sub, wasm.OpcodeI32Mul, wasm.OpcodeI32DivS, wasm.OpcodeI32DivU,
		wasm.OpcodeI32RemS, wasm.OpcodeI32RemU, wasm.OpcodeI32And, wasm.OpcodeI32Or, wasm.OpcodeI32Xor,
		wasm.OpcodeI32Shl, wasm.OpcodeI32ShrS, wasm.OpcodeI32ShrU, wasm.OpcodeI32Rotl, wasm.OpcodeI32Rotr,
		wasm.OpcodeI64Clz, wasm.OpcodeI64Ctz, wasm.OpcodeI64Popcnt,
		wasm.OpcodeI64Add, wasm.OpcodeI64Sub, wasm.OpcodeI64Mul, wasm.OpcodeI64DivS, wasm.OpcodeI64DivU,
		wasm.OpcodeI64RemS, wasm.OpcodeI64RemU, wasm.OpcodeI64And, wasm.OpcodeI64Or, wasm.OpcodeI64Xor,
		wasm.OpcodeI64Shl, wasm.OpcodeI64ShrS, wasm.OpcodeI64ShrU, wasm.OpcodeI64Rotl, wasm.OpcodeI64Rotr,
		wasm.OpcodeF32Abs, wasm.OpcodeF32Neg, wasm.OpcodeF32Ceil, wasm.OpcodeF32Floor, wasm.OpcodeF32Trunc,
		wasm.OpcodeF32Nearest, wasm.OpcodeF32Sqrt, wasm.OpcodeF32Add, wasm.OpcodeF32Sub, wasm.OpcodeF32Mul,
		wasm.OpcodeF32Div, wasm.OpcodeF32Min, wasm.OpcodeF32Max, wasm.OpcodeF32Copysign,
		wasm.OpcodeF64Abs, wasm.OpcodeF64Neg, wasm.OpcodeF64Ceil, wasm.OpcodeF64Floor, wasm.OpcodeF64Trunc,
		wasm.OpcodeF64Nearest, wasm.OpcodeF64Sqrt, wasm.OpcodeF64Add, wasm.OpcodeF64Sub, wasm.OpcodeF64Mul,
		wasm.OpcodeF64Div, wasm.OpcodeF64Min, wasm.OpcodeF64Max, wasm.OpcodeF64Copysign,
		wasm.OpcodeI32WrapI64,
		wasm.OpcodeI32TruncF32S, wasm.OpcodeI32TruncF32U, wasm.OpcodeI32TruncF64S, wasm.OpcodeI32TruncF64U,
		wasm.OpcodeI64ExtendI32S, wasm.OpcodeI64ExtendI32U,
		wasm.OpcodeI64TruncF32S, wasm.OpcodeI64TruncF32U, wasm.OpcodeI64TruncF64S, wasm.OpcodeI64TruncF64U,
		wasm.OpcodeF32ConvertI32S, wasm.OpcodeF32ConvertI32U, wasm.OpcodeF32ConvertI64S, wasm.OpcodeF32ConvertI64U,
		wasm.OpcodeF32DemoteF64,
		wasm.OpcodeF64ConvertI32S, wasm.OpcodeF64ConvertI32U, wasm.OpcodeF64ConvertI64S, wasm.OpcodeF64ConvertI64U,
		wasm.OpcodeF64PromoteF32,
		wasm.OpcodeI32ReinterpretF32, wasm.OpcodeI64ReinterpretF64,
		wasm.OpcodeF32ReinterpretI32, wasm.OpcodeF64ReinterpretI64:
		return wasm.Instruction{Opcode: op}, nil

	default:
		return wasm.Instruction{}, fmt.Errorf("%w: %#x", wasm.ErrMalformedOpcode, byte(op))
	}
}
