package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_PushPopVal(t *testing.T) {
	s := NewStack()
	s.PushVal(NewI32(1))
	s.PushVal(NewI32(2))

	require.Equal(t, int32(2), s.PopVal().I32())
	require.Equal(t, int32(1), s.PopVal().I32())
}

func TestStack_PeekValDoesNotPop(t *testing.T) {
	s := NewStack()
	s.PushVal(NewI32(9))
	require.Equal(t, int32(9), s.PeekVal().I32())
	require.Equal(t, int32(9), s.PopVal().I32())
}

func TestStack_PopValPanicsOnLabel(t *testing.T) {
	s := NewStack()
	s.PushLabel(0, nil, nil)
	require.Panics(t, func() { s.PopVal() })
}

func TestStack_LabelNestingAndLthLabel(t *testing.T) {
	s := NewStack()
	s.PushLabel(1, nil, nil)
	s.PushVal(NewI32(1))
	s.PushLabel(2, nil, nil)
	s.PushVal(NewI32(2))

	require.Equal(t, 2, s.LabelCount())
	require.Equal(t, 2, s.CurrentLabel().Arity)
	require.Equal(t, 1, s.LthLabel(1).Arity)

	s.PopVal()
	popped := s.PopLabel()
	require.Equal(t, 2, popped.Arity)
	require.Equal(t, 1, s.LabelCount())
	require.Equal(t, 1, s.CurrentLabel().Arity)
}

func TestStack_LabelCarriesContinuations(t *testing.T) {
	branchTarget := []Instruction{{Opcode: OpcodeNop}}
	next := []Instruction{{Opcode: OpcodeEnd}}

	s := NewStack()
	s.PushLabel(0, branchTarget, next)

	label := s.CurrentLabel()
	require.Equal(t, branchTarget, label.BranchTarget)
	require.Equal(t, next, label.Next)

	popped := s.PopLabel()
	require.Equal(t, branchTarget, popped.BranchTarget)
	require.Equal(t, next, popped.Next)
}

func TestStack_FrameAndActivation(t *testing.T) {
	frame := Frame{Locals: []Value{NewI32(42)}, Module: ModuleAddr(3)}
	next := []Instruction{{Opcode: OpcodeEnd}}

	s := NewStack()
	s.PushFrame(1, frame, next)

	elem, ok := s.Top()
	require.True(t, ok)
	require.True(t, elem.IsActivation())
	require.Equal(t, next, elem.AsActivation().Next)

	require.Equal(t, TopCtrlActivation, s.TopCtrlEntry())
	require.Equal(t, 1, s.CurrentFrameArity())
	require.Equal(t, ModuleAddr(3), s.CurrentFrame().Module)
	require.Equal(t, int32(42), s.CurrentFrame().Locals[0].I32())

	popped := s.PopFrame()
	require.Equal(t, 1, popped.Arity)
	require.Equal(t, next, popped.Next)
}

func TestStack_TopReportsAbsentOnEmptyStack(t *testing.T) {
	s := NewStack()
	_, ok := s.Top()
	require.False(t, ok)
	require.Equal(t, TopCtrlNone, s.TopCtrlEntry())
}

func TestStack_TopReturnsGenuineTopmostElement(t *testing.T) {
	s := NewStack()
	s.PushLabel(0, nil, nil)
	s.PushVal(NewI32(1))
	s.PushVal(NewI32(2))

	elem, ok := s.Top()
	require.True(t, ok)
	require.True(t, elem.IsVal())
	require.Equal(t, int32(2), elem.Val().I32())
}

func TestStack_TopCtrlEntrySkipsValuesAboveLabel(t *testing.T) {
	s := NewStack()
	s.PushLabel(0, nil, nil)
	s.PushVal(NewI32(1))
	s.PushVal(NewI32(2))
	require.Equal(t, TopCtrlLabel, s.TopCtrlEntry())
}

func TestStack_PopFramePanicsOnValueTop(t *testing.T) {
	s := NewStack()
	s.PushVal(NewI32(1))
	require.Panics(t, func() { s.PopFrame() })
}

func TestStack_PopLabelPanicsOnActivationTop(t *testing.T) {
	s := NewStack()
	s.PushFrame(0, Frame{}, nil)
	require.Panics(t, func() { s.PopLabel() })
}
