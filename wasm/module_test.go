package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFunctionType_EqualsSignature(t *testing.T) {
	ft := &FunctionType{Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}}

	require.True(t, ft.EqualsSignature([]ValueType{ValueTypeI32, ValueTypeI32}, []ValueType{ValueTypeI32}))
	require.False(t, ft.EqualsSignature([]ValueType{ValueTypeI32}, []ValueType{ValueTypeI32}))
	require.False(t, ft.EqualsSignature([]ValueType{ValueTypeI32, ValueTypeI32}, []ValueType{ValueTypeI64}))
}

func TestExportKindName(t *testing.T) {
	require.Equal(t, "func", ExportKindName(ExportKindFunc))
	require.Equal(t, "table", ExportKindName(ExportKindTable))
	require.Equal(t, "mem", ExportKindName(ExportKindMem))
	require.Equal(t, "global", ExportKindName(ExportKindGlobal))
	require.Equal(t, "unknown", ExportKindName(ExportKind(99)))
}

func TestModuleInst_ExportByName_MultipleExports(t *testing.T) {
	m := ModuleInst{
		Exports: []ExportInst{
			{Name: "memory", Value: ExternMem(MemAddr(0))},
			{Name: "add", Value: ExternFunc(FuncAddr(1))},
		},
	}

	v, ok := m.ExportByName("add")
	require.True(t, ok)
	require.Equal(t, FuncAddr(1), v.Func)
}
