package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedIndexVec_PushAssignsSequentialAddresses(t *testing.T) {
	v := TypedIndexVec[string, FuncAddr]{}
	require.Equal(t, FuncAddr(0), v.Push("a"))
	require.Equal(t, FuncAddr(1), v.Push("b"))
	require.Equal(t, FuncAddr(2), v.Push("c"))
	require.Equal(t, 3, v.Len())
}

func TestTypedIndexVec_Get(t *testing.T) {
	v := TypedIndexVec[string, FuncAddr]{}
	addr := v.Push("hello")

	value, ok := v.Get(addr)
	require.True(t, ok)
	require.Equal(t, "hello", value)

	_, ok = v.Get(FuncAddr(99))
	require.False(t, ok)
}

func TestTypedIndexVec_GetMutObservesMutation(t *testing.T) {
	v := TypedIndexVec[int, MemAddr]{}
	addr := v.Push(1)

	p, ok := v.GetMut(addr)
	require.True(t, ok)
	*p = 42

	value, _ := v.Get(addr)
	require.Equal(t, 42, value)
}

func TestTypedIndexVec_At(t *testing.T) {
	v := TypedIndexVec[int, MemAddr]{}
	v.Push(7)
	require.Equal(t, 7, v.At(0))
	require.Panics(t, func() { v.At(1) })
}

func TestTypedIndexVec_PopLast(t *testing.T) {
	v := TypedIndexVec[int, MemAddr]{}
	v.Push(1)
	v.Push(2)
	v.PopLast()
	require.Equal(t, 1, v.Len())
	require.Equal(t, 1, v.At(0))
}

func TestNewTypedIndexVec(t *testing.T) {
	v := NewTypedIndexVec[int, MemAddr]([]int{10, 20, 30})
	require.Equal(t, 3, v.Len())
	require.Equal(t, 20, v.At(1))
}
