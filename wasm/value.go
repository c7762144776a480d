package wasm

import "math"

// ValueType tags one of the four Wasm value types. The byte values match
// the binary format's value-type encoding (section 5.3.1) so the decoder
// can use a ValueType directly as the wire tag.
type ValueType byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c
)

// String names a ValueType the way the text format spells it.
func (t ValueType) String() string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	default:
		return "unknown"
	}
}

// Value is a tagged union of the four Wasm value types. Values are
// copyable and have no identity; the 64-bit payload is wide enough to hold
// any of i32, i64, f32 or f64 reinterpreted bitwise, so a Value never
// allocates.
type Value struct {
	vtype ValueType
	bits  uint64
}

// ValueType reports which of the four types v holds.
func (v Value) ValueType() ValueType {
	return v.vtype
}

// NewI32 constructs an i32 value.
func NewI32(n int32) Value {
	return Value{vtype: ValueTypeI32, bits: uint64(uint32(n))}
}

// NewI64 constructs an i64 value.
func NewI64(n int64) Value {
	return Value{vtype: ValueTypeI64, bits: uint64(n)}
}

// NewF32 constructs an f32 value. The bit pattern, including any NaN
// payload, is preserved exactly.
func NewF32(f float32) Value {
	return Value{vtype: ValueTypeF32, bits: uint64(math.Float32bits(f))}
}

// NewF64 constructs an f64 value. The bit pattern, including any NaN
// payload, is preserved exactly.
func NewF64(f float64) Value {
	return Value{vtype: ValueTypeF64, bits: math.Float64bits(f)}
}

// I32 returns the i32 payload. The caller guarantees ValueType() == ValueTypeI32.
func (v Value) I32() int32 { return int32(uint32(v.bits)) }

// I64 returns the i64 payload. The caller guarantees ValueType() == ValueTypeI64.
func (v Value) I64() int64 { return int64(v.bits) }

// F32 returns the f32 payload. The caller guarantees ValueType() == ValueTypeF32.
func (v Value) F32() float32 { return math.Float32frombits(uint32(v.bits)) }

// F64 returns the f64 payload. The caller guarantees ValueType() == ValueTypeF64.
func (v Value) F64() float64 { return math.Float64frombits(v.bits) }
