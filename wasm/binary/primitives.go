package binary

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/domesticmouse/greenwasm/wasm"
	"github.com/domesticmouse/greenwasm/wasm/leb128"
)

var (
	magic   = []byte{0x00, 'a', 's', 'm'}
	version = []byte{0x01, 0x00, 0x00, 0x00}
)

func decodeByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", wasm.ErrMalformedFormat, err)
	}
	return buf[0], nil
}

func decodeVaruint32(r io.Reader) (uint32, error) {
	v, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", wasm.ErrMalformedInteger, err)
	}
	return v, nil
}

func decodeVarint32(r io.Reader) (int32, error) {
	v, _, err := leb128.DecodeInt32(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", wasm.ErrMalformedInteger, err)
	}
	return v, nil
}

func decodeVarint64(r io.Reader) (int64, error) {
	v, _, err := leb128.DecodeInt64(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", wasm.ErrMalformedInteger, err)
	}
	return v, nil
}

func decodeVarint33AsInt64(r io.Reader) (int64, error) {
	v, _, err := leb128.DecodeInt33AsInt64(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", wasm.ErrMalformedInteger, err)
	}
	return v, nil
}

// encodeVaruint32 is the inverse of decodeVaruint32.
func encodeVaruint32(n uint32) []byte {
	return leb128.EncodeUint32(n)
}

// decodeName decodes a size-prefixed, UTF-8 validated string (binary
// format section 5.2.4).
func decodeName(r io.Reader) (string, error) {
	size, err := decodeVaruint32(r)
	if err != nil {
		return "", fmt.Errorf("failed to read size of name: %w", err)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: failed to read %d bytes of a name: %v", wasm.ErrMalformedFormat, size, err)
	}

	if !utf8.Valid(buf) {
		return "", wasm.ErrMalformedName
	}

	return string(buf), nil
}

// encodeName is the inverse of decodeName.
func encodeName(name string) []byte {
	data := []byte(name)
	return append(encodeVaruint32(uint32(len(data))), data...)
}

// decodeFloat32 decodes 4 little-endian bytes as an IEEE 754 binary32,
// preserving the exact bit pattern including NaN payloads.
func decodeFloat32(r io.Reader) (float32, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, fmt.Errorf("%w: failed to read 4 bytes for f32.const: %v", wasm.ErrMalformedFormat, err)
	}
	bits := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return math.Float32frombits(bits), nil
}

func encodeFloat32(f float32) []byte {
	bits := math.Float32bits(f)
	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

// decodeFloat64 decodes 8 little-endian bytes as an IEEE 754 binary64.
func decodeFloat64(r io.Reader) (float64, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, fmt.Errorf("%w: failed to read 8 bytes for f64.const: %v", wasm.ErrMalformedFormat, err)
	}
	bits := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
	return math.Float64frombits(bits), nil
}

func encodeFloat64(f float64) []byte {
	bits := math.Float64bits(f)
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(bits >> (8 * i))
	}
	return out
}

// decodeVec reads a u32 count followed by that many fixed elements decoded
// by decodeElem, the pattern underlying every vector production in the
// grammar (binary format section 5.2.6).
func decodeVec[T any](r io.Reader, decodeElem func(io.Reader) (T, error)) ([]T, error) {
	n, err := decodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read count: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]T, n)
	for i := range out {
		v, err := decodeElem(r)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func newReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
