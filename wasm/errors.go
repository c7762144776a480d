package wasm

import "errors"

// Decode errors are recoverable and surfaced to the caller of the top-level
// decoder entry point. Each decoder primitive either returns a value,
// having consumed its bytes from the io.Reader, or wraps one of these sentinels with
// fmt.Errorf("%w: ...", ...) to add positional detail; callers should use
// errors.Is against these rather than comparing strings.
var (
	// ErrMalformedInteger is returned when a LEB128-encoded integer has no
	// terminator byte within its bit budget, or the terminator's high bits
	// do not fit the requested width.
	ErrMalformedInteger = errors.New("malformed integer")

	// ErrMalformedType is returned when a value-type or block-type tag byte
	// is not one of the bytes the format reserves for that purpose.
	ErrMalformedType = errors.New("malformed value type")

	// ErrMalformedOpcode is returned when an instruction's leading byte has
	// no entry in the opcode table.
	ErrMalformedOpcode = errors.New("malformed opcode")

	// ErrMalformedName is returned when a name's byte vector is not valid
	// UTF-8.
	ErrMalformedName = errors.New("malformed name: invalid UTF-8")

	// ErrMalformedFormat covers every other structural failure: truncation,
	// an unexpected tag byte, a section whose declared length does not
	// match what its inner parser consumed, or a section appearing out of
	// order.
	ErrMalformedFormat = errors.New("malformed module")
)
