// Package wasm implements the in-memory runtime structures of a WebAssembly
// execution engine: the Store that owns every instantiated function, table,
// memory, global and module; the operand/control Stack that drives a
// structured-control-flow interpreter; and the abstract module syntax
// produced by the binary decoder in the binary subpackage.
//
// Validation, instantiation, instruction execution, host embedding and the
// text format are intentionally out of scope: they are external
// collaborators that consume the types defined here.
package wasm
