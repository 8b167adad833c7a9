// Package assemble is the fixed-point assembler core: it owns a program (an
// ordered sequence of instruction instances) and drives each one to its
// smallest encodable variant, converging on a final byte image.
package assemble

import "errors"

var (
	// errUnknownInstruction means no catalog signature matches an instance's
	// (opcode, operand kinds).
	errUnknownInstruction = errors.New("unknown instruction")

	// errCannotEncode means an instance exhausted every variant without a
	// successful encode.
	errCannotEncode = errors.New("cannot encode instance")

	// errProgramTooLarge means the summed instance sizes exceed the 64 KiB
	// image.
	errProgramTooLarge = errors.New("program too large")

	// errWriteBeforeEmit means the final image emission reached an instance
	// that never had a successful encode recorded.
	errWriteBeforeEmit = errors.New("instance written before a successful emit")
)
