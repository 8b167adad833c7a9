// Package textasm is the textual assembler front end spec.md §1 scopes out
// as an external collaborator: it lexes source lines into instances, tracks
// labels, and supplies the address-resolver seam internal/assemble's
// fixed-point engine consults (SPEC_FULL.md §12). Its preprocessing style —
// strip comments with a regexp, detect `label:` lines, one source line maps
// to one instruction — follows the teacher's vm/parse.go.
package textasm

import "errors"

var (
	// ErrUnknownMnemonic means a line's first token matched no opcode or
	// pseudo-opcode name.
	ErrUnknownMnemonic = errors.New("textasm: unknown mnemonic")

	// ErrDuplicateLabel means the same label was declared twice.
	ErrDuplicateLabel = errors.New("textasm: duplicate label")

	// ErrBadOperand means an operand's text didn't match any of the
	// register, immediate, or bracketed memory-operand shapes.
	ErrBadOperand = errors.New("textasm: bad operand")

	// ErrWrongOperandCount means a mnemonic got a different number of
	// operands than any of its catalog signatures accept.
	ErrWrongOperandCount = errors.New("textasm: wrong operand count")
)
