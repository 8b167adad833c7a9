package textasm

import (
	"fmt"
	"regexp"

	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

// memOperandPattern matches the bracket-syntax addressing mode
// `[base]` or `[base+off]` / `[base-off]` (SPEC_FULL.md §13). off may itself
// be any immediate literal ParseImmediate accepts (decimal, 0x, 0b).
var memOperandPattern = regexp.MustCompile(`^\[\s*([A-Za-z0-9_]+)\s*(?:([+-])\s*([A-Za-z0-9xXbB_]+))?\s*\]$`)

// isMemOp reports whether op addresses memory through bracket syntax rather
// than a plain operand list.
func isMemOp(op isa.Opcode) bool {
	switch op {
	case isa.LDW, isa.LDB, isa.LBU, isa.STW, isa.STB:
		return true
	default:
		return false
	}
}

// parseOperand classifies a single plain (non-bracketed) operand token: a
// `#`-prefixed immediate, a register name/alias, or — anything else —
// a label reference.
func parseOperand(tok string) (arg.Arg, error) {
	if tok == "" {
		return arg.Arg{}, fmt.Errorf("%w: empty operand", ErrBadOperand)
	}
	if tok[0] == '#' {
		return arg.ParseImmediate(tok[1:])
	}
	if r, ok := isa.LookupRegister(tok); ok {
		return arg.Reg(r), nil
	}
	return arg.Lbl(tok), nil
}

// parseArgs parses a mnemonic's raw operand text into the tagged-union
// argument list the catalog signature is keyed on, desugaring bracket
// addressing for the memory family first.
func parseArgs(op isa.Opcode, raw string) ([]arg.Arg, error) {
	if isMemOp(op) {
		return parseMemArgs(raw)
	}

	parts := splitArgs(raw)
	args := make([]arg.Arg, 0, len(parts))
	for _, p := range parts {
		a, err := parseOperand(p)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

// parseMemArgs desugars `op reg, [base]` / `op reg, [base+off]` into the
// three-operand (Register, Register, Immediate) form the catalog's MEM
// signatures expect, defaulting a bare `[base]` offset to zero
// (SPEC_FULL.md §13).
func parseMemArgs(raw string) ([]arg.Arg, error) {
	parts := splitArgs(raw)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected \"reg, [base]\" or \"reg, [base+off]\", got %q", ErrWrongOperandCount, raw)
	}

	dest, err := parseOperand(parts[0])
	if err != nil {
		return nil, err
	}
	if dest.Kind != arg.KindRegister {
		return nil, fmt.Errorf("%w: %q is not a register", ErrBadOperand, parts[0])
	}

	m := memOperandPattern.FindStringSubmatch(parts[1])
	if m == nil {
		return nil, fmt.Errorf("%w: %q is not a valid [base] or [base+off] operand", ErrBadOperand, parts[1])
	}

	base, ok := isa.LookupRegister(m[1])
	if !ok {
		return nil, fmt.Errorf("%w: %q", arg.ErrUnknownRegister, m[1])
	}

	offset := arg.Imm(false, 0)
	if m[3] != "" {
		parsed, err := arg.ParseImmediate(m[3])
		if err != nil {
			return nil, err
		}
		negative := parsed.Negative
		if m[2] == "-" {
			negative = !negative
		}
		offset = arg.Imm(negative, parsed.Magnitude)
	}

	return []arg.Arg{dest, arg.Reg(base), offset}, nil
}
