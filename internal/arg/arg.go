// Package arg implements the assembler's argument model: a tagged variant
// over {register, immediate, label} rather than a polymorphic class
// hierarchy, so that comparing two arguments' *kinds* (the only thing a
// Signature cares about) never requires a type switch or a runtime type id.
package arg

import "github.com/kstephano/vx16/internal/isa"

// Kind discriminates the three shapes an argument can take. Signature
// equality and hashing only ever look at Kind, never at the payload.
type Kind uint8

const (
	KindRegister Kind = iota
	KindImmediate
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindImmediate:
		return "immediate"
	case KindLabel:
		return "label"
	default:
		return "?kind?"
	}
}

// Arg is one parsed operand. Only the fields matching Kind are meaningful;
// the zero value of the others is never inspected by callers that switch on
// Kind first, matching the discipline a tagged union gives for free.
type Arg struct {
	Kind Kind

	// valid when Kind == KindRegister
	Register isa.Register

	// valid when Kind == KindImmediate: the magnitude is always stored
	// non-negative and two's-complemented only at encode time (spec.md
	// §4.1), so a parsed -1 is {Negative: true, Magnitude: 1}, not 0xFFFF.
	Negative  bool
	Magnitude uint16

	// valid when Kind == KindLabel
	Label string
}

// Reg builds a register argument.
func Reg(r isa.Register) Arg { return Arg{Kind: KindRegister, Register: r} }

// Imm builds an immediate argument from a signed value already known to fit
// the 16-bit magnitude range.
func Imm(negative bool, magnitude uint16) Arg {
	return Arg{Kind: KindImmediate, Negative: negative, Magnitude: magnitude}
}

// ImmWord builds a non-negative immediate argument from a plain 16-bit word,
// for code that synthesizes an immediate rather than parsing one from
// source text.
func ImmWord(word uint16) Arg {
	return Arg{Kind: KindImmediate, Negative: false, Magnitude: word}
}

// Lbl builds a label-reference argument.
func Lbl(name string) Arg { return Arg{Kind: KindLabel, Label: name} }

// Word returns the argument's 16-bit two's-complement bit pattern. Only
// valid when Kind == KindImmediate; panics otherwise, since encoders only
// ever call this after checking Kind and a signature mismatch there is a
// programmer error, not a user-facing one.
func (a Arg) Word() uint16 {
	if a.Kind != KindImmediate {
		panic("arg: Word called on non-immediate argument")
	}
	if a.Negative {
		return -a.Magnitude
	}
	return a.Magnitude
}

// FitsInt8 reports whether the argument's two's-complement value fits in a
// signed 8-bit displacement, the width every branch and memory-offset
// encoder needs.
func (a Arg) FitsInt8() bool {
	w := int16(a.Word())
	return w >= -128 && w <= 127
}
