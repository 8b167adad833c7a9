package inst

import (
	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

// The CPU's cycle-1 decode rule picks a different immediate width per
// arithmetic family (spec.md §4.4): ADD/LSL/LSR/ASR fetch a single
// sign-extended byte, while SUB/XOR/OR/AND fetch a raw 16-bit word. Every
// encoder below must match that width exactly, or the simulator would
// misinterpret the following byte as part of the next instruction.

// byteImmOps fetch one sign-extended immediate byte: a 3-byte instruction.
var byteImmOps = []isa.Opcode{isa.ADD, isa.LSL, isa.LSR, isa.ASR}

// wordImmOps fetch a raw 16-bit immediate word: a 4-byte instruction.
var wordImmOps = []isa.Opcode{isa.SUB, isa.XOR, isa.OR, isa.AND}

// encodeArithReg is the 2-byte three-register variant (SPEC_FULL.md §13):
// fails whenever the right-operand register is R0, since a hardware `right
// == 0` field is indistinguishable from "immediate follows".
func encodeArithReg(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		right := args[2].Register
		if right == isa.R0 {
			return false
		}
		packWord(op.HWBits(), uint8(args[0].Register), uint8(args[1].Register), uint8(right), dst)
		return true
	}
}

// encodeArithRegFallbackByte is the always-succeeding 3-byte fallback for the
// byte-immediate family: substitutes the exact-equivalent right==0,
// zero-immediate encoding (R0 always reads as zero).
func encodeArithRegFallbackByte(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		packWord(op.HWBits(), uint8(args[0].Register), uint8(args[1].Register), 0, dst[0:2])
		dst[2] = 0
		return true
	}
}

// encodeArithRegFallbackWord is the word-immediate family's 4-byte
// equivalent of the above.
func encodeArithRegFallbackWord(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		packWord(op.HWBits(), uint8(args[0].Register), uint8(args[1].Register), 0, dst[0:2])
		putWord(dst[2:4], 0x0000)
		return true
	}
}

// encodeArithImmByte is the 3-byte register/register/immediate form for
// ADD/LSL/LSR/ASR: fails when the value doesn't fit a signed 8-bit
// immediate, since the hardware sign-extends a single fetched byte.
func encodeArithImmByte(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		if !args[2].FitsInt8() {
			return false
		}
		packWord(op.HWBits(), uint8(args[0].Register), uint8(args[1].Register), 0, dst[0:2])
		dst[2] = byte(int8(int16(args[2].Word())))
		return true
	}
}

// encodeArithImmWord is the 4-byte register/register/immediate form for
// SUB/XOR/OR/AND: a raw 16-bit immediate, always succeeds.
func encodeArithImmWord(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		packWord(op.HWBits(), uint8(args[0].Register), uint8(args[1].Register), 0, dst[0:2])
		putWord(dst[2:4], args[2].Word())
		return true
	}
}

// putWord writes a 16-bit value little-endian (low byte first) into dst[0:2].
func putWord(dst []byte, w uint16) {
	dst[0] = byte(w)
	dst[1] = byte(w >> 8)
}

func arithDefsByte(op isa.Opcode) []Def {
	return []Def{
		{
			Signature: Sig(op, arg.KindRegister, arg.KindRegister, arg.KindRegister),
			Variants: []Variant{
				{Size: 2, Encode: encodeArithReg(op)},
				{Size: 3, Encode: encodeArithRegFallbackByte(op)},
			},
			Independent: true,
		},
		{
			Signature:   Sig(op, arg.KindRegister, arg.KindRegister, arg.KindImmediate),
			Variants:    []Variant{{Size: 3, Encode: encodeArithImmByte(op)}},
			Independent: true,
		},
	}
}

func arithDefsWord(op isa.Opcode) []Def {
	return []Def{
		{
			Signature: Sig(op, arg.KindRegister, arg.KindRegister, arg.KindRegister),
			Variants: []Variant{
				{Size: 2, Encode: encodeArithReg(op)},
				{Size: 4, Encode: encodeArithRegFallbackWord(op)},
			},
			Independent: true,
		},
		{
			Signature:   Sig(op, arg.KindRegister, arg.KindRegister, arg.KindImmediate),
			Variants:    []Variant{{Size: 4, Encode: encodeArithImmWord(op)}},
			Independent: true,
		},
	}
}
