package inst

import (
	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

// pseudoDefs builds the mov/ldi/nop/snop/lnop definitions. None of these have
// a hardware opcode of their own; all lower to existing arithmetic encodings
// (SPEC_FULL.md §13). mov and the short no-ops ride the byte-immediate ADD
// family (3 bytes or less); ldi needs the full 16-bit range and the long
// no-op a 4-byte encoding, both of which only the word-immediate family
// (SUB/XOR/OR/AND) offers.

func encodeMov(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	// mov dst, src  ==  add dst, src, #0 (0 always fits the sign-extended byte)
	packWord(isa.ADD.HWBits(), uint8(args[0].Register), uint8(args[1].Register), 0, dst[0:2])
	dst[2] = 0
	return true
}

func encodeLdiImm(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	// ldi dst, #imm  ==  or dst, r0, #imm  (r0 is always zero, so this is
	// exactly imm; OR's family fetches a full 16-bit word, unlike ADD's).
	packWord(isa.OR.HWBits(), uint8(args[0].Register), uint8(isa.R0), 0, dst[0:2])
	putWord(dst[2:4], args[1].Word())
	return true
}

func encodeLdiLabel(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	// ldi dst, label  ==  or dst, r0, #address-of(label)
	addr, ok := resolve(args[1].Label)
	if !ok {
		return false
	}
	packWord(isa.OR.HWBits(), uint8(args[0].Register), uint8(isa.R0), 0, dst[0:2])
	putWord(dst[2:4], addr)
	return true
}

// encodeNopShort is "add r0, r0, ra": a true 2-byte no-op. Unlike
// "add r0, r0, r0", the right operand is RA (never zero), so the hardware
// reads it as a register rather than mistaking it for an immediate fetch.
func encodeNopShort(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	packWord(isa.ADD.HWBits(), uint8(isa.R0), uint8(isa.R0), uint8(isa.RA), dst)
	return true
}

// encodeNopLong is "xor r0, r0, #0": a 4-byte no-op using the word-immediate
// family, for callers that want a specific longer filler size.
func encodeNopLong(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	packWord(isa.XOR.HWBits(), uint8(isa.R0), uint8(isa.R0), 0, dst[0:2])
	putWord(dst[2:4], 0)
	return true
}

func pseudoDefs() []Def {
	return []Def{
		{
			Signature:   Sig(isa.MOV, arg.KindRegister, arg.KindRegister),
			Variants:    []Variant{{Size: 3, Encode: encodeMov}},
			Independent: true,
		},
		{
			Signature:   Sig(isa.LDI, arg.KindRegister, arg.KindImmediate),
			Variants:    []Variant{{Size: 4, Encode: encodeLdiImm}},
			Independent: true,
		},
		{
			Signature:   Sig(isa.LDI, arg.KindRegister, arg.KindLabel),
			Variants:    []Variant{{Size: 4, Encode: encodeLdiLabel}},
			Independent: false,
		},
		{
			Signature:   Sig(isa.NOP),
			Variants:    []Variant{{Size: 2, Encode: encodeNopShort}},
			Independent: true,
		},
		{
			Signature:   Sig(isa.SNOP),
			Variants:    []Variant{{Size: 2, Encode: encodeNopShort}},
			Independent: true,
		},
		{
			Signature:   Sig(isa.LNOP),
			Variants:    []Variant{{Size: 4, Encode: encodeNopLong}},
			Independent: true,
		},
	}
}
