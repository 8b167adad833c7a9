package inst

import (
	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

// displacement computes the signed 8-bit PC-relative offset from the end of
// a 3-byte short-form branch instruction (here+3) to the resolved target,
// returning ok=false if it doesn't fit int8 (SPEC_FULL.md §13).
func displacement(here uint16, size int, target uint16) (int8, bool) {
	d := int32(target) - int32(here) - int32(size)
	if d < -128 || d > 127 {
		return 0, false
	}
	return int8(d), true
}

func encodeBranchShort(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		target, ok := resolve(args[2].Label)
		if !ok {
			return false
		}
		disp, ok := displacement(here, 3, target)
		if !ok {
			return false
		}
		packWord(isa.BRA.HWBits(), branchFlags(op), uint8(args[0].Register), uint8(args[1].Register), dst[0:2])
		dst[2] = byte(disp)
		return true
	}
}

// encodeBranchLong is the 7-byte invert-and-skip relaxation: inverted
// condition with a fixed +4 displacement over the absolute JMP that follows.
func encodeBranchLong(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		addr, ok := resolve(args[2].Label)
		if !ok {
			return false
		}
		packWord(isa.BRA.HWBits(), invertedBranchFlags(op), uint8(args[0].Register), uint8(args[1].Register), dst[0:2])
		dst[2] = 4
		jmpWord(isa.R0, isa.R0, dst[3:5])
		putWord(dst[5:7], addr)
		return true
	}
}

func encodeBraShort(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	target, ok := resolve(args[0].Label)
	if !ok {
		return false
	}
	disp, ok := displacement(here, 3, target)
	if !ok {
		return false
	}
	packWord(isa.BRA.HWBits(), branchFlags(isa.BRA), uint8(isa.R0), uint8(isa.R0), dst[0:2])
	dst[2] = byte(disp)
	return true
}

func encodeBraFallback(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	addr, ok := resolve(args[0].Label)
	if !ok {
		return false
	}
	jmpWord(isa.R0, isa.R0, dst[0:2])
	putWord(dst[2:4], addr)
	return true
}

// conditionalBranchOps is every conditional branch pseudo-opcode that takes
// two compared registers and a label target.
var conditionalBranchOps = []isa.Opcode{
	isa.BEQ, isa.BNE, isa.BLT, isa.BLE, isa.BGT, isa.BGE,
	isa.BLTU, isa.BLEU, isa.BGTU, isa.BGEU,
}

func branchDefs() []Def {
	defs := make([]Def, 0, len(conditionalBranchOps)+1)
	for _, op := range conditionalBranchOps {
		defs = append(defs, Def{
			Signature: Sig(op, arg.KindRegister, arg.KindRegister, arg.KindLabel),
			Variants: []Variant{
				{Size: 3, Encode: encodeBranchShort(op)},
				{Size: 7, Encode: encodeBranchLong(op)},
			},
			Independent: false,
		})
	}
	defs = append(defs, Def{
		Signature: Sig(isa.BRA, arg.KindLabel),
		Variants: []Variant{
			{Size: 3, Encode: encodeBraShort},
			{Size: 4, Encode: encodeBraFallback},
		},
		Independent: false,
	})
	return defs
}
