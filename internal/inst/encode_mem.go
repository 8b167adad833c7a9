package inst

import (
	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

// memOps is every load/store pseudo-opcode, each taking (reg, base, offset)
// after the textual front end desugars `[base]`/`[base+off]` bracket syntax
// into a register/immediate pair (SPEC_FULL.md §13).
var memOps = []isa.Opcode{isa.LDW, isa.LDB, isa.LBU, isa.STW, isa.STB}

func encodeMem(op isa.Opcode) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		if !args[2].FitsInt8() {
			return false
		}
		packWord(isa.MEM.HWBits(), uint8(args[0].Register), memFlags(op), uint8(args[1].Register), dst[0:2])
		dst[2] = byte(int8(int16(args[2].Word())))
		return true
	}
}

func memDefs() []Def {
	defs := make([]Def, 0, len(memOps))
	for _, op := range memOps {
		defs = append(defs, Def{
			Signature:   Sig(op, arg.KindRegister, arg.KindRegister, arg.KindImmediate),
			Variants:    []Variant{{Size: 3, Encode: encodeMem(op)}},
			Independent: true,
		})
	}
	return defs
}
