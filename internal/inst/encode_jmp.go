package inst

import (
	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

// jmpWord packs a JMP hardware word: dest is the link register (R0 to
// discard, RA for jsr/call), left is always 0, right is 0 (immediate address
// follows) or a nonzero register holding the target (SPEC_FULL.md §13).
func jmpWord(link isa.Register, right isa.Register, dst []byte) {
	packWord(isa.JMP.HWBits(), uint8(link), 0, uint8(right), dst)
}

func encodeJmpRegDirect(link isa.Register) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		target := args[0].Register
		if target == isa.R0 {
			return false
		}
		jmpWord(link, target, dst)
		return true
	}
}

func encodeJmpRegFallback(link isa.Register) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		jmpWord(link, isa.R0, dst[0:2])
		putWord(dst[2:4], 0x0000)
		return true
	}
}

func encodeJmpLabel(link isa.Register) Encoder {
	return func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
		addr, ok := resolve(args[0].Label)
		if !ok {
			return false
		}
		jmpWord(link, isa.R0, dst[0:2])
		putWord(dst[2:4], addr)
		return true
	}
}

func encodeRet(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool {
	jmpWord(isa.R0, isa.RA, dst)
	return true
}

func jmpDefs() []Def {
	return []Def{
		{
			Signature: Sig(isa.JMP, arg.KindRegister),
			Variants: []Variant{
				{Size: 2, Encode: encodeJmpRegDirect(isa.R0)},
				{Size: 4, Encode: encodeJmpRegFallback(isa.R0)},
			},
			Independent: true,
		},
		{
			Signature:   Sig(isa.JMP, arg.KindLabel),
			Variants:    []Variant{{Size: 4, Encode: encodeJmpLabel(isa.R0)}},
			Independent: false,
		},
		{
			Signature:   Sig(isa.JSR, arg.KindLabel),
			Variants:    []Variant{{Size: 4, Encode: encodeJmpLabel(isa.RA)}},
			Independent: false,
		},
		{
			Signature:   Sig(isa.CALL, arg.KindLabel),
			Variants:    []Variant{{Size: 4, Encode: encodeJmpLabel(isa.RA)}},
			Independent: false,
		},
		{
			Signature:   Sig(isa.RET),
			Variants:    []Variant{{Size: 2, Encode: encodeRet}},
			Independent: true,
		},
	}
}
