package inst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

func noResolve(string) (uint16, bool) { return 0, false }

func TestSignatureEqualAndHash(t *testing.T) {
	a := Sig(isa.ADD, arg.KindRegister, arg.KindRegister, arg.KindRegister)
	b := Sig(isa.ADD, arg.KindRegister, arg.KindRegister, arg.KindRegister)
	c := Sig(isa.ADD, arg.KindRegister, arg.KindRegister, arg.KindImmediate)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(c))
}

func TestArithRegVariantFailsOnR0Right(t *testing.T) {
	d, ok := Lookup(Sig(isa.ADD, arg.KindRegister, arg.KindRegister, arg.KindRegister))
	require.True(t, ok)
	require.Len(t, d.Variants, 2)

	args := []arg.Arg{arg.Reg(isa.T0), arg.Reg(isa.T1), arg.Reg(isa.R0)}
	dst := make([]byte, 2)
	require.False(t, d.Variants[0].Encode(args, 0, dst, noResolve))

	dst3 := make([]byte, 3)
	require.True(t, d.Variants[1].Encode(args, 0, dst3, noResolve))
	require.Equal(t, byte(0), dst3[2])
}

func TestArithRegVariantSucceedsOnNonzeroRight(t *testing.T) {
	d, ok := Lookup(Sig(isa.ADD, arg.KindRegister, arg.KindRegister, arg.KindRegister))
	require.True(t, ok)

	args := []arg.Arg{arg.Reg(isa.T0), arg.Reg(isa.T1), arg.Reg(isa.T2)}
	dst := make([]byte, 2)
	require.True(t, d.Variants[0].Encode(args, 0, dst, noResolve))

	word := uint16(dst[0]) | uint16(dst[1])<<8
	require.Equal(t, uint16(isa.ADD.HWBits()), word>>12)
	require.Equal(t, uint16(isa.T0), (word>>8)&0xF)
	require.Equal(t, uint16(isa.T1), (word>>4)&0xF)
	require.Equal(t, uint16(isa.T2), word&0xF)
}

func TestNopIsATrueTwoByteNoOp(t *testing.T) {
	d, ok := Lookup(Sig(isa.NOP))
	require.True(t, ok)
	require.Len(t, d.Variants, 1)
	require.Equal(t, 2, d.Variants[0].Size)

	dst := make([]byte, 2)
	require.True(t, d.Variants[0].Encode(nil, 0, dst, noResolve))
	word := uint16(dst[0]) | uint16(dst[1])<<8
	require.Equal(t, uint16(isa.RA), word&0xF, "right operand must be RA, not R0, to avoid the immediate-fetch ambiguity")
}

func TestLnopIsAFourByteNoOp(t *testing.T) {
	d, ok := Lookup(Sig(isa.LNOP))
	require.True(t, ok)
	require.Len(t, d.Variants, 1)
	require.Equal(t, 4, d.Variants[0].Size)
}

func TestBranchShortFailsOutOfRangeAndLongAlwaysSucceeds(t *testing.T) {
	d, ok := Lookup(Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel))
	require.True(t, ok)
	require.Len(t, d.Variants, 2)

	resolve := func(label string) (uint16, bool) {
		if label == "far" {
			return 1000, true
		}
		return 0, false
	}
	args := []arg.Arg{arg.Reg(isa.T0), arg.Reg(isa.T1), arg.Lbl("far")}

	dst3 := make([]byte, 3)
	require.False(t, d.Variants[0].Encode(args, 0, dst3, resolve))

	dst7 := make([]byte, 7)
	require.True(t, d.Variants[1].Encode(args, 0, dst7, resolve))
}

func TestBranchShortSucceedsInRange(t *testing.T) {
	d, ok := Lookup(Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel))
	require.True(t, ok)

	resolve := func(label string) (uint16, bool) { return 10, true }
	args := []arg.Arg{arg.Reg(isa.T0), arg.Reg(isa.T1), arg.Lbl("near")}

	dst := make([]byte, 3)
	require.True(t, d.Variants[0].Encode(args, 5, dst, resolve))
	require.Equal(t, int8(2), int8(dst[2]))
}

func TestMemFailsOnOutOfRangeOffset(t *testing.T) {
	d, ok := Lookup(Sig(isa.LDW, arg.KindRegister, arg.KindRegister, arg.KindImmediate))
	require.True(t, ok)
	require.Len(t, d.Variants, 1)

	args := []arg.Arg{arg.Reg(isa.T0), arg.Reg(isa.A0), arg.Imm(false, 200)}
	dst := make([]byte, 3)
	require.False(t, d.Variants[0].Encode(args, 0, dst, noResolve))

	args[2] = arg.Imm(false, 4)
	require.True(t, d.Variants[0].Encode(args, 0, dst, noResolve))
}

func TestJmpRegFallbackOnR0(t *testing.T) {
	d, ok := Lookup(Sig(isa.JMP, arg.KindRegister))
	require.True(t, ok)
	require.Len(t, d.Variants, 2)

	args := []arg.Arg{arg.Reg(isa.R0)}
	dst2 := make([]byte, 2)
	require.False(t, d.Variants[0].Encode(args, 0, dst2, noResolve))

	dst4 := make([]byte, 4)
	require.True(t, d.Variants[1].Encode(args, 0, dst4, noResolve))
}

func TestRetEncodesThroughRA(t *testing.T) {
	d, ok := Lookup(Sig(isa.RET))
	require.True(t, ok)
	require.Len(t, d.Variants, 1)

	dst := make([]byte, 2)
	require.True(t, d.Variants[0].Encode(nil, 0, dst, noResolve))
	word := uint16(dst[0]) | uint16(dst[1])<<8
	require.Equal(t, uint16(isa.RA), word&0xF)
}

func TestMinMaxSize(t *testing.T) {
	min, ok := MinSize(Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel))
	require.True(t, ok)
	require.Equal(t, 3, min)

	max, ok := MaxSize(Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel))
	require.True(t, ok)
	require.Equal(t, 7, max)
}
