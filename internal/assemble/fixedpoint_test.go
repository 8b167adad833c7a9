package assemble

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/inst"
	"github.com/kstephano/vx16/internal/isa"
)

// labelProgram builds a tiny program with a name->instance-index map and
// returns a Program plus an AddressResolver backed by Program.Addresses(),
// the way a real textual-assembler collaborator would (SPEC_FULL.md §12).
func labelProgram(instances []*Instance, labels map[string]int) (*Program, inst.AddressResolver) {
	p := &Program{Instances: instances}
	resolve := func(label string) (uint16, bool) {
		idx, ok := labels[label]
		if !ok {
			return 0, false
		}
		return p.Addresses()[idx], true
	}
	return p, resolve
}

func mustInstance(t *testing.T, sig inst.Signature, args []arg.Arg) *Instance {
	t.Helper()
	in, err := NewInstance(sig, args)
	require.NoError(t, err)
	return in
}

func TestAssembleAddRegisterForm(t *testing.T) {
	in := mustInstance(t, inst.Sig(isa.ADD, arg.KindRegister, arg.KindRegister, arg.KindRegister),
		[]arg.Arg{arg.Reg(isa.A0), arg.Reg(isa.A1), arg.Reg(isa.A2)})
	p, resolve := labelProgram([]*Instance{in}, nil)

	image, err := Assemble(p, resolve)
	require.NoError(t, err)
	require.Equal(t, 1<<16, len(image))
	require.Equal(t, uint16(0), in.Address)
	require.Equal(t, 2, in.Size())
}

func TestAssembleForwardShortBranch(t *testing.T) {
	branch := mustInstance(t, inst.Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel),
		[]arg.Arg{arg.Reg(isa.A0), arg.Reg(isa.A1), arg.Lbl("target")})
	filler := mustInstance(t, inst.Sig(isa.NOP), nil)

	p, resolve := labelProgram([]*Instance{branch, filler}, map[string]int{"target": 1})
	image, err := Assemble(p, resolve)
	require.NoError(t, err)
	require.Equal(t, 3, branch.Size(), "short form should suffice for a 3-byte forward jump")
	_ = image
}

func TestAssembleForwardLongBranchWhenOutOfRange(t *testing.T) {
	instances := []*Instance{
		mustInstance(t, inst.Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel),
			[]arg.Arg{arg.Reg(isa.A0), arg.Reg(isa.A1), arg.Lbl("target")}),
	}
	// Pad with enough 4-byte fillers that "target" lands beyond int8 range.
	for i := 0; i < 60; i++ {
		instances = append(instances, mustInstance(t, inst.Sig(isa.LNOP), nil))
	}
	instances = append(instances, mustInstance(t, inst.Sig(isa.NOP), nil))
	labels := map[string]int{"target": len(instances) - 1}

	p, resolve := labelProgram(instances, labels)
	_, err := Assemble(p, resolve)
	require.NoError(t, err)
	require.Equal(t, 7, instances[0].Size(), "out-of-range forward branch must relax to the 7-byte long form")
}

func TestAssembleProgramTooLarge(t *testing.T) {
	var instances []*Instance
	for i := 0; i < 20000; i++ {
		instances = append(instances, mustInstance(t, inst.Sig(isa.LNOP), nil))
	}
	p, resolve := labelProgram(instances, nil)
	_, err := Assemble(p, resolve)
	require.ErrorIs(t, err, errProgramTooLarge)
}

func TestAssembleUnresolvableLabelCannotEncode(t *testing.T) {
	in := mustInstance(t, inst.Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel),
		[]arg.Arg{arg.Reg(isa.A0), arg.Reg(isa.A1), arg.Lbl("nowhere")})
	p, resolve := labelProgram([]*Instance{in}, nil)

	_, err := Assemble(p, resolve)
	var cannotEncode *CannotEncodeError
	require.ErrorAs(t, err, &cannotEncode)
	require.Equal(t, 0, cannotEncode.Index)
}

func TestIndependentShortCircuitNeverReEncodesAfterSuccess(t *testing.T) {
	calls := 0
	sig := inst.Sig(isa.ADD, arg.KindRegister, arg.KindRegister, arg.KindRegister)
	in := mustInstance(t, sig, []arg.Arg{arg.Reg(isa.A0), arg.Reg(isa.A1), arg.Reg(isa.A2)})

	// Wrap the real encoder so the test can count invocations while still
	// exercising the real catalog behavior.
	real := in.Def.Variants[0].Encode
	wrapped := *in.Def
	wrapped.Variants = append([]inst.Variant{}, in.Def.Variants...)
	wrapped.Variants[0].Encode = func(args []arg.Arg, here uint16, dst []byte, resolve inst.AddressResolver) bool {
		calls++
		return real(args, here, dst, resolve)
	}
	in.Def = &wrapped

	forcer := mustInstance(t, inst.Sig(isa.BEQ, arg.KindRegister, arg.KindRegister, arg.KindLabel),
		[]arg.Arg{arg.Reg(isa.A0), arg.Reg(isa.A1), arg.Lbl("far")})

	instances := []*Instance{in, forcer}
	for i := 0; i < 40; i++ {
		instances = append(instances, mustInstance(t, inst.Sig(isa.LNOP), nil))
	}
	labels := map[string]int{"far": len(instances) - 1}
	p, resolve := labelProgram(instances, labels)

	_, err := Assemble(p, resolve)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "an independent instruction's encoder must run exactly once across all passes")
}
