package assemble

import (
	"fmt"

	"github.com/kstephano/vx16/internal/inst"
)

// maxImageSize is the fixed byte image length the CPU addresses with a
// 16-bit register (spec.md §6).
const maxImageSize = 1 << 16

// Program is an ordered sequence of instruction instances (spec.md §4.3).
// Instruction order is never reordered; a collaborator constructs one with
// NewInstance per source instruction and passes the slice to Assemble.
type Program struct {
	Instances []*Instance
}

// Addresses returns each instance's currently-assumed byte address: the
// running sum of preceding instances' sizes, using the actual size of an
// instance that has already succeeded or its current variant's size as a
// lower-bound estimate otherwise. On the first pass (nothing has succeeded
// yet, every variantIndex is 0) each address is the sum of the preceding
// instances' minimum sizes, a lower bound; after any pass it reflects that
// pass's chosen sizes.
// A collaborator's address oracle calls this to implement AddressResolver.
func (p *Program) Addresses() []uint16 {
	addrs := make([]uint16, len(p.Instances))
	var running uint32
	for i, in := range p.Instances {
		addrs[i] = uint16(running)
		if in.success {
			running += uint32(in.size)
		} else if !in.exhausted() {
			running += uint32(in.Def.Variants[in.variantIndex].Size)
		}
	}
	return addrs
}

// CannotEncodeError identifies the instance the fixed point could not
// converge on (spec.md §7).
type CannotEncodeError struct {
	Index     int
	Signature inst.Signature
}

func (e *CannotEncodeError) Error() string {
	return fmt.Sprintf("%v: instance %d (%s)", errCannotEncode, e.Index, e.Signature)
}

func (e *CannotEncodeError) Unwrap() error { return errCannotEncode }

// Assemble drives the fixed-point loop to convergence, then emits a
// contiguous 65536-byte image. resolve is supplied by the collaborator that
// lexed the source and owns the label table; it is expected to consult
// Addresses() (or an equivalent snapshot) for the instance a label points
// to (spec.md §4.3).
func Assemble(p *Program, resolve inst.AddressResolver) ([]byte, error) {
	maxPasses := 0
	for _, in := range p.Instances {
		maxPasses += len(in.Def.Variants)
	}
	maxPasses++ // at least one pass even for an empty or all-independent program

	for pass := 0; pass < maxPasses; pass++ {
		here := p.Addresses()
		retry := false

		for i, in := range p.Instances {
			if in.Def.Independent && in.success {
				continue
			}
			if in.exhausted() {
				return nil, &CannotEncodeError{Index: i, Signature: in.Def.Signature}
			}
			if !in.tryEmit(here[i], resolve) {
				retry = true
			}
		}

		if !retry {
			return emit(p)
		}
	}

	return nil, fmt.Errorf("%w: fixed point did not converge", errCannotEncode)
}

// emit performs the final walk: assign addresses and copy each instance's
// buffered bytes into a 65536-byte image (spec.md §4.3 step 2).
func emit(p *Program) ([]byte, error) {
	var total uint32
	for i, in := range p.Instances {
		if !in.success {
			return nil, fmt.Errorf("%w: instance %d", errWriteBeforeEmit, i)
		}
		in.Address = uint16(total)
		total += uint32(in.size)
	}
	if total > maxImageSize {
		return nil, fmt.Errorf("%w: %d bytes", errProgramTooLarge, total)
	}

	image := make([]byte, maxImageSize)
	for _, in := range p.Instances {
		copy(image[in.Address:], in.bytes())
	}
	return image, nil
}
