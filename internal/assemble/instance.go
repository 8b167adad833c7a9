package assemble

import (
	"unsafe"

	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/inst"
)

// inlineCapacity is the machine's pointer width: large enough to hold every
// variant this ISA defines (2-7 bytes) without a heap allocation, matching
// spec.md §9's "inline buffer of pointer-sized bytes" note. The switch to a
// heap buffer below exists for any instruction set whose widest variant
// would exceed this, not for this one in practice.
const inlineCapacity = int(unsafe.Sizeof(uintptr(0)))

// Instance is one instruction in program order: a definition reference, its
// parsed operands, the currently selected variant, and an owned byte buffer
// sized to that variant (spec.md §3). Mutated only by the fixed-point
// engine in this package.
type Instance struct {
	Def  *inst.Def
	Args []arg.Arg

	variantIndex int
	success      bool

	inline [inlineCapacity]byte
	heap   []byte
	size   int

	// Address is this instance's final byte offset within the image, set
	// only after the fixed point is reached.
	Address uint16
}

// NewInstance looks up def's signature in the catalog and constructs an
// instance at variant index 0, success=false (spec.md §3).
func NewInstance(sig inst.Signature, args []arg.Arg) (*Instance, error) {
	def, ok := inst.Lookup(sig)
	if !ok {
		return nil, errUnknownInstruction
	}
	return &Instance{Def: def, Args: args}, nil
}

// buf returns the currently active backing store, reslicing it to exactly
// Size bytes for the given size, allocating on the heap the first (and only)
// time size exceeds the inline capacity. The switch is one-way: variant
// indices are monotone, so a later pass never needs to shrink back.
func (in *Instance) buf(size int) []byte {
	if size <= inlineCapacity {
		return in.inline[:size]
	}
	if cap(in.heap) < size {
		in.heap = make([]byte, size)
	}
	return in.heap[:size]
}

// Size is the byte length of the instance's last successful encode.
func (in *Instance) Size() int { return in.size }

// Success reports whether the instance currently has a valid encode.
func (in *Instance) Success() bool { return in.success }

// VariantIndex is the currently selected variant, for monotonicity checks.
func (in *Instance) VariantIndex() int { return in.variantIndex }

// exhausted reports whether every variant has already been tried and failed.
func (in *Instance) exhausted() bool {
	return in.variantIndex >= len(in.Def.Variants)
}

// tryEmit attempts to encode the instance's current variant at the given
// assumed address, consulting resolve for any label operands. On success it
// records the size and buffered bytes and returns true. On failure it
// advances to the next variant (if any remain) and returns false.
func (in *Instance) tryEmit(here uint16, resolve inst.AddressResolver) bool {
	v := in.Def.Variants[in.variantIndex]
	dst := in.buf(v.Size)
	if v.Encode(in.Args, here, dst, resolve) {
		in.success = true
		in.size = v.Size
		return true
	}
	in.success = false
	in.variantIndex++
	return false
}

// bytes returns the instance's last successfully encoded bytes. Callers must
// check Success() first; calling this before a successful emit is a
// programmer error.
func (in *Instance) bytes() []byte {
	if !in.success {
		panic("assemble: bytes() called before a successful emit")
	}
	return in.buf(in.size)[:in.size]
}
