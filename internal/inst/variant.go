package inst

import "github.com/kstephano/vx16/internal/arg"

// Encoder is a pure function: given the instance's own currently-assumed
// address (here, needed only by relative-displacement variants), the logical
// opcode's argument list, write exactly Variant.Size bytes to dst and return
// true, or return false ("this variant cannot represent these operands")
// leaving dst unspecified. Every encoder in this package is deterministic:
// identical inputs always produce identical output and the identical success
// value (spec.md §4.2, testable property #8).
type Encoder func(args []arg.Arg, here uint16, dst []byte, resolve AddressResolver) bool

// AddressResolver is the address-oracle seam the fixed-point engine's
// collaborator plugs in (spec.md §4.3): given a label name, it returns the
// currently-assumed byte address of the instance that label points to. It is
// only ever consulted by encoders whose signature includes a Label operand.
type AddressResolver func(label string) (uint16, bool)

// Variant is one candidate byte-length encoding of an instruction.
type Variant struct {
	Size    int
	Encode  Encoder
}

// Def is the definition of one instruction signature: its candidate variants,
// sorted by non-decreasing size, and whether its encoding is independent of
// any value resolved during fixed-point iteration (i.e. never touches the
// address resolver). Invariants (spec.md §3): at least one variant; sizes
// non-decreasing. Independent does not imply that the first variant always
// succeeds: several independent definitions have a first variant that fails
// for some operands (R0 as the right register, an immediate or offset
// outside int8), and the engine then tries the next variant as for any other
// definition; only an independent instance that has already succeeded is
// not re-encoded.
type Def struct {
	Signature   Signature
	Variants    []Variant
	Independent bool
}
