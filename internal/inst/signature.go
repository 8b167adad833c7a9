// Package inst is the assembler's instruction catalog: signatures, encoding
// variants, and the fixed table of InstructionDefs the fixed-point engine
// looks instances up against. Nothing here depends on internal/assemble —
// the dependency runs the other way.
package inst

import (
	"fmt"
	"strings"

	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/isa"
)

// Signature is the (opcode, ordered operand kinds) key used to look up an
// InstructionDef. Equality and hashing only ever consider operand *kinds*,
// never argument values, matching spec.md §3.
type Signature struct {
	Op    isa.Opcode
	Kinds []arg.Kind
}

// Sig is a small constructor so catalog entries read as one line each.
func Sig(op isa.Opcode, kinds ...arg.Kind) Signature {
	return Signature{Op: op, Kinds: kinds}
}

// Equal reports structural equality: same opcode, same operand kind sequence.
func (s Signature) Equal(o Signature) bool {
	if s.Op != o.Op || len(s.Kinds) != len(o.Kinds) {
		return false
	}
	for i, k := range s.Kinds {
		if o.Kinds[i] != k {
			return false
		}
	}
	return true
}

// Hash combines the opcode's hash with each operand kind's hash via additive
// accumulation plus a 3-bit rotation per element, matching the
// std::hash<Signature> specialization in the original instruction.hpp.
func (s Signature) Hash() uint64 {
	const bits = 64
	h := uint64(s.Op)
	for _, k := range s.Kinds {
		h += uint64(k)
		h = (h << 3) | (h >> (bits - 3))
	}
	return h
}

// key is the string form used internally as the catalog's map key. Go map
// keys must be comparable; a Signature's Kinds slice is not, so the catalog
// is keyed on this canonical string instead of the Signature value itself —
// Signature.Equal/Hash above exist independently so the structural-equality
// and hashing semantics spec.md §3 describes remain directly testable.
func (s Signature) key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", s.Op)
	for _, k := range s.Kinds {
		fmt.Fprintf(&b, "%d,", k)
	}
	return b.String()
}

func (s Signature) String() string {
	parts := make([]string, len(s.Kinds))
	for i, k := range s.Kinds {
		parts[i] = k.String()
	}
	return fmt.Sprintf("%s(%s)", s.Op, strings.Join(parts, ", "))
}
