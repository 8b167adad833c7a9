package inst

// catalog is the full table of InstructionDefs, keyed by Signature.key(),
// populated once at init time. This is the populated analogue of the empty
// INSTRUCTIONS {} map in the original instruction.cpp (SPEC_FULL.md §12).
var catalog map[string]*Def

func init() {
	var defs []Def
	for _, op := range byteImmOps {
		defs = append(defs, arithDefsByte(op)...)
	}
	for _, op := range wordImmOps {
		defs = append(defs, arithDefsWord(op)...)
	}
	defs = append(defs, pseudoDefs()...)
	defs = append(defs, branchDefs()...)
	defs = append(defs, jmpDefs()...)
	defs = append(defs, memDefs()...)

	catalog = make(map[string]*Def, len(defs))
	for i := range defs {
		d := &defs[i]
		catalog[d.Signature.key()] = d
	}
}

// Lookup finds the InstructionDef for a signature, if any.
func Lookup(sig Signature) (*Def, bool) {
	d, ok := catalog[sig.key()]
	return d, ok
}

// MinSize returns the smallest possible encoding size for a signature — the
// lower bound the fixed-point engine's first pass assumes for every instance
// before any variant has actually been tried (spec.md §4.3).
func MinSize(sig Signature) (int, bool) {
	d, ok := Lookup(sig)
	if !ok || len(d.Variants) == 0 {
		return 0, false
	}
	return d.Variants[0].Size, true
}

// MaxSize returns the largest possible encoding size for a signature. The
// fixed-point engine does not use it; its estimates come from each
// instance's current variant.
func MaxSize(sig Signature) (int, bool) {
	d, ok := Lookup(sig)
	if !ok || len(d.Variants) == 0 {
		return 0, false
	}
	return d.Variants[len(d.Variants)-1].Size, true
}
