package textasm

import (
	"fmt"

	"github.com/kstephano/vx16/internal/arg"
	"github.com/kstephano/vx16/internal/assemble"
	"github.com/kstephano/vx16/internal/inst"
	"github.com/kstephano/vx16/internal/isa"
)

// Parse lexes src into an assemble.Program and an AddressResolver backed by
// the program's own Addresses() snapshot and its internal label table — the
// address-oracle collaborator spec.md §4.3 describes. The returned resolver
// must outlive individual Assemble() calls only; it closes over the
// returned *assemble.Program, not a copy.
func Parse(src string) (*assemble.Program, inst.AddressResolver, error) {
	lines := splitLines(src)

	labels := make(map[string]int)
	var instances []*assemble.Instance

	for _, l := range lines {
		if l.label != "" {
			if _, exists := labels[l.label]; exists {
				return nil, nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateLabel, l.label, l.lineNo)
			}
			labels[l.label] = len(instances)
			continue
		}

		op, ok := isa.LookupOpcode(l.mnemonic)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q at line %d", ErrUnknownMnemonic, l.mnemonic, l.lineNo)
		}

		args, err := parseArgs(op, l.rawArgs)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", l.lineNo, err)
		}

		in, err := assemble.NewInstance(signatureOf(op, args), args)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", l.lineNo, err)
		}
		instances = append(instances, in)
	}

	p := &assemble.Program{Instances: instances}
	return p, addressResolver(p, labels), nil
}

// signatureOf builds the catalog signature from the opcode and the kinds of
// the operands actually parsed from text.
func signatureOf(op isa.Opcode, args []arg.Arg) inst.Signature {
	kinds := make([]arg.Kind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind
	}
	return inst.Sig(op, kinds...)
}

// addressResolver implements spec.md §4.3's address oracle against a
// Program under construction: a label resolves to the current pass's
// estimate of the address of the instance following its declaration, or to
// one-past-the-end of the program for a label with no following instance.
func addressResolver(p *assemble.Program, labels map[string]int) inst.AddressResolver {
	return func(label string) (uint16, bool) {
		idx, ok := labels[label]
		if !ok {
			return 0, false
		}
		if idx < len(p.Instances) {
			return p.Addresses()[idx], true
		}
		if len(p.Instances) == 0 {
			return 0, true
		}
		addrs := p.Addresses()
		last := p.Instances[len(p.Instances)-1]
		size := last.Size()
		if !last.Success() && last.VariantIndex() < len(last.Def.Variants) {
			size = last.Def.Variants[last.VariantIndex()].Size
		}
		return addrs[len(addrs)-1] + uint16(size), true
	}
}
