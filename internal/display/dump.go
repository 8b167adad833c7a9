package display

import (
	"fmt"
	"io"

	"github.com/kstephano/vx16/internal/cpu"
)

// clearScreen is the exact terminal reset spec.md §6 requires: clear the
// screen, then home the cursor.
const clearScreen = "\x1b[2J\x1b[1;1H"

// Dump writes one full state snapshot of c to w: cycle, the last-decoded
// instruction word, address, temp PC, bus, ALU latches, the branch-taken
// flag, and R0..R15 — clearing the screen first when cfg.ClearScreen is set
// (spec.md §6's simulator CLI contract).
func Dump(w io.Writer, c *cpu.CPU, cfg Config) {
	if cfg.ClearScreen {
		fmt.Fprint(w, clearScreen)
	}

	word := uint16(c.Opcode)<<12 | uint16(c.Dest)<<8 | uint16(c.Left)<<4 | uint16(c.Right)

	fmt.Fprintf(w, "cycle=%d  word=%s  opcode=%s dest=%d left=%d right=%d\n",
		c.Cycle, fmtWord(word, cfg), c.Opcode, c.Dest, c.Left, c.Right)
	fmt.Fprintf(w, "address=%s  temp_pc=%s  bus=%s\n",
		fmtWord(c.Address, cfg), fmtWord(c.TempPC, cfg), fmtWord(c.Bus(), cfg))
	fmt.Fprintf(w, "alu_left=%s  alu_right=%s  alu_result=%s  take_branch=%t\n",
		fmtWord(c.ALULeft, cfg), fmtWord(c.ALURight, cfg), fmtWord(c.ALUResult, cfg), c.TakeBranch)

	fmt.Fprint(w, "registers:")
	for i, r := range c.Registers {
		fmt.Fprintf(w, " r%d=%s", i, fmtWord(r, cfg))
	}
	fmt.Fprintln(w)
}

func fmtWord(w uint16, cfg Config) string {
	if cfg.Hex {
		return fmt.Sprintf("0x%04X", w)
	}
	return fmt.Sprintf("%d", w)
}
