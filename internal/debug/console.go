// Package debug implements the simulator's optional single-step console,
// modeled on the teacher's execProgramDebugMode: n/next, r/run, b/break
// <cycle-count> commands, reading from stdin and printing a state dump after
// each step. This is a local stepping aid, not a debugger protocol
// (SPEC_FULL.md §12); it supplements, rather than replaces, the plain
// read-one-char-advance-one-cycle console spec.md §6 requires by default.
package debug

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kstephano/vx16/internal/cpu"
	"github.com/kstephano/vx16/internal/display"
)

// Run drives c interactively until the reader reaches EOF on a command
// prompt. Breakpoints trigger on a total update() count, since the CPU has
// no instruction-boundary concept of its own to break on.
func Run(c *cpu.CPU, cfg display.Config, in io.Reader, out io.Writer) {
	fmt.Fprint(out, "Commands:\n\tn or next: advance one micro-cycle\n\tr or run: run freely\n\tb or break <count>: break after N total updates (or remove)\n\n")
	display.Dump(out, c, cfg)

	reader := bufio.NewReader(in)
	running := false
	breakpoints := make(map[uint64]struct{})
	var updates uint64

	for {
		if !running {
			fmt.Fprint(out, "->")
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return
			}
			line = strings.ToLower(strings.TrimSpace(line))

			switch {
			case line == "n" || line == "next":
				c.Update()
				updates++
				display.Dump(out, c, cfg)
			case line == "r" || line == "run":
				running = true
			case strings.HasPrefix(line, "b"):
				toggleBreakpoint(out, breakpoints, line)
			}
			continue
		}

		c.Update()
		updates++
		if _, ok := breakpoints[updates]; ok {
			fmt.Fprintln(out, "breakpoint")
			display.Dump(out, c, cfg)
			running = false
		}
	}
}

func toggleBreakpoint(out io.Writer, breakpoints map[uint64]struct{}, line string) {
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, "break"), "b"))
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		fmt.Fprintln(out, "bad breakpoint count:", arg)
		return
	}
	if _, ok := breakpoints[n]; ok {
		delete(breakpoints, n)
	} else {
		breakpoints[n] = struct{}{}
	}
}
