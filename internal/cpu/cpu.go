// Package cpu implements the cycle-accurate micro-step model of the 16-bit
// CPU (spec.md §4.4): 64 KiB memory, 16 general registers, a single shared
// bus, an address register, and a 6-state decode/execute cycle driven one
// micro-cycle at a time by Update.
package cpu

import "github.com/kstephano/vx16/internal/isa"

// MemSize is the fixed memory size every program image must match exactly
// (spec.md §6).
const MemSize = 1 << 16

// ResetVector is the address the CPU reads a 16-bit absolute jump target
// from at power-on (spec.md §6). Memory at this address holds an *address*,
// not an instruction — the CPU's initial state is wired to treat its first
// fetch as the tail end of an absolute-jump immediate load, not a decode, so
// execution actually begins at whatever address is stored there.
const ResetVector uint16 = 0xFFFD

// CPU is the full micro-architectural state (spec.md §3). Exported fields
// are the ones a terminal dump or test assertion needs to observe; nothing
// here is safe for concurrent access (spec.md §5).
type CPU struct {
	Memory    [MemSize]byte
	Registers [16]uint16

	bus bus

	Address uint16
	TempPC  uint16

	ALULeft   uint16
	ALURight  uint16
	ALUResult uint16

	Cycle uint8

	Opcode isa.Opcode
	Dest   uint8
	Left   uint8
	Right  uint8

	Index int8

	IncAddr    bool
	LoadImm    bool
	LoadWord   bool
	LoadHigh   bool
	ImmToIdx   bool
	TakeBranch bool
}

// New constructs a CPU in its power-on state: memory and registers zeroed,
// and the decoder primed to perform an absolute jump through ResetVector on
// its first few Update calls (matching the original simulator's field
// initializers exactly — this is not an arbitrary choice).
func New() *CPU {
	c := &CPU{
		Address:  ResetVector,
		Cycle:    2,
		Opcode:   isa.JMP,
		LoadImm:  true,
		LoadWord: true,
		LoadHigh: true,
	}
	return c
}

// LoadImage copies a full 65536-byte program image into memory starting at
// address 0 (spec.md §6).
func (c *CPU) LoadImage(image []byte) {
	copy(c.Memory[:], image)
}

// Bus returns the current (pre-read) value latched on the shared bus, for
// diagnostic display.
func (c *CPU) Bus() uint16 { return c.bus.value }

// writeRegister writes v to register r, except that R0 is hard-wired to
// read as zero and silently discards writes (spec.md §3) — enforced here
// rather than relying solely on the top-of-Update reset, so the invariant
// holds at every observation point, not just between Update calls.
func (c *CPU) writeRegister(r uint8, v uint16) {
	if r == uint8(isa.R0) {
		return
	}
	c.Registers[r] = v
}

// Update advances the machine by exactly one micro-cycle (spec.md §4.4).
func (c *CPU) Update() {
	c.Registers[isa.R0] = 0

	if c.IncAddr {
		c.Address++
		c.IncAddr = false
	} else {
		c.Address += uint16(int16(c.Index))
		c.Index = 0
	}

	switch c.Cycle {
	case 0:
		c.cycle0()
	case 1:
		c.cycle1()
	case 2:
		c.cycle2()
	case 3:
		c.cycle3()
	case 4:
		c.cycle4()
	case 5:
		c.cycle5()
	}
}

// cycle0 fetches the instruction word's low byte.
func (c *CPU) cycle0() {
	c.IncAddr = true
	c.bus.writeLow(c.Memory[c.Address])
	c.Cycle++
}

// cycle1 fetches the high byte and decodes the assembled word.
func (c *CPU) cycle1() {
	c.IncAddr = true
	c.bus.writeHigh(c.Memory[c.Address])
	c.decode(c.bus.read(false))
	c.Cycle++
}

func (c *CPU) decode(word uint16) {
	c.Opcode = isa.Opcode((word >> 12) & 0xF)
	c.Dest = uint8((word >> 8) & 0xF)
	c.Left = uint8((word >> 4) & 0xF)
	c.Right = uint8(word & 0xF)

	c.LoadImm = false
	c.LoadWord = false
	c.ImmToIdx = false

	switch c.Opcode {
	case isa.SUB:
		c.LoadImm = c.Right == 0
		c.LoadWord = true
	case isa.ADD, isa.LSL, isa.LSR, isa.ASR:
		c.LoadImm = c.Right == 0
		c.LoadWord = false
	case isa.XOR, isa.OR, isa.AND:
		c.LoadImm = c.Right == 0
		c.LoadWord = true
	case isa.JMP:
		c.LoadImm = c.Right == 0 || c.Left != 0
		c.LoadWord = c.Left == 0
		c.ImmToIdx = c.Left != 0
	case isa.BRA:
		c.LoadImm = false
	case isa.MEM:
		c.LoadImm = true
		c.LoadWord = false
		c.ImmToIdx = true
	}
	c.LoadHigh = true
}

// cycle2 fetches the second operand: an immediate (1 or 2 bytes, possibly
// spanning two Update calls) or a register value.
func (c *CPU) cycle2() {
	if c.LoadImm {
		c.loadImmediate()
		return
	}
	c.bus.writeWord(c.Registers[c.Right])
	c.ALURight = c.bus.read(false)
	c.Cycle++
}

// loadImmediate fetches one byte per call until the immediate (1 byte,
// sign-extended, or 2 bytes forming a word) is fully assembled, routing the
// result to Index or ALURight per ImmToIdx.
func (c *CPU) loadImmediate() {
	c.IncAddr = true
	if c.LoadWord {
		if c.LoadHigh {
			c.bus.writeLow(c.Memory[c.Address])
			c.LoadHigh = false
			return
		}
		c.bus.writeHigh(c.Memory[c.Address])
		if c.ImmToIdx {
			c.Index = int8(c.bus.read(false))
		} else {
			c.ALURight = c.bus.read(false)
		}
		c.Cycle++
		return
	}

	c.bus.writeLow(c.Memory[c.Address])
	if c.ImmToIdx {
		c.Index = int8(c.bus.read(false))
	} else {
		c.ALURight = c.bus.read(true)
	}
	c.Cycle++
}

// cycle3 stages the remaining operand for arithmetic/branch, or performs the
// JMP link save / MEM address staging.
func (c *CPU) cycle3() {
	switch {
	case c.Opcode <= isa.BRA:
		c.bus.writeWord(c.Registers[c.Left])
		c.ALULeft = c.bus.read(false)
		c.Cycle++
	case c.Opcode == isa.JMP:
		c.IncAddr = c.ImmToIdx
		c.bus.writeWord(c.Address)
		c.writeRegister(c.Dest, c.bus.read(false))
		c.Cycle++
	case c.Opcode == isa.MEM:
		c.TempPC = c.Address
		c.bus.writeWord(c.Registers[c.Right])
		c.Address = c.bus.read(false)
		c.Cycle++
	}
}

// cycle4 executes the decoded instruction.
func (c *CPU) cycle4() {
	switch {
	case c.Opcode <= isa.AND:
		c.executeALU()
		c.bus.writeWord(c.ALUResult)
		c.writeRegister(c.Dest, c.bus.read(false))
		c.Cycle = 0
	case c.Opcode == isa.BRA:
		c.IncAddr = true
		c.bus.writeLow(c.Memory[c.Address])
		c.executeALU()
		c.Cycle++
	case c.Opcode == isa.JMP:
		if !c.ImmToIdx {
			c.bus.writeWord(c.ALURight)
		} else {
			c.bus.writeWord(c.Registers[c.Right])
		}
		c.Address = c.bus.read(false)
		c.Cycle = 0
	case c.Opcode == isa.MEM:
		if c.Left&memLoad != 0 {
			c.load()
		} else {
			c.store()
		}
	}
}

// cycle5 commits a taken branch's displacement into Index so the next
// Update's address preamble applies it instead of +1.
func (c *CPU) cycle5() {
	if c.Opcode == isa.BRA {
		if c.TakeBranch {
			c.Index = int8(c.bus.read(false))
		}
		c.Cycle = 0
	}
}

func (c *CPU) executeALU() {
	switch c.Opcode {
	case isa.ADD:
		c.ALUResult = c.ALULeft + c.ALURight
	case isa.SUB:
		c.ALUResult = c.ALULeft - c.ALURight
	case isa.LSL:
		c.ALUResult = c.ALULeft << (c.ALURight & 0xF)
	case isa.LSR:
		c.ALUResult = c.ALULeft >> (c.ALURight & 0xF)
	case isa.ASR:
		c.ALUResult = asr(c.ALULeft, uint8(c.ALURight))
	case isa.XOR:
		c.ALUResult = c.ALULeft ^ c.ALURight
	case isa.OR:
		c.ALUResult = c.ALULeft | c.ALURight
	case isa.AND:
		c.ALUResult = c.ALULeft & c.ALURight
	case isa.BRA:
		c.TakeBranch = testBranch(c.Dest, c.ALULeft, c.ALURight)
	}
}

// load performs a MEM load, possibly spanning two Update calls for a word.
func (c *CPU) load() {
	if c.Left&memWord != 0 {
		if c.LoadHigh {
			c.IncAddr = true
			c.bus.writeLow(c.Memory[c.Address])
			c.LoadHigh = false
			return
		}
		c.bus.writeHigh(c.Memory[c.Address])
		c.writeRegister(c.Dest, c.bus.read(false))
		c.Address = c.TempPC
		c.Cycle = 0
		return
	}

	c.bus.writeLow(c.Memory[c.Address])
	c.writeRegister(c.Dest, c.bus.read(c.Left&memSex != 0))
	c.Address = c.TempPC
	c.Cycle = 0
}

// store performs a MEM store, possibly spanning two Update calls for a word.
func (c *CPU) store() {
	if c.Left&memWord != 0 {
		if c.LoadHigh {
			c.IncAddr = true
			c.bus.writeLow(uint8(c.Registers[c.Dest]))
			c.Memory[c.Address] = uint8(c.bus.read(false))
			c.LoadHigh = false
			return
		}
		c.bus.writeLow(uint8(c.Registers[c.Dest] >> 8))
		c.Memory[c.Address] = uint8(c.bus.read(false))
		c.Address = c.TempPC
		c.Cycle = 0
		return
	}

	c.bus.writeLow(uint8(c.Registers[c.Dest]))
	c.Memory[c.Address] = uint8(c.bus.read(false))
	c.Address = c.TempPC
	c.Cycle = 0
}
