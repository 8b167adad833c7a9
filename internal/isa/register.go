package isa

import (
	"fmt"
	"strings"
)

// Register is one of the 16 architectural registers. R0 is hard-wired to
// read as zero; writes to it are silently discarded by the CPU.
type Register uint8

const (
	R0 Register = iota // hard-wired zero
	RA                 // return address
	SP                 // stack pointer
	A0
	A1
	A2
	A3
	T0
	T1
	T2
	T3
	T4
	S0
	S1
	S2
	S3

	registerCount
)

func (r Register) String() string {
	if s, ok := registerNames[r]; ok {
		return s
	}
	return fmt.Sprintf("?r%d?", uint8(r))
}

// registerNames gives each register its canonical symbolic name, matching the
// REGISTERS table in the original common.cpp.
var registerNames = map[Register]string{
	R0: "zero", RA: "ra", SP: "sp",
	A0: "a0", A1: "a1", A2: "a2", A3: "a3",
	T0: "t0", T1: "t1", T2: "t2", T3: "t3", T4: "t4",
	S0: "s0", S1: "s1", S2: "s2", S3: "s3",
}

var nameToRegister map[string]Register

func init() {
	nameToRegister = make(map[string]Register, registerCount*2)
	for r, name := range registerNames {
		nameToRegister[name] = r
	}
	for i := Register(0); i < registerCount; i++ {
		nameToRegister[fmt.Sprintf("r%d", i)] = i
	}
}

// LookupRegister matches a source token against the register table
// (numeric r0..r15 aliases and symbolic names), case insensitively.
func LookupRegister(token string) (Register, bool) {
	r, ok := nameToRegister[strings.ToLower(token)]
	return r, ok
}
