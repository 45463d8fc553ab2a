// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "strings"

// A Flag identifies a single bit of the processor status register.
type Flag byte

// Processor status flags, by bit position.
const (
	Carry            Flag = 1 << 0
	Zero             Flag = 1 << 1
	InterruptDisable Flag = 1 << 2
	Decimal          Flag = 1 << 3
	Break            Flag = 1 << 4
	Unused           Flag = 1 << 5 // always reads 1
	Overflow         Flag = 1 << 6
	Negative         Flag = 1 << 7
)

// Status is the processor status register: eight flags packed into a
// single byte using the hardware bit layout.
type Status byte

// Get returns true if the flag is set.
func (s Status) Get(f Flag) bool {
	return s.Byte()&byte(f) != 0
}

// Set sets or clears the flag.
func (s *Status) Set(f Flag, on bool) {
	if on {
		*s |= Status(f)
	} else {
		*s &^= Status(f)
	}
}

// Byte returns the packed register value. The Unused bit is always 1.
func (s Status) Byte() byte {
	return byte(s) | byte(Unused)
}

// Load replaces every flag with the bits of v.
func (s *Status) Load(v byte) {
	*s = Status(v | byte(Unused))
}

// String returns the flags as "NV-BDIZC", with clear flags in lower case.
func (s Status) String() string {
	const names = "czidb-vn"
	var b strings.Builder
	for i := 7; i >= 0; i-- {
		c := names[i]
		if i != 5 && s.Get(Flag(1<<uint(i))) {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Registers contains the state of all 6502 registers.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X indexing register
	Y  byte   // Y indexing register
	SP byte   // stack pointer ($100 + SP = stack memory location)
	PC uint16 // program counter
	P  Status // processor status flags
}

// Init initializes all registers to their power-on state. The program
// counter is left for the caller to load from the reset vector.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0xfd
	r.PC = 0
	r.P.Load(byte(InterruptDisable))
}

// SavePS returns the status byte as pushed onto the stack. The Break bit
// reflects the source of the push rather than the register.
func (r *Registers) SavePS(brk bool) byte {
	ps := r.P
	ps.Set(Break, brk)
	return ps.Byte()
}

// RestorePS loads the status register from a byte pulled off the stack.
// The Break bit does not exist in the processor, so it keeps its current
// value.
func (r *Registers) RestorePS(ps byte) {
	brk := r.P.Get(Break)
	r.P.Load(ps)
	r.P.Set(Break, brk)
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
