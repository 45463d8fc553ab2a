// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set
// disassembler.
package disasm

import (
	"fmt"
	"strings"

	"github.com/beevik/nes6502/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = []string{
	"#$%s",    // IMM
	"%s",      // IMP
	"$%s",     // REL
	"$%s",     // ZPG
	"$%s,X",   // ZPX
	"$%s,Y",   // ZPY
	"$%s",     // ABS
	"$%s,X",   // ABX
	"$%s,Y",   // ABY
	"($%s)",   // IND
	"($%s,X)", // IDX
	"($%s),Y", // IDY
	"A",       // ACC
}

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the byte slice, most
// significant byte last in memory and first in the string.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// A Line is a single decoded instruction.
type Line struct {
	Addr     uint16 // address of the opcode
	Bytes    []byte // opcode followed by its operand bytes
	Mnemonic string // instruction name, "???" for undefined opcodes
	Operand  string // operand text; branch targets are absolute
	Next     uint16 // address of the following instruction
}

// String returns the assembly text of the line, e.g. "LDA ($20),Y".
func (l Line) String() string {
	if l.Operand == "" {
		return l.Mnemonic
	}
	return l.Mnemonic + " " + l.Operand
}

// HexBytes returns the instruction bytes as space-separated hex pairs.
func (l Line) HexBytes() string {
	var sb strings.Builder
	for i, b := range l.Bytes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0xf])
	}
	return sb.String()
}

// Decode the instruction found in memory 'm' at address 'addr' using the
// instruction set 'set'. Memory is only read.
func Decode(set *cpu.InstructionSet, m cpu.Memory, addr uint16) Line {
	opcode := m.LoadByte(addr)
	inst := set.Lookup(opcode)

	b := make([]byte, inst.Length)
	b[0] = opcode
	for i := 1; i < len(b); i++ {
		b[i] = m.LoadByte(addr + uint16(i))
	}

	operand := b[1:]
	if inst.Mode == cpu.REL {
		// Convert relative offset to absolute address.
		target := addr + uint16(inst.Length) + uint16(int8(operand[0]))
		operand = []byte{byte(target), byte(target >> 8)}
	}

	text := modeFormat[inst.Mode]
	if len(operand) > 0 {
		text = fmt.Sprintf(text, hexString(operand))
	} else if inst.Mode == cpu.IMP {
		text = ""
	}

	return Line{
		Addr:     addr,
		Bytes:    b,
		Mnemonic: inst.Name,
		Operand:  text,
		Next:     addr + uint16(inst.Length),
	}
}

// Disassemble the machine code in memory 'm' at address 'addr'. Return a
// 'line' string representing the disassembled instruction and a 'next'
// address that starts the following line of machine code.
func Disassemble(m cpu.Memory, addr uint16) (line string, next uint16) {
	l := Decode(cpu.GetInstructionSet(cpu.Ricoh2A03), m, addr)
	return l.String(), l.Next
}

// Range disassembles every instruction that starts in [start, end] and
// returns one listing line per instruction.
func Range(m cpu.Memory, start, end uint16) []string {
	set := cpu.GetInstructionSet(cpu.Ricoh2A03)
	var lines []string
	addr := start
	for {
		l := Decode(set, m, addr)
		lines = append(lines, fmt.Sprintf("%04X-   %-8s    %s", l.Addr, l.HexBytes(), l.String()))
		if l.Next <= addr || l.Next > end {
			break
		}
		addr = l.Next
	}
	return lines
}

// RegisterString returns a one-line summary of the register contents.
func RegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X",
		r.A, r.X, r.Y, r.P.String(), r.SP, r.PC)
}

// A memory that can provide a side-effect free view of itself.
type viewer interface {
	View() cpu.Memory
}

// Trace returns a log line for the instruction the CPU is about to
// execute, in the column layout used by the nestest reference log.
func Trace(c *cpu.CPU) string {
	m := c.Mem
	if v, ok := m.(viewer); ok {
		m = v.View()
	}
	l := Decode(c.InstSet, m, c.Reg.PC)
	r := &c.Reg
	return fmt.Sprintf("%04X  %-8s  %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		l.Addr, l.HexBytes(), l.String(), r.A, r.X, r.Y, r.P.Byte(), r.SP, c.Cycles)
}
