// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

var modeNames = []string{
	"IMM", "IMP", "REL", "ZPG", "ZPX", "ZPY", "ABS",
	"ABX", "ABY", "IND", "IDX", "IDY", "ACC",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "???"
}

// OperandLength returns the number of operand bytes that follow an opcode
// using this addressing mode.
func (m Mode) OperandLength() int {
	switch m {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	default:
		return 1
	}
}

// An Operand is the result of resolving an instruction's addressing mode.
type Operand struct {
	Addr        uint16 // effective address (for IMM, the address of the operand byte)
	Accumulator bool   // the instruction operates on the accumulator
	PageCrossed bool   // indexing or branching changed the high address byte
}

// Resolve computes the effective operand of an instruction using addressing
// mode 'mode'. The program counter in 'r' must point at the byte following
// the opcode. On return it points past any operand bytes consumed.
//
// For REL, Addr holds the branch target and PageCrossed reports whether the
// target lies on a different page than the following instruction.
func Resolve(m Memory, r *Registers, mode Mode) Operand {
	var op Operand

	switch mode {
	case IMP:
		// no operand

	case ACC:
		op.Accumulator = true

	case IMM:
		op.Addr = r.PC
		r.PC++

	case ZPG:
		op.Addr = uint16(m.LoadByte(r.PC))
		r.PC++

	case ZPX:
		op.Addr = offsetZeroPage(m.LoadByte(r.PC), r.X)
		r.PC++

	case ZPY:
		op.Addr = offsetZeroPage(m.LoadByte(r.PC), r.Y)
		r.PC++

	case ABS:
		op.Addr = LoadAddress(m, r.PC)
		r.PC += 2

	case ABX:
		op.Addr, op.PageCrossed = offsetAddress(LoadAddress(m, r.PC), r.X)
		r.PC += 2

	case ABY:
		op.Addr, op.PageCrossed = offsetAddress(LoadAddress(m, r.PC), r.Y)
		r.PC += 2

	case IND:
		ptr := LoadAddress(m, r.PC)
		r.PC += 2
		op.Addr = loadAddressSamePage(m, ptr)

	case IDX:
		zp := m.LoadByte(r.PC) + r.X
		r.PC++
		op.Addr = loadZeroPageAddress(m, zp)

	case IDY:
		zp := m.LoadByte(r.PC)
		r.PC++
		op.Addr, op.PageCrossed = offsetAddress(loadZeroPageAddress(m, zp), r.Y)

	case REL:
		offset := int8(m.LoadByte(r.PC))
		r.PC++
		op.Addr = r.PC + uint16(offset)
		op.PageCrossed = (op.Addr & 0xff00) != (r.PC & 0xff00)

	default:
		panic("invalid addressing mode")
	}

	return op
}
