// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the 6502 CPU core found in the NES, including its
// instruction set, addressing modes, cycle accounting and interrupt
// sequencing.
package cpu

import (
	"sync/atomic"

	"github.com/golang/glog"
)

// Architecture selects the CPU chip: the NES 2A03 or a stock NMOS 6502.
type Architecture byte

const (
	// Ricoh2A03 is the NES CPU. It has no decimal mode; the D flag is
	// stored but ignored by ADC and SBC.
	Ricoh2A03 Architecture = iota

	// NMOS 6502 CPU with binary-coded decimal arithmetic.
	NMOS
)

// State describes what the CPU is doing between calls to Step.
type State uint32

// CPU execution states
const (
	Running            State = iota // executing instructions
	Halted                          // stopped by Halt until Resume
	ServicingInterrupt              // pushing state for an IRQ or NMI
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case ServicingInterrupt:
		return "servicing interrupt"
	default:
		return "unknown"
	}
}

// BrkHandler is an interface implemented by types that wish to be notified
// when a BRK instruction is about to be executed.
type BrkHandler interface {
	OnBrk(cpu *CPU)
}

// CPU represents a single 6502 CPU. It contains a pointer to the
// memory associated with the CPU.
type CPU struct {
	Arch             Architecture    // CPU architecture
	Reg              Registers       // CPU registers
	Mem              Memory          // assigned memory
	Cycles           uint64          // total executed CPU cycles
	InstructionCount uint64          // total executed instructions
	LastPC           uint16          // address of the last executed opcode
	InstSet          *InstructionSet // Instruction set used by the CPU
	state            atomic.Uint32
	irqPending       atomic.Bool
	nmiPending       atomic.Bool
	deltaCycles      int
	fault            error
	debugger         *Debugger
	brkHandler       BrkHandler
	storeByte        func(cpu *CPU, addr uint16, v byte)
}

// Interrupt vectors
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

const (
	resetCycles     = 7 // cycles consumed by the reset sequence
	interruptCycles = 7 // cycles consumed servicing an IRQ or NMI
)

// NewCPU creates an emulated 6502 CPU bound to the specified memory and
// resets it, loading the program counter from the reset vector.
func NewCPU(arch Architecture, m Memory) *CPU {
	cpu := &CPU{
		Arch:      arch,
		Mem:       m,
		InstSet:   GetInstructionSet(arch),
		storeByte: (*CPU).storeByteNormal,
	}

	cpu.Reset()
	return cpu
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction opcode at the requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := cpu.Mem.LoadByte(addr)
	return cpu.InstSet.Lookup(opcode)
}

// NextAddr returns the address of the next instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(addr uint16) uint16 {
	opcode := cpu.Mem.LoadByte(addr)
	inst := cpu.InstSet.Lookup(opcode)
	return addr + uint16(inst.Length)
}

// State returns the current execution state.
func (cpu *CPU) State() State {
	return State(cpu.state.Load())
}

// Halt stops the CPU. Subsequent calls to Step fail with ErrHalted until
// Resume is called. Halt may be called from any goroutine.
func (cpu *CPU) Halt() {
	cpu.state.Store(uint32(Halted))
}

// Resume returns a halted CPU to the running state.
func (cpu *CPU) Resume() {
	cpu.state.CompareAndSwap(uint32(Halted), uint32(Running))
}

// TriggerIRQ raises the maskable interrupt line. The request stays pending
// until it is serviced at an instruction boundary where the
// InterruptDisable flag is clear.
func (cpu *CPU) TriggerIRQ() {
	cpu.irqPending.Store(true)
}

// TriggerNMI latches a non-maskable interrupt, serviced before the next
// instruction.
func (cpu *CPU) TriggerNMI() {
	cpu.nmiPending.Store(true)
}

// Reset the CPU to its power-on state and load the program counter from
// the reset vector.
func (cpu *CPU) Reset() {
	cpu.Reg.Init()
	cpu.Reg.PC = LoadAddress(cpu.Mem, vectorReset)
	cpu.LastPC = cpu.Reg.PC
	cpu.Cycles = resetCycles
	cpu.InstructionCount = 0
	cpu.irqPending.Store(false)
	cpu.nmiPending.Store(false)
	cpu.state.Store(uint32(Running))
}

// Step the cpu by one instruction, or by one interrupt service sequence if
// an interrupt is pending. It returns the number of cycles consumed.
//
// If the opcode at PC has no defined behavior, Step returns an
// *UnimplementedOpcodeError and leaves the CPU state untouched.
func (cpu *CPU) Step() (cycles int, err error) {
	if cpu.State() == Halted {
		return 0, ErrHalted
	}

	start := cpu.Cycles

	switch {
	case cpu.nmiPending.Swap(false):
		cpu.serviceInterrupt(vectorNMI)

	case cpu.irqPending.Load() && !cpu.Reg.P.Get(InterruptDisable):
		cpu.irqPending.Store(false)
		cpu.serviceInterrupt(vectorIRQ)

	default:
		if err = cpu.execute(); err != nil {
			return 0, err
		}
	}

	// Update the debugger so it can handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}

	return int(cpu.Cycles - start), nil
}

// Run executes instructions. If auto is false, it executes a single step.
// Otherwise it steps until an error occurs or the CPU is halted.
func (cpu *CPU) Run(auto bool) error {
	if !auto {
		_, err := cpu.Step()
		return err
	}

	for {
		if _, err := cpu.Step(); err != nil {
			return err
		}
		if cpu.State() == Halted {
			return nil
		}
	}
}

// Fetch, decode and execute the instruction at PC.
func (cpu *CPU) execute() error {
	pc := cpu.Reg.PC
	opcode := cpu.Mem.LoadByte(pc)
	inst := cpu.InstSet.Lookup(opcode)

	// A BRK handler gets a chance to inspect the CPU, or to halt it, before
	// the BRK executes.
	if opcode == 0x00 && cpu.brkHandler != nil {
		cpu.brkHandler.OnBrk(cpu)
		if cpu.State() == Halted {
			return nil
		}
	}

	saved := cpu.Reg
	cpu.Reg.PC++
	op := Resolve(cpu.Mem, &cpu.Reg, inst.Mode)

	cpu.deltaCycles = 0
	cpu.fault = nil
	inst.fn(cpu, inst, op)

	if cpu.fault != nil {
		cpu.Reg = saved
		err := cpu.fault
		cpu.fault = nil
		return err
	}

	cpu.LastPC = pc
	cpu.InstructionCount++

	// Update the CPU cycle counter, with special-case logic
	// to handle a page boundary crossing
	cpu.Cycles += uint64(int(inst.Cycles) + cpu.deltaCycles)
	if op.PageCrossed {
		cpu.Cycles += uint64(inst.BPCycles)
	}
	return nil
}

// AttachBrkHandler attaches a handler that is called whenever the BRK
// instruction is about to be executed.
func (cpu *CPU) AttachBrkHandler(handler BrkHandler) {
	cpu.brkHandler = handler
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
	cpu.storeByte = (*CPU).storeByteDebugger
}

// DetachDebugger detaches the currently debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
	cpu.storeByte = (*CPU).storeByteNormal
}

// Load the byte selected by a resolved operand.
func (cpu *CPU) load(op Operand) byte {
	if op.Accumulator {
		return cpu.Reg.A
	}
	return cpu.Mem.LoadByte(op.Addr)
}

// Store a byte to the location selected by a resolved operand.
func (cpu *CPU) store(op Operand, v byte) {
	if op.Accumulator {
		cpu.Reg.A = v
		return
	}
	cpu.storeByte(cpu, op.Addr, v)
}

// Take a branch to the resolved target. A taken branch costs one extra
// cycle, two if the target is on another page.
func (cpu *CPU) branch(op Operand) {
	cpu.Reg.PC = op.Addr
	cpu.deltaCycles++
	if op.PageCrossed {
		cpu.deltaCycles++
	}
}

// Store the byte value 'v' add the address 'addr'.
func (cpu *CPU) storeByteNormal(addr uint16, v byte) {
	cpu.Mem.StoreByte(addr, v)
}

// Store the byte value 'v' add the address 'addr'.
func (cpu *CPU) storeByteDebugger(addr uint16, v byte) {
	cpu.debugger.onDataStore(cpu, addr, v)
	cpu.Mem.StoreByte(addr, v)
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.storeByte(cpu, stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | (uint16(hi) << 8)
}

// Update the Zero and Negative flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.P.Set(Zero, v == 0)
	cpu.Reg.P.Set(Negative, (v&0x80) != 0)
}

// Push the program counter and status flags on the stack, then switch
// the program counter to the address stored in 'vector'.
func (cpu *CPU) handleInterrupt(brk bool, vector uint16) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(brk))
	cpu.Reg.P.Set(InterruptDisable, true)
	cpu.Reg.PC = LoadAddress(cpu.Mem, vector)
}

// Service a hardware interrupt (IRQ or NMI).
func (cpu *CPU) serviceInterrupt(vector uint16) {
	cpu.state.CompareAndSwap(uint32(Running), uint32(ServicingInterrupt))
	cpu.handleInterrupt(false, vector)
	cpu.Cycles += interruptCycles
	cpu.state.CompareAndSwap(uint32(ServicingInterrupt), uint32(Running))
}

// Add with carry (2A03, binary only)
func (cpu *CPU) adc(inst *Instruction, op Operand) {
	cpu.addBinary(cpu.load(op))
}

// Add with carry (NMOS, decimal mode supported)
func (cpu *CPU) adcd(inst *Instruction, op Operand) {
	if !cpu.Reg.P.Get(Decimal) {
		cpu.addBinary(cpu.load(op))
		return
	}

	acc := uint32(cpu.Reg.A)
	add := uint32(cpu.load(op))
	carry := uint32(boolToByte(cpu.Reg.P.Get(Carry)))

	lo := (acc & 0x0f) + (add & 0x0f) + carry

	var carrylo uint32
	if lo >= 0x0a {
		carrylo = 0x10
		lo -= 0x0a
	}

	hi := (acc & 0xf0) + (add & 0xf0) + carrylo

	if hi >= 0xa0 {
		cpu.Reg.P.Set(Carry, true)
		hi -= 0xa0
	} else {
		cpu.Reg.P.Set(Carry, false)
	}

	v := hi | lo
	cpu.Reg.P.Set(Overflow, ((acc^v)&0x80) != 0 && ((acc^add)&0x80) == 0)

	cpu.Reg.A = byte(v)
	cpu.updateNZ(cpu.Reg.A)
}

// Binary addition of 'v' and the carry flag to the accumulator. Overflow is
// set when both inputs share a sign that differs from the result's.
func (cpu *CPU) addBinary(v byte) {
	acc := uint16(cpu.Reg.A)
	sum := acc + uint16(v) + uint16(boolToByte(cpu.Reg.P.Get(Carry)))
	r := byte(sum)

	cpu.Reg.P.Set(Carry, sum > 0xff)
	cpu.Reg.P.Set(Overflow, (^(cpu.Reg.A^v)&(cpu.Reg.A^r)&0x80) != 0)
	cpu.Reg.A = r
	cpu.updateNZ(r)
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction, op Operand) {
	cpu.Reg.A &= cpu.load(op)
	cpu.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction, op Operand) {
	v := cpu.load(op)
	cpu.Reg.P.Set(Carry, (v&0x80) == 0x80)
	v = v << 1
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction, op Operand) {
	if !cpu.Reg.P.Get(Carry) {
		cpu.branch(op)
	}
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction, op Operand) {
	if cpu.Reg.P.Get(Carry) {
		cpu.branch(op)
	}
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction, op Operand) {
	if cpu.Reg.P.Get(Zero) {
		cpu.branch(op)
	}
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction, op Operand) {
	v := cpu.load(op)
	cpu.Reg.P.Set(Zero, (v&cpu.Reg.A) == 0)
	cpu.Reg.P.Set(Negative, (v&0x80) != 0)
	cpu.Reg.P.Set(Overflow, (v&0x40) != 0)
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction, op Operand) {
	if cpu.Reg.P.Get(Negative) {
		cpu.branch(op)
	}
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction, op Operand) {
	if !cpu.Reg.P.Get(Zero) {
		cpu.branch(op)
	}
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction, op Operand) {
	if !cpu.Reg.P.Get(Negative) {
		cpu.branch(op)
	}
}

// Break. The byte following BRK is padding, so the pushed return address
// skips it.
func (cpu *CPU) brk(inst *Instruction, op Operand) {
	cpu.Reg.PC++
	cpu.handleInterrupt(true, vectorBRK)
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction, op Operand) {
	if !cpu.Reg.P.Get(Overflow) {
		cpu.branch(op)
	}
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction, op Operand) {
	if cpu.Reg.P.Get(Overflow) {
		cpu.branch(op)
	}
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Carry, false)
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Decimal, false)
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(InterruptDisable, false)
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Overflow, false)
}

// Compare a register to memory.
func (cpu *CPU) compare(reg byte, op Operand) {
	v := cpu.load(op)
	cpu.Reg.P.Set(Carry, reg >= v)
	cpu.updateNZ(reg - v)
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction, op Operand) {
	cpu.compare(cpu.Reg.A, op)
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction, op Operand) {
	cpu.compare(cpu.Reg.X, op)
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction, op Operand) {
	cpu.compare(cpu.Reg.Y, op)
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction, op Operand) {
	v := cpu.load(op) - 1
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction, op Operand) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction, op Operand) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction, op Operand) {
	cpu.Reg.A ^= cpu.load(op)
	cpu.updateNZ(cpu.Reg.A)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction, op Operand) {
	v := cpu.load(op) + 1
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction, op Operand) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction, op Operand) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

// Jump to memory address. The indirect form keeps the NMOS page-wrap
// behavior: JMP ($12FF) loads the MSB from $1200.
func (cpu *CPU) jmp(inst *Instruction, op Operand) {
	cpu.Reg.PC = op.Addr
}

// Jump to subroutine
func (cpu *CPU) jsr(inst *Instruction, op Operand) {
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = op.Addr
}

// load Accumulator
func (cpu *CPU) lda(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.load(op)
	cpu.updateNZ(cpu.Reg.A)
}

// load the X register
func (cpu *CPU) ldx(inst *Instruction, op Operand) {
	cpu.Reg.X = cpu.load(op)
	cpu.updateNZ(cpu.Reg.X)
}

// load the Y register
func (cpu *CPU) ldy(inst *Instruction, op Operand) {
	cpu.Reg.Y = cpu.load(op)
	cpu.updateNZ(cpu.Reg.Y)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction, op Operand) {
	v := cpu.load(op)
	cpu.Reg.P.Set(Carry, (v&1) == 1)
	v = v >> 1
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// No-operation
func (cpu *CPU) nop(inst *Instruction, op Operand) {
	// Do nothing
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction, op Operand) {
	cpu.Reg.A |= cpu.load(op)
	cpu.updateNZ(cpu.Reg.A)
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction, op Operand) {
	cpu.push(cpu.Reg.A)
}

// Push Processor flags
func (cpu *CPU) php(inst *Instruction, op Operand) {
	cpu.push(cpu.Reg.SavePS(true))
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction, op Operand) {
	cpu.Reg.RestorePS(cpu.pop())
}

// Rotate Left
func (cpu *CPU) rol(inst *Instruction, op Operand) {
	tmp := cpu.load(op)
	v := (tmp << 1) | boolToByte(cpu.Reg.P.Get(Carry))
	cpu.Reg.P.Set(Carry, (tmp&0x80) != 0)
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// Rotate Right
func (cpu *CPU) ror(inst *Instruction, op Operand) {
	tmp := cpu.load(op)
	v := (tmp >> 1) | (boolToByte(cpu.Reg.P.Get(Carry)) << 7)
	cpu.Reg.P.Set(Carry, (tmp&1) != 0)
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction, op Operand) {
	cpu.Reg.RestorePS(cpu.pop())
	cpu.Reg.PC = cpu.popAddress()
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction, op Operand) {
	addr := cpu.popAddress()
	cpu.Reg.PC = addr + 1
}

// Subtract with Carry (2A03, binary only). Carry set means no borrow.
func (cpu *CPU) sbc(inst *Instruction, op Operand) {
	cpu.addBinary(^cpu.load(op))
}

// Subtract with Carry (NMOS, decimal mode supported)
func (cpu *CPU) sbcd(inst *Instruction, op Operand) {
	if !cpu.Reg.P.Get(Decimal) {
		cpu.addBinary(^cpu.load(op))
		return
	}

	acc := uint32(cpu.Reg.A)
	sub := uint32(cpu.load(op))
	carry := uint32(boolToByte(cpu.Reg.P.Get(Carry)))

	lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + carry

	var carrylo uint32
	if lo < 0x10 {
		lo -= 0x06
		carrylo = 0
	} else {
		lo -= 0x10
		carrylo = 0x10
	}

	hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carrylo

	if hi < 0x100 {
		cpu.Reg.P.Set(Carry, false)
		hi -= 0x60
	} else {
		cpu.Reg.P.Set(Carry, true)
		hi -= 0x100
	}

	v := hi | lo
	cpu.Reg.P.Set(Overflow, ((acc^v)&0x80) != 0 && ((acc^sub)&0x80) != 0)

	cpu.Reg.A = byte(v)
	cpu.updateNZ(cpu.Reg.A)
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Carry, true)
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Decimal, true)
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(InterruptDisable, true)
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction, op Operand) {
	cpu.store(op, cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction, op Operand) {
	cpu.store(op, cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction, op Operand) {
	cpu.store(op, cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction, op Operand) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction, op Operand) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction, op Operand) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer X register to the stack pointer
func (cpu *CPU) txs(inst *Instruction, op Operand) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}

// Opcode with no defined behavior. The step is abandoned.
func (cpu *CPU) unimplemented(inst *Instruction, op Operand) {
	pc := cpu.Reg.PC - uint16(inst.Length)
	glog.Warningf("unimplemented opcode $%02X at $%04X", inst.Opcode, pc)
	cpu.fault = &UnimplementedOpcodeError{Opcode: inst.Opcode, PC: pc}
}
