// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes

import (
	"github.com/beevik/nes6502/cpu"
	"github.com/beevik/nes6502/disasm"
	"github.com/golang/glog"
)

const vectorReset = 0xfffc

// A System is a 2A03 CPU wired to the NES address space.
type System struct {
	CPU *cpu.CPU
	Mem *Memory
}

// NewSystem creates a CPU and an empty address space and resets the CPU.
func NewSystem() *System {
	mem := NewMemory()
	return &System{
		CPU: cpu.NewCPU(cpu.Ricoh2A03, mem),
		Mem: mem,
	}
}

// LoadProgram copies a program into memory at 'origin', points the reset
// vector at it unless the program supplies its own, and resets the CPU.
func (s *System) LoadProgram(b []byte, origin uint16) error {
	if err := s.Mem.LoadProgram(b, origin); err != nil {
		return err
	}

	end := int(origin) + len(b)
	if int(origin) > vectorReset || end < vectorReset+2 {
		vec := []byte{byte(origin), byte(origin >> 8)}
		if err := s.Mem.LoadProgram(vec, vectorReset); err != nil {
			return err
		}
	}

	s.Reset()
	return nil
}

// LoadPRG installs a PRG ROM image and resets the CPU through the vector
// it contains.
func (s *System) LoadPRG(rom []byte) error {
	if err := s.Mem.LoadPRG(rom); err != nil {
		return err
	}
	s.Reset()
	return nil
}

// Reset the CPU.
func (s *System) Reset() {
	s.CPU.Reset()
	glog.V(1).Infof("reset, PC=$%04X", s.CPU.Reg.PC)
}

// Step executes one instruction or interrupt sequence and returns the
// cycles it consumed.
func (s *System) Step() (int, error) {
	return s.CPU.Step()
}

// Run executes a single step if auto is false; otherwise it runs until an
// error occurs or the CPU is halted.
func (s *System) Run(auto bool) error {
	return s.CPU.Run(auto)
}

// TriggerIRQ raises the maskable interrupt line.
func (s *System) TriggerIRQ() {
	s.CPU.TriggerIRQ()
}

// TriggerNMI latches a non-maskable interrupt.
func (s *System) TriggerNMI() {
	s.CPU.TriggerNMI()
}

// Disassemble decodes the instruction at 'pc' without changing any state.
func (s *System) Disassemble(pc uint16) disasm.Line {
	return disasm.Decode(s.CPU.InstSet, s.Mem.View(), pc)
}
