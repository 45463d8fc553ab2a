package nes_test

import (
	"testing"

	"github.com/beevik/nes6502/cpu"
	"github.com/beevik/nes6502/nes"
)

func TestSystemLoadProgram(t *testing.T) {
	s := nes.NewSystem()
	code := []byte{
		0xa2, 0x05, // LDX #$05
		0xa9, 0x00, // LDA #$00
		0x18,       // CLC
		0x69, 0x03, // ADC #$03
		0xca,       // DEX
		0xd0, 0xfa, // BNE $8004
		0x8d, 0x00, 0x03, // STA $0300
		0x02, // undefined
	}
	if err := s.LoadProgram(code, 0x8000); err != nil {
		t.Fatal(err)
	}

	if s.CPU.Reg.PC != 0x8000 {
		t.Fatalf("reset vector not set. PC=$%04X", s.CPU.Reg.PC)
	}
	if s.CPU.Cycles != 7 {
		t.Errorf("reset cycles incorrect. exp: 7, got: %d", s.CPU.Cycles)
	}

	err := s.Run(true)
	if e, ok := cpu.IsUnimplemented(err); !ok || e.Opcode != 0x02 {
		t.Fatalf("expected unimplemented opcode error, got: %v", err)
	}
	if s.CPU.Reg.PC != 0x800d {
		t.Errorf("PC incorrect. exp: $800D, got: $%04X", s.CPU.Reg.PC)
	}
	if v := s.Mem.LoadByte(0x0300); v != 15 {
		t.Errorf("result incorrect. exp: 15, got: %d", v)
	}
	if v := s.Mem.LoadByte(0x0b00); v != 15 {
		t.Errorf("result not mirrored. exp: 15, got: %d", v)
	}
}

func TestSystemProgramVector(t *testing.T) {
	s := nes.NewSystem()
	code := make([]byte, 0x10)
	code[0x0c] = 0x34 // $FFFC
	code[0x0d] = 0x12 // $FFFD
	if err := s.LoadProgram(code, 0xfff0); err != nil {
		t.Fatal(err)
	}
	if s.CPU.Reg.PC != 0x1234 {
		t.Errorf("program reset vector overwritten. PC=$%04X", s.CPU.Reg.PC)
	}
}

func TestSystemROMWrite(t *testing.T) {
	s := nes.NewSystem()
	code := []byte{
		0xa9, 0x55, // LDA #$55
		0x8d, 0x00, 0x80, // STA $8000
	}
	if err := s.LoadProgram(code, 0x8000); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if v := s.Mem.LoadByte(0x8000); v != 0xa9 {
		t.Errorf("ROM modified. exp: $A9, got: $%02X", v)
	}
	if s.Mem.ROMWrites != 1 {
		t.Errorf("ROM write count incorrect. exp: 1, got: %d", s.Mem.ROMWrites)
	}
}

func TestSystemInterrupts(t *testing.T) {
	s := nes.NewSystem()
	code := []byte{0x58, 0xea, 0xea} // CLI, NOP, NOP
	if err := s.LoadProgram(code, 0x8000); err != nil {
		t.Fatal(err)
	}
	if err := s.Mem.LoadProgram([]byte{0x00, 0x90, 0x00, 0x80}, 0xfffa); err != nil {
		t.Fatal(err)
	}
	s.Reset()

	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}
	s.TriggerIRQ()
	s.TriggerNMI()

	n, err := s.Step()
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("interrupt cycles incorrect. exp: 7, got: %d", n)
	}
	if s.CPU.Reg.PC != 0x9000 {
		t.Errorf("NMI not serviced first. PC=$%04X", s.CPU.Reg.PC)
	}
}

func TestSystemDisassemble(t *testing.T) {
	s := nes.NewSystem()
	if err := s.LoadProgram([]byte{0xad, 0x00, 0x50}, 0x8000); err != nil {
		t.Fatal(err)
	}
	s.Mem.StoreByte(0x0000, 0x66)

	l := s.Disassemble(0x8000)
	if l.String() != "LDA $5000" {
		t.Errorf("disassembly incorrect. got: %q", l.String())
	}
	if v := s.Mem.LoadByte(0x5000); v != 0x66 {
		t.Errorf("disassembly changed the open bus. exp: $66, got: $%02X", v)
	}
}
