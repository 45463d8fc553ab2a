package nes_test

import (
	"testing"

	"github.com/beevik/nes6502/nes"
	"github.com/pkg/errors"
)

func expectByte(t *testing.T, m *nes.Memory, addr uint16, exp byte) {
	t.Helper()
	if got := m.LoadByte(addr); got != exp {
		t.Errorf("byte at $%04X incorrect. exp: $%02X, got: $%02X", addr, exp, got)
	}
}

func TestDecodeRegion(t *testing.T) {
	tests := []struct {
		addr uint16
		exp  nes.Region
	}{
		{0x0000, nes.RegionRAM},
		{0x1fff, nes.RegionRAM},
		{0x2000, nes.RegionPPU},
		{0x3fff, nes.RegionPPU},
		{0x4000, nes.RegionAPU},
		{0x401f, nes.RegionAPU},
		{0x4020, nes.RegionExpansion},
		{0x5fff, nes.RegionExpansion},
		{0x6000, nes.RegionPRGRAM},
		{0x7fff, nes.RegionPRGRAM},
		{0x8000, nes.RegionPRGROM},
		{0xffff, nes.RegionPRGROM},
	}

	for _, tt := range tests {
		if got := nes.Decode(tt.addr); got != tt.exp {
			t.Errorf("region of $%04X incorrect. exp: %v, got: %v", tt.addr, tt.exp, got)
		}
	}
}

func TestRAMMirroring(t *testing.T) {
	m := nes.NewMemory()
	for addr := uint16(0); addr < nes.RAMSize; addr++ {
		m.StoreByte(addr, byte(addr*7))
	}

	for k := uint16(1); k < 4; k++ {
		for addr := uint16(0); addr < nes.RAMSize; addr++ {
			expectByte(t, m, addr+k*nes.RAMSize, byte(addr*7))
		}
	}

	m.StoreByte(0x1801, 0x99)
	expectByte(t, m, 0x0001, 0x99)
}

func TestPPUMirroring(t *testing.T) {
	m := nes.NewMemory()
	m.StoreByte(0x2003, 0x5a)

	for addr := uint32(0x2003); addr < 0x4000; addr += 8 {
		expectByte(t, m, uint16(addr), 0x5a)
	}
	expectByte(t, m, 0x2004, 0x00)
}

type recorder struct {
	writes map[uint16]byte
}

func (r *recorder) ReadRegister(reg uint16) byte {
	return byte(reg) | 0x80
}

func (r *recorder) WriteRegister(reg uint16, v byte) {
	r.writes[reg] = v
}

func TestAttachedDevices(t *testing.T) {
	m := nes.NewMemory()
	ppu := &recorder{writes: make(map[uint16]byte)}
	apu := &recorder{writes: make(map[uint16]byte)}
	m.AttachPPU(ppu)
	m.AttachAPU(apu)

	m.StoreByte(0x3ffe, 0x11)
	if ppu.writes[6] != 0x11 {
		t.Errorf("PPU register 6 not written")
	}
	expectByte(t, m, 0x2002, 0x82)

	m.StoreByte(0x4016, 0x01)
	if apu.writes[0x16] != 0x01 {
		t.Errorf("APU register $16 not written")
	}
	expectByte(t, m, 0x401f, 0x9f)
}

func TestPRGRAM(t *testing.T) {
	m := nes.NewMemory()
	m.StoreByte(0x6000, 0x01)
	m.StoreByte(0x7fff, 0x02)
	expectByte(t, m, 0x6000, 0x01)
	expectByte(t, m, 0x7fff, 0x02)
}

func TestROMWritesIgnored(t *testing.T) {
	m := nes.NewMemory()
	rom := make([]byte, 0x8000)
	rom[0x1234] = 0xab
	if err := m.LoadPRG(rom); err != nil {
		t.Fatal(err)
	}

	m.StoreByte(0x9234, 0xcd)
	m.StoreByte(0xffff, 0xcd)
	expectByte(t, m, 0x9234, 0xab)
	expectByte(t, m, 0xffff, 0x00)
	if m.ROMWrites != 2 {
		t.Errorf("ROM write count incorrect. exp: 2, got: %d", m.ROMWrites)
	}
}

func TestPRGMirroring(t *testing.T) {
	m := nes.NewMemory()
	rom := make([]byte, 0x4000)
	rom[0] = 0x4c
	rom[0x3ffc] = 0x00
	rom[0x3ffd] = 0xc0
	if err := m.LoadPRG(rom); err != nil {
		t.Fatal(err)
	}

	expectByte(t, m, 0x8000, 0x4c)
	expectByte(t, m, 0xc000, 0x4c)
	expectByte(t, m, 0xbffd, 0xc0)
	expectByte(t, m, 0xfffd, 0xc0)
}

func TestPRGTooLarge(t *testing.T) {
	m := nes.NewMemory()
	err := m.LoadPRG(make([]byte, 0x8001))
	if errors.Cause(err) != nes.ErrPRGTooLarge {
		t.Errorf("expected ErrPRGTooLarge, got: %v", err)
	}
}

func TestOpenBus(t *testing.T) {
	m := nes.NewMemory()
	m.StoreByte(0x0010, 0x77)
	expectByte(t, m, 0x0010, 0x77)
	expectByte(t, m, 0x5000, 0x77)

	// Writes to the expansion area are dropped but still drive the bus.
	m.StoreByte(0x4800, 0x33)
	expectByte(t, m, 0x4800, 0x33)
	m.StoreByte(0x0010, 0x44)
	expectByte(t, m, 0x4800, 0x44)

	// With no ROM installed, PRG ROM reads float too.
	expectByte(t, m, 0x8000, 0x44)
}

func TestPeekKeepsOpenBus(t *testing.T) {
	m := nes.NewMemory()
	m.StoreByte(0x0000, 0x12)
	m.StoreByte(0x0001, 0x34)
	m.LoadByte(0x0000)

	if v := m.Peek(0x0001); v != 0x34 {
		t.Errorf("peek incorrect. exp: $34, got: $%02X", v)
	}
	m.View().StoreByte(0x0001, 0xff)
	expectByte(t, m, 0x5000, 0x12)
	expectByte(t, m, 0x0001, 0x34)
}

func TestLoadProgram(t *testing.T) {
	m := nes.NewMemory()
	code := []byte{0xa9, 0x01, 0x8d, 0x00, 0x02}
	if err := m.LoadProgram(code, 0x7ffe); err != nil {
		t.Fatal(err)
	}

	for i, v := range code {
		expectByte(t, m, 0x7ffe+uint16(i), v)
	}
	if m.ROMWrites != 0 {
		t.Errorf("program load counted as ROM writes")
	}
}

func TestLoadProgramTooLarge(t *testing.T) {
	m := nes.NewMemory()
	err := m.LoadProgram([]byte{1, 2, 3, 4}, 0xfffe)
	if errors.Cause(err) != nes.ErrProgramTooLarge {
		t.Errorf("expected ErrProgramTooLarge, got: %v", err)
	}
	if len(m.PRG()) != 0 {
		t.Errorf("partial program written")
	}

	if err := m.LoadProgram([]byte{1, 2}, 0xfffe); err != nil {
		t.Errorf("program ending at $FFFF rejected: %v", err)
	}
}

func TestLoadProgramKeepsMirror(t *testing.T) {
	m := nes.NewMemory()
	rom := make([]byte, 0x4000)
	rom[0x0100] = 0xee
	if err := m.LoadPRG(rom); err != nil {
		t.Fatal(err)
	}

	if err := m.LoadProgram([]byte{0xea}, 0x8000); err != nil {
		t.Fatal(err)
	}
	expectByte(t, m, 0x8000, 0xea)
	expectByte(t, m, 0xc000, 0x00)
	expectByte(t, m, 0xc100, 0xee)
	if len(m.PRG()) != nes.PRGROMSize {
		t.Errorf("PRG ROM not expanded. got %d bytes", len(m.PRG()))
	}
}
