// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nes implements the NES CPU address space and ties it to a 6502
// core, producing a system that programs can be loaded into and run.
package nes

import (
	"github.com/beevik/nes6502/cpu"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Errors
var (
	ErrProgramTooLarge = errors.New("program does not fit in the address space")
	ErrPRGTooLarge     = errors.New("PRG ROM image larger than 32K")
)

// Sizes of the fixed memory regions.
const (
	RAMSize    = 0x0800
	PRGRAMSize = 0x2000
	PRGROMSize = 0x8000
)

// A Region identifies the backing store an address decodes to.
type Region byte

// Memory regions of the NES CPU address space
const (
	RegionRAM       Region = iota // $0000-$1FFF, 2K mirrored
	RegionPPU                     // $2000-$3FFF, 8 registers mirrored
	RegionAPU                     // $4000-$401F
	RegionExpansion               // $4020-$5FFF, unmapped
	RegionPRGRAM                  // $6000-$7FFF
	RegionPRGROM                  // $8000-$FFFF, read-only
)

var regionNames = []string{"RAM", "PPU", "APU/IO", "expansion", "PRG RAM", "PRG ROM"}

func (r Region) String() string {
	return regionNames[r]
}

// Decode returns the region an address belongs to.
func Decode(addr uint16) Region {
	switch {
	case addr < 0x2000:
		return RegionRAM
	case addr < 0x4000:
		return RegionPPU
	case addr < 0x4020:
		return RegionAPU
	case addr < 0x6000:
		return RegionExpansion
	case addr < 0x8000:
		return RegionPRGRAM
	default:
		return RegionPRGROM
	}
}

// Memory is the NES CPU address space. It implements cpu.Memory.
//
// Writes to PRG ROM are ignored and counted. Reads from the unmapped
// expansion area return the last value seen on the data bus, and writes to
// it are ignored.
type Memory struct {
	ram       [RAMSize]byte
	prgRAM    [PRGRAMSize]byte
	prgROM    []byte
	ppu       Device
	apu       Device
	openBus   byte
	ROMWrites uint64 // number of writes ignored by PRG ROM
}

// NewMemory creates an empty address space with latching stand-ins for
// the PPU and APU register windows.
func NewMemory() *Memory {
	return &Memory{
		ppu: NewRegisterLatch(8),
		apu: NewRegisterLatch(0x20),
	}
}

// AttachPPU replaces the device behind $2000-$3FFF.
func (m *Memory) AttachPPU(d Device) {
	m.ppu = d
}

// AttachAPU replaces the device behind $4000-$401F.
func (m *Memory) AttachAPU(d Device) {
	m.apu = d
}

// LoadByte reads a byte from the address space.
func (m *Memory) LoadByte(addr uint16) byte {
	v, driven := m.read(addr)
	if driven {
		m.openBus = v
	}
	return v
}

// Peek reads a byte without disturbing the open-bus value.
func (m *Memory) Peek(addr uint16) byte {
	v, _ := m.read(addr)
	return v
}

// View returns a read-only view of the address space for debuggers and
// disassemblers. Stores through the view are discarded.
func (m *Memory) View() cpu.Memory {
	return view{m}
}

// Read the byte at 'addr'. The second result is false when no device
// drives the data bus.
func (m *Memory) read(addr uint16) (byte, bool) {
	switch Decode(addr) {
	case RegionRAM:
		return m.ram[addr&0x07ff], true
	case RegionPPU:
		return m.ppu.ReadRegister(addr & 0x0007), true
	case RegionAPU:
		return m.apu.ReadRegister(addr - 0x4000), true
	case RegionPRGRAM:
		return m.prgRAM[addr-0x6000], true
	case RegionPRGROM:
		if len(m.prgROM) > 0 {
			return m.prgROM[int(addr-0x8000)%len(m.prgROM)], true
		}
	}
	if glog.V(2) {
		glog.Infof("read from unmapped address $%04X", addr)
	}
	return m.openBus, false
}

type view struct {
	m *Memory
}

func (v view) LoadByte(addr uint16) byte {
	return v.m.Peek(addr)
}

func (v view) StoreByte(addr uint16, b byte) {}

// StoreByte writes a byte to the address space.
func (m *Memory) StoreByte(addr uint16, v byte) {
	m.openBus = v
	switch Decode(addr) {
	case RegionRAM:
		m.ram[addr&0x07ff] = v
	case RegionPPU:
		m.ppu.WriteRegister(addr&0x0007, v)
	case RegionAPU:
		m.apu.WriteRegister(addr-0x4000, v)
	case RegionExpansion:
		if glog.V(2) {
			glog.Infof("write of $%02X to unmapped address $%04X ignored", v, addr)
		}
	case RegionPRGRAM:
		m.prgRAM[addr-0x6000] = v
	case RegionPRGROM:
		m.ROMWrites++
		if glog.V(2) {
			glog.Infof("write of $%02X to PRG ROM at $%04X ignored", v, addr)
		}
	}
}

// LoadPRG installs a PRG ROM image. Images smaller than 32K are mirrored
// across $8000-$FFFF.
func (m *Memory) LoadPRG(rom []byte) error {
	if len(rom) > PRGROMSize {
		return errors.Wrapf(ErrPRGTooLarge, "%d bytes", len(rom))
	}
	m.prgROM = append([]byte(nil), rom...)
	glog.V(1).Infof("loaded %d byte PRG ROM", len(rom))
	return nil
}

// PRG returns the installed PRG ROM image.
func (m *Memory) PRG() []byte {
	return m.prgROM
}

// LoadProgram copies a program into the address space at 'origin'. Unlike
// StoreByte it also writes into PRG ROM. Nothing is written if the program
// would extend past $FFFF.
func (m *Memory) LoadProgram(b []byte, origin uint16) error {
	if int(origin)+len(b) > 0x10000 {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes at $%04X", len(b), origin)
	}

	for i, v := range b {
		addr := origin + uint16(i)
		if Decode(addr) == RegionPRGROM {
			m.expandPRG()
			m.prgROM[addr-0x8000] = v
			continue
		}
		m.StoreByte(addr, v)
	}

	glog.V(1).Infof("loaded %d bytes at $%04X", len(b), origin)
	return nil
}

// Grow the PRG ROM image to a full 32K, preserving what the CPU currently
// sees at every address.
func (m *Memory) expandPRG() {
	if len(m.prgROM) == PRGROMSize {
		return
	}
	rom := make([]byte, PRGROMSize)
	if n := len(m.prgROM); n > 0 {
		for i := range rom {
			rom[i] = m.prgROM[i%n]
		}
	}
	m.prgROM = rom
}
