// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The Memory interface presents an interface to the CPU through which all
// memory accesses occur. Implementations decide how an address maps onto
// their backing storage.
type Memory interface {
	// LoadByte loads a single byte from the address and returns it.
	LoadByte(addr uint16) byte

	// StoreByte stores a byte to the requested address.
	StoreByte(addr uint16, v byte)
}

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer with no mirroring and no read-only regions.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory creates a new 16-bit memory space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// LoadByte loads a single byte from the address and returns it.
func (m *FlatMemory) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// StoreByte stores a byte at the requested address.
func (m *FlatMemory) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// StoreBytes stores multiple bytes starting at the requested address,
// wrapping at the end of the address space.
func (m *FlatMemory) StoreBytes(addr uint16, b []byte) {
	for i, v := range b {
		m.b[addr+uint16(i)] = v
	}
}

// LoadAddress loads a little-endian 16-bit address from memory.
func LoadAddress(m Memory, addr uint16) uint16 {
	lo := m.LoadByte(addr)
	hi := m.LoadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Load a 16-bit address whose high byte is fetched from the same page as
// the low byte. This reproduces the JMP ($xxFF) behavior of the NMOS part.
func loadAddressSamePage(m Memory, addr uint16) uint16 {
	lo := m.LoadByte(addr)
	hi := m.LoadByte((addr & 0xff00) | uint16(byte(addr)+1))
	return uint16(lo) | uint16(hi)<<8
}

// Load a 16-bit pointer stored in page zero. The high byte wraps to $00.
func loadZeroPageAddress(m Memory, zp byte) uint16 {
	lo := m.LoadByte(uint16(zp))
	hi := m.LoadByte(uint16(zp + 1))
	return uint16(lo) | uint16(hi)<<8
}

// Offset a zero-page address by 'offset', wrapping within page zero.
func offsetZeroPage(zp byte, offset byte) uint16 {
	return uint16(zp + offset)
}

// Offset an address by 'offset' and report whether the high byte changed.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Return the memory address of the stack slot selected by 'ptr'.
func stackAddress(ptr byte) uint16 {
	return 0x100 + uint16(ptr)
}
