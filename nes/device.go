// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes

// A Device backs one of the memory-mapped register windows, such as the
// PPU registers at $2000-$2007 or the APU and I/O registers at
// $4000-$401F. The register index is relative to the start of the window.
type Device interface {
	ReadRegister(reg uint16) byte
	WriteRegister(reg uint16, v byte)
}

// A RegisterLatch is a stand-in device that returns the last value
// written to each register.
type RegisterLatch struct {
	regs []byte
}

// NewRegisterLatch creates a latch with 'size' registers.
func NewRegisterLatch(size int) *RegisterLatch {
	return &RegisterLatch{regs: make([]byte, size)}
}

// ReadRegister returns the last value written to the register.
func (l *RegisterLatch) ReadRegister(reg uint16) byte {
	return l.regs[int(reg)%len(l.regs)]
}

// WriteRegister stores a value in the register.
func (l *RegisterLatch) WriteRegister(reg uint16, v byte) {
	l.regs[int(reg)%len(l.regs)] = v
}
