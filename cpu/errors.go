// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrHalted is returned by Step while the CPU is halted.
var ErrHalted = errors.New("cpu halted")

// An UnimplementedOpcodeError is returned when the CPU fetches an opcode
// with no defined behavior. The CPU does not advance past it.
type UnimplementedOpcodeError struct {
	Opcode byte   // the offending opcode
	PC     uint16 // address the opcode was fetched from
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", e.Opcode, e.PC)
}

// IsUnimplemented reports whether err, or the error it wraps, is an
// UnimplementedOpcodeError.
func IsUnimplemented(err error) (*UnimplementedOpcodeError, bool) {
	e, ok := errors.Cause(err).(*UnimplementedOpcodeError)
	return e, ok
}
