package disasm_test

import (
	"strings"
	"testing"

	"github.com/beevik/nes6502/cpu"
	"github.com/beevik/nes6502/disasm"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		exp  string
		next uint16
	}{
		{"IMM", []byte{0xa9, 0x42}, "LDA #$42", 0x8002},
		{"IMP", []byte{0xca}, "DEX", 0x8001},
		{"ACC", []byte{0x0a}, "ASL A", 0x8001},
		{"ZPG", []byte{0xa5, 0x10}, "LDA $10", 0x8002},
		{"ZPX", []byte{0xb5, 0x10}, "LDA $10,X", 0x8002},
		{"ZPY", []byte{0xb6, 0x10}, "LDX $10,Y", 0x8002},
		{"ABS", []byte{0xad, 0x34, 0x12}, "LDA $1234", 0x8003},
		{"ABX", []byte{0xbd, 0x34, 0x12}, "LDA $1234,X", 0x8003},
		{"ABY", []byte{0xb9, 0x34, 0x12}, "LDA $1234,Y", 0x8003},
		{"IND", []byte{0x6c, 0xff, 0x02}, "JMP ($02FF)", 0x8003},
		{"IDX", []byte{0xa1, 0x20}, "LDA ($20,X)", 0x8002},
		{"IDY", []byte{0xb1, 0x20}, "LDA ($20),Y", 0x8002},
		{"RELForward", []byte{0xd0, 0x05}, "BNE $8007", 0x8002},
		{"RELBackward", []byte{0xd0, 0xfc}, "BNE $7FFE", 0x8002},
		{"Undefined", []byte{0x02}, "???", 0x8001},
	}

	set := cpu.GetInstructionSet(cpu.Ricoh2A03)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := cpu.NewFlatMemory()
			mem.StoreBytes(0x8000, tt.code)

			l := disasm.Decode(set, mem, 0x8000)
			if l.String() != tt.exp {
				t.Errorf("line incorrect. exp: %q, got: %q", tt.exp, l.String())
			}
			if l.Next != tt.next {
				t.Errorf("next incorrect. exp: $%04X, got: $%04X", tt.next, l.Next)
			}
			if len(l.Bytes) != len(tt.code) {
				t.Errorf("byte count incorrect. exp: %d, got: %d", len(tt.code), len(l.Bytes))
			}
		})
	}
}

func TestDisassemble(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x0600, []byte{0x20, 0x00, 0x07})

	line, next := disasm.Disassemble(mem, 0x0600)
	if line != "JSR $0700" {
		t.Errorf("line incorrect. exp: %q, got: %q", "JSR $0700", line)
	}
	if next != 0x0603 {
		t.Errorf("next incorrect. exp: $0603, got: $%04X", next)
	}
}

func TestRange(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x8000, []byte{0xa2, 0x05, 0xca, 0xd0, 0xfd, 0x00})

	lines := disasm.Range(mem, 0x8000, 0x8005)
	exp := []string{"LDX #$05", "DEX", "BNE $8002", "BRK"}
	if len(lines) != len(exp) {
		t.Fatalf("line count incorrect. exp: %d, got: %d", len(exp), len(lines))
	}
	for i, e := range exp {
		if !strings.HasSuffix(lines[i], e) {
			t.Errorf("line %d incorrect. exp suffix: %q, got: %q", i, e, lines[i])
		}
	}
	if !strings.HasPrefix(lines[0], "8000-   A2 05") {
		t.Errorf("listing prefix incorrect: %q", lines[0])
	}
}

func TestRegisterString(t *testing.T) {
	var r cpu.Registers
	r.Init()
	r.A, r.PC = 0x12, 0xc000

	exp := "A=12 X=00 Y=00 PS=[nv-bdIzc] SP=FD PC=C000"
	if got := disasm.RegisterString(&r); got != exp {
		t.Errorf("register string incorrect.\nexp: %q\ngot: %q", exp, got)
	}
}

func TestTrace(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0xc000, []byte{0x4c, 0xf5, 0xc5})
	mem.StoreBytes(0xfffc, []byte{0x00, 0xc0})
	c := cpu.NewCPU(cpu.Ricoh2A03, mem)

	exp := "C000  4C F5 C5  JMP $C5F5" + strings.Repeat(" ", 23) +
		" A:00 X:00 Y:00 P:24 SP:FD CYC:7"
	if got := disasm.Trace(c); got != exp {
		t.Errorf("trace incorrect.\nexp: %q\ngot: %q", exp, got)
	}
}
