package host_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/nes6502/host"
)

func runScript(t *testing.T, h *host.Host, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	h.RunCommands(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, false)
	return out.String()
}

func expectOutput(t *testing.T, out string, exp ...string) {
	t.Helper()
	for _, e := range exp {
		if !strings.Contains(out, e) {
			t.Errorf("output missing %q.\nOutput:\n%s", e, out)
		}
	}
}

func TestStepAndRun(t *testing.T) {
	h := host.New()
	out := runScript(t, h,
		"memory set $8000 $A9 $05 $8D $00 $02 $E8 $4C $05 $80",
		"memory set $FFFC $00 $80",
		"reset",
		"step in 2",
		"registers",
		"memory dump $0200 1",
		"breakpoint add $8006",
		"run",
		"breakpoint list",
	)

	expectOutput(t, out,
		"CPU reset. PC=$8000",
		"A=05 X=00",
		"0200- 05",
		"Breakpoint added at $8006.",
		"Breakpoint hit at $8006.",
		"$8006 true",
	)

	c := h.System().CPU
	if c.Reg.PC != 0x8006 || c.Reg.X != 1 {
		t.Errorf("CPU state incorrect. PC=$%04X X=$%02X", c.Reg.PC, c.Reg.X)
	}
}

func TestStepOver(t *testing.T) {
	h := host.New()
	out := runScript(t, h,
		"memory set $8000 $20 $10 $80 $EA",
		"memory set $8010 $E8 $60",
		"memory set $FFFC $00 $80",
		"reset",
		"step over",
		"registers",
	)

	expectOutput(t, out, "8003-   EA")
	if x := h.System().CPU.Reg.X; x != 1 {
		t.Errorf("subroutine not executed. X=$%02X", x)
	}
}

func TestStopConditions(t *testing.T) {
	t.Run("Undefined", func(t *testing.T) {
		h := host.New()
		out := runScript(t, h,
			"memory set $8000 $EA $02",
			"memory set $FFFC $00 $80",
			"reset",
			"run",
		)
		expectOutput(t, out, "Stopped at undefined opcode $02 at $8001.")
	})

	t.Run("BRK", func(t *testing.T) {
		h := host.New()
		out := runScript(t, h,
			"memory set $8000 $EA $00",
			"memory set $FFFC $00 $80",
			"reset",
			"run",
		)
		expectOutput(t, out, "BRK reached at $8001.")
		if pc := h.System().CPU.Reg.PC; pc != 0x8001 {
			t.Errorf("PC incorrect. exp: $8001, got: $%04X", pc)
		}
	})

	t.Run("DataBreakpoint", func(t *testing.T) {
		h := host.New()
		out := runScript(t, h,
			"memory set $8000 $A9 $07 $8D $00 $03 $EA $EA",
			"memory set $FFFC $00 $80",
			"reset",
			"databreakpoint add $0300 $07",
			"run",
		)
		expectOutput(t, out,
			"Conditional data breakpoint added at $0300 for value $07.",
			"Data breakpoint hit on address $0300.",
		)
	})
}

func TestInterrupt(t *testing.T) {
	h := host.New()
	out := runScript(t, h,
		"memory set $8000 $EA $EA",
		"memory set $9000 $40",
		"memory set $FFFA $00 $90 $00 $80",
		"reset",
		"interrupt nmi",
		"step in",
		"registers",
	)

	expectOutput(t, out, "NMI pending.", "PC=9000")
}

func TestSet(t *testing.T) {
	h := host.New()
	out := runScript(t, h,
		"set MemDumpBytes 16",
		"set a $42",
		"set pc $C000",
		"set StopOnBRK false",
		"set bogus 1",
		"set",
	)

	expectOutput(t, out,
		"Setting updated.",
		"Register A set to $42.",
		"Register PC set to $C000.",
		"Setting 'bogus' not found",
		"MemDumpBytes     16",
		"StopOnBRK        false",
	)

	c := h.System().CPU
	if c.Reg.A != 0x42 || c.Reg.PC != 0xc000 {
		t.Errorf("registers not set. A=$%02X PC=$%04X", c.Reg.A, c.Reg.PC)
	}
}

func TestUnknownCommand(t *testing.T) {
	h := host.New()
	out := runScript(t, h, "frobnicate")
	expectOutput(t, out, "Command not found.")
}

func TestHelp(t *testing.T) {
	h := host.New()
	out := runScript(t, h, "help", "help breakpoint", "help memory dump")
	expectOutput(t, out,
		"breakpoint       Breakpoint commands",
		"add              Add a breakpoint",
		"Syntax: memory dump [<address>] [<bytes>]",
	)
}

func TestTrace(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "trace.log")

	h := host.New()
	runScript(t, h,
		"memory set $8000 $A9 $05 $AA",
		"memory set $FFFC $00 $80",
		"reset",
		"trace on "+filename,
		"step in 2",
		"trace off",
	)
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("trace line count incorrect. exp: 2, got: %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "8000  A9 05     LDA #$05") {
		t.Errorf("trace line incorrect: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "CYC:7") || !strings.HasSuffix(lines[1], "CYC:9") {
		t.Errorf("trace cycles incorrect:\n%s", b)
	}
}

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "prog.bin")
	if err := os.WriteFile(filename, []byte{0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}

	h := host.New()
	out := runScript(t, h,
		"load "+filename+" $C000",
		"run",
		"load missing.bin $C000",
	)

	expectOutput(t, out,
		"Loaded 'prog.bin' to $C000..$C005",
		"Stopped at undefined opcode $02 at $C005.",
		"failed to read 'missing.bin'",
	)
	if x := h.System().CPU.Reg.X; x != 0 {
		t.Errorf("loop did not run. X=$%02X", x)
	}
}

func TestGraph(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "cpu.dot")

	h := host.New()
	out := runScript(t, h,
		"breakpoint add $8000",
		"graph "+filename,
	)
	expectOutput(t, out, "CPU state graph written to 'cpu.dot'.")

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "digraph") {
		t.Errorf("graph output is not a dot graph:\n%s", b)
	}
}
