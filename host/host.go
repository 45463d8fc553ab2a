// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements an interactive debugger shell around an NES CPU
// system.
//
// Within the host it is possible to load machine code into memory, debug
// and step through it, measure the number of CPU cycles elapsed, set
// address and data breakpoints, raise interrupts, dump and modify memory,
// disassemble code and trace execution to a file.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/beevik/nes6502/cpu"
	"github.com/beevik/nes6502/disasm"
	"github.com/beevik/nes6502/nes"
	"github.com/bradleyjkemp/memviz"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var errQuit = errors.New("exiting program")

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateStepOverBreakpoint
)

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles

	displayAll = displayRegisters | displayCycles
)

// A Host is a debugger shell wrapped around an NES CPU system.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	sys         *nes.System
	debugger    *cpu.Debugger
	lastCmd     *cmd.Selection
	state       state
	busy        atomic.Bool
	ignoreBrk   bool
	settings    *settings
	trace       io.Writer
	traceFile   *os.File
}

// New creates a new host with a freshly reset NES CPU system.
func New() *Host {
	h := &Host{
		state:    stateProcessingCommands,
		settings: newSettings(),
		output:   bufio.NewWriter(io.Discard),
	}

	h.sys = nes.NewSystem()

	// Create a CPU debugger and attach it to the CPU.
	handler := newDebugHandler(h)
	h.debugger = cpu.NewDebugger(handler)
	h.sys.CPU.AttachDebugger(h.debugger)
	h.sys.CPU.AttachBrkHandler(handler)

	return h
}

// System returns the NES system driven by the host.
func (h *Host) System() *nes.System {
	return h.sys
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
	}

	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, cmd.Selection) error)
		if err = handler(h, c); err != nil {
			break
		}
	}

	h.flush()
}

// Break interrupts a running CPU. It is safe to call from another
// goroutine, such as a signal handler.
func (h *Host) Break() {
	if h.busy.Load() {
		h.sys.CPU.Halt()
	}
}

// StartTrace writes a trace line for every instruction executed from now
// on. Lines go to 'filename', or to the host output if it is empty.
func (h *Host) StartTrace(filename string) error {
	h.StopTrace()

	if filename == "" {
		h.trace = h.output
		return nil
	}

	f, err := os.Create(filename)
	if err != nil {
		glog.Errorf("trace: %v", err)
		return errors.Wrapf(err, "failed to create trace file '%s'", filepath.Base(filename))
	}
	h.traceFile = f
	h.trace = bufio.NewWriter(f)
	return nil
}

// StopTrace stops tracing and closes the trace file, if any.
func (h *Host) StopTrace() error {
	var err error
	if w, ok := h.trace.(*bufio.Writer); ok {
		err = w.Flush()
	}
	if h.traceFile != nil {
		if cerr := h.traceFile.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			glog.Errorf("trace: %v", err)
		}
	}
	h.trace = nil
	h.traceFile = nil
	return err
}

// Close releases the resources held by the host.
func (h *Host) Close() error {
	return h.StopTrace()
}

func (h *Host) print(args ...any) {
	fmt.Fprint(h.output, args...)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return strings.TrimSpace(h.input.Text()), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.print("* ")
		h.flush()
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		d, _ := h.disassemble(h.sys.CPU.Reg.PC, displayAll)
		h.println(d)
	}
}

func (h *Host) displayUsage(c *cmd.Command) {
	if u := usages[reflect.ValueOf(c.Data).Pointer()]; u != "" {
		h.printf("Syntax: %s\n", u)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.println("Commands:")
		for _, e := range helpEntries {
			if !strings.Contains(e.path, " ") {
				h.printf("    %-15s  %s\n", e.path, e.brief)
			}
		}
		return nil
	}

	exact, children := findHelp(strings.Join(c.Args, " "))
	switch {
	case exact == nil && len(children) == 0:
		h.println("Command not found.")
	case len(children) > 0:
		h.printf("%s commands:\n", strings.Join(c.Args, " "))
		for _, e := range children {
			h.printf("    %-15s  %s\n", e.path[strings.LastIndex(e.path, " ")+1:], e.brief)
		}
	default:
		if exact.usage != "" {
			h.printf("Syntax: %s\n\n", exact.usage)
		}
		switch {
		case exact.description != "":
			h.printf("Description:\n   %s\n\n", exact.description)
		case exact.brief != "":
			h.printf("Description:\n   %s.\n\n", exact.brief)
		}
	}
	return nil
}

func (h *Host) cmdBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c cmd.Selection) error {
	b := h.lookupBreakpoint(c)
	if b == nil {
		return nil
	}

	h.debugger.RemoveBreakpoint(b.Address)
	h.printf("Breakpoint at $%04X removed.\n", b.Address)
	return nil
}

func (h *Host) cmdBreakpointEnable(c cmd.Selection) error {
	b := h.lookupBreakpoint(c)
	if b == nil {
		return nil
	}

	b.Disabled = false
	h.printf("Breakpoint at $%04X enabled.\n", b.Address)
	return nil
}

func (h *Host) cmdBreakpointDisable(c cmd.Selection) error {
	b := h.lookupBreakpoint(c)
	if b == nil {
		return nil
	}

	b.Disabled = true
	h.printf("Breakpoint at $%04X disabled.\n", b.Address)
	return nil
}

func (h *Host) lookupBreakpoint(c cmd.Selection) *cpu.Breakpoint {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
	}
	return b
}

func (h *Host) cmdDataBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.GetDataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-5v    $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-5v    <none>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if len(c.Args) > 1 {
		value, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, byte(value))
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, byte(value))
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}

	return nil
}

func (h *Host) cmdDataBreakpointRemove(c cmd.Selection) error {
	b := h.lookupDataBreakpoint(c)
	if b == nil {
		return nil
	}

	h.debugger.RemoveDataBreakpoint(b.Address)
	h.printf("Data breakpoint at $%04X removed.\n", b.Address)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c cmd.Selection) error {
	b := h.lookupDataBreakpoint(c)
	if b == nil {
		return nil
	}

	b.Disabled = false
	h.printf("Data breakpoint at $%04X enabled.\n", b.Address)
	return nil
}

func (h *Host) cmdDataBreakpointDisable(c cmd.Selection) error {
	b := h.lookupDataBreakpoint(c)
	if b == nil {
		return nil
	}

	b.Disabled = true
	h.printf("Data breakpoint at $%04X disabled.\n", b.Address)
	return nil
}

func (h *Host) lookupDataBreakpoint(c cmd.Selection) *cpu.DataBreakpoint {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.GetDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
	}
	return b
}

func (h *Host) cmdDisassemble(c cmd.Selection) error {
	if len(c.Args) == 0 {
		c.Args = []string{"$"}
	}

	var addr uint16
	switch c.Args[0] {
	case "$":
		addr = h.settings.NextDisasmAddr
		if addr == 0 {
			addr = h.sys.CPU.Reg.PC
		}

	default:
		a, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	lines := h.settings.DisasmLines
	if len(c.Args) > 1 {
		l, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr, 0)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", lines)}
	return nil
}

func (h *Host) cmdGraph(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	f, err := os.Create(c.Args[0])
	if err != nil {
		glog.Errorf("graph: %v", err)
		h.printf("%v\n", err)
		return nil
	}
	defer f.Close()

	memviz.Map(f, &h.sys.CPU.Reg, h.debugger.GetBreakpoints(), h.debugger.GetDataBreakpoints())
	h.printf("CPU state graph written to '%s'.\n", filepath.Base(c.Args[0]))
	return nil
}

func (h *Host) cmdInterruptIRQ(c cmd.Selection) error {
	h.sys.TriggerIRQ()
	if h.sys.CPU.Reg.P.Get(cpu.InterruptDisable) {
		h.println("IRQ pending. Interrupts are disabled.")
	} else {
		h.println("IRQ pending.")
	}
	return nil
}

func (h *Host) cmdInterruptNMI(c cmd.Selection) error {
	h.sys.TriggerNMI()
	h.println("NMI pending.")
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if err := h.load(c.Args[0], addr); err != nil {
		glog.Errorf("load: %v", err)
		h.printf("%v\n", err)
	}
	return nil
}

func (h *Host) load(filename string, origin uint16) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to read '%s'", filepath.Base(filename))
	}

	if err := h.sys.LoadProgram(b, origin); err != nil {
		return errors.Wrapf(err, "failed to load '%s'", filepath.Base(filename))
	}

	h.printf("Loaded '%s' to $%04X..$%04X\n", filepath.Base(filename), origin, int(origin)+len(b)-1)
	h.settings.NextDisasmAddr = h.sys.CPU.Reg.PC
	h.displayPC()
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	if len(c.Args) == 0 {
		c.Args = []string{"$"}
	}

	var addr uint16
	switch c.Args[0] {
	case "$":
		addr = h.settings.NextMemDumpAddr

	default:
		a, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(c.Args) >= 2 {
		var err error
		bytes, err = h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := make([]byte, 0, len(c.Args)-1)
	for _, s := range c.Args[1:] {
		v, err := h.parseExpr(s)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		b = append(b, byte(v))
	}

	if err := h.sys.Mem.LoadProgram(b, addr); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("Memory at $%04X..$%04X set.\n", addr, int(addr)+len(b)-1)
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errQuit
}

func (h *Host) cmdRegisters(c cmd.Selection) error {
	d, _ := h.disassemble(h.sys.CPU.Reg.PC, displayAll)
	h.println(d)
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.sys.Reset()
	h.settings.NextDisasmAddr = h.sys.CPU.Reg.PC
	h.printf("CPU reset. PC=$%04X\n", h.sys.CPU.Reg.PC)
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	if len(c.Args) > 0 {
		pc, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.sys.CPU.SetPC(pc)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.sys.CPU.Reg.PC)

	h.startRunning()
	for h.state == stateRunning {
		h.step()
	}
	h.stopRunning()

	h.settings.NextDisasmAddr = h.sys.CPU.Reg.PC
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayUsage(c.Command)

	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")
		v, errV := h.parseExpr(value)

		// Setting a register?
		if errV == nil && h.setRegister(key, v) {
			return nil
		}

		// Setting a debugger setting?
		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = errors.Errorf("Setting '%s' not found", key)
		case reflect.String:
			err = h.settings.Set(key, value)
		case reflect.Bool:
			var b bool
			b, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, b)
			}
		default:
			err = errV
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}
	}

	return nil
}

func (h *Host) setRegister(key string, v uint16) bool {
	r := &h.sys.CPU.Reg
	switch key {
	case "a":
		r.A = byte(v)
	case "x":
		r.X = byte(v)
	case "y":
		r.Y = byte(v)
	case "sp":
		r.SP = byte(v)
	case "p", "ps":
		r.P.Load(byte(v))
	case ".", "pc":
		key = "pc"
		r.PC = v
		h.settings.NextDisasmAddr = v
	default:
		return false
	}

	if key == "pc" {
		h.printf("Register PC set to $%04X.\n", v)
	} else {
		h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))
	}
	return true
}

func (h *Host) cmdStepIn(c cmd.Selection) error {
	h.stepCommand(c, h.step)
	return nil
}

func (h *Host) cmdStepOver(c cmd.Selection) error {
	h.stepCommand(c, h.stepOver)
	return nil
}

// Execute 'stepFn' a requested number of times, displaying the last few
// instructions executed.
func (h *Host) stepCommand(c cmd.Selection, stepFn func()) {
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err == nil {
			count = int(n)
		}
	}

	h.startRunning()
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		stepFn()
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}
	h.stopRunning()

	h.settings.NextDisasmAddr = h.sys.CPU.Reg.PC
}

func (h *Host) cmdTraceOn(c cmd.Selection) error {
	filename := h.settings.TraceFile
	if len(c.Args) > 0 {
		filename = c.Args[0]
	}

	if err := h.StartTrace(filename); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if filename == "" {
		h.println("Tracing to console.")
	} else {
		h.printf("Tracing to '%s'.\n", filename)
	}
	return nil
}

func (h *Host) cmdTraceOff(c cmd.Selection) error {
	if h.trace == nil {
		h.println("Tracing is not active.")
		return nil
	}
	if err := h.StopTrace(); err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.println("Tracing stopped.")
	return nil
}

func (h *Host) startRunning() {
	h.state = stateRunning
	h.busy.Store(true)
}

func (h *Host) stopRunning() {
	h.busy.Store(false)
	h.sys.CPU.Resume()
	h.state = stateProcessingCommands
}

func (h *Host) step() {
	c := h.sys.CPU
	switch {
	case h.trace != nil:
		fmt.Fprintln(h.trace, disasm.Trace(c))
		if h.trace == io.Writer(h.output) {
			h.flush()
		}
	case bool(glog.V(3)):
		glog.Info(disasm.Trace(c))
	}

	_, err := h.sys.Step()
	switch {
	case err == nil && c.State() == cpu.Halted:
		h.state = stateBreakpoint
		if !h.ignoreBrk {
			h.println("Break.")
			h.displayPC()
		}

	case err == nil:
		h.ignoreBrk = false

	case errors.Cause(err) == cpu.ErrHalted:
		h.println("Break.")
		h.state = stateBreakpoint
		h.displayPC()

	default:
		if e, ok := cpu.IsUnimplemented(err); ok {
			h.printf("Stopped at undefined opcode $%02X at $%04X.\n", e.Opcode, e.PC)
		} else {
			h.printf("ERROR: %v.\n", err)
		}
		h.state = stateBreakpoint
		h.displayPC()
	}
}

func (h *Host) stepOver() {
	c := h.sys.CPU

	// JSR instructions need to be handled specially.
	inst := c.GetInstruction(c.Reg.PC)
	if inst.Name != "JSR" {
		h.step()
		return
	}

	// Place a step-over breakpoint on the instruction following the JSR.
	// Either modify an already existing breakpoint on that instruction, or
	// create a temporary one.
	next := c.Reg.PC + uint16(inst.Length)
	tmpBreakpointCreated := false
	b := h.debugger.GetBreakpoint(next)
	if b == nil {
		b = h.debugger.AddBreakpoint(next)
		tmpBreakpointCreated = true
	}
	b.StepOver = true

	// Run until interrupted.
	for h.state == stateRunning {
		h.step()
	}
	b.StepOver = false

	// If we were interrupted by the temporary step-over breakpoint,
	// then continue as normal.
	if h.state == stateStepOverBreakpoint {
		h.state = stateRunning
	}

	// Remove the temporarily created breakpoint.
	if tmpBreakpointCreated {
		h.debugger.RemoveBreakpoint(next)
	}
}

func (h *Host) parseExpr(expr string) (uint16, error) {
	return parseExpr(expr, h)
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	r := &h.sys.CPU.Reg
	switch strings.ToLower(s) {
	case "a":
		return int64(r.A), nil
	case "x":
		return int64(r.X), nil
	case "y":
		return int64(r.Y), nil
	case "sp":
		return int64(r.SP) | 0x0100, nil
	case ".", "pc":
		return int64(r.PC), nil
	}
	return 0, errors.Errorf("identifier '%s' not found", s)
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16) {
	l := h.sys.Disassemble(addr)

	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, l.HexBytes(), l.String())

	if (flags & displayRegisters) != 0 {
		str += " " + disasm.RegisterString(&h.sys.CPU.Reg)
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%d", h.sys.CPU.Cycles)
	}

	return str, l.Next
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes == 0 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.sys.Mem.Peek(uint16(a))
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	a := start
	for r := start; r < stop; r += 8 {
		addrToBuf(uint16(a), buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= uint32(addr0) && a <= uint32(addr1) {
				m := h.sys.Mem.Peek(uint16(a))
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}

func (h *Host) onBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	if b.StepOver {
		h.state = stateStepOverBreakpoint
	} else {
		h.state = stateBreakpoint
		h.printf("Breakpoint hit at $%04X.\n", b.Address)
		h.displayPC()
	}
}

func (h *Host) onDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)

	h.state = stateBreakpoint

	if c.LastPC != c.Reg.PC {
		d, _ := h.disassemble(c.LastPC, displayAll)
		h.println(d)
	}

	h.displayPC()
}

func (h *Host) onBrk(c *cpu.CPU) {
	if !h.settings.StopOnBRK || h.state != stateRunning {
		return
	}

	// A BRK that just stopped execution runs when execution resumes.
	if h.ignoreBrk {
		h.ignoreBrk = false
		return
	}

	h.ignoreBrk = true
	c.Halt()
	h.printf("BRK reached at $%04X.\n", c.Reg.PC)
	h.displayPC()
}
