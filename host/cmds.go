package host

import (
	"reflect"
	"strings"

	"github.com/beevik/cmd"
)

// A helpEntry describes one command or command group for the help command.
type helpEntry struct {
	path        string // full command path, e.g. "breakpoint add"
	brief       string
	usage       string // empty for command groups
	description string
}

var (
	cmds        *cmd.Tree
	helpEntries []helpEntry
	usages      = make(map[uintptr]string) // usage text by handler
)

func addCommand(t *cmd.Tree, group string, d cmd.CommandDescriptor) {
	t.AddCommand(d)
	path := d.Name
	if group != "" {
		path = group + " " + d.Name
	}
	helpEntries = append(helpEntries, helpEntry{
		path:        path,
		brief:       d.Brief,
		usage:       d.Usage,
		description: d.Description,
	})
	if d.Data != nil {
		usages[reflect.ValueOf(d.Data).Pointer()] = d.Usage
	}
}

func addGroup(t *cmd.Tree, name, brief string) *cmd.Tree {
	helpEntries = append(helpEntries, helpEntry{path: name, brief: brief})
	return t.AddSubtree(cmd.TreeDescriptor{Name: name, Brief: brief})
}

// Return the help entry whose path matches 'path' exactly, along with
// every entry nested beneath it.
func findHelp(path string) (exact *helpEntry, children []*helpEntry) {
	path = strings.ToLower(strings.Join(strings.Fields(path), " "))
	for i := range helpEntries {
		e := &helpEntries[i]
		switch {
		case e.path == path:
			exact = e
		case strings.HasPrefix(e.path, path+" "):
			children = append(children, e)
		}
	}
	return exact, children
}

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "nes6502"})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "help",
		Brief:       "Display help",
		Description: "Display help for a command or command group.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})

	// Breakpoint commands
	bp := addGroup(root, "breakpoint", "Breakpoint commands")
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List all current breakpoints.",
		Usage:       "breakpoint list",
		Data:        (*Host).cmdBreakpointList,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a breakpoint",
		Description: "Add a breakpoint at the specified address." +
			" The breakpoint starts enabled.",
		Usage: "breakpoint add <address>",
		Data:  (*Host).cmdBreakpointAdd,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Remove a breakpoint at the specified address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Host).cmdBreakpointRemove,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a breakpoint",
		Description: "Enable a previously added breakpoint.",
		Usage:       "breakpoint enable <address>",
		Data:        (*Host).cmdBreakpointEnable,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:  "disable",
		Brief: "Disable a breakpoint",
		Description: "Disable a previously added breakpoint. This" +
			" prevents the breakpoint from being hit when running the" +
			" CPU.",
		Usage: "breakpoint disable <address>",
		Data:  (*Host).cmdBreakpointDisable,
	})

	// Data breakpoint commands
	db := addGroup(root, "databreakpoint", "Data breakpoint commands")
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List data breakpoints",
		Description: "List all current data breakpoints.",
		Usage:       "databreakpoint list",
		Data:        (*Host).cmdDataBreakpointList,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a data breakpoint",
		Description: "Add a new data breakpoint at the specified" +
			" memory address. When the CPU stores data at this address," +
			" the breakpoint stops the CPU. Optionally, a byte value may" +
			" be specified, and the CPU will stop only when this value is" +
			" stored.",
		Usage: "databreakpoint add <address> [<value>]",
		Data:  (*Host).cmdDataBreakpointAdd,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a data breakpoint",
		Description: "Remove a data breakpoint at the specified address.",
		Usage:       "databreakpoint remove <address>",
		Data:        (*Host).cmdDataBreakpointRemove,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a data breakpoint",
		Description: "Enable a previously added data breakpoint.",
		Usage:       "databreakpoint enable <address>",
		Data:        (*Host).cmdDataBreakpointEnable,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:        "disable",
		Brief:       "Disable a data breakpoint",
		Description: "Disable a previously added data breakpoint.",
		Usage:       "databreakpoint disable <address>",
		Data:        (*Host).cmdDataBreakpointDisable,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble code",
		Description: "Disassemble machine code starting at the requested" +
			" address. The number of instruction lines to disassemble may be" +
			" specified as an option. If no address is specified, the" +
			" disassembly continues from where the last disassembly left off.",
		Usage: "disassemble [<address>] [<lines>]",
		Data:  (*Host).cmdDisassemble,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "graph",
		Brief: "Graph the CPU state",
		Description: "Write the CPU registers and all breakpoints to a file" +
			" as a Graphviz dot graph.",
		Usage: "graph <filename>",
		Data:  (*Host).cmdGraph,
	})

	// Interrupt commands
	in := addGroup(root, "interrupt", "Interrupt commands")
	addCommand(in, "interrupt", cmd.CommandDescriptor{
		Name:  "irq",
		Brief: "Raise the IRQ line",
		Description: "Raise the maskable interrupt line. The interrupt is" +
			" serviced before the next instruction once the I flag is clear.",
		Usage: "interrupt irq",
		Data:  (*Host).cmdInterruptIRQ,
	})
	addCommand(in, "interrupt", cmd.CommandDescriptor{
		Name:        "nmi",
		Brief:       "Signal a non-maskable interrupt",
		Description: "Latch a non-maskable interrupt. It is serviced before the next instruction.",
		Usage:       "interrupt nmi",
		Data:        (*Host).cmdInterruptNMI,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "load",
		Brief: "Load a binary file",
		Description: "Load the contents of a binary file into memory at" +
			" the specified address, point the reset vector at it unless the" +
			" file supplies its own, and reset the CPU.",
		Usage: "load <filename> <address>",
		Data:  (*Host).cmdLoad,
	})

	// Memory commands
	me := addGroup(root, "memory", "Memory commands")
	addCommand(me, "memory", cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Dump the contents of memory starting from the" +
			" specified address. The number of bytes to dump may be" +
			" specified as an option. If no address is specified, the" +
			" dump continues from where the last dump left off.",
		Usage: "memory dump [<address>] [<bytes>]",
		Data:  (*Host).cmdMemoryDump,
	})
	addCommand(me, "memory", cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set memory at address",
		Description: "Set the contents of memory starting from the specified" +
			" address. The values to assign should be a series of" +
			" space-separated byte values. PRG ROM may be patched this way.",
		Usage: "memory set <address> <byte> [<byte> ...]",
		Data:  (*Host).cmdMemorySet,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "registers",
		Brief:       "Display register contents",
		Description: "Display the current contents of all CPU registers, and disassemble the instruction at the current program counter address.",
		Usage:       "registers",
		Data:        (*Host).cmdRegisters,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "reset",
		Brief:       "Reset the CPU",
		Description: "Reset the CPU, loading the program counter from the reset vector at $FFFC.",
		Usage:       "reset",
		Data:        (*Host).cmdReset,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "run",
		Brief: "Run the CPU",
		Description: "Run the CPU until a breakpoint is hit, an undefined" +
			" opcode is reached or until the user types Ctrl-C. If an" +
			" address is given, execution starts there.",
		Usage: "run [<address>]",
		Data:  (*Host).cmdRun,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable or CPU" +
			" register. To see the current values of all configuration" +
			" variables, type set without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})

	// Step commands
	st := addGroup(root, "step", "Step the CPU")
	addCommand(st, "step", cmd.CommandDescriptor{
		Name:  "in",
		Brief: "Step into next instruction",
		Description: "Step the CPU by a single instruction. If the" +
			" instruction is a subroutine call, step into the subroutine." +
			" The number of steps may be specified as an option.",
		Usage: "step in [<count>]",
		Data:  (*Host).cmdStepIn,
	})
	addCommand(st, "step", cmd.CommandDescriptor{
		Name:  "over",
		Brief: "Step over next instruction",
		Description: "Step the CPU by a single instruction. If the" +
			" instruction is a subroutine call, step over the subroutine." +
			" The number of steps may be specified as an option.",
		Usage: "step over [<count>]",
		Data:  (*Host).cmdStepOver,
	})

	// Trace commands
	tr := addGroup(root, "trace", "Execution trace commands")
	addCommand(tr, "trace", cmd.CommandDescriptor{
		Name:  "on",
		Brief: "Start tracing",
		Description: "Write a trace line for every executed instruction." +
			" Lines go to the named file, or to the file in the TraceFile" +
			" setting, or to the console.",
		Usage: "trace on [<filename>]",
		Data:  (*Host).cmdTraceOn,
	})
	addCommand(tr, "trace", cmd.CommandDescriptor{
		Name:        "off",
		Brief:       "Stop tracing",
		Description: "Stop tracing and close the trace file.",
		Usage:       "trace off",
		Data:        (*Host).cmdTraceOff,
	})

	// Add command shortcuts.
	root.AddShortcut("?", "help")
	root.AddShortcut("b", "breakpoint")
	root.AddShortcut("bp", "breakpoint")
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("db", "databreakpoint")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("dbe", "databreakpoint enable")
	root.AddShortcut("dbd", "databreakpoint disable")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("r", "registers")
	root.AddShortcut("s", "step over")
	root.AddShortcut("si", "step in")
	root.AddShortcut("so", "step over")

	cmds = root
}
