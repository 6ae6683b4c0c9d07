// This file is part of Emulate6502.
//
// Emulate6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emulate6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emulate6502.  If not, see <https://www.gnu.org/licenses/>.

package monitor

// monitor keywords.
const (
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
	cmdReset = "RESET"

	cmdStep  = "STEP"
	cmdRun   = "RUN"
	cmdCont  = "CONT"
	cmdBreak = "BREAK"
	cmdClear = "CLEAR"

	cmdCPU    = "CPU"
	cmdLast   = "LAST"
	cmdCycles = "CYCLES"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdLoad   = "LOAD"
	cmdBank   = "BANK"
	cmdMemMap = "MEMMAP"
	cmdVideo  = "VIDEO"
	cmdLog    = "LOG"

	cmdSpeed  = "SPEED"
	cmdJmpBug = "JMPBUG"
	cmdMemviz = "MEMVIZ"
)

// the arguments accepted by each command. shown by the HELP command.
var commandTemplate = map[string]string{
	cmdHelp:  "[command]",
	cmdQuit:  "",
	cmdReset: "",

	cmdStep:  "[count]",
	cmdRun:   "address [max instructions]",
	cmdCont:  "[max instructions]",
	cmdBreak: "[address]",
	cmdClear: "",

	cmdCPU:    "",
	cmdLast:   "",
	cmdCycles: "",
	cmdPeek:   "address [count]",
	cmdPoke:   "address value [value...]",
	cmdLoad:   "filename address",
	cmdBank:   "[bank]",
	cmdMemMap: "",
	cmdVideo:  "",
	cmdLog:    "[count]",

	cmdSpeed:  "[multiplier]",
	cmdJmpBug: "[on|off]",
	cmdMemviz: "filename",
}

var helps = map[string]string{
	cmdHelp:  "Lists commands and provides help for individual commands",
	cmdQuit:  "Exits the monitor",
	cmdReset: "Resets the CPU. The PC is loaded from the reset vector",

	cmdStep:  "Executes the next instruction or the specified number of instructions",
	cmdRun:   "Runs until the PC reaches the address. The PC is only checked between instructions",
	cmdCont:  "Runs until a breakpoint is reached or until interrupted",
	cmdBreak: "Adds a breakpoint at the address or lists current breakpoints",
	cmdClear: "Removes all breakpoints",

	cmdCPU:    "Displays the current state of the CPU",
	cmdLast:   "Displays the result of the most recent instruction",
	cmdCycles: "Displays the number of cycles consumed since the last reset",
	cmdPeek:   "Inspects memory. Addresses are routed through the bus",
	cmdPoke:   "Modifies memory. Writes to read-only devices are ignored",
	cmdLoad:   "Loads a file into memory. In the micro layout, loading to the ROM origin adds a new ROM bank",
	cmdBank:   "Selects the ROM bank or displays the current bank. Micro layout only",
	cmdMemMap: "Displays the devices attached to the bus",
	cmdVideo:  "Displays the state of the video system. Micro layout only",
	cmdLog:    "Displays the most recent log entries",

	cmdSpeed:  "Sets or displays the speed multiplier used when running",
	cmdJmpBug: "Turns emulation of the indirect JMP bug on or off",
	cmdMemviz: "Writes a graphviz diagram of the CPU structure to the named file",
}

// the minimum and maximum number of arguments for each command. a maximum of
// -1 means there is no limit.
var commandArgs = map[string][2]int{
	cmdHelp:  {0, 1},
	cmdQuit:  {0, 0},
	cmdReset: {0, 0},

	cmdStep:  {0, 1},
	cmdRun:   {1, 2},
	cmdCont:  {0, 1},
	cmdBreak: {0, 1},
	cmdClear: {0, 0},

	cmdCPU:    {0, 0},
	cmdLast:   {0, 0},
	cmdCycles: {0, 0},
	cmdPeek:   {1, 2},
	cmdPoke:   {2, -1},
	cmdLoad:   {2, 2},
	cmdBank:   {0, 1},
	cmdMemMap: {0, 0},
	cmdVideo:  {0, 0},
	cmdLog:    {0, 1},

	cmdSpeed:  {0, 1},
	cmdJmpBug: {0, 1},
	cmdMemviz: {1, 1},
}
