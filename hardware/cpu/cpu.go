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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/emulate6502/hardware/cpu/execution"
	"github.com/jetsetilly/emulate6502/hardware/cpu/instructions"
	"github.com/jetsetilly/emulate6502/hardware/cpu/registers"
	"github.com/jetsetilly/emulate6502/hardware/instance"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/logger"
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8  registers.Register
	acc16 registers.ProgramCounter

	mem          bus.Memory
	instructions []*instructions.Definition

	// last result. the address field is guaranteed to be valid except when
	// the CPU has just been reset
	LastResult execution.Result

	// the number of cycles consumed since the last reset
	ElapsedCycles uint64

	// whether the last memory access by the CPU was a phantom access
	PhantomMemAccess bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil, in which case the CPU runs with the default
// preferences and without logging.
//
// Note that the registers are not initialised until Reset() is called.
func NewCPU(instance *instance.Instance, mem bus.Memory) *CPU {
	return &CPU{
		instance:     instance,
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		acc16:        registers.NewProgramCounter(0),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new Memory implementation into the CPU.
func (mc *CPU) Plumb(mem bus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the address found
// in the reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.ElapsedCycles = 0
	mc.PhantomMemAccess = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.PC.Load(bus.Vector(mc.mem, bus.Reset))

	mc.logf("reset: %s", mc)
}

// LoadPC loads the contents of directAddress into the PC. Useful for starting
// execution somewhere other than the address in the reset vector.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// the indirect JMP bug is only emulated if the preference says so
func (mc *CPU) jmpIndirectBug() bool {
	if mc.instance == nil || mc.instance.Prefs == nil {
		return false
	}
	return mc.instance.Prefs.JmpIndirectBug.Get().(bool)
}

func (mc *CPU) logging() bool {
	return mc.instance != nil && mc.instance.Log != logger.Discard
}

func (mc *CPU) logf(pattern string, args ...any) {
	if !mc.logging() {
		return
	}
	mc.instance.Log.Logf(logger.Allow, "cpu", pattern, args...)
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - counts one cycle
func (mc *CPU) read8Bit(address uint16, phantom bool) uint8 {
	mc.PhantomMemAccess = phantom
	val := mc.mem.Read(address)

	// +1 cycle
	mc.LastResult.Cycles++

	return val
}

// write8Bit writes 8 bits to the specified address. there are no side effects
// on the state of the CPU which means that the cycle must be counted by the
// calling function as appropriate.
func (mc *CPU) write8Bit(address uint16, value uint8, phantom bool) {
	mc.PhantomMemAccess = phantom
	mc.mem.Write(address, value)
}

// read16Bit returns 16bit value from the specified address
//
// side-effects:
//   - counts one cycle for each 8bit read
func (mc *CPU) read16Bit(address uint16) uint16 {
	// +1 cycle
	lo := mc.read8Bit(address, false)

	// +1 cycle
	hi := mc.read8Bit(address+1, false)

	return (uint16(hi) << 8) | uint16(lo)
}

// readZeroPagePointer returns the 16bit value stored at the zero page address.
// the high byte is read from the next zero page address, wrapping around to
// the start of the zero page if necessary
//
// side-effects:
//   - counts one cycle for each 8bit read
func (mc *CPU) readZeroPagePointer(address uint8) uint16 {
	// +1 cycle
	lo := mc.read8Bit(uint16(address), false)

	// +1 cycle
	hi := mc.read8Bit(uint16(address+1), false)

	return (uint16(hi) << 8) | uint16(lo)
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - counts one cycle
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) {
	v := mc.mem.Read(mc.PC.Address())
	mc.PhantomMemAccess = false

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// the BRK command causes the PC to advance by two but we don't want
		// to record that the additional byte has been read
		mc.LastResult.ByteCount--

	case newOpcode:
		// a nil definition is an undocumented opcode
		mc.LastResult.OpCode = v
		mc.LastResult.Defn = mc.instructions[v]

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	mc.LastResult.Cycles++
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - counts one cycle for each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field
func (mc *CPU) read16BitPC() {
	// +1 cycle
	mc.read8BitPC(loNibble)

	// +1 cycle
	mc.read8BitPC(hiNibble)
}

// push writes the value to the stack and decrements the stack pointer. the
// stack pointer wraps around inside the stack page
//
// side-effects:
//   - counts one cycle
func (mc *CPU) push(value uint8) {
	mc.write8Bit(mc.SP.Address(), value, false)
	mc.SP.Decrement()

	// +1 cycle
	mc.LastResult.Cycles++
}

// pull increments the stack pointer and returns the value found at the new
// stack address. the stack pointer wraps around inside the stack page
//
// side-effects:
//   - counts one cycle
func (mc *CPU) pull() uint8 {
	mc.SP.Increment()

	// +1 cycle
	return mc.read8Bit(mc.SP.Address(), false)
}

// an internal operation of the CPU that takes a cycle but does not access
// memory
func (mc *CPU) internalCycle() {
	// +1 cycle
	mc.LastResult.Cycles++
}

func (mc *CPU) branch(flag bool, address uint16) {
	// in the case of branching (relative addressing) we've read an 8bit value
	// rather than a 16bit value to use as the "address". because we'll
	// sometimes be doing subtractions with this value we need to make sure
	// the sign bit of the 8bit value has been propagated into the
	// most-significant bits of the 16bit value.
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	// note branching result
	mc.LastResult.BranchSuccess = flag

	if !flag {
		return
	}

	// note current PC for reference
	oldPC := mc.PC.Address()

	// phantom read
	// +1 cycle
	_ = mc.read8Bit(mc.PC.Address(), true)

	// add full (sign extended) 16bit address to PC and note whether a page
	// fault has occurred. restore the MSB of the PC using the MSB of the old
	// PC value
	mc.PC.Add(address)
	mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
	mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

	// check to see whether branching has crossed a page
	if mc.LastResult.PageFault {
		// phantom read
		// +1 cycle
		_ = mc.read8Bit(mc.PC.Address(), true)

		// correct program counter
		if address&0xff00 == 0xff00 {
			mc.PC.Add(0xff00)
		} else {
			mc.PC.Add(0x0100)
		}
	}

	mc.logf("branch taken: %#04x -> %#04x", oldPC, mc.PC.Address())
}

// Step executes the instruction pointed to by the PC and returns the number of
// cycles used. The basic process when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Documented instructions take at least 2 cycles. Undocumented opcodes take
// exactly one cycle and have no effect other than advancing the PC.
func (mc *CPU) Step() int {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	// +1 cycle
	mc.read8BitPC(newOpcode)

	defn := mc.LastResult.Defn
	if defn == nil {
		mc.logf("unknown opcode %#02x at %#04x", mc.LastResult.OpCode, mc.LastResult.Address)
		return mc.finalise()
	}

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// value is read from the program for immediate/relative mode, and from
	// non-program memory for all other modes. note that for instructions
	// which are read-modify-write, the value will change during execution and
	// be used to write back to memory (or to the accumulator)
	var value uint8

	// get address to use when reading/writing from/to memory (note that in the
	// case of immediate addressing, we are actually getting the value to use
	// in the instruction, not the address).
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes. however, the next
		// byte is read but the PC is not incremented

		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it increases the PC by two bytes despite
			// being an implied addressing instruction
			// +1 cycle
			mc.read8BitPC(brk)
		} else {
			// phantom read
			// +1 cycle
			_ = mc.read8Bit(mc.PC.Address(), true)
		}

	case instructions.Accumulator:
		// the operand is the accumulator. the next byte is read but the PC
		// is not incremented

		// phantom read
		// +1 cycle
		_ = mc.read8Bit(mc.PC.Address(), true)
		value = mc.A.Value()

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through the PC

		// +1 cycle
		mc.read8BitPC(loNibble)
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// relative addressing is only used for branch instructions, the address
		// is an offset value from the current PC position

		// most of the addressing cycles for this addressing mode are consumed
		// in the branch() function

		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			mc.read16BitPC()
			address = mc.LastResult.InstructionData
		}

		// else... for JSR, addresses are read slightly differently so we defer
		// this part of the operation to the operator switch below

	case instructions.ZeroPage:
		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command

		// +2 cycles
		mc.read16BitPC()
		indirectAddress := mc.LastResult.InstructionData

		if indirectAddress&0x00ff == 0x00ff && mc.jmpIndirectBug() {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			// +1 cycle
			lo := mc.read8Bit(indirectAddress, false)

			// in this bug path, the lower byte of the indirect address is on a
			// page boundary. because of the bug we must read high byte of JMP
			// address from the zero byte of the same page (rather than the
			// zero byte of the next page)
			// +1 cycle
			hi := mc.read8Bit(indirectAddress&0xff00, false)

			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			// +2 cycles
			address = mc.read16Bit(indirectAddress)
		}

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		mc.read8BitPC(loNibble)
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		_ = mc.read8Bit(uint16(indirectAddress), true)

		// using 8bit addition because the indexed address never extends
		// past the zero page
		mc.acc8.Load(mc.X.Value())
		mc.acc8.Add(indirectAddress, false)

		// +2 cycles
		address = mc.readZeroPagePointer(mc.acc8.Value())

		// never a page fault with pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		mc.read8BitPC(loNibble)
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// +2 cycles
		indexedAddress := mc.readZeroPagePointer(indirectAddress)

		// add index to LSB of address
		mc.acc16.Load(mc.Y.Address())
		mc.acc16.Add(indexedAddress & 0x00ff)
		address = mc.acc16.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && (address&0xff00 == 0x0100)
		if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
			// phantom read (always happens for Write and RMW)
			// +1 cycle
			_ = mc.read8Bit((indexedAddress&0xff00)|(address&0x00ff), true)
		}

		// fix MSB of address
		mc.acc16.Add(indexedAddress & 0xff00)
		address = mc.acc16.Address()

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		mc.read16BitPC()
		address = mc.indexAbsolute(defn, mc.LastResult.InstructionData, mc.X)

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		mc.read16BitPC()
		address = mc.indexAbsolute(defn, mc.LastResult.InstructionData, mc.Y)

	case instructions.ZeroPageIndexedX:
		// +2 cycles
		address = mc.indexZeroPage(mc.X)

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX ZeroPage,y and STX ZeroPage,y

		// +2 cycles
		address = mc.indexZeroPage(mc.Y)

	default:
		panic(fmt.Sprintf("cpu: unknown addressing mode for %s", defn.Operator))
	}

	// read value from memory using address found in AddressingMode switch
	// above only when:
	//
	// a) addressing mode uses an address
	//   - for immediate mode, we already have the value in lieu of an address
	//   - for accumulator mode, the value is the accumulator
	//   - for implied mode, we don't need a value
	//
	// b) instruction is Read or RMW
	//   - for write modes, we only use the address to write a value we already have
	//   - for flow modes, the use of the address is very specific
	if usesAddress(defn.AddressingMode) {
		switch defn.Effect {
		case instructions.Read:
			// +1 cycle
			value = mc.read8Bit(address, false)

		case instructions.RMW:
			// +1 cycle
			value = mc.read8Bit(address, false)

			// phantom write of the unmodified value
			// +1 cycle
			mc.write8Bit(address, value, true)
			mc.LastResult.Cycles++
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		mc.push(mc.A.Value())

	case instructions.Pla:
		// +1 cycle
		mc.internalCycle()

		// +1 cycle
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.logf("PLA: A=%s", mc.A)

	case instructions.Php:
		// the break flag is always set in the pushed value
		// +1 cycle
		mc.push(mc.Status.Value() | registers.MaskBreak)

	case instructions.Plp:
		// +1 cycle
		mc.internalCycle()

		// +1 cycle
		mc.Status.Load(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.logf("EOR: A=%s", mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.logf("ORA: A=%s", mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.logf("AND: A=%s", mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.logf("LDA: A=%s", mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()
		mc.logf("LDX: X=%s", mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()
		mc.logf("LDY: Y=%s", mc.Y)

	case instructions.Sta:
		value = mc.A.Value()

	case instructions.Stx:
		value = mc.X.Value()

	case instructions.Sty:
		value = mc.Y.Value()

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Lsr:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Rol:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Ror:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Adc:
		// decimal mode is not emulated. addition is always binary
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.logf("ADC: A=%s %s", mc.A, mc.Status)

	case instructions.Sbc:
		// decimal mode is not emulated. subtraction is always binary
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		mc.logf("SBC: A=%s %s", mc.A, mc.Status)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(value)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Jmp:
		mc.PC.Load(address)
		mc.logf("JMP: %#04x", address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// +1 cycle
		mc.read8BitPC(loNibble)

		// the current value of the PC is now the address of the last byte of
		// the JSR instruction. that's the address pushed to the stack. RTS
		// adds one to the pulled address

		// +1 cycle
		mc.internalCycle()

		// push MSB of PC onto stack, and decrement SP
		// +1 cycle
		mc.push(uint8(mc.PC.Address() >> 8))

		// push LSB of PC onto stack, and decrement SP
		// +1 cycle
		mc.push(uint8(mc.PC.Address()))

		// +1 cycle
		mc.read8BitPC(hiNibble)

		// address has been built by the calls to read8BitPC()
		//
		// we would normally do this in the addressing mode switch above.
		// however, JSR uses absolute addressing and we deliberately do
		// nothing in that switch for subroutine commands
		address = mc.LastResult.InstructionData
		mc.PC.Load(address)
		mc.logf("JSR: %#04x", address)

	case instructions.Rts:
		// +1 cycle
		mc.internalCycle()

		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()

		mc.PC.Load((uint16(hi) << 8) | uint16(lo))
		mc.PC.Add(1)

		// +1 cycle
		mc.internalCycle()

		mc.logf("RTS: %#04x", mc.PC.Address())

	case instructions.Brk:
		// push PC onto register (same effect as JSR)
		// +1 cycle
		mc.push(uint8(mc.PC.Address() >> 8))

		// +1 cycle
		mc.push(uint8(mc.PC.Address()))

		// push status register with the break flag set
		mc.Status.Break = true

		// +1 cycle
		mc.push(mc.Status.Value())

		// set the interrupt disable flag
		mc.Status.InterruptDisable = true

		// +2 cycles
		mc.PC.Load(mc.read16Bit(bus.BRK))

		mc.logf("BRK: %#04x", mc.PC.Address())

	case instructions.Rti:
		// +1 cycle
		mc.internalCycle()

		// +1 cycle
		mc.Status.Load(mc.pull())
		mc.Status.Break = false

		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		mc.logf("RTI: %#04x %s", mc.PC.Address(), mc.Status)

	default:
		panic(fmt.Sprintf("cpu: unknown operator (%s)", defn.Operator))
	}

	// write altered value back to accumulator or memory
	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(value)
	} else if usesAddress(defn.AddressingMode) {
		switch defn.Effect {
		case instructions.Write, instructions.RMW:
			// +1 cycle
			mc.write8Bit(address, value, false)
			mc.LastResult.Cycles++
		}
	}

	return mc.finalise()
}

// finalise the LastResult and return the number of cycles used
func (mc *CPU) finalise() int {
	mc.LastResult.Final = true
	mc.ElapsedCycles += uint64(mc.LastResult.Cycles)
	return mc.LastResult.Cycles
}

// usesAddress returns true if the addressing mode results in an address that
// refers to data memory
func usesAddress(mode instructions.AddressingMode) bool {
	switch mode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return false
	}
	return true
}

// indexAbsolute adds the index register to the base address. the extra cycle
// taken when the index crosses a page boundary, or when the instruction is a
// write or RMW instruction, is counted here
func (mc *CPU) indexAbsolute(defn *instructions.Definition, base uint16, index registers.Register) uint16 {
	// add index to LSB of address
	mc.acc16.Load(index.Address())
	mc.acc16.Add(base & 0x00ff)
	address := mc.acc16.Address()

	// check for page fault
	mc.LastResult.PageFault = defn.PageSensitive && (address&0xff00 == 0x0100)
	if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
		// phantom read (always happens for Write and RMW)
		// +1 cycle
		_ = mc.read8Bit((base&0xff00)|(address&0x00ff), true)
	}

	// fix MSB of address
	mc.acc16.Add(base & 0xff00)
	return mc.acc16.Address()
}

// indexZeroPage reads the zero page operand and adds the index register to it.
// the result never leaves the zero page
func (mc *CPU) indexZeroPage(index registers.Register) uint16 {
	// +1 cycle
	mc.read8BitPC(loNibble)

	// phantom read from base address before index adjustment
	// +1 cycle
	_ = mc.read8Bit(mc.LastResult.InstructionData, true)

	mc.acc8.Load(uint8(mc.LastResult.InstructionData))
	mc.acc8.Add(index.Value(), false)
	return mc.acc8.Address()
}

// compare the register with the value. the register is not changed
func (mc *CPU) compare(reg registers.Register, value uint8) {
	mc.acc8.Load(reg.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.Status.Zero = mc.acc8.IsZero()
	mc.Status.Sign = mc.acc8.IsNegative()
}
