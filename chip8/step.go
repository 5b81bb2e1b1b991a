package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

/// opcode is a single 16-bit instruction word. Operand accessors follow
/// the usual nnn, n, x, y, kk naming.
///
type opcode uint16

// 12-bit address operand
func (op opcode) nnn() uint16 { return uint16(op) & 0xFFF }

// byte and nibble operands
func (op opcode) kk() byte { return byte(op) }
func (op opcode) n() byte { return byte(op) & 0xF }

// x and y register operands
func (op opcode) x() uint16 { return uint16(op) >> 8 & 0xF }
func (op opcode) y() uint16 { return uint16(op) >> 4 & 0xF }

// handler executes one decoded instruction and is responsible for
// advancing the program counter.
type handler func(vm *CHIP_8, op opcode)

// families dispatches on the high nibble of the opcode.
var families = [16]handler{
	0x0: (*CHIP_8).system,
	0x1: (*CHIP_8).jump,
	0x2: (*CHIP_8).call,
	0x3: (*CHIP_8).skipIf,
	0x4: (*CHIP_8).skipIfNot,
	0x5: (*CHIP_8).skipIfXY,
	0x6: (*CHIP_8).loadX,
	0x7: (*CHIP_8).addX,
	0x8: (*CHIP_8).arithmetic,
	0x9: (*CHIP_8).skipIfNotXY,
	0xA: (*CHIP_8).loadI,
	0xB: (*CHIP_8).jumpV0,
	0xC: (*CHIP_8).rnd,
	0xD: (*CHIP_8).drw,
	0xE: (*CHIP_8).keys,
	0xF: (*CHIP_8).misc,
}

// system instructions are matched on the whole opcode.
var systemOps = map[opcode]handler{
	0x00E0: (*CHIP_8).cls,
	0x00EE: (*CHIP_8).ret,
}

// 8xyN register-register instructions, indexed by N.
var arithmeticOps = [16]handler{
	0x0: (*CHIP_8).loadXY,
	0x1: (*CHIP_8).or,
	0x2: (*CHIP_8).and,
	0x3: (*CHIP_8).xor,
	0x4: (*CHIP_8).addXY,
	0x5: (*CHIP_8).subXY,
	0x6: (*CHIP_8).shr,
	0x7: (*CHIP_8).subYX,
	0xE: (*CHIP_8).shl,
}

// ExNN key instructions, indexed by the low byte.
var keyOps = map[byte]handler{
	0x9E: (*CHIP_8).skipIfPressed,
	0xA1: (*CHIP_8).skipIfNotPressed,
}

// FxNN instructions, indexed by the low byte.
var miscOps = map[byte]handler{
	0x07: (*CHIP_8).loadXDT,
	0x0A: (*CHIP_8).loadXK,
	0x15: (*CHIP_8).loadDTX,
	0x18: (*CHIP_8).loadSTX,
	0x1E: (*CHIP_8).addIX,
	0x29: (*CHIP_8).loadF,
	0x33: (*CHIP_8).loadB,
	0x55: (*CHIP_8).saveRegs,
	0x65: (*CHIP_8).loadRegs,
}

/// Step the CHIP-8 virtual machine a single instruction. Unknown opcodes
/// are logged and skipped.
///
func (vm *CHIP_8) Step() {
	op := vm.fetch()

	vm.logger.Debug("Step",
		log.Hex("address", vm.PC),
		log.Hex("opcode", uint16(op)))

	families[op>>12](vm, op)

	// increment the cycle count
	vm.Cycles++
}

/// Fetch the 16-bit instruction at the program counter, high byte first.
///
func (vm *CHIP_8) fetch() opcode {
	return opcode(vm.read(vm.PC))<<8 | opcode(vm.read(vm.PC+1))
}

// read a byte of memory, wrapping the address.
func (vm *CHIP_8) read(address uint16) byte {
	return vm.Memory[address&(MemorySize-1)]
}

// write a byte of memory, wrapping the address.
func (vm *CHIP_8) write(address uint16, b byte) {
	vm.Memory[address&(MemorySize-1)] = b
}

// next advances to the following instruction.
func (vm *CHIP_8) next() {
	vm.PC += 2
}

// skip the following instruction when cond holds.
func (vm *CHIP_8) skip(cond bool) {
	if cond {
		vm.PC += 4
	} else {
		vm.PC += 2
	}
}

// dispatch to a secondary table entry, nil entries are unknown.
func (vm *CHIP_8) dispatch(op opcode, h handler) {
	if h == nil {
		vm.unknown(op)
		return
	}
	h(vm, op)
}

func (vm *CHIP_8) system(op opcode) {
	vm.dispatch(op, systemOps[op])
}

func (vm *CHIP_8) arithmetic(op opcode) {
	vm.dispatch(op, arithmeticOps[op.n()])
}

func (vm *CHIP_8) keys(op opcode) {
	vm.dispatch(op, keyOps[op.kk()])
}

func (vm *CHIP_8) misc(op opcode) {
	vm.dispatch(op, miscOps[op.kk()])
}

/// unknown opcodes are not fatal. The instruction is treated as a no-op.
///
func (vm *CHIP_8) unknown(op opcode) {
	vm.logger.Error("Unknown opcode",
		log.Hex("opcode", uint16(op)),
		log.Hex("address", vm.PC))

	vm.next()
}

// flag converts a condition to the 0 or 1 stored in VF.
func flag(cond bool) byte {
	if cond {
		return 1
	}
	return 0
}
