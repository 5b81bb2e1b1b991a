package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

/// Clear the video display memory.
///
func (vm *CHIP_8) cls(op opcode) {
	for i := range vm.Video {
		vm.Video[i] = 0
	}

	vm.Draw = true
	vm.next()
}

/// return from subroutine.
///
func (vm *CHIP_8) ret(op opcode) {
	if vm.SP == 0 {
		vm.stackFault("Stack underflow", op)
		return
	}

	// restore program counter to the call site
	vm.SP--
	vm.PC = vm.Stack[vm.SP]

	// and continue after it
	vm.next()
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(op opcode) {
	if vm.SP == StackDepth {
		vm.stackFault("Stack overflow", op)
		return
	}

	// push program counter onto stack
	vm.Stack[vm.SP] = vm.PC
	vm.SP++

	// jump to address
	vm.PC = op.nnn()
}

// stackFault logs a call or return the stack cannot honour and skips it.
func (vm *CHIP_8) stackFault(msg string, op opcode) {
	vm.logger.Error(msg,
		log.Hex("opcode", uint16(op)),
		log.Hex("address", vm.PC),
		log.Uint16("sp", vm.SP))

	vm.next()
}

/// jump to address.
///
func (vm *CHIP_8) jump(op opcode) {
	vm.PC = op.nnn()
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(op opcode) {
	vm.PC = op.nnn() + uint16(vm.V[0])
}

/// skip next instruction if vx == n.
///
func (vm *CHIP_8) skipIf(op opcode) {
	vm.skip(vm.V[op.x()] == op.kk())
}

/// skip next instruction if vx != n.
///
func (vm *CHIP_8) skipIfNot(op opcode) {
	vm.skip(vm.V[op.x()] != op.kk())
}

/// skip next instruction if vx == vy.
///
func (vm *CHIP_8) skipIfXY(op opcode) {
	if op.n() != 0 {
		vm.unknown(op)
		return
	}

	vm.skip(vm.V[op.x()] == vm.V[op.y()])
}

/// skip next instruction if vx != vy.
///
func (vm *CHIP_8) skipIfNotXY(op opcode) {
	if op.n() != 0 {
		vm.unknown(op)
		return
	}

	vm.skip(vm.V[op.x()] != vm.V[op.y()])
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *CHIP_8) skipIfPressed(op opcode) {
	vm.skip(vm.Keys[vm.V[op.x()]&0xF])
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *CHIP_8) skipIfNotPressed(op opcode) {
	vm.skip(!vm.Keys[vm.V[op.x()]&0xF])
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(op opcode) {
	vm.V[op.x()] = op.kk()
	vm.next()
}

/// add n to vx, no carry.
///
func (vm *CHIP_8) addX(op opcode) {
	vm.V[op.x()] += op.kk()
	vm.next()
}

/// load y into vx.
///
func (vm *CHIP_8) loadXY(op opcode) {
	vm.V[op.x()] = vm.V[op.y()]
	vm.next()
}

/// or vx with vy into vx.
///
func (vm *CHIP_8) or(op opcode) {
	vm.V[op.x()] |= vm.V[op.y()]
	vm.next()
}

/// and vx with vy into vx.
///
func (vm *CHIP_8) and(op opcode) {
	vm.V[op.x()] &= vm.V[op.y()]
	vm.next()
}

/// xor vx with vy into vx.
///
func (vm *CHIP_8) xor(op opcode) {
	vm.V[op.x()] ^= vm.V[op.y()]
	vm.next()
}

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(op opcode) {
	x, y := op.x(), op.y()
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	// the flag is written last so it wins when x is VF
	vm.V[x] = byte(sum)
	vm.V[0xF] = flag(sum > 0xFF)
	vm.next()
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *CHIP_8) subXY(op opcode) {
	x, y := op.x(), op.y()
	carry := flag(vm.V[x] >= vm.V[y])

	vm.V[x] -= vm.V[y]
	vm.V[0xF] = carry
	vm.next()
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *CHIP_8) subYX(op opcode) {
	x, y := op.x(), op.y()
	carry := flag(vm.V[y] >= vm.V[x])

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = carry
	vm.next()
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *CHIP_8) shr(op opcode) {
	x := op.x()
	carry := vm.V[x] & 1

	vm.V[x] >>= 1
	vm.V[0xF] = carry
	vm.next()
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *CHIP_8) shl(op opcode) {
	x := op.x()
	carry := vm.V[x] >> 7

	vm.V[x] <<= 1
	vm.V[0xF] = carry
	vm.next()
}

/// load address register.
///
func (vm *CHIP_8) loadI(op opcode) {
	vm.I = op.nnn()
	vm.next()
}

/// add vx to i. The result is not masked to 12 bits.
///
func (vm *CHIP_8) addIX(op opcode) {
	vm.I += uint16(vm.V[op.x()])
	vm.next()
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd(op opcode) {
	vm.V[op.x()] = byte(vm.random.Intn(0x100)) & op.kk()
	vm.next()
}

/// draw a sprite at I to video memory at vx, vy.
///
func (vm *CHIP_8) drw(op opcode) {
	x := uint16(vm.V[op.x()]) % Width
	y := uint16(vm.V[op.y()]) % Height

	c := false

	// draw each row of the sprite, wrapping every pixel
	for row := uint16(0); row < uint16(op.n()); row++ {
		s := vm.read(vm.I + row)
		py := (y + row) % Height

		for col := uint16(0); col < 8; col++ {
			if s&(0x80>>col) == 0 {
				continue
			}

			p := (x+col)%Width + py*Width

			// was a pixel turned off?
			if vm.Video[p] != 0 {
				c = true
			}

			vm.Video[p] ^= 1
		}
	}

	// set carry flag if any collision occurred
	vm.V[0xF] = flag(c)

	vm.Draw = true
	vm.next()
}

/// load delay timer into vx.
///
func (vm *CHIP_8) loadXDT(op opcode) {
	vm.V[op.x()] = vm.DT
	vm.next()
}

/// load vx into delay timer.
///
func (vm *CHIP_8) loadDTX(op opcode) {
	vm.DT = vm.V[op.x()]
	vm.next()
}

/// load vx into sound timer.
///
func (vm *CHIP_8) loadSTX(op opcode) {
	vm.ST = vm.V[op.x()]
	vm.next()
}

/// load vx with the lowest key held down. Without one the program
/// counter stays put and the instruction runs again on the next step.
///
func (vm *CHIP_8) loadXK(op opcode) {
	for k, down := range vm.Keys {
		if down {
			vm.V[op.x()] = byte(k)
			vm.next()
			return
		}
	}
}

/// load font sprite for vx into I.
///
func (vm *CHIP_8) loadF(op opcode) {
	vm.I = FontStart + uint16(vm.V[op.x()])*glyphSize
	vm.next()
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(op opcode) {
	n := uint16(vm.V[op.x()])
	b := uint16(0)

	// perform 8 shifts
	for i := uint(0); i < 8; i++ {
		if (b>>0)&0xF >= 5 {
			b += 3
		}
		if (b>>4)&0xF >= 5 {
			b += 3 << 4
		}
		if (b>>8)&0xF >= 5 {
			b += 3 << 8
		}

		// apply shift, pull next bit
		b = (b << 1) | (n >> (7 - i) & 1)
	}

	// write to memory
	vm.write(vm.I+0, byte(b>>8)&0xF)
	vm.write(vm.I+1, byte(b>>4)&0xF)
	vm.write(vm.I+2, byte(b>>0)&0xF)

	vm.next()
}

/// save registers v0..vx to I, I advances past them.
///
func (vm *CHIP_8) saveRegs(op opcode) {
	x := op.x()

	for i := uint16(0); i <= x; i++ {
		vm.write(vm.I+i, vm.V[i])
	}

	vm.I += x + 1
	vm.next()
}

/// load registers v0..vx from I, I advances past them.
///
func (vm *CHIP_8) loadRegs(op opcode) {
	x := op.x()

	for i := uint16(0); i <= x; i++ {
		vm.V[i] = vm.read(vm.I + i)
	}

	vm.I += x + 1
	vm.next()
}
