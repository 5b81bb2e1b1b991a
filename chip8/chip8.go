package chip8

import (
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// ProgramStart is where every program image is loaded and where
	/// execution begins.
	///
	ProgramStart = 0x200

	/// MaxProgramSize is the largest program image that fits in memory.
	///
	MaxProgramSize = MemorySize - ProgramStart

	/// FontStart is the address of the first hexadecimal glyph sprite.
	///
	FontStart = 0x050

	/// Width and Height of the display in pixels.
	///
	Width  = 64
	Height = 32

	/// StackDepth is the number of return addresses the stack can hold.
	///
	StackDepth = 16
)

/// Random is the source of the random byte instruction. *rand.Rand
/// satisfies it.
///
type Random interface {
	Intn(n int) int
}

/// CHIP_8 virtual machine emulator.
///
type CHIP_8 struct {
	/// ROM is a pristine copy of the last loaded program image. It is
	/// what Reset reloads into memory.
	///
	ROM []byte

	/// Memory addressable by CHIP-8. The first 512 bytes are reserved
	/// for the interpreter and hold the font sprites at FontStart.
	///
	Memory [MemorySize]byte

	/// Video memory for CHIP-8 (64x32 cells). Each cell is 0 or 1 and
	/// pixel <x,y> is at index x + y*Width.
	///
	Video [Width * Height]byte

	/// Draw is set whenever Video changes. The host clears it after it
	/// has rendered the frame.
	///
	Draw bool

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// I is the address register.
	///
	I uint16

	/// V are the 16 virtual registers. VF doubles as the carry, borrow
	/// and collision flag.
	///
	V [16]byte

	/// Stack of return addresses and the stack pointer into it.
	///
	Stack [StackDepth]uint16
	SP    uint16

	/// DT and ST are the delay and sound timers. Both count down once
	/// per call to Tick.
	///
	DT byte
	ST byte

	/// Keys hold the current state for the 16-key pad keys.
	///
	Keys [16]bool

	/// Cycles is how many instructions have been stepped since reset.
	///
	Cycles uint64

	random Random
	logger *log.Logger
}

/// Option configures a CHIP_8 created with New.
///
type Option func(vm *CHIP_8)

/// WithRandom replaces the time seeded random source.
///
func WithRandom(rnd Random) Option {
	return func(vm *CHIP_8) {
		vm.random = rnd
	}
}

/// WithLogger sets the logger used for runtime diagnostics.
///
func WithLogger(logger *log.Logger) Option {
	return func(vm *CHIP_8) {
		vm.logger = logger
	}
}

/// New creates a CHIP-8 virtual machine with cleared state and the font
/// loaded. No program is loaded.
///
func New(opts ...Option) *CHIP_8 {
	vm := &CHIP_8{}

	for _, opt := range opts {
		opt(vm)
	}

	if vm.random == nil {
		vm.random = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}
	if vm.logger == nil {
		vm.logger = log.NewWithConfig(log.DefaultConfig())
	}

	vm.clear()

	return vm
}

/// Reset the CHIP-8 virtual machine and reload the last program.
///
func (vm *CHIP_8) Reset() {
	vm.clear()

	// reload the pristine program image
	copy(vm.Memory[ProgramStart:], vm.ROM)
}

// clear zeroes all machine state and writes the font.
func (vm *CHIP_8) clear() {
	vm.Memory = [MemorySize]byte{}
	vm.Video = [Width * Height]byte{}
	vm.V = [16]byte{}
	vm.Stack = [StackDepth]uint16{}
	vm.Keys = [16]bool{}

	// reset program counter, address register and stack pointer
	vm.PC = ProgramStart
	vm.I = 0
	vm.SP = 0

	// reset timer registers
	vm.DT = 0
	vm.ST = 0

	vm.Draw = false
	vm.Cycles = 0

	copy(vm.Memory[FontStart:], font[:])
}

/// Pixel returns true if the pixel at <x,y> is lit. Coordinates wrap.
///
func (vm *CHIP_8) Pixel(x, y int) bool {
	x &= Width - 1
	y &= Height - 1

	return vm.Video[x+y*Width] != 0
}
