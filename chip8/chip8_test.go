package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fixedRandom returns the same value for every draw.
type fixedRandom int

func (r fixedRandom) Intn(n int) int {
	return int(r) % n
}

// newTestVM creates a machine with the instruction words loaded at
// ProgramStart.
func newTestVM(t *testing.T, program ...uint16) *CHIP_8 {
	t.Helper()

	vm := New(WithLogger(log.NewTestLogger(t)), WithRandom(fixedRandom(0xFF)))

	rom := make([]byte, 0, len(program)*2)
	for _, w := range program {
		rom = append(rom, byte(w>>8), byte(w))
	}
	assert.NoError(t, vm.LoadROM(rom))

	return vm
}

func TestNew(t *testing.T) {
	vm := New(WithLogger(log.NewTestLogger(t)))

	assert.Equal(t, uint16(ProgramStart), vm.PC)
	assert.Equal(t, uint16(0), vm.I)
	assert.Equal(t, uint16(0), vm.SP)
	assert.Equal(t, byte(0), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
	assert.False(t, vm.Draw)
	assert.Equal(t, [16]byte{}, vm.V)
	assert.Equal(t, [16]bool{}, vm.Keys)
	assert.Equal(t, [Width * Height]byte{}, vm.Video)
	assert.NotNil(t, vm.random)

	// font sprites sit at 0x050, everything else is zero
	for i, b := range vm.Memory {
		switch {
		case i >= FontStart && i < FontStart+len(font):
			assert.Equal(t, font[i-FontStart], b)
		default:
			assert.Equal(t, byte(0), b)
		}
	}

	assert.Equal(t, byte(0xF0), vm.Memory[0x050])
	assert.Equal(t, byte(0x80), vm.Memory[0x09F])
}

func TestInstancesAreIndependent(t *testing.T) {
	a := newTestVM(t, 0x6A42)
	b := newTestVM(t, 0x6A17)

	a.Step()
	b.Step()

	assert.Equal(t, byte(0x42), a.V[0xA])
	assert.Equal(t, byte(0x17), b.V[0xA])
}

func TestReset(t *testing.T) {
	vm := newTestVM(t, 0x6A42, 0x00E0)

	vm.Step()
	vm.Step()
	vm.PressKey(3)
	vm.DT = 9

	vm.Reset()

	assert.Equal(t, uint16(ProgramStart), vm.PC)
	assert.Equal(t, byte(0), vm.V[0xA])
	assert.Equal(t, byte(0), vm.DT)
	assert.False(t, vm.Keys[3])
	assert.False(t, vm.Draw)
	assert.Equal(t, uint64(0), vm.Cycles)

	// the program is reloaded
	assert.Equal(t, byte(0x6A), vm.Memory[ProgramStart])
	assert.Equal(t, byte(0x42), vm.Memory[ProgramStart+1])
}

func TestPixel(t *testing.T) {
	vm := newTestVM(t)

	vm.Video[3+2*Width] = 1

	assert.True(t, vm.Pixel(3, 2))
	assert.True(t, vm.Pixel(3+Width, 2+Height))
	assert.False(t, vm.Pixel(2, 3))
}

func TestKeys(t *testing.T) {
	vm := newTestVM(t)

	vm.PressKey(0xF)
	assert.True(t, vm.Keys[0xF])

	vm.ReleaseKey(0xF)
	assert.False(t, vm.Keys[0xF])

	vm.SetKey(7, true)
	assert.True(t, vm.Keys[7])

	// out of range keys are ignored
	vm.PressKey(16)
	assert.Equal(t, 1, countKeys(vm))
}

func countKeys(vm *CHIP_8) int {
	n := 0
	for _, down := range vm.Keys {
		if down {
			n++
		}
	}
	return n
}

func TestTick(t *testing.T) {
	vm := newTestVM(t)

	vm.DT = 2
	vm.ST = 1
	assert.True(t, vm.Beeping())

	vm.Tick()
	assert.Equal(t, byte(1), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
	assert.False(t, vm.Beeping())

	for i := 0; i < 300; i++ {
		vm.Tick()
	}
	assert.Equal(t, byte(0), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
}
