package main

import (
	"context"
	"errors"
	"testing"

	"github.com/chip8vm/chip8/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fakeFrontend counts frames and quits after a fixed number of them.
type fakeFrontend struct {
	frames   int
	quitAt   int
	renders  int
	renderFn func(vm *chip8.CHIP_8) error
	closed   bool
}

func (f *fakeFrontend) ProcessEvents(vm *chip8.CHIP_8) bool {
	f.frames++
	return f.frames <= f.quitAt
}

func (f *fakeFrontend) Render(vm *chip8.CHIP_8) error {
	f.renders++
	if f.renderFn != nil {
		return f.renderFn(vm)
	}
	return nil
}

func (f *fakeFrontend) Close() {
	f.closed = true
}

func newFrontendTestVM(t *testing.T, program ...byte) *chip8.CHIP_8 {
	t.Helper()

	vm := chip8.New(chip8.WithLogger(log.NewTestLogger(t)))
	assert.NoError(t, vm.LoadROM(program))
	return vm
}

func TestFrame(t *testing.T) {
	// 200: clear screen, 202: V0 += 1, 204: jump 202
	vm := newFrontendTestVM(t, 0x00, 0xE0, 0x70, 0x01, 0x12, 0x02)
	vm.DT = 5

	fe := &fakeFrontend{quitAt: 10}

	ok, err := frame(vm, fe, 5)
	assert.NoError(t, err)
	assert.True(t, ok)

	// cls, then two passes through the loop
	assert.Equal(t, byte(2), vm.V[0])
	assert.Equal(t, byte(4), vm.DT)
	assert.Equal(t, 1, fe.renders)
	assert.False(t, vm.Draw)

	// nothing drawn, nothing rendered
	ok, err = frame(vm, fe, 5)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, fe.renders)
	assert.Equal(t, byte(3), vm.DT)
}

func TestFrameQuit(t *testing.T) {
	vm := newFrontendTestVM(t, 0x70, 0x01)
	fe := &fakeFrontend{quitAt: 0}

	ok, err := frame(vm, fe, 5)
	assert.NoError(t, err)
	assert.False(t, ok)

	// no instruction ran
	assert.Equal(t, uint64(0), vm.Cycles)
}

func TestFrameRenderError(t *testing.T) {
	vm := newFrontendTestVM(t, 0x00, 0xE0)
	fail := errors.New("lost display")
	fe := &fakeFrontend{quitAt: 1, renderFn: func(*chip8.CHIP_8) error { return fail }}

	ok, err := frame(vm, fe, 1)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, fail))

	// the frame is still pending
	assert.True(t, vm.Draw)
}

func TestRun(t *testing.T) {
	vm := newFrontendTestVM(t, 0x12, 0x00)
	fe := &fakeFrontend{quitAt: 3}

	assert.NoError(t, run(context.Background(), vm, fe, 2))
	assert.Equal(t, 4, fe.frames)
	assert.Equal(t, uint64(6), vm.Cycles)
}

func TestRunCancelled(t *testing.T) {
	vm := newFrontendTestVM(t, 0x12, 0x00)
	fe := &fakeFrontend{quitAt: 1 << 30}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, vm, fe, 2))
}
