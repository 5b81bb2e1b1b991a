package main

import (
	"context"
	"time"

	"github.com/chip8vm/chip8/chip8"
)

/// frameRate is how often input is polled, timers tick and the screen is
/// refreshed.
///
const frameRate = 60

/// frontend is a display and keyboard the CHIP-8 is presented on.
///
type frontend interface {
	/// ProcessEvents maps host input onto the keypad. It returns false
	/// once the user has asked to quit.
	///
	ProcessEvents(vm *chip8.CHIP_8) bool

	/// Render presents the video memory.
	///
	Render(vm *chip8.CHIP_8) error

	Close()
}

// frame runs one 60 Hz frame: input, speed instructions, a timer tick and
// a redraw when video memory changed.
func frame(vm *chip8.CHIP_8, fe frontend, speed int) (bool, error) {
	if !fe.ProcessEvents(vm) {
		return false, nil
	}

	for i := 0; i < speed; i++ {
		vm.Step()
	}

	vm.Tick()

	if vm.Draw {
		if err := fe.Render(vm); err != nil {
			return false, err
		}
		vm.Draw = false
	}

	return true, nil
}

// run drives frames until the frontend quits or ctx is cancelled.
func run(ctx context.Context, vm *chip8.CHIP_8, fe frontend, speed int) error {
	video := time.NewTicker(time.Second / frameRate)
	defer video.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-video.C:
			ok, err := frame(vm, fe, speed)
			if err != nil || !ok {
				return err
			}
		}
	}
}
