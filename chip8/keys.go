package chip8

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *CHIP_8) PressKey(key uint) {
	vm.SetKey(key, true)
}

/// ReleaseKey emulates a CHIP-8 key being released.
///
func (vm *CHIP_8) ReleaseKey(key uint) {
	vm.SetKey(key, false)
}

// SetKey sets the state of one of the 16 keypad keys. Keys outside 0-F
// are ignored.
func (vm *CHIP_8) SetKey(key uint, down bool) {
	if key < 16 {
		vm.Keys[key] = down
	}
}
