package chip8

/// Tick counts both timers down by one, stopping at zero. Hosts call it
/// at 60 Hz however many instructions they step in between.
///
func (vm *CHIP_8) Tick() {
	if vm.DT > 0 {
		vm.DT--
	}
	if vm.ST > 0 {
		vm.ST--
	}
}

/// Beeping is true while the sound timer is running. Nothing is sounded.
///
func (vm *CHIP_8) Beeping() bool {
	return vm.ST > 0
}
