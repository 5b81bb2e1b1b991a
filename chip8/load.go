package chip8

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// ErrImageTooLarge is returned when a program image does not fit between
// ProgramStart and the end of memory.
var ErrImageTooLarge = errors.New("image too large")

/// LoadError describes a program image that could not be loaded. Execution
/// must not start after one.
///
type LoadError struct {
	Path string
	Size int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load program (%d bytes): %v", e.Size, e.Err)
	}
	return fmt.Sprintf("load %s (%d bytes): %v", e.Path, e.Size, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

/// LoadROM copies a program image into memory at ProgramStart. The image
/// is not validated beyond its size.
///
func (vm *CHIP_8) LoadROM(program []byte) error {
	if len(program) > MaxProgramSize {
		return &LoadError{Size: len(program), Err: ErrImageTooLarge}
	}

	// keep a pristine copy for Reset
	vm.ROM = append(vm.ROM[:0], program...)

	// clear anything left behind by a previous program
	for i := ProgramStart; i < MemorySize; i++ {
		vm.Memory[i] = 0
	}

	copy(vm.Memory[ProgramStart:], program)

	return nil
}

/// LoadFile reads a ROM file and returns a new CHIP-8 virtual machine with
/// it loaded.
///
func LoadFile(path string, opts ...Option) (*CHIP_8, error) {
	program, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	vm := New(opts...)

	if err := vm.LoadROM(program); err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}

	vm.logger.Info("Loaded ROM",
		log.String("path", path),
		log.Int("size", len(program)))

	return vm, nil
}
