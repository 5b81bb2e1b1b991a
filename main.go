package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/chip8vm/chip8/chip8"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(emulate(os.Args))
}

// emulate runs the ROM named on the command line and returns the process
// exit status.
func emulate(args []string) int {
	opts, err := parseFlags(args[0], args[1:])
	if err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage(os.Stderr)
		}
		return 1
	}

	logger := createLogger(opts)

	// create a new CHIP-8 virtual machine with the ROM loaded
	vm, err := chip8.LoadFile(opts.ROM, chip8.WithLogger(logger))
	if err != nil {
		logger.Error("Loading ROM failed", log.Err(err))

		if !opts.Term {
			dialog.Message("%s", err).Title("CHIP-8").Error()
		}
		return 1
	}

	if opts.Statsview {
		launchStatsview(logger)
	}

	fe, err := newFrontend(opts)
	if err != nil {
		logger.Error("Opening display failed", log.Err(err))
		return 1
	}
	defer fe.Close()

	// loop until window closed or user quit
	if err := run(app.Context(), vm, fe, opts.Speed); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		return 1
	}

	return 0
}

// newFrontend opens the display the options select.
func newFrontend(opts Options) (frontend, error) {
	if opts.Term {
		return newTermFrontend()
	}
	return newSDLFrontend(opts.Scale)
}
