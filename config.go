package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

/// Options set on the command line.
///
type Options struct {
	/// ROM is the path of the program image to run.
	///
	ROM string

	/// Speed is how many instructions are stepped per 60 Hz frame.
	///
	Speed int

	/// Scale is the size of a CHIP-8 pixel in window pixels.
	///
	Scale int

	Term      bool
	Statsview bool
	Debug     bool
	Quiet     bool
}

// usageError is returned when the command line can't be used as given.
type usageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *usageError) Error() string {
	return e.msg
}

// ShowUsage writes the reason, if any, and the flag defaults.
func (e *usageError) ShowUsage(w io.Writer) {
	if e.msg != "" {
		fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	fmt.Fprintf(w, "usage: %s [options] <rom>\n\n", e.flags.Name())

	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
}

// parseFlags reads the options and the single ROM path argument.
func parseFlags(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	flags.IntVar(&opts.Speed, "speed", 10, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Scale, "scale", 10, "window pixels per CHIP-8 pixel")
	flags.BoolVar(&opts.Term, "term", false, "run in the terminal instead of a window")
	flags.BoolVar(&opts.Statsview, "statsview", false, "serve runtime statistics at http://"+statsviewAddress+statsviewPath)
	flags.BoolVar(&opts.Debug, "debug", false, "log every executed instruction")
	flags.BoolVar(&opts.Quiet, "q", false, "only log errors")

	if err := flags.Parse(args); err != nil {
		return opts, &usageError{flags: flags, msg: err.Error()}
	}

	switch flags.NArg() {
	case 0:
		return opts, &usageError{flags: flags, msg: "no ROM given"}
	case 1:
		opts.ROM = flags.Arg(0)
	default:
		return opts, &usageError{flags: flags, msg: fmt.Sprintf("expected one ROM, got %d arguments", flags.NArg())}
	}

	if opts.Speed < 1 {
		return opts, &usageError{flags: flags, msg: "speed must be at least 1"}
	}
	if opts.Scale < 1 {
		return opts, &usageError{flags: flags, msg: "scale must be at least 1"}
	}

	return opts, nil
}

// createLogger creates a logger with the level the options ask for.
func createLogger(opts Options) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
