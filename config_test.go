package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags("chip8", []string{"-speed", "20", "-term", "games/pong.ch8"})
	assert.NoError(t, err)

	assert.Equal(t, "games/pong.ch8", opts.ROM)
	assert.Equal(t, 20, opts.Speed)
	assert.Equal(t, 10, opts.Scale)
	assert.True(t, opts.Term)
	assert.False(t, opts.Debug)
}

func TestParseFlagsUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing rom", nil},
		{"extra argument", []string{"a.ch8", "b.ch8"}},
		{"unknown flag", []string{"-turbo", "a.ch8"}},
		{"bad speed", []string{"-speed", "0", "a.ch8"}},
		{"bad scale", []string{"-scale", "-2", "a.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags("chip8", tt.args)
			assert.Error(t, err)

			var usageErr *usageError
			assert.True(t, errors.As(err, &usageErr))

			var out bytes.Buffer
			usageErr.ShowUsage(&out)
			assert.Contains(t, out.String(), "usage: chip8 [options] <rom>")
			assert.Contains(t, out.String(), "-speed")
		})
	}
}

func TestEmulateUsage(t *testing.T) {
	assert.Equal(t, 1, emulate([]string{"chip8"}))
	assert.Equal(t, 1, emulate([]string{"chip8", "-term", "does/not/exist.ch8"}))
}
