// terminal_step.go - interactive single-step keypress prompt

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// StepPrompt puts stdin into raw mode so -s/--step can pause for a single
// keypress between instructions without requiring Enter. Any key continues;
// 'q' or Ctrl-C stops the run.
type StepPrompt struct {
	fd       int
	oldState *term.State
}

func NewStepPrompt() (*StepPrompt, error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal_step: %w", err)
	}
	return &StepPrompt{fd: fd, oldState: old}, nil
}

// WaitForKey blocks for one keypress and reports whether the run should
// continue (false on 'q' or Ctrl-C).
func (s *StepPrompt) WaitForKey() bool {
	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil {
		return false
	}
	switch buf[0] {
	case 'q', 0x03:
		return false
	default:
		return true
	}
}

func (s *StepPrompt) Close() error {
	return term.Restore(s.fd, s.oldState)
}
