// Package opener shows a file to the user in their editor, or in the
// operating system's default application when no editor is configured.
package opener

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/browser"
)

// Opener opens files for the user.
type Opener interface {
	Open(path string) error
}

// Editor opens files with an editor command, e.g. "code --wait" or "vim".
// An empty Command uses the system default application.
type Editor struct {
	Command string

	run      func(name string, args ...string) error
	openFile func(path string) error
}

// New returns an Editor for command.
func New(command string) *Editor {
	return &Editor{Command: command}
}

// Open opens path and waits for the editor to exit when one is configured.
func (e *Editor) Open(path string) error {
	fields := strings.Fields(e.Command)
	if len(fields) == 0 {
		open := e.openFile
		if open == nil {
			open = browser.OpenFile
		}
		if err := open(path); err != nil {
			return fmt.Errorf("opening %s with the default application: %w", path, err)
		}
		return nil
	}

	run := e.run
	if run == nil {
		run = runAttached
	}
	args := append(fields[1:], path)
	if err := run(fields[0], args...); err != nil {
		return fmt.Errorf("opening %s with %s: %w", path, fields[0], err)
	}
	return nil
}

func runAttached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
