// Package adapter contains the infrastructure adapters of the ropetrail CLI.
package adapter

import (
	"bufio"
	"fmt"
	"os"

	m "github.com/mouse-blink/ropetrail/internal/model"
)

// CommandFunc receives each parsed command in file order. Returning an error
// stops the scan and the error is passed back to the caller of Scan.
type CommandFunc func(cmd m.Command) error

// CommandSource hides file access from the domain layer so simulations can be
// driven from tests without touching the disk.
type CommandSource interface {
	// Scan streams the commands of the file at path to fn, one line at a time.
	Scan(path m.Path, fn CommandFunc) error

	// Load reads every command of the file at path.
	Load(path m.Path) ([]m.Command, error)
}

// LocalCommandSource reads commands from the local file system.
type LocalCommandSource struct{}

// NewLocalCommandSource constructs a LocalCommandSource.
func NewLocalCommandSource() *LocalCommandSource {
	return &LocalCommandSource{}
}

// Scan opens path once for buffered reading and parses it line by line.
func (s *LocalCommandSource) Scan(path m.Path, fn CommandFunc) error {
	file, err := os.Open(string(path))
	if err != nil {
		return fmt.Errorf("open commands: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		cmd, err := ParseLine(scanner.Text(), lineNo)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		if err := fn(cmd); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// Load collects all commands of the file at path.
func (s *LocalCommandSource) Load(path m.Path) ([]m.Command, error) {
	var commands []m.Command

	err := s.Scan(path, func(cmd m.Command) error {
		commands = append(commands, cmd)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return commands, nil
}
