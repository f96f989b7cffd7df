package model

import (
	"errors"
	"fmt"
)

// Direction is the way the head moves for one command.
type Direction string

const (
	// Up moves the head towards positive y.
	Up Direction = "U"
	// Down moves the head towards negative y.
	Down Direction = "D"
	// Left moves the head towards negative x.
	Left Direction = "L"
	// Right moves the head towards positive x.
	Right Direction = "R"
)

// ErrInvalidDirection is returned for a direction letter other than U, D, L or R.
var ErrInvalidDirection = errors.New("invalid direction")

// ParseDirection converts a single direction letter into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down, Left, Right:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Delta returns the unit vector for the direction. An unknown direction
// yields the zero vector.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{Y: 1}
	case Down:
		return Position{Y: -1}
	case Left:
		return Position{X: -1}
	case Right:
		return Position{X: 1}
	default:
		return Position{}
	}
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Command moves the head Steps unit steps in Direction.
type Command struct {
	Direction Direction
	Steps     int
	Line      int // 1-based input line, 0 when built in code
}

// String renders the command in its input form, e.g. "R 4".
func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Direction, c.Steps)
}

// Reverse returns the commands that walk the head back along the same path:
// order reversed and every direction negated.
func Reverse(commands []Command) []Command {
	reversed := make([]Command, 0, len(commands))
	for i := len(commands) - 1; i >= 0; i-- {
		c := commands[i]
		reversed = append(reversed, Command{Direction: c.Direction.Opposite(), Steps: c.Steps})
	}

	return reversed
}
