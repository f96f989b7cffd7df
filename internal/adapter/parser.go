package adapter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/ropetrail/internal/model"
)

// Parse errors wrapped by ParseError.
var (
	ErrMissingField     = errors.New("missing field")
	ErrExtraField       = errors.New("unexpected extra field")
	ErrInvalidSteps     = errors.New("invalid step count")
	ErrInvalidDirection = m.ErrInvalidDirection
)

// ParseError reports a malformed command line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLine parses a single "<D> <k>" command line. lineNo is recorded on the
// command and on any returned *ParseError.
func ParseLine(line string, lineNo int) (m.Command, error) {
	text := strings.TrimRight(line, "\r\n")

	fields := strings.Split(text, " ")
	if len(fields) < 2 {
		return m.Command{}, &ParseError{Line: lineNo, Text: text, Err: ErrMissingField}
	}

	if len(fields) > 2 {
		return m.Command{}, &ParseError{Line: lineNo, Text: text, Err: ErrExtraField}
	}

	dir, err := m.ParseDirection(fields[0])
	if err != nil {
		return m.Command{}, &ParseError{Line: lineNo, Text: text, Err: err}
	}

	// ParseUint rejects signs, so "+3" and "-3" both fail here.
	steps, err := strconv.ParseUint(fields[1], 10, 31)
	if err != nil {
		return m.Command{}, &ParseError{
			Line: lineNo,
			Text: text,
			Err:  fmt.Errorf("%w: %q", ErrInvalidSteps, fields[1]),
		}
	}

	return m.Command{Direction: dir, Steps: int(steps), Line: lineNo}, nil
}
