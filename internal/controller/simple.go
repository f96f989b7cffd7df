package controller

import (
	"bytes"
	"fmt"
	"io"

	m "github.com/mouse-blink/ropetrail/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text on the cobra command's streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCommand writes the command and its step count to stderr.
func (s *SimpleUI) DisplayCommand(cmd m.Command) {
	s.errorf("line %d: %q (number of steps: %d)\n", cmd.Line, cmd.String(), cmd.Steps)
}

// DisplayResult writes the visited count as a single line to stdout.
func (s *SimpleUI) DisplayResult(visited int) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), "%d\n", visited)

	return err
}

// DisplayComparison writes "<knots> <visited>" lines to stdout.
func (s *SimpleUI) DisplayComparison(runs []m.Stats) error {
	for _, run := range runs {
		if _, err := fmt.Fprintf(s.cmd.OutOrStdout(), "%d %d\n", run.Knots, run.Visited); err != nil {
			return err
		}
	}

	return nil
}

// DisplayReport renders the summary table to stderr.
func (s *SimpleUI) DisplayReport(runs []m.Stats) error {
	_, err := io.WriteString(s.cmd.ErrOrStderr(), "\n"+renderReport(runs))

	return err
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func renderReport(runs []m.Stats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Knots", "Commands", "Steps", "Head", "Tail", "Bounds", "Visited"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, run := range runs {
		table.Append([]string{
			fmt.Sprintf("%d", run.Knots),
			fmt.Sprintf("%d", run.Commands),
			fmt.Sprintf("%d", run.Steps),
			run.Head.String(),
			run.Tail.String(),
			fmt.Sprintf("%s..%s", run.Min, run.Max),
			fmt.Sprintf("%d", run.Visited),
		})
	}

	table.Render()

	return tableBuffer.String()
}
