package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/ropetrail/internal/model"
	"github.com/spf13/cobra"
)

var (
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	stepsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Bold(true).
		Padding(0, 1)
)

// StyledUI decorates diagnostics with lipgloss styles for interactive
// terminals. Results on stdout are identical to SimpleUI.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayCommand writes a colored trace line to stderr.
func (s *StyledUI) DisplayCommand(cmd m.Command) {
	s.errorf("%s %s %s\n",
		lineStyle.Render(fmt.Sprintf("%4d", cmd.Line)),
		dirStyle.Render(string(cmd.Direction)),
		stepsStyle.Render(fmt.Sprintf("%d", cmd.Steps)),
	)
}

// DisplayReport renders the summary table under a styled title.
func (s *StyledUI) DisplayReport(runs []m.Stats) error {
	_, err := io.WriteString(s.cmd.ErrOrStderr(), "\n"+titleStyle.Render("Tail report")+"\n"+renderReport(runs))

	return err
}
