// Package cmd provides the root command and CLI setup for ropetrail.
package cmd

import (
	"fmt"
	"os"

	"github.com/mouse-blink/ropetrail/internal/adapter"
	"github.com/mouse-blink/ropetrail/internal/controller"
	"github.com/mouse-blink/ropetrail/internal/domain"
	m "github.com/mouse-blink/ropetrail/internal/model"
	"github.com/spf13/cobra"
)

var commandSource adapter.CommandSource
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stderr))
	commandSource = adapter.NewLocalCommandSource()
	workflow = domain.NewWorkflow(commandSource, ui)
}

var knotsFlag int
var longFlag bool
var reportFlag bool
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ropetrail [flags] <file>",
		Short: "Count the lattice positions visited by a rope's tail",
		Long: `Ropetrail moves the head of a rope across an integer grid following the
commands in <file>, one "<D> <k>" per line (D is U, D, L or R; k is a step
count), drags the remaining knots along and prints how many distinct positions
the tail visited.

Rope lengths:
  --knots 2     head and tail (default)
  --knots 10    head and nine followers (same as --long)`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			knots, err := resolveKnots(knotsFlag, longFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Solve(domain.SolveArgs{
				Path:   m.Path(args[0]),
				Knots:  knots,
				Trace:  verboseFlag,
				Report: reportFlag,
			})

			return err
		},
	}
	cmd.PersistentFlags().BoolVarP(&reportFlag, "report", "r", false, "print a summary table to stderr")
	cmd.Flags().IntVarP(&knotsFlag, "knots", "k", m.ShortRope, fmt.Sprintf("number of knots in the rope (%d or %d)", m.ShortRope, m.LongRope))
	cmd.Flags().BoolVarP(&longFlag, "long", "l", false, fmt.Sprintf("simulate the long rope (%d knots)", m.LongRope))
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "trace every parsed command to stderr")
	cmd.MarkFlagsMutuallyExclusive("knots", "long")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func resolveKnots(knots int, long bool) (int, error) {
	if long {
		return m.LongRope, nil
	}

	if !m.ValidKnots(knots) {
		return 0, fmt.Errorf("%w: %d (want %d or %d)", domain.ErrUnsupportedKnots, knots, m.ShortRope, m.LongRope)
	}

	return knots, nil
}
