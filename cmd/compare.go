package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/ropetrail/internal/domain"
	m "github.com/mouse-blink/ropetrail/internal/model"
)

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file>",
		Short: "Run every supported rope length on the same input",
		Long: `Compare simulates the short and the long rope on <file> and prints one
"<knots> <visited>" line per rope length, shortest rope first.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			_, err := workflow.Compare(c.Context(), domain.CompareArgs{
				Path:   m.Path(args[0]),
				Report: reportFlag,
			})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
