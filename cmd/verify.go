package cmd

import (
	"github.com/spf13/cobra"

	"loshu.dev/pkg/loshu/internal/domain"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <patterns...>",
		Short: "Verify squares stored in files",
		Long: `Check that every matrix matched by the given glob patterns is a normal magic
square. Patterns support ** (e.g. squares/**/*.json). The file extension
selects the decoder: .json, .yaml/.yml, .csv, anything else is read as
whitespace separated rows.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Verify(cmd.Context(), domain.VerifyArgs{Patterns: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
