package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loshu.dev/pkg/loshu/internal/domain"
	m "loshu.dev/pkg/loshu/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check stored reports against a fresh synthesis",
		Long: `Regenerate every stored report with its recorded method and variant and
print a unified diff for each one whose square changed.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.Check(cmd.Context(), domain.CheckArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
