package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loshu.dev/pkg/loshu/internal/adapter"
	"loshu.dev/pkg/loshu/internal/domain"
	m "loshu.dev/pkg/loshu/internal/model"
)

var generateMethodFlag string
var generateVariantFlag string
var generateFormatFlag string
var generateSaveFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <orders...>",
		Short: "Generate magic squares",
		Long:  generateLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := parseOrders(args)
			if err != nil {
				return err
			}

			method, err := domain.ParseMethod(viper.GetString(generateMethodConfigKey))
			if err != nil {
				return err
			}

			variants, err := parseVariants([]string{generateVariantFlag})
			if err != nil {
				return err
			}

			format, err := adapter.ParseFormat(generateFormatFlag)
			if err != nil {
				return err
			}

			return workflow.Generate(cmd.Context(), domain.GenerateArgs{
				Orders:  orders,
				Method:  method,
				Variant: variants[0],
				Format:  format,
				Output:  cmd.OutOrStdout(),
				Save:    generateSaveFlag,
				Reports: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateMethodFlag, methodFlagName, "m", viper.GetString(generateMethodConfigKey), "construction to use (default: the order class default)")
	bindFlagToConfig(cmd.Flags().Lookup(methodFlagName), generateMethodConfigKey)
	cmd.Flags().StringVar(&generateVariantFlag, variantFlagName, m.VariantIdentity.String(), "symmetry applied to the square (name or index 0-7)")
	cmd.Flags().StringVarP(&generateFormatFlag, formatFlagName, "f", string(adapter.FormatTable), "output format: table, json, yaml, csv or text")
	cmd.Flags().BoolVar(&generateSaveFlag, saveFlagName, false, "persist a report for each square in the output directory")
}
