// Package cmd provides the root command and CLI setup for loshu.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"loshu.dev/pkg/loshu/internal/adapter"
	"loshu.dev/pkg/loshu/internal/controller"
	"loshu.dev/pkg/loshu/internal/domain"
	m "loshu.dev/pkg/loshu/internal/model"
)

var reportStore adapter.ReportStore
var squareSource adapter.SquareSource
var synthesizer domain.Synthesizer
var jobStreamer domain.JobStreamer
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	squareSource = adapter.NewLocalSquareSource()
	synthesizer = domain.NewSynthesizer()
	jobStreamer = domain.NewJobStreamer()
	workflow = domain.NewWorkflow(
		squareSource,
		reportStore,
		ui,
		synthesizer,
		jobStreamer,
	)
}

const ordersHelp = `Orders range from 3 to 9. The construction depends on the order class:
  - odd (3, 5, 7, 9)     siamese
  - doubly even (4, 8)   block-complement
  - singly even (6)      quadrant or lux`

const rootLongDescription = `Loshu synthesizes and verifies normal magic squares: n x n grids holding
each of 1..n² exactly once, whose rows, columns and both main diagonals all
sum to n(n²+1)/2.

` + ordersHelp

const generateLongDescription = `Generate one magic square per order and print it.

` + ordersHelp

const batchLongDescription = `Generate every construction and symmetry variant for the configured
orders on a pool of workers, then print a per-class summary.

` + ordersHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "loshu",
		Short:         "Magic square synthesis and verification tool",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(logFileFlag, verboseFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory for square reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseOrders(args []string) ([]int, error) {
	orders := make([]int, 0, len(args))

	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("order %q is not an integer", field)
			}

			orders = append(orders, n)
		}
	}

	return orders, nil
}

func parseVariants(names []string) ([]m.Variant, error) {
	variants := make([]m.Variant, 0, len(names))

	for _, name := range names {
		v, ok := m.ParseVariant(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, name)
		}

		variants = append(variants, v)
	}

	return variants, nil
}
