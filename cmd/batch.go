package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loshu.dev/pkg/loshu/internal/domain"
	m "loshu.dev/pkg/loshu/internal/model"
)

var batchParallelFlag int
var batchShardFlag string
var batchOrdersFlag []int
var batchVariantsFlag []string
var batchSpillDirFlag string

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate every construction and variant for a set of orders",
		Long:  batchLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shardIndex, totalShards, err := parseShardFlag(batchShardFlag)
			if err != nil {
				return err
			}

			variants, err := parseVariants(viper.GetStringSlice(batchVariantsConfigKey))
			if err != nil {
				return err
			}

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Orders:          viper.GetIntSlice(batchOrdersConfigKey),
				Variants:        variants,
				Reports:         m.Path(viper.GetString(outputFlagName)),
				Threads:         viper.GetInt(batchParallelConfigKey),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				SpillDir:        viper.GetString(batchSpillConfigKey),
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&batchParallelFlag, batchParallelFlagName, "p", viper.GetInt(batchParallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(batchParallelFlagName), batchParallelConfigKey)
	cmd.Flags().StringVarP(&batchShardFlag, batchShardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().IntSliceVar(&batchOrdersFlag, batchOrdersFlagName, viper.GetIntSlice(batchOrdersConfigKey), "orders to generate")
	bindFlagToConfig(cmd.Flags().Lookup(batchOrdersFlagName), batchOrdersConfigKey)
	cmd.Flags().StringSliceVar(&batchVariantsFlag, batchVariantsFlagName, viper.GetStringSlice(batchVariantsConfigKey), "symmetry variants to generate")
	bindFlagToConfig(cmd.Flags().Lookup(batchVariantsFlagName), batchVariantsConfigKey)
	cmd.Flags().StringVar(&batchSpillDirFlag, batchSpillFlagName, viper.GetString(batchSpillConfigKey), "directory for in-flight reports (default: system temp dir)")
	bindFlagToConfig(cmd.Flags().Lookup(batchSpillFlagName), batchSpillConfigKey)
}

// parseShardFlag splits an INDEX/TOTAL shard value. An empty value selects
// the single shard 0/1.
func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	invalid := fmt.Errorf("invalid --%s %q: want INDEX/TOTAL with 0 <= INDEX < TOTAL", batchShardFlagName, shard)

	rawIndex, rawTotal, ok := strings.Cut(shard, "/")
	if !ok {
		return 0, 0, invalid
	}

	index, err := strconv.Atoi(strings.TrimSpace(rawIndex))
	if err != nil {
		return 0, 0, invalid
	}

	total, err := strconv.Atoi(strings.TrimSpace(rawTotal))
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 0, invalid
	}

	return index, total, nil
}
