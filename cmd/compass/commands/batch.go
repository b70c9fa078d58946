package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/compass/internal/app"
)

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run the searches listed in a YAML file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			pageSize, _ := cmd.Flags().GetInt("page-size")
			return c.app.Batch(cmd.Context(), args[0], app.BatchOptions{
				Concurrency: concurrency,
				PageSize:    pageSize,
			})
		},
	}
	cmd.Flags().IntP("concurrency", "j", app.DefaultBatchConcurrency, "Number of searches to run at once")
	cmd.Flags().Int("page-size", 0, "Hotels per page (default from configuration)")
	return cmd
}
