package main

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/slipstream/omdb/omdb"
)

const maxConcurrentLookups = 4

func newGetCommand(ctx *commandContext) *cobra.Command {
	var plot string

	cmd := &cobra.Command{
		Use:   "get <imdb-id>...",
		Short: "Show full records for one or more IMDb IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.metadata(cmd)
			if err != nil {
				return err
			}

			records, err := fetchRecords(cmd.Context(), client, args, &omdb.IDOptions{Plot: omdb.PlotLength(plot)})
			if err != nil {
				return err
			}

			var out any = records
			if len(records) == 1 {
				out = records[0]
			}
			if ok, err := writeStructured(cmd, ctx.outputFormat(), out); ok {
				return err
			}
			for _, record := range records {
				fmt.Fprintln(cmd.OutOrStdout(), renderRecord(record))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&plot, "plot", "", "Plot length: short or full")
	return cmd
}

// fetchRecords looks up every ID concurrently and returns records in argument order.
// The first failure cancels the remaining lookups.
func fetchRecords(ctx context.Context, client metadataClient, ids []string, opts *omdb.IDOptions) ([]*omdb.MovieRecord, error) {
	records := make([]*omdb.MovieRecord, len(ids))

	p := pool.New().
		WithMaxGoroutines(maxConcurrentLookups).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for i, id := range ids {
		p.Go(func(ctx context.Context) error {
			record, err := client.GetByID(ctx, id, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			records[i] = record
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
