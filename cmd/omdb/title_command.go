package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slipstream/omdb/omdb"
)

func newTitleCommand(ctx *commandContext) *cobra.Command {
	var mediaType, plot string
	var year int

	cmd := &cobra.Command{
		Use:   "title <title>",
		Short: "Show the full record for a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.metadata(cmd)
			if err != nil {
				return err
			}

			opts := &omdb.TitleOptions{
				Type: omdb.MediaType(mediaType),
				Plot: omdb.PlotLength(plot),
			}
			if cmd.Flags().Changed("year") {
				opts.Year = omdb.Int(year)
			}

			record, err := client.GetByTitle(cmd.Context(), strings.Join(args, " "), opts)
			if err != nil {
				return err
			}

			if ok, err := writeStructured(cmd, ctx.outputFormat(), record); ok {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecord(record))
			return nil
		},
	}

	cmd.Flags().StringVar(&mediaType, "type", "", "Filter by type: movie, series or episode")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by release year")
	cmd.Flags().StringVar(&plot, "plot", "", "Plot length: short or full")
	return cmd
}
