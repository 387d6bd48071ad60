package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slipstream/omdb/omdb"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var mediaType string
	var year, page int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles by text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.metadata(cmd)
			if err != nil {
				return err
			}

			opts := &omdb.SearchOptions{Type: omdb.MediaType(mediaType)}
			if cmd.Flags().Changed("year") {
				opts.Year = omdb.Int(year)
			}
			if cmd.Flags().Changed("page") {
				opts.Page = omdb.Int(page)
			}

			results, err := client.Search(cmd.Context(), strings.Join(args, " "), opts)
			if err != nil {
				return err
			}

			if ok, err := writeStructured(cmd, ctx.outputFormat(), results); ok {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSearchResults(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&mediaType, "type", "", "Filter by type: movie, series or episode")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by release year")
	cmd.Flags().IntVar(&page, "page", 1, "Result page (1-100)")
	return cmd
}
