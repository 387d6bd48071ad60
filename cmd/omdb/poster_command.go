package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newPosterCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "poster <imdb-id>",
		Short: "Download the poster image for an IMDb ID",
		Long: "Download the poster image for an IMDb ID.\n\n" +
			"OMDb answers unknown IDs with an error image, so a saved file is not proof that the poster exists.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.metadata(cmd)
			if err != nil {
				return err
			}

			id := args[0]
			poster, err := client.GetPoster(cmd.Context(), id)
			if err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = id + mimetype.Detect(poster.Data).Extension()
			}
			if err := afero.WriteFile(ctx.fs, path, poster.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write poster: %w", err)
			}

			summary := posterSummary{
				ID:          id,
				Path:        path,
				ContentType: poster.ContentType,
				Bytes:       len(poster.Data),
			}
			if ok, err := writeStructured(cmd, ctx.outputFormat(), summary); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s poster to %s (%s, %s)\n",
				id, path, poster.ContentType, humanize.Bytes(uint64(len(poster.Data))))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default: <imdb-id>.<ext>)")
	return cmd
}

type posterSummary struct {
	ID          string `json:"id" yaml:"id"`
	Path        string `json:"path" yaml:"path"`
	ContentType string `json:"contentType" yaml:"contentType"`
	Bytes       int    `json:"bytes" yaml:"bytes"`
}
