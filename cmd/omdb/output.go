package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/slipstream/omdb/omdb"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

const notAvailable = "N/A"

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as YAML to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeStructured handles the json and yaml formats; it reports false for table output.
func writeStructured(cmd *cobra.Command, format string, v any) (bool, error) {
	switch format {
	case outputJSON:
		return true, writeJSON(cmd, v)
	case outputYAML:
		return true, writeYAML(cmd, v)
	}
	return false, nil
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    80,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderSearchResults(results []omdb.SearchResultItem) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.ID, r.Title, formatInt(r.Year), string(r.Type)})
	}
	return renderTable(
		[]string{"ID", "Title", "Year", "Type"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func renderRecord(r *omdb.MovieRecord) string {
	ratings := make([]string, 0, len(r.Ratings))
	for _, rating := range r.Ratings {
		ratings = append(ratings, fmt.Sprintf("%s: %s", rating.Source, formatFloat(rating.Value)))
	}

	rows := [][]string{
		{"ID", r.ID},
		{"Title", r.Title},
		{"Year", formatInt(r.Year)},
		{"Type", string(r.Type)},
		{"Rated", r.Rated},
		{"Released", formatDate(r.Released)},
		{"Runtime", formatMinutes(r.Runtime)},
		{"Genres", formatList(r.Genres)},
		{"Director", r.Director},
		{"Writers", formatList(r.Writers)},
		{"Actors", formatList(r.Actors)},
		{"Plot", r.Plot},
		{"Language", r.Language},
		{"Country", r.Country},
		{"Awards", formatString(r.Awards)},
		{"Ratings", formatList(ratings)},
		{"Metascore", formatInt(r.Metascore)},
		{"IMDb rating", formatInt(r.IMDbRating)},
		{"IMDb votes", formatInt(r.IMDbVotes)},
		{"DVD", formatDate(r.DVD)},
		{"Box office", formatInt(r.BoxOffice)},
		{"Production", formatList(r.Production)},
		{"Website", formatString(r.Website)},
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

func formatInt(v *int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatMinutes(v *int) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%d min", *v)
}

func formatString(v *string) string {
	if v == nil {
		return notAvailable
	}
	return *v
}

func formatDate(v *time.Time) string {
	if v == nil {
		return notAvailable
	}
	return v.Format("2006-01-02")
}

func formatList(v []string) string {
	if len(v) == 0 {
		return notAvailable
	}
	return strings.Join(v, ", ")
}
