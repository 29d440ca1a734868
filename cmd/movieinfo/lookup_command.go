package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"movieinfo/internal/movies"
	"movieinfo/internal/omdb"
)

type lookupResult struct {
	URL         string `json:"url"`
	Title       string `json:"Title"`
	Year        string `json:"Year"`
	Found       bool   `json:"found"`
	RemoteError string `json:"remote_error,omitempty"`
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var year string
	var urlOnly bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lookup TITLE",
		Short: "Look up a single title and print the projected Title/Year row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := omdb.New(cfg.OMDb.BaseURL,
				omdb.WithTimeout(cfg.LookupTimeout()),
				omdb.WithUserAgent(cfg.OMDb.UserAgent),
			)
			if err != nil {
				return err
			}

			query := movies.Query{Title: args[0], Year: year}
			endpoint := client.QueryURL(query.Title, query.Year)
			out := cmd.OutOrStdout()
			if urlOnly {
				fmt.Fprintln(out, endpoint)
				return nil
			}
			if query.Normalize().Empty() {
				return fmt.Errorf("title must not be empty")
			}

			record, err := client.Lookup(cmd.Context(), query)
			if err != nil {
				return err
			}
			row := omdb.Project(record)
			result := lookupResult{
				URL:         endpoint,
				Title:       row.Title,
				Year:        row.Year,
				Found:       record.Found(),
				RemoteError: record.ErrorMessage(),
			}

			if jsonOutput || !isTerminal(out) {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(out, renderRow(row))
			if !result.Found && result.RemoteError != "" {
				fmt.Fprintf(out, "OMDb: %s\n", result.RemoteError)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&year, "year", "y", "", "Release year")
	cmd.Flags().BoolVar(&urlOnly, "url-only", false, "Print the request URL without sending it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	return cmd
}
