package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"haikufind/internal/catalog"
	"haikufind/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a CSV of lyrics for haiku and cache them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			path := csvPath
			if path == "" {
				path = cfg.Scanner.CSVPath
			}

			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *catalog.Store) error {
				summary, err := scanner.New(store, log).ScanCSV(cmd.Context(), path)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Scanned %s: %d rows, %d haiku found, %d newly cached.\n",
					path, summary.Rows, summary.Found, summary.Inserted)
				fmt.Fprintf(out, "Database: %s\n", store.Path())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to CSV with columns: title,artist,lyrics")
	return cmd
}
