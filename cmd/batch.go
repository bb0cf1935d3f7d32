package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lehigh-university-libraries/frbrize/internal/authority"
	"github.com/lehigh-university-libraries/frbrize/internal/batch"
	"github.com/lehigh-university-libraries/frbrize/internal/store"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var dbPath string
	var authorityURL string
	var cacheDir string
	var catalogURLBase string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Extract FRBR entities from MARC transmission files",
		Long: `Processes each input file record by record, persisting the extracted
entities and relationships, and writes a per-file run report.

Without an authority endpoint the run is fully offline: entities are
built from the bibliographic data alone, falling back through identity
keys of decreasing strictness when matching against already-persisted
entities.`,
		Example: `  # Offline run against a local database
  frbrize batch --db catalog.db input.mrc

  # Authority-assisted run with a persistent lookup cache
  frbrize batch --db catalog.db \
    --authority-url https://authority.example.edu/search \
    --cache-dir ./authority-cache \
    --report report.yaml input1.mrc input2.mrc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if dbPath == "" {
				dbPath = envOr("FRBRIZE_DB", "frbrize.db")
			}
			if authorityURL == "" {
				authorityURL = os.Getenv("FRBRIZE_AUTHORITY_URL")
			}
			if cacheDir == "" {
				cacheDir = os.Getenv("FRBRIZE_AUTHORITY_CACHE")
			}

			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				if err := s.Close(); err != nil {
					slog.Error("Failed to close database", "err", err)
				}
			}()

			var auth *authority.Client
			if authorityURL != "" || cacheDir != "" {
				auth = authority.NewClient(authorityURL, cacheDir)
			}

			var out io.Writer = os.Stdout
			if reportPath != "" {
				f, err := os.Create(reportPath)
				if err != nil {
					return fmt.Errorf("failed to create report file: %w", err)
				}
				defer f.Close()
				out = f
			}

			loader := &batch.Loader{
				Store:          s,
				Authority:      auth,
				CatalogURLBase: catalogURLBase,
				Report:         out,
			}
			report, err := loader.Run(ctx, args)
			if err != nil {
				return err
			}

			slog.Info("Run complete",
				"files", len(report.Files),
				"records", report.Total.Records,
				"errors", report.Total.Errors,
				"works", report.Total.Works,
				"expressions", report.Total.Expressions,
				"manifestations", report.Total.Manifestations)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to sqlite database (defaults to $FRBRIZE_DB, then frbrize.db)")
	cmd.Flags().StringVar(&authorityURL, "authority-url", "", "Authority lookup endpoint (defaults to $FRBRIZE_AUTHORITY_URL; empty stays offline)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory for cached authority responses (defaults to $FRBRIZE_AUTHORITY_CACHE)")
	cmd.Flags().StringVar(&catalogURLBase, "catalog-url-base", "", "Base URL for catalog links recorded on manifestations")
	cmd.Flags().StringVar(&reportPath, "report", "", "Path for the YAML run report (defaults to stdout)")

	return cmd
}
