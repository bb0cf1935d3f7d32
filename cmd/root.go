package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frbrize",
		Short: "FRBR entity extraction from MARC bibliographic records",
		Long: `Frbrize reads MARC transmission files describing musical recordings and
scores and extracts the FRBR entities they imply: works, expressions,
manifestations, persons, and corporate bodies, with the relationships
between them, persisted to a sqlite database.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newClassifyCmd())

	return cmd
}

// envOr resolves a flag left unset on the command line against the
// environment. Resolved at run time so values from .env are seen.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
