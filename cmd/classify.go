package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/mappers"
	"github.com/lehigh-university-libraries/frbrize/internal/workid"
	"github.com/mitlibraries/fml"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "classify [files...]",
		Short: "Show record groups and work fields without persisting anything",
		Long: `Classifies each record into its extraction group and lists the work
fields the extraction would act on. Useful for checking how a file will
be treated before running a batch.`,
		Example: `  # Inspect the first 10 records
  frbrize classify --limit 10 input.mrc

  # Inspect everything
  frbrize classify --limit 0 input.mrc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shown := 0
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", path, err)
				}

				it := fml.NewMarcIterator(f)
				for it.Next() {
					if limit > 0 && shown >= limit {
						break
					}
					src, err := it.Value()
					if err != nil {
						fmt.Printf("decode error: %v\n\n", err)
						continue
					}
					printClassification(marc.FromFML(src))
					shown++
				}
				err = it.Err()
				f.Close()
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				if limit > 0 && shown >= limit {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to show (0 for all)")

	return cmd
}

func printClassification(rec marc.Record) {
	group := rec.Group()

	fmt.Printf("Record:  %s\n", rec.ControlNumber())
	fmt.Printf("Type:    %s\n", rec.Type())
	fmt.Printf("Group:   %s\n", group)

	cands := workid.Identify(rec, group)
	if len(cands) == 0 {
		fmt.Println("Works:   none")
	} else {
		fmt.Println("Works:")
		for _, cand := range cands {
			title := mappers.UniformTitle(cand.Field)
			if title == "" {
				title = cand.Field.Value("a")
			}
			fmt.Printf("  %s  (rule %s, field %s)\n", title, cand.Rule, cand.Field.Tag)
		}
	}
	fmt.Println(strings.Repeat("-", 60))
}
