// Package batch streams MARC transmission files through the assembler
// and accumulates a per-file run report.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/frbrize/internal/assemble"
	"github.com/lehigh-university-libraries/frbrize/internal/authority"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/resolve"
	"github.com/lehigh-university-libraries/frbrize/internal/store"
	"github.com/mitlibraries/fml"
	"gopkg.in/yaml.v3"
)

// Loader runs the extraction over a set of input files. A nil Authority
// keeps the run fully offline; a nil Report skips report output.
type Loader struct {
	Store          *store.Store
	Authority      *authority.Client
	CatalogURLBase string
	Report         io.Writer
}

// Report summarizes one run, one counts block per input file plus the
// fold over all of them.
type Report struct {
	Files []resolve.Counts `yaml:"files"`
	Total resolve.Counts   `yaml:"total"`
}

// Run processes every file in order. A record that fails is counted and
// skipped, an unreadable file aborts the run.
func (l *Loader) Run(ctx context.Context, files []string) (*Report, error) {
	report := &Report{}
	for _, path := range files {
		counts, err := l.loadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, counts)
		report.Total.Add(counts)
	}

	if l.Report != nil {
		out, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		if _, err := l.Report.Write(out); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}
	}
	return report, nil
}

func (l *Loader) loadFile(ctx context.Context, path string) (resolve.Counts, error) {
	counts := resolve.Counts{File: path}
	assembler := assemble.New(l.Store, l.Authority, l.CatalogURLBase, &counts)

	f, err := os.Open(path)
	if err != nil {
		return counts, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	slog.Info("Loading file", "file", path)

	recNum := 0
	it := fml.NewMarcIterator(f)
	for it.Next() {
		if err := ctx.Err(); err != nil {
			return counts, err
		}
		recNum++
		counts.Records++

		src, err := it.Value()
		if err != nil {
			slog.Error("Failed to decode record", "file", path, "record", recNum, "err", err)
			counts.Errors++
			continue
		}
		l.processRecord(ctx, assembler, marc.FromFML(src), &counts, path, recNum)
	}
	if err := it.Err(); err != nil {
		return counts, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Info("Finished file", "file", path, "records", counts.Records, "errors", counts.Errors)
	return counts, nil
}

// processRecord isolates one record so a panic inside the extraction
// spoils that record only, not the rest of the file.
func (l *Loader) processRecord(ctx context.Context, a *assemble.Assembler, rec marc.Record, counts *resolve.Counts, path string, recNum int) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Record processing panicked", "file", path, "record", recNum, "panic", r)
			counts.Errors++
		}
	}()
	if err := a.Record(ctx, rec); err != nil {
		slog.Error("Failed to process record", "file", path, "record", recNum, "err", err)
		counts.Errors++
	}
}
