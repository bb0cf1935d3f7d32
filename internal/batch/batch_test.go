package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const fixed008 = "820404s1982    nyusn  e            eng d"

func sf(code, value string) marc.Subfield {
	return marc.Subfield{Code: code, Value: value}
}

func recordingRecord(controlNumber string) marc.Record {
	return marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: controlNumber},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "100", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Beethoven, Ludwig van,"), sf("d", "1770-1827."),
			}},
			{Tag: "240", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Sonatas,"), sf("m", "piano,"), sf("n", "no. 14, op. 27, no. 2,"),
			}},
			{Tag: "245", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Moonlight sonata"),
			}},
		},
	}
}

func bookRecord(controlNumber string) marc.Record {
	return marc.Record{
		LeaderType: 'a',
		Control: []marc.ControlField{
			{Tag: "001", Value: controlNumber},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "245", Ind1: "0", Ind2: "0", Subfields: []marc.Subfield{sf("a", "Emma")}},
		},
	}
}

func writeMarcFile(t *testing.T, dir, name string, records ...marc.Record) string {
	t.Helper()
	var buf bytes.Buffer
	for _, rec := range records {
		buf.Write(marc.Encode(rec))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestLoaderRun(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	dir := t.TempDir()
	path := writeMarcFile(t, dir, "sample.mrc",
		recordingRecord("ocm11111"),
		bookRecord("ocm22222"),
	)

	var out bytes.Buffer
	loader := &Loader{Store: s, Report: &out}

	report, err := loader.Run(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	counts := report.Files[0]
	assert.Equal(t, path, counts.File)
	assert.Equal(t, 2, counts.Records)
	assert.Equal(t, 0, counts.Errors)
	assert.Equal(t, 1, counts.Works)
	assert.Equal(t, 1, counts.Expressions)
	assert.Equal(t, 2, counts.Manifestations)
	assert.Equal(t, 1, counts.OtherRecords)
	assert.Equal(t, 1, counts.Persons)

	assert.Equal(t, counts.Records, report.Total.Records)
	assert.Equal(t, counts.Works, report.Total.Works)

	var parsed Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &parsed))
	require.Len(t, parsed.Files, 1)
	assert.Equal(t, 2, parsed.Total.Records)
	assert.Equal(t, 1, parsed.Total.Works)
}

func TestLoaderRunAccumulatesAcrossFiles(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	dir := t.TempDir()
	first := writeMarcFile(t, dir, "first.mrc", recordingRecord("ocm11111"))
	second := writeMarcFile(t, dir, "second.mrc", recordingRecord("ocm33333"))

	loader := &Loader{Store: s}
	report, err := loader.Run(context.Background(), []string{first, second})
	require.NoError(t, err)
	require.Len(t, report.Files, 2)

	// The second file describes the same work, so only manifestation and
	// expression activity differs between the files.
	assert.Equal(t, 1, report.Files[0].Works)
	assert.Equal(t, 0, report.Files[1].Works)
	assert.Equal(t, 1, report.Total.Works)
	assert.Equal(t, 2, report.Total.Records)
	assert.Equal(t, 2, report.Total.Manifestations)
}

func TestLoaderRunMissingFile(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	loader := &Loader{Store: s}
	_, err = loader.Run(context.Background(), []string{"/nonexistent/input.mrc"})
	require.Error(t, err)
}
