package workid

import (
	"testing"

	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sf(code, value string) marc.Subfield {
	return marc.Subfield{Code: code, Value: value}
}

func uniformTitle(subfields ...marc.Subfield) marc.Record {
	return marc.Record{Fields: []marc.DataField{
		{Tag: "100", Subfields: []marc.Subfield{sf("a", "Bach, Johann Sebastian")}},
		{Tag: "240", Subfields: subfields},
		{Tag: "245", Subfields: []marc.Subfield{sf("a", "Title proper")}},
	}}
}

func TestGroup1A240Rules(t *testing.T) {
	tests := []struct {
		name  string
		rec   marc.Record
		rules []string
	}{
		{
			"collective title is not a work",
			uniformTitle(sf("a", "Works")),
			nil,
		},
		{
			"form without qualifiers is not a work",
			uniformTitle(sf("a", "Sonatas")),
			nil,
		},
		{
			"form with medium only",
			uniformTitle(sf("a", "Sonatas"), sf("m", "violin, piano")),
			[]string{"1.1.2.2"},
		},
		{
			"form with medium and number",
			uniformTitle(sf("a", "Sonatas"), sf("m", "violin, piano"), sf("n", "no. 5")),
			[]string{"1.1.2.3"},
		},
		{
			"form with number only",
			uniformTitle(sf("a", "Sonatas"), sf("n", "op. 27")),
			[]string{"1.1.2.3"},
		},
		{
			"distinctive title",
			uniformTitle(sf("a", "Kunst der Fuge")),
			[]string{"1.1.3"},
		},
		{
			"list membership is case-insensitive",
			uniformTitle(sf("a", "sonatas"), sf("m", "piano")),
			[]string{"1.1.2.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, marc.Group1A, tt.rec.Group())
			got := Identify(tt.rec, marc.Group1A)
			var rules []string
			for _, c := range got {
				rules = append(rules, c.Rule)
			}
			assert.Equal(t, tt.rules, rules)
		})
	}
}

func TestGroup1BRules(t *testing.T) {
	t.Run("245 with analytic 740s", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "100", Subfields: []marc.Subfield{sf("a", "Composer"), sf("4", "cmp")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Collected pieces")}},
			{Tag: "740", Ind2: "2", Subfields: []marc.Subfield{sf("a", "First piece")}},
			{Tag: "740", Ind2: " ", Subfields: []marc.Subfield{sf("a", "Ignored")}},
		}}
		got := Identify(rec, rec.Group())
		require.Len(t, got, 2)
		assert.Equal(t, "2.1.2.1.1", got[0].Rule)
		assert.Equal(t, "245", got[0].Field.Tag)
		assert.Equal(t, "2.1.3.1", got[1].Rule)
		assert.Equal(t, "740", got[1].Field.Tag)
	})

	t.Run("245 without 740 or contents note", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "100", Subfields: []marc.Subfield{sf("a", "Composer")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Symphony")}},
		}}
		got := Identify(rec, rec.Group())
		require.Len(t, got, 1)
		assert.Equal(t, "2.1.2.2.2", got[0].Rule)
	})

	t.Run("contents note suppresses bare 245", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "100", Subfields: []marc.Subfield{sf("a", "Composer")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Anthology")}},
			{Tag: "505", Subfields: []marc.Subfield{sf("a", "Contents")}},
		}}
		assert.Empty(t, Identify(rec, rec.Group()))
	})

	t.Run("non-composer relator disqualifies 245", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "100", Subfields: []marc.Subfield{sf("a", "Performer"), sf("4", "prf")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Recital")}},
		}}
		assert.Empty(t, Identify(rec, rec.Group()))
	})

	t.Run("corporate heading keeps only analytic 740s", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "110", Subfields: []marc.Subfield{sf("a", "Ensemble")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Concert")}},
			{Tag: "740", Ind2: "2", Subfields: []marc.Subfield{sf("a", "Overture")}},
		}}
		got := Identify(rec, rec.Group())
		require.Len(t, got, 1)
		assert.Equal(t, "2.2.2.1", got[0].Rule)
	})

	t.Run("uniform title heading is the work", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "130", Subfields: []marc.Subfield{sf("a", "Cantigas de Santa Maria")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Title proper")}},
		}}
		got := Identify(rec, rec.Group())
		require.Len(t, got, 1)
		assert.Equal(t, "2.4.1", got[0].Rule)
	})
}

func analytic(title string, extra ...marc.Subfield) marc.DataField {
	subs := append([]marc.Subfield{sf("a", "Name"), sf("t", title)}, extra...)
	return marc.DataField{Tag: "700", Ind2: "2", Subfields: subs}
}

func TestAddedEntryGroupRules(t *testing.T) {
	t.Run("three analytic 700s classify as GROUP4", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Anthology")}},
			analytic("Kunst der Fuge"),
			analytic("Musikalisches Opfer"),
			analytic("Goldberg-Variationen"),
		}}
		require.Equal(t, marc.Group4, rec.Group())
		got := Identify(rec, marc.Group4)
		require.Len(t, got, 3)
		for _, c := range got {
			assert.Equal(t, "6.3.3.4", c.Rule)
		}
	})

	t.Run("form analytic needs number, part, or key", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Recital")}},
			analytic("Sonatas", sf("m", "piano")),
		}}
		require.Equal(t, marc.Group2, rec.Group())
		assert.Empty(t, Identify(rec, marc.Group2))

		rec.Fields[1] = analytic("Sonatas", sf("m", "piano"), sf("n", "no. 14"))
		got := Identify(rec, marc.Group2)
		require.Len(t, got, 1)
		assert.Equal(t, "4.3.3.2.3", got[0].Rule)
	})

	t.Run("non-analytic indicator is skipped", func(t *testing.T) {
		f := analytic("Kunst der Fuge")
		f.Ind2 = " "
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Anthology")}},
			analytic("Goldberg-Variationen"),
			f,
		}}
		got := Identify(rec, rec.Group())
		require.Len(t, got, 1)
		assert.Equal(t, "Goldberg-Variationen", got[0].Field.Value("t"))
	})

	t.Run("240 in GROUP2 uses the stricter form gate", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "100", Subfields: []marc.Subfield{sf("a", "Composer")}},
			{Tag: "240", Subfields: []marc.Subfield{sf("a", "Sonatas"), sf("m", "piano")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Title")}},
			analytic("Waltzes", sf("n", "op. 39")),
		}}
		require.Equal(t, marc.Group2, rec.Group())
		got := Identify(rec, marc.Group2)
		require.Len(t, got, 1, "medium-only form 240 is not a work here")
		assert.Equal(t, "4.3.3.2.3", got[0].Rule)
	})

	t.Run("GROUP2 245 with creator relator", func(t *testing.T) {
		rec := marc.Record{Fields: []marc.DataField{
			{Tag: "100", Subfields: []marc.Subfield{sf("a", "Librettist"), sf("4", "lbt")}},
			{Tag: "245", Subfields: []marc.Subfield{sf("a", "Opera")}},
			analytic("Overture"),
		}}
		got := Identify(rec, marc.Group2)
		require.Len(t, got, 2)
		assert.Equal(t, "4.2.1.1.1", got[0].Rule)
		assert.Equal(t, "4.3.3.4", got[1].Rule)
	})
}

func TestGroup1CYieldsNoWorks(t *testing.T) {
	rec := marc.Record{Fields: []marc.DataField{
		{Tag: "245", Subfields: []marc.Subfield{sf("a", "Anonymous anthology")}},
	}}
	require.Equal(t, marc.Group1C, rec.Group())
	assert.Empty(t, Identify(rec, marc.Group1C))
	assert.Empty(t, Identify(marc.Record{}, marc.GroupError))
}
