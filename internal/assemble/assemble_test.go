package assemble

import (
	"context"
	"testing"

	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/resolve"
	"github.com/lehigh-university-libraries/frbrize/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixed008 = "820404s1982    nyusn  e            eng d"

func newTestAssembler(t *testing.T) (*Assembler, *store.Store, *resolve.Counts) {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	counts := &resolve.Counts{}
	return New(s, nil, "", counts), s, counts
}

func sf(code, value string) marc.Subfield {
	return marc.Subfield{Code: code, Value: value}
}

// sonataRecord is a GROUP1A recording: main entry, uniform title, and a
// performer added entry.
func sonataRecord(controlNumber string) marc.Record {
	return marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: controlNumber},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "033", Ind1: " ", Subfields: []marc.Subfield{sf("a", "19820404")}},
			{Tag: "100", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Beethoven, Ludwig van,"), sf("d", "1770-1827."),
			}},
			{Tag: "240", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Sonatas,"), sf("m", "piano,"),
				sf("n", "no. 14, op. 27, no. 2,"), sf("r", "C# minor."),
			}},
			{Tag: "245", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Moonlight sonata"),
			}},
			{Tag: "700", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Gould, Glenn,"), sf("d", "1932-1982."), sf("4", "prf"),
			}},
		},
	}
}

const sonataWorkIdent = "Sonatas, piano, no. 14, op. 27, no. 2, C# minor::Beethoven, Ludwig van, 1770-1827"

func TestAssembleGroup1ARecording(t *testing.T) {
	a, s, counts := newTestAssembler(t)
	rec := sonataRecord("ocm11111")
	require.Equal(t, marc.Group1A, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 1, counts.Manifestations)
	assert.Equal(t, 2, counts.Persons)
	assert.Equal(t, 1, counts.Works)
	assert.Equal(t, 1, counts.Expressions)
	assert.Equal(t, 0, counts.UnmatchedComposers)

	works, err := s.Works.ByAuthIdent(sonataWorkIdent)
	require.NoError(t, err)
	require.Len(t, works, 1)

	composers, err := s.People.ByAuthIdent("Beethoven, Ludwig van, 1770-1827")
	require.NoError(t, err)
	require.Len(t, composers, 1)

	w, err := s.Works.ByID(works[0].ID)
	require.NoError(t, err)
	require.Len(t, w.Composers, 1)
	assert.Equal(t, frbr.KindPerson, w.Composers[0].PartyKind)
	assert.Equal(t, composers[0].ID, w.Composers[0].PartyID)
	assert.Equal(t, "composer", w.Composers[0].Role)

	exprs, err := s.Expressions.ForWork(works[0].ID)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	require.Len(t, exprs[0].Realizers, 1)
	assert.Equal(t, "performer", exprs[0].Realizers[0].Role)

	performers, err := s.People.ByAuthIdent("Gould, Glenn, 1932-1982")
	require.NoError(t, err)
	require.Len(t, performers, 1)
	assert.Equal(t, performers[0].ID, exprs[0].Realizers[0].PartyID)

	// The performer realizes the expression; the main entry composes the
	// work. Neither is a manifestation party here.
	manifs, err := s.Manifestations.ByControlNumber("ocm11111")
	require.NoError(t, err)
	require.Len(t, manifs, 1)
	assert.Empty(t, manifs[0].Producers)
}

func TestAssembleSameWorkTwiceReusesEntities(t *testing.T) {
	a, s, counts := newTestAssembler(t)
	ctx := context.Background()

	require.NoError(t, a.Record(ctx, sonataRecord("ocm11111")))
	require.NoError(t, a.Record(ctx, sonataRecord("ocm22222")))

	// Identical capture date and performer: the second record describes
	// the same expression of the same work.
	assert.Equal(t, 1, counts.Works)
	assert.Equal(t, 1, counts.Expressions)
	assert.Equal(t, 2, counts.Persons)
	assert.Equal(t, 2, counts.Manifestations)

	works, err := s.Works.ByAuthIdent(sonataWorkIdent)
	require.NoError(t, err)
	assert.Len(t, works, 1)
}

func TestAssembleDifferentPerformanceNewExpression(t *testing.T) {
	a, _, counts := newTestAssembler(t)
	ctx := context.Background()

	require.NoError(t, a.Record(ctx, sonataRecord("ocm11111")))

	other := sonataRecord("ocm33333")
	other.Fields[0] = marc.DataField{Tag: "033", Ind1: " ", Subfields: []marc.Subfield{sf("a", "19910615")}}
	other.Fields[4] = marc.DataField{Tag: "700", Ind1: "1", Subfields: []marc.Subfield{
		sf("a", "Brendel, Alfred,"), sf("d", "1931-"), sf("4", "prf"),
	}}
	require.NoError(t, a.Record(ctx, other))

	assert.Equal(t, 1, counts.Works)
	assert.Equal(t, 2, counts.Expressions)
	assert.Equal(t, 3, counts.Persons)
}

func TestAssembleGroup1BComposerAndManifPerson(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm44444"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "100", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Glass, Philip,"), sf("4", "cmp"),
			}},
			{Tag: "245", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Glassworks"),
			}},
			{Tag: "700", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Riesman, Michael."),
			}},
		},
	}
	require.Equal(t, marc.Group1B, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 1, counts.Works)
	assert.Equal(t, 2, counts.Persons)

	works, err := s.Works.ByAuthIdent("Glassworks::Glass, Philip")
	require.NoError(t, err)
	require.Len(t, works, 1)

	w, err := s.Works.ByID(works[0].ID)
	require.NoError(t, err)
	require.Len(t, w.Composers, 1)

	// A 700 with no work title and no relator code stays attached to the
	// manifestation with an unqualified role.
	manifs, err := s.Manifestations.ByControlNumber("ocm44444")
	require.NoError(t, err)
	require.Len(t, manifs, 1)
	require.Len(t, manifs[0].Producers, 1)
	assert.Equal(t, "", manifs[0].Producers[0].Role)
	assert.Equal(t, frbr.KindPerson, manifs[0].Producers[0].PartyKind)
}

func TestAssembleGroup1CProducerCredits(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm88888"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "245", Ind1: "0", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Ocean waves"),
			}},
			{Tag: "700", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Riesman, Michael."),
			}},
			{Tag: "710", Ind1: "2", Subfields: []marc.Subfield{
				sf("a", "Looking Glass Studio."),
			}},
		},
	}
	require.Equal(t, marc.Group1C, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 0, counts.Works)
	assert.Equal(t, 1, counts.Persons)
	assert.Equal(t, 1, counts.CorporateBodies)

	// Each heading becomes exactly one production credit.
	manifs, err := s.Manifestations.ByControlNumber("ocm88888")
	require.NoError(t, err)
	require.Len(t, manifs, 1)
	require.Len(t, manifs[0].Producers, 2)
	assert.Equal(t, frbr.KindPerson, manifs[0].Producers[0].PartyKind)
	assert.Equal(t, frbr.RoleProducedBy, manifs[0].Producers[0].Role)
	assert.Equal(t, frbr.KindCorporate, manifs[0].Producers[1].PartyKind)
	assert.Equal(t, frbr.RoleProducedBy, manifs[0].Producers[1].Role)
}

func TestAssembleGroup1AMainEntriesAllCompose(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm99999"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "100", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Crumb, George."),
			}},
			{Tag: "110", Ind1: "2", Subfields: []marc.Subfield{
				sf("a", "Kronos Quartet."),
			}},
			{Tag: "240", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Black angels"),
			}},
			{Tag: "245", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Black angels"),
			}},
		},
	}
	require.Equal(t, marc.Group1A, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 1, counts.Works)

	works, err := s.Works.ByAuthIdent("Black angels::Crumb, George")
	require.NoError(t, err)
	require.Len(t, works, 1)

	w, err := s.Works.ByID(works[0].ID)
	require.NoError(t, err)
	require.Len(t, w.Composers, 2)
	assert.Equal(t, frbr.KindPerson, w.Composers[0].PartyKind)
	assert.Equal(t, frbr.KindCorporate, w.Composers[1].PartyKind)
}

func TestAssembleGroup2CorporateMainEntryDoesNotCompose(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm10101"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "110", Ind1: "2", Subfields: []marc.Subfield{
				sf("a", "Kronos Quartet."),
			}},
			{Tag: "240", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Symphonies,"), sf("n", "no. 5"),
			}},
			{Tag: "245", Ind1: "0", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Symphonies and a song"),
			}},
			{Tag: "700", Ind1: "1", Ind2: "2", Subfields: []marc.Subfield{
				sf("a", "Glass, Philip."), sf("t", "Company"),
			}},
		},
	}
	require.Equal(t, marc.Group2, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 2, counts.Works)

	// The 240 work keeps the corporate name in its identity but gains no
	// composer edge outside GROUP1A.
	works, err := s.Works.ByAuthIdent("Symphonies, no. 5::Kronos Quartet")
	require.NoError(t, err)
	require.Len(t, works, 1)

	w, err := s.Works.ByID(works[0].ID)
	require.NoError(t, err)
	assert.Empty(t, w.Composers)

	analytic, err := s.Works.ByAuthIdent("Company::Glass, Philip")
	require.NoError(t, err)
	require.Len(t, analytic, 1)

	aw, err := s.Works.ByID(analytic[0].ID)
	require.NoError(t, err)
	require.Len(t, aw.Composers, 1)
	assert.Equal(t, frbr.KindPerson, aw.Composers[0].PartyKind)
}

func TestAssembleUnnamedCreditCountsUnmatchedProducer(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm20202"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "100", Ind1: "1", Subfields: []marc.Subfield{
				sf("a", "Glass, Philip,"), sf("4", "cmp"),
			}},
			{Tag: "245", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{
				sf("a", "Glassworks"),
			}},
			{Tag: "700", Ind1: "1", Subfields: []marc.Subfield{
				sf("e", "producer."),
			}},
		},
	}
	require.Equal(t, marc.Group1B, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	// The nameless credit never resolves, and the miss is reported
	// against the producer pass that wanted it.
	assert.Equal(t, 1, counts.Persons)
	assert.Equal(t, 1, counts.UnmatchedProducers)

	manifs, err := s.Manifestations.ByControlNumber("ocm20202")
	require.NoError(t, err)
	require.Len(t, manifs, 1)
	assert.Empty(t, manifs[0].Producers)
}

func TestAssembleCreatorCodeInSecondPosition(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := sonataRecord("ocm30303")
	rec.Fields = append(rec.Fields, marc.DataField{Tag: "700", Ind1: "1", Subfields: []marc.Subfield{
		sf("a", "Rellstab, Ludwig,"), sf("d", "1799-1860."), sf("4", "prf"), sf("4", "lbt"),
	}})

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 3, counts.Persons)

	works, err := s.Works.ByAuthIdent(sonataWorkIdent)
	require.NoError(t, err)
	require.Len(t, works, 1)

	// The librettist code holds even behind a performing role on the same
	// heading, and the performing role still realizes the expression.
	w, err := s.Works.ByID(works[0].ID)
	require.NoError(t, err)
	require.Len(t, w.Creators, 1)
	assert.Equal(t, "librettist", w.Creators[0].Role)

	exprs, err := s.Expressions.ForWork(works[0].ID)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Len(t, exprs[0].Realizers, 2)
}

func TestAssembleGroup1AFirstMeetingProduces(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := sonataRecord("ocm40404")
	rec.Fields = append(rec.Fields,
		marc.DataField{Tag: "711", Ind1: "2", Subfields: []marc.Subfield{
			sf("a", "Salzburg Festival."),
		}},
		marc.DataField{Tag: "711", Ind1: "2", Subfields: []marc.Subfield{
			sf("a", "Tanglewood Festival."),
		}},
	)

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 2, counts.CorporateBodies)

	salzburg, err := s.Corporates.ByAuthIdent("Salzburg Festival")
	require.NoError(t, err)
	require.Len(t, salzburg, 1)

	manifs, err := s.Manifestations.ByControlNumber("ocm40404")
	require.NoError(t, err)
	require.Len(t, manifs, 1)
	require.Len(t, manifs[0].Producers, 1)
	assert.Equal(t, frbr.RoleProducedBy, manifs[0].Producers[0].Role)
	assert.Equal(t, salzburg[0].ID, manifs[0].Producers[0].PartyID)
}

func TestAssembleOtherRecordManifestationOnly(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'a',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm55555"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "100", Ind1: "1", Subfields: []marc.Subfield{sf("a", "Austen, Jane.")}},
			{Tag: "245", Ind1: "1", Ind2: "0", Subfields: []marc.Subfield{sf("a", "Emma")}},
		},
	}

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 1, counts.OtherRecords)
	assert.Equal(t, 1, counts.Manifestations)
	assert.Equal(t, 0, counts.Works)
	assert.Equal(t, 0, counts.Persons)

	manifs, err := s.Manifestations.ByControlNumber("ocm55555")
	require.NoError(t, err)
	assert.Len(t, manifs, 1)
}

func TestAssembleGroupErrorRegistersPartiesWithoutLinks(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm66666"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "700", Ind1: "1", Subfields: []marc.Subfield{sf("a", "Karajan, Herbert von.")}},
		},
	}
	require.Equal(t, marc.GroupError, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	assert.Equal(t, 1, counts.Persons)
	assert.Equal(t, 0, counts.Works)
	assert.Equal(t, 1, counts.Manifestations)

	manifs, err := s.Manifestations.ByControlNumber("ocm66666")
	require.NoError(t, err)
	require.Len(t, manifs, 1)
	assert.Empty(t, manifs[0].Producers)
}

func TestAssembleGroup3AnalyticWorks(t *testing.T) {
	a, s, counts := newTestAssembler(t)

	rec := marc.Record{
		LeaderType: 'j',
		Control: []marc.ControlField{
			{Tag: "001", Value: "ocm77777"},
			{Tag: "008", Value: fixed008},
		},
		Fields: []marc.DataField{
			{Tag: "245", Ind1: "0", Ind2: "0", Subfields: []marc.Subfield{sf("a", "Two cello favorites")}},
			{Tag: "700", Ind1: "1", Ind2: "2", Subfields: []marc.Subfield{
				sf("a", "Elgar, Edward,"), sf("d", "1857-1934."),
				sf("t", "Concertos,"), sf("m", "cello, orchestra,"), sf("r", "E minor."),
			}},
			{Tag: "700", Ind1: "1", Ind2: "2", Subfields: []marc.Subfield{
				sf("a", "Saint-Saëns, Camille,"), sf("d", "1835-1921."),
				sf("t", "Concertos,"), sf("m", "cello, orchestra,"), sf("n", "no. 1, op. 33,"), sf("r", "A minor."),
			}},
		},
	}
	require.Equal(t, marc.Group3, rec.Group())

	require.NoError(t, a.Record(context.Background(), rec))

	// Each analytic entry yields its own work composed by its own name.
	assert.Equal(t, 2, counts.Works)
	assert.Equal(t, 2, counts.Persons)
	assert.Equal(t, 2, counts.Expressions)

	elgar, err := s.Works.ByAuthIdent("Concertos, cello, orchestra, E minor::Elgar, Edward, 1857-1934")
	require.NoError(t, err)
	require.Len(t, elgar, 1)

	w, err := s.Works.ByID(elgar[0].ID)
	require.NoError(t, err)
	require.Len(t, w.Composers, 1)

	elgarPerson, err := s.People.ByAuthIdent("Elgar, Edward, 1857-1934")
	require.NoError(t, err)
	require.Len(t, elgarPerson, 1)
	assert.Equal(t, elgarPerson[0].ID, w.Composers[0].PartyID)
}
