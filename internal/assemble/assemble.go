// Package assemble runs the per-record FRBRization passes: persist the
// manifestation, register every named party, identify and persist works,
// attach expressions, then link the manifestation to its responsible
// parties. Pass order matters: parties must exist before work and
// expression links can resolve them.
package assemble

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/frbrize/internal/authority"
	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/mappers"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/resolve"
	"github.com/lehigh-university-libraries/frbrize/internal/store"
	"github.com/lehigh-university-libraries/frbrize/internal/workid"
)

// Assembler turns decoded records into persisted FRBR entities.
type Assembler struct {
	Store     *store.Store
	Authority *authority.Client
	Resolver  *resolve.Resolver
	Works     *mappers.WorkMapper
	Manifests *mappers.ManifestationMapper
	Counts    *resolve.Counts
}

// New wires an assembler over one store. The authority client may be
// nil, which keeps every pass offline. Counts accumulate across records
// until the caller swaps the struct out.
func New(s *store.Store, auth *authority.Client, catalogURLBase string, counts *resolve.Counts) *Assembler {
	return &Assembler{
		Store:     s,
		Authority: auth,
		Resolver: &resolve.Resolver{
			People:     s.People,
			Corporates: s.Corporates,
			Authority:  auth,
			Counts:     counts,
		},
		Works:     &mappers.WorkMapper{Authority: auth},
		Manifests: &mappers.ManifestationMapper{CatalogURLBase: catalogURLBase},
		Counts:    counts,
	}
}

// Record processes one decoded record. Recordings and scores get the
// full entity extraction; every other record type is registered as a
// bare manifestation.
func (a *Assembler) Record(ctx context.Context, rec marc.Record) error {
	switch rec.Type() {
	case marc.TypeRecording, marc.TypeScore:
		return a.frbrize(ctx, rec)
	default:
		return a.registerOther(rec)
	}
}

func (a *Assembler) frbrize(ctx context.Context, rec marc.Record) error {
	group := rec.Group()

	manif := a.Manifests.Map(rec)
	if err := a.Store.Manifestations.Create(manif); err != nil {
		return fmt.Errorf("failed to persist manifestation: %w", err)
	}
	a.Counts.Manifestations++

	if err := a.registerParties(ctx, rec); err != nil {
		return err
	}

	orders := &listOrders{}
	works, err := a.registerWorks(ctx, rec, group, orders)
	if err != nil {
		return err
	}

	for _, w := range works {
		if err := a.attachExpression(ctx, rec, group, w, manif, orders); err != nil {
			return err
		}
	}

	return a.linkManifestationParties(ctx, rec, group, manif, len(works), orders)
}

func (a *Assembler) registerOther(rec marc.Record) error {
	manif := a.Manifests.Map(rec)
	if err := a.Store.Manifestations.Create(manif); err != nil {
		return fmt.Errorf("failed to persist manifestation: %w", err)
	}
	a.Counts.Manifestations++
	a.Counts.OtherRecords++
	return nil
}

// Heading tags scanned during the party pass.
var (
	personHeadingTags    = []string{"100", "600", "700"}
	corporateHeadingTags = []string{"110", "111", "610", "611", "710", "711"}
)

// registerParties persists every person and corporate body the record
// names, preferring attributes from the authority file when a matching
// authority record exists.
func (a *Assembler) registerParties(ctx context.Context, rec marc.Record) error {
	for _, f := range rec.DataFields(personHeadingTags...) {
		known, err := a.Resolver.Person(ctx, f, resolve.RoleReferenced)
		if err != nil {
			return fmt.Errorf("failed to resolve person: %w", err)
		}
		if known != nil {
			continue
		}
		p := a.mapPerson(ctx, f)
		if p == nil || p.AuthIdent == "" {
			continue
		}
		if err := a.Store.People.Create(p); err != nil {
			return fmt.Errorf("failed to persist person %s: %w", p.AuthIdent, err)
		}
		a.Counts.Persons++
	}

	for _, f := range rec.DataFields(corporateHeadingTags...) {
		known, err := a.Resolver.Corporate(ctx, f, resolve.RoleReferenced)
		if err != nil {
			return fmt.Errorf("failed to resolve corporate body: %w", err)
		}
		if known != nil {
			continue
		}
		c := a.mapCorporate(ctx, f)
		if c == nil || c.AuthIdent == "" {
			continue
		}
		if err := a.Store.Corporates.Create(c); err != nil {
			return fmt.Errorf("failed to persist corporate body %s: %w", c.AuthIdent, err)
		}
		a.Counts.CorporateBodies++
	}
	return nil
}

func (a *Assembler) mapPerson(ctx context.Context, f marc.DataField) *frbr.Person {
	if a.Authority != nil {
		authRec, err := a.Authority.FindPerson(ctx, f.ConcatSubfields(authority.PersonQuerySubfields))
		if err != nil {
			slog.Warn("Authority person lookup degraded to bibliographic data", "err", err)
		} else if authRec != nil {
			if p := mappers.PersonFromAuthority(*authRec); p != nil {
				return p
			}
		}
	}
	return mappers.PersonFromField(f)
}

func (a *Assembler) mapCorporate(ctx context.Context, f marc.DataField) *frbr.CorporateBody {
	if a.Authority != nil {
		authRec, err := a.Authority.FindCorporate(ctx, f.ConcatSubfields(authority.CorporateQuerySubfields))
		if err != nil {
			slog.Warn("Authority corporate lookup degraded to bibliographic data", "err", err)
		} else if authRec != nil {
			if c := mappers.CorporateFromAuthority(*authRec); c != nil {
				return c
			}
		}
	}
	return mappers.CorporateFromField(f)
}

// registerWorks maps every identified work field, reusing persisted
// works with the same identity and linking composers and creators on the
// ones created fresh.
func (a *Assembler) registerWorks(ctx context.Context, rec marc.Record, group marc.Group, orders *listOrders) ([]*frbr.Work, error) {
	var works []*frbr.Work
	for _, cand := range workid.Identify(rec, group) {
		w, _ := a.Works.Map(ctx, rec, cand, group)
		if w == nil || w.AuthIdent == "" || w.AuthIdent == "::" {
			continue
		}

		existing, err := a.Store.Works.ByAuthIdent(w.AuthIdent)
		if err != nil {
			return nil, fmt.Errorf("failed to look up work %s: %w", w.AuthIdent, err)
		}
		if len(existing) > 0 {
			if len(existing) > 1 {
				slog.Warn("Multiple works matched, using earliest", "authIdent", w.AuthIdent, "matches", len(existing))
			}
			works = append(works, &existing[0])
			continue
		}

		if err := a.Store.Works.Create(w); err != nil {
			return nil, fmt.Errorf("failed to persist work %s: %w", w.AuthIdent, err)
		}
		a.Counts.Works++

		if err := a.linkWorkParties(ctx, rec, cand, w, group, orders); err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, nil
}
