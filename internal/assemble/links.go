package assemble

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/mappers"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/resolve"
	"github.com/lehigh-university-libraries/frbrize/internal/vocab"
	"github.com/lehigh-university-libraries/frbrize/internal/workid"
)

// listOrders holds one running position per edge table, scoped to a
// single record pass.
type listOrders struct {
	composer   int
	creator    int
	realizer   int
	workExpr   int
	embodied   int
	manifParty int
}

// linkWorkParties attaches the composers and any librettist or lyricist
// creators to a freshly created work. An analytic 700 composes its own
// work; 240 and 245 works are composed by the main entry headings, with
// corporate main entries qualifying only in GROUP1A. Title-derived works
// (130/730/740) carry no composer.
func (a *Assembler) linkWorkParties(ctx context.Context, rec marc.Record, cand workid.Candidate, w *frbr.Work, group marc.Group, orders *listOrders) error {
	switch cand.Field.Tag {
	case "700":
		if err := a.linkComposer(ctx, cand.Field, frbr.KindPerson, w, orders); err != nil {
			return err
		}
	case "240", "245":
		for _, f := range rec.DataFields("100") {
			if err := a.linkComposer(ctx, f, frbr.KindPerson, w, orders); err != nil {
				return err
			}
		}
		if group == marc.Group1A {
			for _, f := range rec.DataFields("110", "111") {
				if err := a.linkComposer(ctx, f, frbr.KindCorporate, w, orders); err != nil {
					return err
				}
			}
		}
	}

	for _, f := range rec.DataFields("700") {
		if f.Value("t") != "" {
			continue
		}
		p := (*frbr.Person)(nil)
		for _, code := range f.ValueList("4") {
			// A composing 700 is handled by the composer edge above.
			if !vocab.IsCreator(code) || code == "cmp" {
				continue
			}
			if p == nil {
				var err error
				p, err = a.Resolver.Person(ctx, f, resolve.RoleCreator)
				if err != nil {
					return err
				}
				if p == nil {
					break
				}
			}
			edge := frbr.WorkCreator{
				WorkID:    w.ID,
				PartyKind: frbr.KindPerson,
				PartyID:   p.ID,
				Role:      vocab.RoleName(code),
				ListOrder: orders.creator,
			}
			orders.creator++
			if err := a.Store.Edges.Create(&edge); err != nil {
				return fmt.Errorf("failed to link creator: %w", err)
			}
		}
	}
	return nil
}

func (a *Assembler) linkComposer(ctx context.Context, f marc.DataField, kind frbr.PartyKind, w *frbr.Work, orders *listOrders) error {
	var party frbr.Party
	var err error
	switch kind {
	case frbr.KindPerson:
		var p *frbr.Person
		p, err = a.Resolver.Person(ctx, f, resolve.RoleComposer)
		if p != nil {
			party = p
		}
	case frbr.KindCorporate:
		var c *frbr.CorporateBody
		c, err = a.Resolver.Corporate(ctx, f, resolve.RoleComposer)
		if c != nil {
			party = c
		}
	}
	if err != nil {
		return err
	}
	if party == nil {
		return nil
	}
	edge := frbr.WorkComposer{
		WorkID:    w.ID,
		PartyKind: party.Kind(),
		PartyID:   party.EntityID(),
		Role:      "composer",
		ListOrder: orders.composer,
	}
	orders.composer++
	if err := a.Store.Edges.Create(&edge); err != nil {
		return fmt.Errorf("failed to link composer: %w", err)
	}
	return nil
}

// attachExpression finds the expression of a work this record describes,
// creating one when no persisted expression matches, and embodies it in
// the manifestation.
func (a *Assembler) attachExpression(ctx context.Context, rec marc.Record, group marc.Group, w *frbr.Work, manif *frbr.Manifestation, orders *listOrders) error {
	existing, err := a.Store.Expressions.ForWork(w.ID)
	if err != nil {
		return fmt.Errorf("failed to load expressions: %w", err)
	}

	var expr *frbr.Expression
	for i := range existing {
		refs, err := a.realizerRefs(existing[i].Realizers)
		if err != nil {
			return err
		}
		if !mappers.ExpressionMatches(rec, &existing[i], refs) {
			continue
		}
		if expr != nil {
			slog.Warn("Multiple expressions matched, using earliest", "work", w.AuthIdent)
			break
		}
		expr = &existing[i]
	}

	if expr == nil {
		expr = mappers.ExpressionFromWork(rec, w)
		if err := a.Store.Expressions.Create(expr); err != nil {
			return fmt.Errorf("failed to persist expression: %w", err)
		}
		a.Counts.Expressions++

		if err := a.linkRealizers(ctx, rec, group, expr, orders); err != nil {
			return err
		}

		edge := frbr.WorkExpression{
			WorkID:       w.ID,
			ExpressionID: expr.ID,
			Role:         frbr.RoleRealizedThrough,
			ListOrder:    orders.workExpr,
		}
		orders.workExpr++
		if err := a.Store.Edges.Create(&edge); err != nil {
			return fmt.Errorf("failed to link expression to work: %w", err)
		}
	}

	edge := frbr.ExpressionManifestation{
		ExpressionID:    expr.ID,
		ManifestationID: manif.ID,
		Role:            frbr.RoleEmbodiedIn,
		ListOrder:       orders.embodied,
	}
	orders.embodied++
	if err := a.Store.Edges.Create(&edge); err != nil {
		return fmt.Errorf("failed to link expression to manifestation: %w", err)
	}
	return nil
}

// realizerRefs loads the identity keys behind a persisted expression's
// realizer edges.
func (a *Assembler) realizerRefs(edges []frbr.ExpressionParty) ([]mappers.RealizerRef, error) {
	refs := make([]mappers.RealizerRef, 0, len(edges))
	for _, e := range edges {
		switch e.PartyKind {
		case frbr.KindPerson:
			p, err := a.Store.People.ByID(e.PartyID)
			if err != nil {
				return nil, fmt.Errorf("failed to load realizer person: %w", err)
			}
			refs = append(refs, mappers.RealizerRef{Kind: p.Kind(), AuthIdent: p.Identity()})
		case frbr.KindCorporate:
			c, err := a.Store.Corporates.ByID(e.PartyID)
			if err != nil {
				return nil, fmt.Errorf("failed to load realizer corporate body: %w", err)
			}
			refs = append(refs, mappers.RealizerRef{Kind: c.Kind(), AuthIdent: c.Identity()})
		}
	}
	return refs, nil
}

// linkRealizers attaches performing parties to a new expression. Main
// entry persons count as realizers outside GROUP1A, where the 100 is the
// composer by definition.
func (a *Assembler) linkRealizers(ctx context.Context, rec marc.Record, group marc.Group, expr *frbr.Expression, orders *listOrders) error {
	personTags := []string{"700"}
	if group != marc.Group1A {
		personTags = []string{"100", "700"}
	}

	for _, f := range rec.DataFields(personTags...) {
		var roles []string
		for _, code := range f.ValueList("4") {
			if vocab.IsRealizer(code) {
				roles = append(roles, vocab.RoleName(code))
			}
		}
		if len(roles) == 0 {
			continue
		}
		p, err := a.Resolver.Person(ctx, f, resolve.RoleRealizer)
		if err != nil {
			return err
		}
		if p == nil {
			continue
		}
		for _, role := range roles {
			if err := a.linkRealizer(expr, frbr.KindPerson, p.ID, role, orders); err != nil {
				return err
			}
		}
	}

	if group != marc.Group1A {
		for _, f := range rec.DataFields("110") {
			c, err := a.Resolver.Corporate(ctx, f, resolve.RoleRealizer)
			if err != nil {
				return err
			}
			if c == nil {
				continue
			}
			if err := a.linkRealizer(expr, frbr.KindCorporate, c.ID, "performer", orders); err != nil {
				return err
			}
		}
	}

	for _, f := range rec.DataFields("710") {
		if !hasRelatorCode(f, "prf") {
			continue
		}
		c, err := a.Resolver.Corporate(ctx, f, resolve.RoleRealizer)
		if err != nil {
			return err
		}
		if c == nil {
			continue
		}
		if err := a.linkRealizer(expr, frbr.KindCorporate, c.ID, "performer", orders); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) linkRealizer(expr *frbr.Expression, kind frbr.PartyKind, partyID uint, role string, orders *listOrders) error {
	edge := frbr.ExpressionParty{
		ExpressionID: expr.ID,
		PartyKind:    kind,
		PartyID:      partyID,
		Role:         role,
		ListOrder:    orders.realizer,
	}
	orders.realizer++
	if err := a.Store.Edges.Create(&edge); err != nil {
		return fmt.Errorf("failed to link realizer: %w", err)
	}
	return nil
}

// linkManifestationParties attaches the parties responsible for the
// manifestation itself. Which headings qualify depends on whether any
// works were extracted and on the record group. GROUP1C takes only the
// producer path: its added entries are the production credits, not
// associates of an absent work.
func (a *Assembler) linkManifestationParties(ctx context.Context, rec marc.Record, group marc.Group, manif *frbr.Manifestation, workCount int, orders *listOrders) error {
	if group == marc.GroupError {
		return nil
	}
	if group == marc.Group1C {
		return a.linkProducers(ctx, rec, group, manif, orders)
	}

	if workCount > 0 {
		if err := a.linkNonRealizerPersons(ctx, rec, manif, orders); err != nil {
			return err
		}
	} else {
		if err := a.linkNonWorkAssociates(ctx, rec, manif, orders); err != nil {
			return err
		}
	}

	return a.linkProducers(ctx, rec, group, manif, orders)
}

// linkNonRealizerPersons links every 700 person without a work title and
// without a performing role. A heading with no relator code at all is
// linked with an empty role rather than dropped.
func (a *Assembler) linkNonRealizerPersons(ctx context.Context, rec marc.Record, manif *frbr.Manifestation, orders *listOrders) error {
	for _, f := range rec.DataFields("700") {
		if f.Value("t") != "" {
			continue
		}
		codes := f.ValueList("4")
		if len(codes) == 0 {
			if err := a.linkManifPerson(ctx, f, manif, "", resolve.RoleProducer, orders); err != nil {
				return err
			}
			continue
		}
		for _, code := range codes {
			if !vocab.IsCreator(code) && !vocab.IsProducer(code) {
				continue
			}
			if err := a.linkManifPerson(ctx, f, manif, vocab.RoleName(code), resolve.RoleProducer, orders); err != nil {
				return err
			}
		}
	}
	return nil
}

// linkNonWorkAssociates links every named party when no work could be
// extracted, so the record's associations are not lost.
func (a *Assembler) linkNonWorkAssociates(ctx context.Context, rec marc.Record, manif *frbr.Manifestation, orders *listOrders) error {
	for _, f := range rec.DataFields("100", "700") {
		if err := a.linkManifPerson(ctx, f, manif, firstRecognizedRole(f), resolve.RoleProducer, orders); err != nil {
			return err
		}
	}
	for _, f := range rec.DataFields("110", "710") {
		if err := a.linkManifCorporate(ctx, f, manif, firstRecognizedRole(f), resolve.RoleProducer, orders); err != nil {
			return err
		}
	}
	return nil
}

// linkProducers attaches producing corporate bodies, and for GROUP1C
// records producing persons as well. GROUP1A keeps only its first 711.
func (a *Assembler) linkProducers(ctx context.Context, rec marc.Record, group marc.Group, manif *frbr.Manifestation, orders *listOrders) error {
	switch group {
	case marc.Group1A:
		if f, ok := rec.First("711"); ok {
			return a.linkManifCorporate(ctx, f, manif, frbr.RoleProducedBy, resolve.RoleProducer, orders)
		}
		return nil
	case marc.Group1C:
		for _, f := range rec.DataFields("700") {
			if f.Value("t") != "" {
				continue
			}
			if err := a.linkManifPerson(ctx, f, manif, frbr.RoleProducedBy, resolve.RoleProducer, orders); err != nil {
				return err
			}
		}
		for _, f := range rec.DataFields("710", "711") {
			if f.Value("t") != "" {
				continue
			}
			if err := a.linkManifCorporate(ctx, f, manif, frbr.RoleProducedBy, resolve.RoleProducer, orders); err != nil {
				return err
			}
		}
		return nil
	}

	for _, f := range rec.DataFields("111", "711") {
		if err := a.linkManifCorporate(ctx, f, manif, frbr.RoleProducedBy, resolve.RoleProducer, orders); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) linkManifPerson(ctx context.Context, f marc.DataField, manif *frbr.Manifestation, role string, miss resolve.Role, orders *listOrders) error {
	p, err := a.Resolver.Person(ctx, f, miss)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	edge := frbr.ManifestationParty{
		ManifestationID: manif.ID,
		PartyKind:       frbr.KindPerson,
		PartyID:         p.ID,
		Role:            role,
		ListOrder:       orders.manifParty,
	}
	orders.manifParty++
	if err := a.Store.Edges.Create(&edge); err != nil {
		return fmt.Errorf("failed to link manifestation person: %w", err)
	}
	return nil
}

func (a *Assembler) linkManifCorporate(ctx context.Context, f marc.DataField, manif *frbr.Manifestation, role string, miss resolve.Role, orders *listOrders) error {
	c, err := a.Resolver.Corporate(ctx, f, miss)
	if err != nil {
		return err
	}
	if c == nil {
		return nil
	}
	edge := frbr.ManifestationParty{
		ManifestationID: manif.ID,
		PartyKind:       frbr.KindCorporate,
		PartyID:         c.ID,
		Role:            role,
		ListOrder:       orders.manifParty,
	}
	orders.manifParty++
	if err := a.Store.Edges.Create(&edge); err != nil {
		return fmt.Errorf("failed to link manifestation corporate body: %w", err)
	}
	return nil
}

// hasRelatorCode reports whether any relator subfield on the heading
// carries the code.
func hasRelatorCode(f marc.DataField, code string) bool {
	for _, c := range f.ValueList("4") {
		if c == code {
			return true
		}
	}
	return false
}

// firstRecognizedRole returns the role name of the first recognized
// relator code on the heading.
func firstRecognizedRole(f marc.DataField) string {
	for _, code := range f.ValueList("4") {
		if vocab.IsRecognized(code) {
			return vocab.RoleName(code)
		}
	}
	return ""
}
