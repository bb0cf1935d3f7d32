package resolve

import (
	"context"
	"log/slog"

	"github.com/lehigh-university-libraries/frbrize/internal/authority"
	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/mappers"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/store"
)

// Resolver finds the persisted entity a bibliographic reference denotes.
// Three tiers short-circuit on first success: exact authIdent match,
// normalName match, then an authority-established authIdent retried
// against the store. A nil Authority client skips the third tier.
type Resolver struct {
	People     *store.PersonRepository
	Corporates *store.CorporateRepository
	Authority  *authority.Client
	Counts     *Counts
}

// Person resolves a personal heading. A nil, nil return means not found:
// the caller creates the entity fresh instead.
func (r *Resolver) Person(ctx context.Context, f marc.DataField, role Role) (*frbr.Person, error) {
	if ident := mappers.PersonAuthIdent(f); ident != "" {
		matches, err := r.People.ByAuthIdent(ident)
		if err != nil {
			return nil, err
		}
		if p := firstPerson(matches, ident); p != nil {
			return p, nil
		}
	}

	if key := mappers.PersonNormalName(f); key != "" && key != "_" {
		matches, err := r.People.ByNormalName(key)
		if err != nil {
			return nil, err
		}
		if p := firstPerson(matches, key); p != nil {
			return p, nil
		}
	}

	if r.Authority != nil {
		rec, err := r.Authority.FindPerson(ctx, f.ConcatSubfields(authority.PersonQuerySubfields))
		if err != nil {
			slog.Warn("Authority person lookup degraded to no match", "err", err)
		} else if rec != nil {
			if cand := mappers.PersonFromAuthority(*rec); cand != nil && cand.AuthIdent != "" {
				matches, err := r.People.ByAuthIdent(cand.AuthIdent)
				if err != nil {
					return nil, err
				}
				if p := firstPerson(matches, cand.AuthIdent); p != nil {
					return p, nil
				}
			}
		}
	}

	r.Counts.Miss(role)
	return nil, nil
}

// Corporate resolves a corporate or meeting heading.
func (r *Resolver) Corporate(ctx context.Context, f marc.DataField, role Role) (*frbr.CorporateBody, error) {
	if ident := mappers.CorporateAuthIdent(f); ident != "" {
		matches, err := r.Corporates.ByAuthIdent(ident)
		if err != nil {
			return nil, err
		}
		if c := firstCorporate(matches, ident); c != nil {
			return c, nil
		}
	}

	if key := mappers.CorporateNormalName(f); key != "" && key != "_" {
		matches, err := r.Corporates.ByNormalName(key)
		if err != nil {
			return nil, err
		}
		if c := firstCorporate(matches, key); c != nil {
			return c, nil
		}
	}

	if r.Authority != nil {
		rec, err := r.Authority.FindCorporate(ctx, f.ConcatSubfields(authority.CorporateQuerySubfields))
		if err != nil {
			slog.Warn("Authority corporate lookup degraded to no match", "err", err)
		} else if rec != nil {
			if cand := mappers.CorporateFromAuthority(*rec); cand != nil && cand.AuthIdent != "" {
				matches, err := r.Corporates.ByAuthIdent(cand.AuthIdent)
				if err != nil {
					return nil, err
				}
				if c := firstCorporate(matches, cand.AuthIdent); c != nil {
					return c, nil
				}
			}
		}
	}

	r.Counts.Miss(role)
	return nil, nil
}

// firstPerson applies the pick-first-warn policy: multiple candidates
// are a known ambiguity, resolved by creation order.
func firstPerson(matches []frbr.Person, key string) *frbr.Person {
	if len(matches) == 0 {
		return nil
	}
	if len(matches) > 1 {
		slog.Warn("Multiple persons matched, using earliest", "key", key, "matches", len(matches))
	}
	return &matches[0]
}

func firstCorporate(matches []frbr.CorporateBody, key string) *frbr.CorporateBody {
	if len(matches) == 0 {
		return nil
	}
	if len(matches) > 1 {
		slog.Warn("Multiple corporate bodies matched, using earliest", "key", key, "matches", len(matches))
	}
	return &matches[0]
}
