package authority

import (
	"context"

	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/norm"
)

// Heading subfield sets used both to build queries and to verify
// candidates against them.
const (
	PersonQuerySubfields    = "abcdejq"
	CorporateQuerySubfields = "abcdenq"
)

// FindPerson returns the authority record establishing a personal name,
// or nil. Candidates are records whose 100 heading carries no title
// subfield; with more than one candidate only an exact normalized heading
// match is accepted.
func (c *Client) FindPerson(ctx context.Context, name string) (*marc.Record, error) {
	recs, err := c.records(ctx, ProfilePersonalName, name)
	if err != nil || len(recs) == 0 {
		return nil, err
	}

	var candidates []marc.Record
	for _, rec := range recs {
		if h, ok := rec.First("100"); ok && !h.HasSubfield("t") {
			candidates = append(candidates, rec)
		}
	}
	if len(candidates) == 1 {
		return &candidates[0], nil
	}
	want := norm.NormalName(name)
	for i := range candidates {
		h, _ := candidates[i].First("100")
		if norm.NormalName(h.ConcatSubfields(PersonQuerySubfields)) == want {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// FindCorporate returns the authority record establishing a corporate
// name, or nil. The heading may be a 110 or a 111.
func (c *Client) FindCorporate(ctx context.Context, name string) (*marc.Record, error) {
	recs, err := c.records(ctx, ProfileCorporateName, name)
	if err != nil || len(recs) == 0 {
		return nil, err
	}

	var candidates []marc.Record
	for _, rec := range recs {
		if h, ok := rec.First("110", "111"); ok && !h.HasSubfield("t") {
			candidates = append(candidates, rec)
		}
	}
	if len(candidates) == 1 {
		return &candidates[0], nil
	}
	want := norm.NormalName(name)
	for i := range candidates {
		h, _ := candidates[i].First("110", "111")
		if norm.NormalName(h.ConcatSubfields(CorporateQuerySubfields)) == want {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// FindWork returns the authority record establishing a uniform title, or
// nil. A matching record has a heading carrying a title subfield, none of
// k/p/o, and a normalized name-title equal to the normalized uniform
// title.
func (c *Client) FindWork(ctx context.Context, uniformTitle string) (*marc.Record, error) {
	recs, err := c.records(ctx, ProfileUniformTitle, uniformTitle)
	if err != nil || len(recs) == 0 {
		return nil, err
	}

	want := norm.NormalName(uniformTitle)
	for i := range recs {
		for _, h := range recs[i].DataFields("100", "110", "111", "130") {
			if !h.HasSubfield("t") && h.Tag != "130" {
				continue
			}
			if h.HasSubfield("k") || h.HasSubfield("p") || h.HasSubfield("o") {
				continue
			}
			title := h.ConcatSubfields("tmnr")
			if h.Tag == "130" {
				title = h.ConcatSubfields("amnr")
			}
			if norm.NormalName(title) == want {
				return &recs[i], nil
			}
		}
	}
	return nil, nil
}
