// Package frbr defines the persisted entity model: Work, Expression,
// Manifestation, and the two ResponsibleParty variants, plus the
// relationship edges between them.
package frbr

// PartyKind discriminates the two ResponsibleParty variants on
// relationship edges.
type PartyKind string

const (
	KindPerson    PartyKind = "person"
	KindCorporate PartyKind = "corporatebody"
)

// Party is the ResponsibleParty sum type. Exactly two concrete variants
// exist: Person and CorporateBody.
type Party interface {
	Kind() PartyKind
	EntityID() uint
	Identity() string
}

// Person is an individual responsible party. AuthIdent is the primary
// match key, NormalName the coarser fallback; both are derived from
// heading content, never assigned. VariantKeys holds one normalized key
// per see-from name variant, persisted as matchable NameKey rows
// alongside NormalName.
type Person struct {
	ID         uint   `gorm:"primaryKey"`
	AuthIdent  string `gorm:"index"`
	NormalName string `gorm:"index"`

	VariantKeys []string `gorm:"serializer:json"`

	Names        []Name   `gorm:"serializer:json"`
	Dates        []Date   `gorm:"serializer:json"`
	Titles       []Title  `gorm:"serializer:json"`
	Designations []string `gorm:"serializer:json"`
	Biographies  []Note   `gorm:"serializer:json"`
	Notes        []Note   `gorm:"serializer:json"`
}

func (p Person) Kind() PartyKind  { return KindPerson }
func (p Person) EntityID() uint   { return p.ID }
func (p Person) Identity() string { return p.AuthIdent }

// CorporateBody is an organizational responsible party.
type CorporateBody struct {
	ID         uint   `gorm:"primaryKey"`
	AuthIdent  string `gorm:"index"`
	NormalName string `gorm:"index"`

	VariantKeys []string `gorm:"serializer:json"`

	Names     []Name   `gorm:"serializer:json"`
	Numbers   []string `gorm:"serializer:json"`
	Places    []string `gorm:"serializer:json"`
	Dates     []Date   `gorm:"serializer:json"`
	Histories []Note   `gorm:"serializer:json"`
	Notes     []Note   `gorm:"serializer:json"`
}

func (c CorporateBody) Kind() PartyKind  { return KindCorporate }
func (c CorporateBody) EntityID() uint   { return c.ID }
func (c CorporateBody) Identity() string { return c.AuthIdent }

// NameKey is one matchable normalized name for a persisted party: the
// authorized NormalName plus one row per see-from variant. Fallback name
// matching queries this table so variant names resolve too.
type NameKey struct {
	ID         uint      `gorm:"primaryKey"`
	PartyKind  PartyKind `gorm:"index"`
	PartyID    uint      `gorm:"index"`
	NormalName string    `gorm:"index"`
}
