package frbr

// Relationship edges. Each edge carries a ListOrder for stable display
// and, where relator codes apply, a Role from the relator vocabulary.
// Edges are never deleted.

// WorkComposer links a Work to a composing responsible party.
type WorkComposer struct {
	ID        uint      `gorm:"primaryKey"`
	WorkID    uint      `gorm:"index"`
	PartyKind PartyKind `gorm:"index"`
	PartyID   uint      `gorm:"index"`
	Role      string
	ListOrder int
}

// WorkCreator links a Work to a non-composer creator (librettist,
// lyricist).
type WorkCreator struct {
	ID        uint      `gorm:"primaryKey"`
	WorkID    uint      `gorm:"index"`
	PartyKind PartyKind `gorm:"index"`
	PartyID   uint      `gorm:"index"`
	Role      string
	ListOrder int
}

// WorkExpression is the realizedThrough edge from a Work to one of its
// Expressions.
type WorkExpression struct {
	ID           uint `gorm:"primaryKey"`
	WorkID       uint `gorm:"index"`
	ExpressionID uint `gorm:"index"`
	Role         string
	ListOrder    int
}

// ExpressionParty links an Expression to a realizing responsible party
// (performer, conductor, arranger, ...).
type ExpressionParty struct {
	ID           uint      `gorm:"primaryKey"`
	ExpressionID uint      `gorm:"index"`
	PartyKind    PartyKind `gorm:"index"`
	PartyID      uint      `gorm:"index"`
	Role         string
	ListOrder    int
}

// ExpressionManifestation is the embodiedIn edge from an Expression to a
// Manifestation.
type ExpressionManifestation struct {
	ID              uint `gorm:"primaryKey"`
	ExpressionID    uint `gorm:"index"`
	ManifestationID uint `gorm:"index"`
	Role            string
	ListOrder       int
}

// ManifestationParty is the producedBy edge from a Manifestation to a
// responsible party.
type ManifestationParty struct {
	ID              uint      `gorm:"primaryKey"`
	ManifestationID uint      `gorm:"index"`
	PartyKind       PartyKind `gorm:"index"`
	PartyID         uint      `gorm:"index"`
	Role            string
	ListOrder       int
}

// Edge role constants shared by the assembly passes.
const (
	RoleRealizedThrough = "realizedThrough"
	RoleEmbodiedIn      = "embodiedIn"
	RoleProducedBy      = "producedBy"
)
