package frbr

// Work is an abstract intellectual creation. AuthIdent is the composite
// key authIdent(title) + "::" + composer authIdent, so a title cannot
// collide across creators. Group records the classification under which
// the work was created.
type Work struct {
	ID        uint   `gorm:"primaryKey"`
	AuthIdent string `gorm:"index"`
	Group     string

	Titles             []Title   `gorm:"serializer:json"`
	Forms              []Term    `gorm:"serializer:json"`
	Dates              []Date    `gorm:"serializer:json"`
	Audiences          []Term    `gorm:"serializer:json"`
	PerformanceMediums []Medium  `gorm:"serializer:json"`
	Designations       []string  `gorm:"serializer:json"`
	Keys               []Term    `gorm:"serializer:json"`
	SubjectHeadings    []Heading `gorm:"serializer:json"`
	Notes              []Note    `gorm:"serializer:json"`
	Languages          []Term    `gorm:"serializer:json"`

	Composers    []WorkComposer   `gorm:"foreignKey:WorkID"`
	Creators     []WorkCreator    `gorm:"foreignKey:WorkID"`
	Realizations []WorkExpression `gorm:"foreignKey:WorkID"`
}

// Expression is one realization of a Work. It is matched heuristically,
// not by identity; see the expression pass.
type Expression struct {
	ID uint `gorm:"primaryKey"`

	Titles             []Title  `gorm:"serializer:json"`
	Forms              []Term   `gorm:"serializer:json"`
	Dates              []Date   `gorm:"serializer:json"`
	Languages          []Term   `gorm:"serializer:json"`
	Extents            []string `gorm:"serializer:json"`
	ScoreType          string
	PerformanceMediums []Medium `gorm:"serializer:json"`
	Notes              []Note   `gorm:"serializer:json"`
	PerformancePlaces  []string `gorm:"serializer:json"`
	Keys               []Term   `gorm:"serializer:json"`
	Genres             []Term   `gorm:"serializer:json"`

	Realizers   []ExpressionParty         `gorm:"foreignKey:ExpressionID"`
	Embodiments []ExpressionManifestation `gorm:"foreignKey:ExpressionID"`
}

// Manifestation embodies exactly one Expression and is created fresh for
// every source record, never deduplicated. FormOfExpression is
// denormalized for downstream filtering.
type Manifestation struct {
	ID               uint `gorm:"primaryKey"`
	ControlNumber    string
	FormOfExpression string

	Titles                      []Title       `gorm:"serializer:json"`
	Responsibilities            []string      `gorm:"serializer:json"`
	Designations                []string      `gorm:"serializer:json"`
	Publications                []Publication `gorm:"serializer:json"`
	Series                      []string      `gorm:"serializer:json"`
	CarrierForms                []Term        `gorm:"serializer:json"`
	CarrierExtents              []string      `gorm:"serializer:json"`
	PhysicalMediums             []Term        `gorm:"serializer:json"`
	CaptureModes                []Term        `gorm:"serializer:json"`
	CarrierDimensions           []Term        `gorm:"serializer:json"`
	Identifiers                 []Identifier  `gorm:"serializer:json"`
	PlayingSpeeds               []Term        `gorm:"serializer:json"`
	TapeConfigurations          []Term        `gorm:"serializer:json"`
	SoundKinds                  []Term        `gorm:"serializer:json"`
	ReproductionCharacteristics []Term        `gorm:"serializer:json"`
	AccessModes                 []string      `gorm:"serializer:json"`
	AccessAddresses             []Access      `gorm:"serializer:json"`
	Notes                       []Note        `gorm:"serializer:json"`
	AccompanyingLanguages       []Term        `gorm:"serializer:json"`

	Producers []ManifestationParty `gorm:"foreignKey:ManifestationID"`
}
