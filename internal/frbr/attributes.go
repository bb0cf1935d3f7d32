package frbr

// Attribute value types shared across entities. They serialize as JSON
// columns; only the identity keys are queried relationally.

// Name is a personal or corporate name with its normalized form.
type Name struct {
	Text       string `json:"text"`
	Type       string `json:"type,omitempty"`
	Vocabulary string `json:"vocabulary,omitempty"`
	Normal     string `json:"normal,omitempty"`
}

// Date is a structured date attribute. Type is "single" or "range";
// Function, when present, is "birth" or "death".
type Date struct {
	Text     string `json:"text"`
	Normal   string `json:"normal,omitempty"`
	Type     string `json:"type,omitempty"`
	Function string `json:"function,omitempty"`
}

// Title is a work, expression, or manifestation title. Offset is the
// nonfiling-character count carried by the source field's indicator.
type Title struct {
	Text       string `json:"text"`
	Type       string `json:"type,omitempty"`
	Vocabulary string `json:"vocabulary,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// Term is a controlled-vocabulary value (form, key, audience, language,
// genre, carrier facet).
type Term struct {
	Text       string `json:"text"`
	Vocabulary string `json:"vocabulary,omitempty"`
}

// Medium is a single performance medium, with an optional player count
// extracted from "(n)" quantity notation.
type Medium struct {
	Text       string `json:"text"`
	Quantity   string `json:"quantity,omitempty"`
	Vocabulary string `json:"vocabulary,omitempty"`
}

// Heading is a subject heading with its per-tag type.
type Heading struct {
	Text       string `json:"text"`
	Type       string `json:"type,omitempty"`
	Vocabulary string `json:"vocabulary,omitempty"`
}

// Note is free text with an availability of "public" or "private".
type Note struct {
	Text         string `json:"text"`
	Type         string `json:"type,omitempty"`
	Availability string `json:"availability,omitempty"`
}

// Identifier is a typed manifestation identifier (UPC, EAN, publisher or
// matrix number, OCLC number).
type Identifier struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Publication is one imprint statement.
type Publication struct {
	Place      string `json:"place,omitempty"`
	Publisher  string `json:"publisher,omitempty"`
	DateText   string `json:"dateText,omitempty"`
	DateNormal string `json:"dateNormal,omitempty"`
}

// Access is a typed online access address.
type Access struct {
	URI  string `json:"uri"`
	Type string `json:"type,omitempty"`
}
