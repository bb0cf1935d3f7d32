package mappers

import (
	"strings"

	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/vocab"
)

// streamingHosts are URL fragments identifying licensed streaming
// providers; a record pointing at one is accessible online.
var streamingHosts = []string{
	"dramonline.org",
	"naxosmusiclibrary.com",
}

// ManifestationMapper maps a bibliographic record into a Manifestation.
// Every record yields a fresh manifestation; nothing is deduplicated.
type ManifestationMapper struct {
	// CatalogURLBase, when set, prefixes the record's control number
	// into a catalog access address.
	CatalogURLBase string
}

// Map decodes the record's descriptive and physical facets.
func (m *ManifestationMapper) Map(rec marc.Record) *frbr.Manifestation {
	manif := &frbr.Manifestation{
		ControlNumber:    rec.ControlNumber(),
		FormOfExpression: vocab.FormOfExpression(rec.LeaderType),
	}

	mapManifTitles(manif, rec)
	mapManifPublications(manif, rec)
	mapManifSeries(manif, rec)
	mapManifCarrier(manif, rec)
	mapManifIdentifiers(manif, rec)
	m.mapManifAccess(manif, rec)
	mapManifNotes(manif, rec)
	mapManifLanguages(manif, rec)
	return manif
}

func mapManifTitles(manif *frbr.Manifestation, rec marc.Record) {
	for _, f := range rec.DataFields("245") {
		if text := f.ConcatAllExcept("ch"); text != "" {
			manif.Titles = append(manif.Titles, frbr.Title{
				Text:   text,
				Type:   "transcribed",
				Offset: nonfilingOffset(f.Ind2),
			})
		}
		if c := f.Value("c"); c != "" {
			manif.Responsibilities = append(manif.Responsibilities, c)
		}
	}
	for _, f := range rec.DataFields("250") {
		if text := f.ConcatSubfields("ab"); text != "" {
			manif.Designations = append(manif.Designations, text)
		}
	}
}

// mapManifPublications merges each imprint field with the fixed-field
// fallbacks: country of publication for a missing place, the first
// publisher number field for a missing publisher, and 008 dates for a
// missing date. The normalized date always comes from the fixed field.
func mapManifPublications(manif *frbr.Manifestation, rec marc.Record) {
	var fixedCountry, fixedDate string
	for _, cf := range rec.ControlFields("008") {
		if cf.HasRange(15, 17) && fixedCountry == "" {
			fixedCountry = vocab.Country(cf.Range(15, 17))
		}
		if cf.HasRange(7, 10) && fixedDate == "" {
			fixedDate = strings.TrimSpace(cf.Range(7, 10))
		}
	}

	for _, f := range rec.DataFields("260") {
		pub := frbr.Publication{
			Place:      f.Value("a"),
			Publisher:  f.Value("b"),
			DateText:   f.Value("c"),
			DateNormal: fixedDate,
		}
		if pub.Place == "" {
			pub.Place = fixedCountry
		}
		if pub.Publisher == "" {
			for _, n := range rec.DataFields("028") {
				if n.Ind1 != "0" {
					pub.Publisher = n.Value("b")
					break
				}
			}
		}
		if pub.DateText == "" {
			pub.DateText = fixedDate
		}
		if pub.Place == "" && pub.Publisher == "" && pub.DateText == "" {
			continue
		}
		manif.Publications = append(manif.Publications, pub)
	}
}

func mapManifSeries(manif *frbr.Manifestation, rec marc.Record) {
	for _, f := range rec.DataFields("440", "490", "800", "810", "811", "830") {
		if text := f.ConcatAllExcept("x468"); text != "" {
			manif.Series = append(manif.Series, text)
		}
	}
	for _, f := range rec.DataFields("300") {
		if text := f.ConcatSubfields("af"); text != "" {
			manif.CarrierExtents = append(manif.CarrierExtents, text)
		}
	}
}

// mapManifCarrier decodes the fixed-position 007 facets.
func mapManifCarrier(manif *frbr.Manifestation, rec marc.Record) {
	decode := func(cf marc.ControlField, pos int, lookup func(byte) string, vocabulary string) (frbr.Term, bool) {
		if !cf.HasRange(pos, pos) {
			return frbr.Term{}, false
		}
		label := lookup(cf.Value[pos])
		if label == "" {
			return frbr.Term{}, false
		}
		return frbr.Term{Text: label, Vocabulary: vocabulary}, true
	}

	for _, cf := range rec.ControlFields("007") {
		if t, ok := decode(cf, 1, vocab.CarrierForm, "marcmaterial"); ok {
			manif.CarrierForms = append(manif.CarrierForms, t)
		}
		if t, ok := decode(cf, 3, vocab.PlayingSpeed, "marcspeed"); ok {
			manif.PlayingSpeeds = append(manif.PlayingSpeeds, t)
		}
		if t, ok := decode(cf, 4, vocab.SoundKind, "marcplaybackchannel"); ok {
			manif.SoundKinds = append(manif.SoundKinds, t)
		}
		if t, ok := decode(cf, 6, vocab.CarrierDimension, "marcmaterial"); ok {
			manif.CarrierDimensions = append(manif.CarrierDimensions, t)
		}
		if t, ok := decode(cf, 8, vocab.TapeConfiguration, "marctapeconfiguration"); ok {
			manif.TapeConfigurations = append(manif.TapeConfigurations, t)
		}
		if t, ok := decode(cf, 10, vocab.PhysicalMedium, "marcmaterial"); ok {
			manif.PhysicalMediums = append(manif.PhysicalMediums, t)
		}
		if t, ok := decode(cf, 12, vocab.ReproductionCharacteristic, "marcspecialplayback"); ok {
			manif.ReproductionCharacteristics = append(manif.ReproductionCharacteristics, t)
		}
		if t, ok := decode(cf, 13, vocab.CaptureMode, "marccapture"); ok {
			manif.CaptureModes = append(manif.CaptureModes, t)
		}
	}
}

func mapManifIdentifiers(manif *frbr.Manifestation, rec marc.Record) {
	add := func(text, idType string) {
		if text != "" {
			manif.Identifiers = append(manif.Identifiers, frbr.Identifier{Text: text, Type: idType})
		}
	}
	for _, f := range rec.DataFields("024") {
		switch f.Ind1 {
		case "1":
			add(f.Value("a"), "upc")
		case "3":
			add(f.Value("a"), "ean")
		}
	}
	for _, f := range rec.DataFields("028") {
		text := f.Value("a")
		if b := f.Value("b"); b != "" && text != "" {
			text = b + " : " + text
		}
		switch f.Ind1 {
		case "0":
			add(text, "publicationnumber")
		case "1":
			add(text, "matrixnumber")
		}
	}
	for _, f := range rec.DataFields("035") {
		add(f.Value("a"), "oclcnumber")
	}
}

func (m *ManifestationMapper) mapManifAccess(manif *frbr.Manifestation, rec marc.Record) {
	if m.CatalogURLBase != "" && manif.ControlNumber != "" {
		manif.AccessAddresses = append(manif.AccessAddresses, frbr.Access{
			URI:  m.CatalogURLBase + manif.ControlNumber,
			Type: "catalog",
		})
	}
	online := false
	for _, f := range rec.DataFields("856") {
		for _, u := range f.ValueList("u") {
			manif.AccessAddresses = append(manif.AccessAddresses, frbr.Access{URI: u, Type: "web"})
			for _, host := range streamingHosts {
				if strings.Contains(u, host) {
					online = true
				}
			}
		}
	}
	if online {
		manif.AccessModes = append(manif.AccessModes, "online")
	}
}

func mapManifNotes(manif *frbr.Manifestation, rec marc.Record) {
	for _, f := range rec.DataFields("505") {
		if text := f.ConcatAllExcept(""); text != "" {
			manif.Notes = append(manif.Notes, frbr.Note{Text: text, Type: "contents", Availability: "public"})
		}
	}
}

func mapManifLanguages(manif *frbr.Manifestation, rec marc.Record) {
	for _, f := range rec.DataFields("041") {
		for _, code := range []string{"b", "e", "g"} {
			for _, v := range f.ValueList(code) {
				label := vocab.Language(v)
				if label == "" {
					label = v
				}
				manif.AccompanyingLanguages = append(manif.AccompanyingLanguages, frbr.Term{
					Text:       label,
					Vocabulary: "iso639-2b",
				})
			}
		}
	}
}
