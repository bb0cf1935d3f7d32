package vocab

// compositionForms decodes the 008/18-19 form of composition code.
var compositionForms = map[string]string{
	"an": "Anthems",
	"bd": "Ballads",
	"bt": "Ballets",
	"bg": "Bluegrass music",
	"bl": "Blues",
	"cn": "Canons and rounds",
	"ct": "Cantatas",
	"cz": "Canzonas",
	"cr": "Carols",
	"ca": "Chaconnes",
	"cs": "Chance compositions",
	"cp": "Chansons, polyphonic",
	"cc": "Chant, Christian",
	"cb": "Chants, other",
	"cl": "Chorale preludes",
	"ch": "Chorales",
	"cg": "Concerti grossi",
	"co": "Concertos",
	"cy": "Country music",
	"df": "Dance forms",
	"dv": "Divertimentos, serenades, cassations, divertissements, notturni",
	"ft": "Fantasias",
	"fm": "Folk music",
	"fg": "Fugues",
	"gm": "Gospel music",
	"hy": "Hymns",
	"jz": "Jazz",
	"md": "Madrigals",
	"mr": "Marches",
	"ms": "Masses",
	"mz": "Mazurkas",
	"mi": "Minuets",
	"mo": "Motets",
	"mp": "Motion picture music",
	"mc": "Musical revues and comedies",
	"nc": "Nocturnes",
	"op": "Operas",
	"or": "Oratorios",
	"ov": "Overtures",
	"pt": "Part-songs",
	"ps": "Passacaglias",
	"pm": "Passion music",
	"pv": "Pavans",
	"po": "Polonaises",
	"pp": "Popular music",
	"pr": "Program music",
	"rg": "Ragtime music",
	"rq": "Requiems",
	"rp": "Rhapsodies",
	"ri": "Ricercars",
	"rc": "Rock music",
	"rd": "Rondos",
	"sn": "Sonatas",
	"sg": "Songs",
	"st": "Studies and exercises",
	"su": "Suites",
	"sp": "Symphonic poems",
	"sy": "Symphonies",
	"tc": "Toccatas",
	"ts": "Trio-sonatas",
	"vr": "Variations",
	"wz": "Waltzes",
	"zz": "Other",
}

// audiences decodes the 008/22 target audience code.
var audiences = map[byte]string{
	'a': "Preschool",
	'b': "Primary",
	'c': "Pre-adolescent",
	'd': "Adolescent",
	'e': "Adult",
	'f': "Specialized",
	'g': "General",
	'j': "Juvenile",
}

// formsOfExpression decodes the leader/06 record type into the FRBR form
// of expression.
var formsOfExpression = map[byte]string{
	'j': "musical sound",
	'c': "notated music",
	'd': "manuscript notated music",
	'i': "spoken word",
}

// CompositionForm returns the form-of-composition label for an 008/18-19
// code, or "" when unknown or "mu" (multiple forms, listed in 047).
func CompositionForm(code string) string {
	return compositionForms[code]
}

// Audience returns the target-audience label for an 008/22 code.
func Audience(code byte) string {
	return audiences[code]
}

// FormOfExpression returns the FRBR form of expression for a leader/06
// record type byte.
func FormOfExpression(leaderType byte) string {
	return formsOfExpression[leaderType]
}
