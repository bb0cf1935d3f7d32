// Package vocab centralizes the controlled vocabularies consulted by the
// record classifier, the work identifier, and the entity mappers: relator
// codes, the collective-title blacklist, the musical forms list, and the
// fixed-position code tables decoded out of MARC control fields.
package vocab

// relatorRoles maps MARC relator codes to the role names recorded on
// relationship edges.
var relatorRoles = map[string]string{
	"arr": "arranger",
	"chr": "choreographer",
	"cmp": "composer",
	"cnd": "conductor",
	"edt": "editor",
	"ill": "illustrator",
	"itr": "instrumentalist",
	"lbt": "librettist",
	"ltg": "lithographer",
	"lyr": "lyricist",
	"mus": "musician",
	"prf": "performer",
	"rce": "recordingEngineer",
	"trl": "translator",
	"voc": "vocalist",
}

var creatorCodes = map[string]bool{
	"cmp": true,
	"lbt": true,
	"lyr": true,
}

var realizerCodes = map[string]bool{
	"arr": true,
	"chr": true,
	"cnd": true,
	"itr": true,
	"mus": true,
	"prf": true,
	"trl": true,
	"voc": true,
}

var producerCodes = map[string]bool{
	"edt": true,
	"ill": true,
	"ltg": true,
	"rce": true,
}

// RoleName returns the role name for a relator code, or "" when the code
// is not recognized.
func RoleName(code string) string {
	return relatorRoles[code]
}

// IsRecognized reports whether code appears in the relator vocabulary.
func IsRecognized(code string) bool {
	_, ok := relatorRoles[code]
	return ok
}

// IsCreator reports membership in the creator role set.
func IsCreator(code string) bool {
	return creatorCodes[code]
}

// IsRealizer reports membership in the realizer role set.
func IsRealizer(code string) bool {
	return realizerCodes[code]
}

// IsProducer reports membership in the producer role set.
func IsProducer(code string) bool {
	return producerCodes[code]
}
