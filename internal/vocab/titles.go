package vocab

import "strings"

// collectiveTitles are generic uniform titles that never denote a single
// identifiable work.
var collectiveTitles = []string{
	"Chamber music",
	"Choral music",
	"Electronic music",
	"Harpsichord music",
	"Instrumental music",
	"Lute music",
	"Keyboard music",
	"Musicals",
	"Orchestra music",
	"Organ music",
	"Piano music",
	"Selections",
	"String quartet music",
	"Violin, harpsichord music",
	"Violin, piano music",
	"Violoncello, piano music",
	"Vocal music",
	"Works",
}

// forms are the musical form headings that may denote a work when
// qualified by medium/number/part subfields.
var forms = []string{
	"Adagios",
	"Allegros",
	"Allemandes",
	"Anthems",
	"Arias",
	"Bagatelles",
	"Ballades",
	"Berceuses",
	"Canons",
	"Canzonas",
	"Canzonettas",
	"Caprices",
	"Cappricios",
	"Cassations",
	"Choruses",
	"Concertinos",
	"Concertos",
	"Divertimenti",
	"Divertimentos",
	"Duets",
	"Elegies",
	"Etudes",
	"Fanfares",
	"Fantasias",
	"Fugues",
	"Gavottes",
	"Gigues",
	"Hymns",
	"Intermezzi",
	"Intermezzos",
	"Largos",
	"Lieder",
	"Marches",
	"Melodies",
	"Minuets",
	"Nocturnes",
	"Nonets",
	"Octets",
	"Odes",
	"Partitas",
	"Pavans",
	"Pieces",
	"Poems",
	"Polkas",
	"Polonaises",
	"Preludes",
	"Psalms",
	"Quartets",
	"Quintets",
	"Rhapsodies",
	"Romances",
	"Rondos",
	"Scherzos",
	"Septets",
	"Sextets",
	"Sonatas",
	"Sontinas",
	"Songs",
	"Studies",
	"Suites",
	"Toccatas",
	"Trio sonatas",
	"Trios",
	"Variations",
	"Waltzes",
}

var (
	collectiveTitleSet = lowerSet(collectiveTitles)
	formSet            = lowerSet(forms)
)

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = true
	}
	return set
}

// IsCollectiveTitle reports whether title matches the collective-title
// blacklist, case-insensitively.
func IsCollectiveTitle(title string) bool {
	return collectiveTitleSet[strings.ToLower(strings.TrimSpace(title))]
}

// IsForm reports whether title matches the musical forms list,
// case-insensitively.
func IsForm(title string) bool {
	return formSet[strings.ToLower(strings.TrimSpace(title))]
}
