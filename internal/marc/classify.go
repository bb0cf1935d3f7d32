package marc

// RecordType partitions records by leader/06: sound recordings and scores
// are FRBRized, everything else is registered as a bare manifestation.
type RecordType int

const (
	TypeOther RecordType = iota
	TypeRecording
	TypeScore
)

func (t RecordType) String() string {
	switch t {
	case TypeRecording:
		return "Recording"
	case TypeScore:
		return "Score"
	default:
		return "Other"
	}
}

// Type classifies the record by its leader type byte.
func (r Record) Type() RecordType {
	switch r.LeaderType {
	case 'j':
		return TypeRecording
	case 'c', 'd':
		return TypeScore
	default:
		return TypeOther
	}
}

// Group is the structural classification that keys every downstream
// work-identification and relationship-assembly decision table.
type Group int

const (
	GroupError Group = iota
	Group1A
	Group1B
	Group1C
	Group2
	Group3
	Group4
)

func (g Group) String() string {
	switch g {
	case Group1A:
		return "GROUP1A"
	case Group1B:
		return "GROUP1B"
	case Group1C:
		return "GROUP1C"
	case Group2:
		return "GROUP2"
	case Group3:
		return "GROUP3"
	case Group4:
		return "GROUP4"
	default:
		return "GROUP ERROR"
	}
}

// Group classifies the record. The dispatch key is the number of added
// entry fields (700/710/711) carrying a title subfield; records without
// any fall into the 1x groups by heading and title field presence.
func (r Record) Group() Group {
	n := 0
	for _, f := range r.DataFields("700", "710", "711") {
		if f.HasSubfield("t") {
			n++
		}
	}
	switch {
	case n == 1:
		return Group2
	case n == 2:
		return Group3
	case n >= 3:
		return Group4
	}

	has1xx := r.HasField("100") || r.HasField("110") || r.HasField("111") || r.HasField("130")
	has240 := r.HasField("240")
	has245 := r.HasField("245")
	switch {
	case has1xx && has240 && has245:
		return Group1A
	case has1xx && has245:
		return Group1B
	case has245:
		return Group1C
	default:
		return GroupError
	}
}
