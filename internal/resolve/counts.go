// Package resolve matches person and corporate references from
// bibliographic records against already-persisted entities, using a
// three-tier strategy, and tracks the run counters reported at file and
// batch boundaries.
package resolve

// Role classifies why a reference is being resolved; misses are counted
// per role.
type Role string

const (
	RoleReferenced Role = "referenced"
	RoleComposer   Role = "composer"
	RoleCreator    Role = "creator"
	RoleRealizer   Role = "realizer"
	RoleProducer   Role = "producer"
)

// Counts accumulates the per-file and per-run counters. The zero value
// is ready to use; Add folds one Counts into another at file-completion
// boundaries.
type Counts struct {
	File    string `yaml:"file,omitempty"`
	Records int    `yaml:"records"`
	Errors  int    `yaml:"errors,omitempty"`

	Persons         int `yaml:"personsPersisted"`
	CorporateBodies int `yaml:"corporateBodiesPersisted"`
	Works           int `yaml:"worksPersisted"`
	Expressions     int `yaml:"expressionsPersisted"`
	Manifestations  int `yaml:"manifestationsPersisted"`
	OtherRecords    int `yaml:"otherRecordsRegistered"`

	UnmatchedComposers int `yaml:"unmatchedComposers,omitempty"`
	UnmatchedCreators  int `yaml:"unmatchedCreators,omitempty"`
	UnmatchedRealizers int `yaml:"unmatchedRealizers,omitempty"`
	UnmatchedProducers int `yaml:"unmatchedProducers,omitempty"`
}

// Add folds other into c.
func (c *Counts) Add(other Counts) {
	c.Records += other.Records
	c.Errors += other.Errors
	c.Persons += other.Persons
	c.CorporateBodies += other.CorporateBodies
	c.Works += other.Works
	c.Expressions += other.Expressions
	c.Manifestations += other.Manifestations
	c.OtherRecords += other.OtherRecords
	c.UnmatchedComposers += other.UnmatchedComposers
	c.UnmatchedCreators += other.UnmatchedCreators
	c.UnmatchedRealizers += other.UnmatchedRealizers
	c.UnmatchedProducers += other.UnmatchedProducers
}

// Miss records a resolution miss for the role. References resolved
// outside a relationship role carry no counter.
func (c *Counts) Miss(role Role) {
	switch role {
	case RoleComposer:
		c.UnmatchedComposers++
	case RoleCreator:
		c.UnmatchedCreators++
	case RoleRealizer:
		c.UnmatchedRealizers++
	case RoleProducer:
		c.UnmatchedProducers++
	}
}
