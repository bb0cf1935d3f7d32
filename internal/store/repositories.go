package store

import (
	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"gorm.io/gorm"
)

// PersonRepository queries and persists Person entities.
type PersonRepository struct {
	DB *gorm.DB
}

// ByAuthIdent returns every person with the identity key, in creation
// order.
func (r *PersonRepository) ByAuthIdent(key string) ([]frbr.Person, error) {
	var people []frbr.Person
	err := r.DB.Where("auth_ident = ?", key).Order("id asc").Find(&people).Error
	return people, err
}

// ByNormalName returns every person carrying the fallback name key on
// any of its names, authorized or variant, in creation order.
func (r *PersonRepository) ByNormalName(key string) ([]frbr.Person, error) {
	ids, err := nameKeyPartyIDs(r.DB, frbr.KindPerson, key)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	var people []frbr.Person
	err = r.DB.Where("id IN ?", ids).Order("id asc").Find(&people).Error
	return people, err
}

// ByID loads one person.
func (r *PersonRepository) ByID(id uint) (frbr.Person, error) {
	var p frbr.Person
	err := r.DB.First(&p, id).Error
	return p, err
}

// Create persists a new person and its matchable name keys.
func (r *PersonRepository) Create(p *frbr.Person) error {
	if err := r.DB.Create(p).Error; err != nil {
		return err
	}
	return createNameKeys(r.DB, frbr.KindPerson, p.ID, p.NormalName, p.VariantKeys)
}

// CorporateRepository queries and persists CorporateBody entities.
type CorporateRepository struct {
	DB *gorm.DB
}

func (r *CorporateRepository) ByAuthIdent(key string) ([]frbr.CorporateBody, error) {
	var bodies []frbr.CorporateBody
	err := r.DB.Where("auth_ident = ?", key).Order("id asc").Find(&bodies).Error
	return bodies, err
}

func (r *CorporateRepository) ByNormalName(key string) ([]frbr.CorporateBody, error) {
	ids, err := nameKeyPartyIDs(r.DB, frbr.KindCorporate, key)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	var bodies []frbr.CorporateBody
	err = r.DB.Where("id IN ?", ids).Order("id asc").Find(&bodies).Error
	return bodies, err
}

func (r *CorporateRepository) ByID(id uint) (frbr.CorporateBody, error) {
	var c frbr.CorporateBody
	err := r.DB.First(&c, id).Error
	return c, err
}

func (r *CorporateRepository) Create(c *frbr.CorporateBody) error {
	if err := r.DB.Create(c).Error; err != nil {
		return err
	}
	return createNameKeys(r.DB, frbr.KindCorporate, c.ID, c.NormalName, c.VariantKeys)
}

// nameKeyPartyIDs resolves a normalized name key to party ids through
// the NameKey table, deduplicated, in creation order.
func nameKeyPartyIDs(db *gorm.DB, kind frbr.PartyKind, key string) ([]uint, error) {
	var ids []uint
	err := db.Model(&frbr.NameKey{}).
		Where("party_kind = ? AND normal_name = ?", kind, key).
		Order("party_id asc").
		Distinct().
		Pluck("party_id", &ids).Error
	return ids, err
}

// createNameKeys writes one NameKey row per distinct usable key. A bare
// "_" carries no name content and is never matchable.
func createNameKeys(db *gorm.DB, kind frbr.PartyKind, partyID uint, primary string, variants []string) error {
	seen := map[string]bool{}
	for _, key := range append([]string{primary}, variants...) {
		if key == "" || key == "_" || seen[key] {
			continue
		}
		seen[key] = true
		row := frbr.NameKey{PartyKind: kind, PartyID: partyID, NormalName: key}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// WorkRepository queries and persists Work entities.
type WorkRepository struct {
	DB *gorm.DB
}

// ByAuthIdent returns every work with the composite identity key, in
// creation order.
func (r *WorkRepository) ByAuthIdent(key string) ([]frbr.Work, error) {
	var works []frbr.Work
	err := r.DB.Where("auth_ident = ?", key).Order("id asc").Find(&works).Error
	return works, err
}

// CountByAuthIdent counts works sharing the composite identity key.
func (r *WorkRepository) CountByAuthIdent(key string) (int64, error) {
	var n int64
	err := r.DB.Model(&frbr.Work{}).Where("auth_ident = ?", key).Count(&n).Error
	return n, err
}

// ByID loads one work with its party and realization edges.
func (r *WorkRepository) ByID(id uint) (frbr.Work, error) {
	var w frbr.Work
	err := r.DB.
		Preload("Composers", byListOrder).
		Preload("Creators", byListOrder).
		Preload("Realizations", byListOrder).
		First(&w, id).Error
	return w, err
}

// byListOrder keeps preloaded edge lists in the order they were linked.
func byListOrder(db *gorm.DB) *gorm.DB {
	return db.Order("list_order asc, id asc")
}

func (r *WorkRepository) Create(w *frbr.Work) error {
	return r.DB.Create(w).Error
}

// ExpressionRepository queries and persists Expression entities.
type ExpressionRepository struct {
	DB *gorm.DB
}

func (r *ExpressionRepository) Create(e *frbr.Expression) error {
	return r.DB.Create(e).Error
}

// ForWork loads the expressions realized by a work, with their realizer
// edges, in realization order.
func (r *ExpressionRepository) ForWork(workID uint) ([]frbr.Expression, error) {
	var links []frbr.WorkExpression
	if err := r.DB.Where("work_id = ?", workID).Order("list_order asc, id asc").Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ExpressionID)
	}
	var exprs []frbr.Expression
	err := r.DB.Where("id IN ?", ids).Order("id asc").Preload("Realizers", byListOrder).Find(&exprs).Error
	return exprs, err
}

// ManifestationRepository persists Manifestation entities.
type ManifestationRepository struct {
	DB *gorm.DB
}

func (r *ManifestationRepository) Create(m *frbr.Manifestation) error {
	return r.DB.Create(m).Error
}

// ByControlNumber returns the manifestations sourced from a record, with
// their producer edges, in creation order.
func (r *ManifestationRepository) ByControlNumber(cn string) ([]frbr.Manifestation, error) {
	var manifs []frbr.Manifestation
	err := r.DB.Where("control_number = ?", cn).Order("id asc").Preload("Producers", byListOrder).Find(&manifs).Error
	return manifs, err
}

// EdgeRepository persists relationship edges.
type EdgeRepository struct {
	DB *gorm.DB
}

func (r *EdgeRepository) Create(edge any) error {
	return r.DB.Create(edge).Error
}
