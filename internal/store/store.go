// Package store is the persistence layer: sqlite-backed gorm
// repositories, one per entity kind, plus direct edge creation. Lookup
// results are ordered by primary key so that "first match" always means
// creation order.
package store

import (
	"fmt"

	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store bundles the repositories over one database handle.
type Store struct {
	db *gorm.DB

	People         *PersonRepository
	Corporates     *CorporateRepository
	Works          *WorkRepository
	Expressions    *ExpressionRepository
	Manifestations *ManifestationRepository
	Edges          *EdgeRepository
}

// Open opens (or creates) the sqlite database at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&frbr.Person{},
		&frbr.CorporateBody{},
		&frbr.NameKey{},
		&frbr.Work{},
		&frbr.Expression{},
		&frbr.Manifestation{},
		&frbr.WorkComposer{},
		&frbr.WorkCreator{},
		&frbr.WorkExpression{},
		&frbr.ExpressionParty{},
		&frbr.ExpressionManifestation{},
		&frbr.ManifestationParty{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{
		db:             db,
		People:         &PersonRepository{DB: db},
		Corporates:     &CorporateRepository{DB: db},
		Works:          &WorkRepository{DB: db},
		Expressions:    &ExpressionRepository{DB: db},
		Manifestations: &ManifestationRepository{DB: db},
		Edges:          &EdgeRepository{DB: db},
	}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
