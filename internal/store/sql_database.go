package store

import (
	"github.com/devfriend/devfriend/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
