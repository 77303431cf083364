package store

import "github.com/devfriend/devfriend/internal/logger"

// Storages aggregates every repository behind one injection point for the
// service layer.
type Storages struct {
	UserRepository        UserRepository
	SecretRepository      SecretRepository
	IntegrationRepository IntegrationRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		SecretRepository:      NewSecretRepository(db, log),
		IntegrationRepository: NewIntegrationRepository(db, log),
	}
}
