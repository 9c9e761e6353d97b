package store

import "github.com/MKhiriev/fitcoach/internal/logger"

// Storages aggregates every repository of the application.
type Storages struct {
	UserRepository    UserRepository
	ChatRepository    ChatRepository
	FitnessRepository FitnessRepository
}

// NewStorages builds all repositories over a single connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ChatRepository:    NewChatRepository(db, logger),
		FitnessRepository: NewFitnessRepository(db, logger),
	}
}
