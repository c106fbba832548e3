package store

import "github.com/bloglist/bloglist/internal/logger"

// Repositories bundles all persistence-layer components behind their
// interfaces for wiring into the service layer.
type Repositories struct {
	UserRepository UserRepository
	BlogRepository BlogRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		BlogRepository: NewBlogRepository(db, logger),
	}
}
