package postgre

import (
	"fmt"

	"venue-calendar/internal/event/repository"
	"venue-calendar/pkg/log"
	"venue-calendar/pkg/postgres"
)

type implRepository struct {
	db postgres.Querier
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for events, occurrence rows and
// closures. Occurrence timestamps are returned raw for the resolver to parse.
func New(db postgres.Querier, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/postgre.%s", method)
}
