package postgre

import (
	"fmt"

	"venue-calendar/internal/settings/repository"
	"venue-calendar/pkg/log"
	"venue-calendar/pkg/postgres"
)

type implRepository struct {
	db postgres.Querier
	l  log.Logger
}

// New creates a PostgreSQL-backed settings Repository over the settings table.
func New(db postgres.Querier, l log.Logger) repository.Repository {
	if db == nil {
		panic("settings/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("settings/repository/postgre.%s", method)
}
