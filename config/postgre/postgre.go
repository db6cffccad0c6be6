package postgre

import (
	"context"

	"venue-calendar/config"
	"venue-calendar/pkg/postgres"
)

// Connect opens the PostgreSQL pool described by cfg.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*postgres.DB, error) {
	return postgres.Connect(ctx, postgres.Config{
		Host:           cfg.Host,
		Port:           cfg.Port,
		User:           cfg.User,
		Password:       cfg.Password,
		Database:       cfg.Database,
		SSLMode:        cfg.SSLMode,
		MaxConns:       cfg.MaxConns,
		MinConns:       cfg.MinConns,
		ConnectTimeout: cfg.ConnectTimeout,
		MaxRetries:     cfg.MaxRetries,
		RetryInterval:  cfg.RetryInterval,
	})
}
