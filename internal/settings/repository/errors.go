package repository

import "errors"

var (
	ErrNotFound       = errors.New("setting not found")
	ErrFailedToGet    = errors.New("failed to get setting")
	ErrFailedToUpsert = errors.New("failed to upsert setting")
)
