package repository

import "errors"

var (
	ErrFailedToList = errors.New("failed to list records")
	ErrFailedToScan = errors.New("failed to scan record")
)
