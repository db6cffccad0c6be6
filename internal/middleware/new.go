package middleware

import (
	"venue-calendar/pkg/log"
)

// Middleware carries the shared dependencies of the gin middlewares.
type Middleware struct {
	l           log.Logger
	internalKey string
}

// New creates the middleware set. An empty internalKey rejects every
// admin request.
func New(l log.Logger, internalKey string) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
	}
}
