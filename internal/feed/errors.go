package feed

import "errors"

// Domain-specific errors for the feed package.
var (
	ErrMissingCollaborator = errors.New("feed: events source is not configured")
	ErrFeedDisabled        = errors.New("feed: calendar feed is disabled")
	ErrAccessDenied        = errors.New("feed: access denied")
	ErrTokenNotFound       = errors.New("feed: no token has been generated")
	ErrInvalidToken        = errors.New("feed: token must contain letters or digits")
)
