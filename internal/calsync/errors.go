package calsync

import "errors"

var (
	ErrInvalidCredentials = errors.New("calendar id and access token are required")
	ErrPayloadBuild       = errors.New("failed to build event payload")
	ErrRemoteCall         = errors.New("remote calendar call failed")
)
