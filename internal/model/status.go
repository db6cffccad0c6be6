package model

import "strings"

// Status is the lifecycle state of an occurrence.
type Status string

const (
	StatusActive    Status = "active"
	StatusToConfirm Status = "to_confirm"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
	StatusDeleted   Status = "deleted"
)

// DefaultStatuses is the status set served when a caller does not ask for one.
var DefaultStatuses = []Status{StatusActive, StatusToConfirm, StatusPostponed}

// legacyStatuses maps historical status spellings to the canonical set.
var legacyStatuses = map[string]Status{
	"active":     StatusActive,
	"confirmed":  StatusActive,
	"confirme":   StatusActive,
	"cancelled":  StatusCancelled,
	"canceled":   StatusCancelled,
	"annule":     StatusCancelled,
	"annulé":     StatusCancelled,
	"postponed":  StatusPostponed,
	"reporte":    StatusPostponed,
	"reporté":    StatusPostponed,
	"deleted":    StatusDeleted,
	"to_confirm": StatusToConfirm,
	"to-confirm": StatusToConfirm,
}

// LegacyStatus translates a stored status term. Unknown terms become to-confirm.
func LegacyStatus(raw string) Status {
	if s, ok := legacyStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusToConfirm
}

// IsValid reports whether s is one of the canonical statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusToConfirm, StatusPostponed, StatusCancelled, StatusDeleted:
		return true
	}
	return false
}
