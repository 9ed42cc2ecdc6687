package notification

import "errors"

var (
	ErrNotFound    = errors.New("notification not found")
	ErrEmptyTitle  = errors.New("notification title is required")
	ErrUnknownKind = errors.New("unknown notification kind")
)
