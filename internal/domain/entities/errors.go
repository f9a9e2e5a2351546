package entities

import "errors"

// Domain errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrActionItemNotFound = errors.New("action item not found")
)
