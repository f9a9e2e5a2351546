package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a request fails usecase validation
var ErrInvalidInput = errors.New("invalid input")

// Meeting errors, both match ErrInvalidInput
var (
	ErrTitleRequired    = fmt.Errorf("%w: title is required", ErrInvalidInput)
	ErrRawNotesRequired = fmt.Errorf("%w: raw_notes is required", ErrInvalidInput)
)
