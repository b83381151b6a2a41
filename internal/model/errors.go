package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrEmptyOrder      = errors.New("order must list at least one id")
	ErrInvalidRotation = errors.New("invalid rotation settings")
	ErrMalformedTime   = errors.New("malformed time of day")
)

type DiagnosticKind string

const (
	DiagMalformedTime        DiagnosticKind = "malformed_time"
	DiagInvalidRotationCount DiagnosticKind = "invalid_rotation_count"
)

// Diagnostic reports input the engine could not use and degraded around.
type Diagnostic struct {
	Kind      DiagnosticKind
	SubjectID uuid.UUID
	Err       error
}

func (d Diagnostic) Error() string {
	return string(d.Kind) + " " + d.SubjectID.String() + ": " + d.Err.Error()
}

func (d Diagnostic) Unwrap() error { return d.Err }
