package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

type Severity string

const (
	SeverityInformation Severity = "INFORMATION"
	SeverityWarning     Severity = "WARNING"
	SeverityError       Severity = "ERROR"
)

// Entry records one user-visible change against a parent entity.
type Entry struct {
	ID        uuid.UUID          `json:"id"`
	Parent    id.EntityReference `json:"parent_reference"`
	Message   string             `json:"message"`
	UserID    string             `json:"user_id"`
	Severity  Severity           `json:"severity"`
	Operation id.Operation       `json:"operation"`
	ChildKind id.EntityKind      `json:"child_kind,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewEntry builds an informational entry. Message and user are required.
func NewEntry(parent id.EntityReference, op id.Operation, child id.EntityKind, userID, message string) (Entry, error) {
	if err := parent.Validate(); err != nil {
		return Entry{}, err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return Entry{}, dErrors.New(dErrors.CodeInvariantViolation, "change log message is required")
	}
	if strings.TrimSpace(userID) == "" {
		return Entry{}, dErrors.New(dErrors.CodeInvariantViolation, "change log user is required")
	}
	return Entry{
		ID:        uuid.New(),
		Parent:    parent,
		Message:   message,
		UserID:    userID,
		Severity:  SeverityInformation,
		Operation: op,
		ChildKind: child,
	}, nil
}
