package models

import (
	"strings"

	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// Kind names a relationship a person can hold with an entity, such as
// "Architect" or "Business Owner".
type Kind struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	ExternalID  string `db:"external_id" json:"external_id"`
}

// Involvement links a person to an entity through a kind.
type Involvement struct {
	Entity     id.EntityReference `json:"entity_reference"`
	PersonID   int64              `json:"person_id"`
	KindID     int64              `json:"kind_id"`
	IsReadOnly bool               `json:"is_readonly"`
	Provenance string             `json:"provenance"`
}

type CreateKindCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ExternalID  string `json:"external_id"`
}

func (c *CreateKindCommand) Validate() error {
	if c == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.ExternalID = strings.TrimSpace(c.ExternalID)
	if c.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if len(c.Name) > 255 {
		return dErrors.New(dErrors.CodeValidation, "name must be at most 255 characters")
	}
	return nil
}

// ChangeCommand adds or removes one involvement of an entity.
type ChangeCommand struct {
	Operation string `json:"operation"`
	PersonID  int64  `json:"person_id"`
	KindID    int64  `json:"kind_id"`

	op id.Operation
}

func (c *ChangeCommand) Validate() error {
	if c == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	op, err := id.ParseOperation(c.Operation)
	if err != nil {
		return err
	}
	if op != id.OperationAdd && op != id.OperationRemove {
		return dErrors.Newf(dErrors.CodeValidation, "operation must be ADD or REMOVE, got %s", op)
	}
	if c.PersonID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "person_id must be positive")
	}
	if c.KindID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "kind_id must be positive")
	}
	c.op = op
	return nil
}

// ParsedOperation returns the operation validated by Validate.
func (c *ChangeCommand) ParsedOperation() id.Operation {
	return c.op
}
