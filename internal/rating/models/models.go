package models

import (
	"strings"
	"time"

	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// MeasurableRating is the rating an entity holds against one measurable.
type MeasurableRating struct {
	Entity        id.EntityReference `json:"entity_reference"`
	MeasurableID  int64              `json:"measurable_id"`
	Rating        string             `json:"rating"`
	Description   string             `json:"description"`
	IsPrimary     bool               `json:"is_primary"`
	IsReadOnly    bool               `json:"is_readonly"`
	Provenance    string             `json:"provenance"`
	LastUpdatedAt time.Time          `json:"last_updated_at"`
	LastUpdatedBy string             `json:"last_updated_by"`
}

type Measurable struct {
	ID                    int64                    `db:"id" json:"id"`
	ParentID              int64                    `db:"parent_id" json:"parent_id,omitempty"`
	CategoryID            int64                    `db:"measurable_category_id" json:"category_id"`
	Name                  string                   `db:"name" json:"name"`
	ExternalID            string                   `db:"external_id" json:"external_id"`
	Concrete              bool                     `db:"concrete" json:"concrete"`
	EntityLifecycleStatus id.EntityLifecycleStatus `db:"entity_lifecycle_status" json:"entity_lifecycle_status"`
}

type MeasurableCategory struct {
	ID               int64  `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	RatingSchemeID   int64  `db:"rating_scheme_id" json:"rating_scheme_id"`
	RatingEditorRole string `db:"rating_editor_role" json:"rating_editor_role"`
	Editable         bool   `db:"editable" json:"editable"`
}

type RatingSchemeItem struct {
	ID       int64  `db:"id" json:"id"`
	SchemeID int64  `db:"scheme_id" json:"scheme_id"`
	Code     string `db:"code" json:"code"`
	Name     string `db:"name" json:"name"`
	Color    string `db:"color" json:"color"`
	Position int    `db:"position" json:"position"`
}

// Tally counts ratings per measurable.
type Tally struct {
	ID    int64 `db:"id" json:"id"`
	Count int   `db:"count" json:"count"`
}

// RatingTally counts ratings per measurable and rating code.
type RatingTally struct {
	MeasurableID int64  `db:"measurable_id" json:"measurable_id"`
	Rating       string `db:"rating" json:"rating"`
	Count        int    `db:"count" json:"count"`
}

// RatingsView is an entity's ratings together with everything needed to
// render them.
type RatingsView struct {
	Ratings           []MeasurableRating   `json:"measurable_ratings"`
	Measurables       []Measurable         `json:"measurables"`
	Categories        []MeasurableCategory `json:"measurable_categories"`
	RatingSchemeItems []RatingSchemeItem   `json:"rating_scheme_items"`
}

// SaveRatingCommand sets the rating code of an entity against a measurable.
type SaveRatingCommand struct {
	Entity       id.EntityReference
	MeasurableID int64
	Rating       string
	Username     string
}

func (c *SaveRatingCommand) Validate() error {
	if err := c.Entity.Validate(); err != nil {
		return err
	}
	if c.MeasurableID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "measurable id must be positive")
	}
	c.Rating = strings.TrimSpace(c.Rating)
	if c.Rating == "" {
		return dErrors.New(dErrors.CodeValidation, "rating code is required")
	}
	if c.Username == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return nil
}
