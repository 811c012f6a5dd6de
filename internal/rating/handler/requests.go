package handler

import (
	"strings"

	dErrors "landscape/pkg/domain-errors"
)

type SaveRatingRequest struct {
	Rating string `json:"rating"`
}

func (r *SaveRatingRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Rating = strings.TrimSpace(r.Rating)
	if r.Rating == "" {
		return dErrors.New(dErrors.CodeValidation, "rating is required")
	}
	if len(r.Rating) > 8 {
		return dErrors.New(dErrors.CodeValidation, "rating must be at most 8 characters")
	}
	return nil
}

type SaveDescriptionRequest struct {
	Description string `json:"description"`
}

func (r *SaveDescriptionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Description) > 4000 {
		return dErrors.New(dErrors.CodeValidation, "description must be at most 4000 characters")
	}
	return nil
}

type SetPrimaryRequest struct {
	IsPrimary *bool `json:"is_primary"`
}

func (r *SetPrimaryRequest) Validate() error {
	if r == nil || r.IsPrimary == nil {
		return dErrors.New(dErrors.CodeValidation, "is_primary is required")
	}
	return nil
}
