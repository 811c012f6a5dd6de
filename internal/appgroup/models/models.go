package models

import (
	"landscape/internal/association"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

const (
	RoleOwner  = "OWNER"
	RoleViewer = "VIEWER"
)

// AppGroup is a named collection of applications and change initiatives.
type AppGroup struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Kind        string `db:"kind" json:"kind"`
	IsRemoved   bool   `db:"is_removed" json:"is_removed"`
}

func (g AppGroup) Ref() id.EntityReference {
	return id.MkRef(id.KindAppGroup, g.ID)
}

// BatchAddResult answers a batch add with the refreshed entries and every
// requested member that could not be added.
type BatchAddResult struct {
	Entries []association.Entry `json:"entries"`
	Failed  []FailedMember      `json:"failed"`
}

type FailedMember struct {
	MemberID int64        `json:"member_id"`
	Code     dErrors.Code `json:"code"`
}
