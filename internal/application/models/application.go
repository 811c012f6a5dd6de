package models

import (
	id "landscape/pkg/domain"
)

// Application is a deployed software system tracked in the landscape.
type Application struct {
	ID                    int64                    `json:"id"`
	Name                  string                   `json:"name"`
	AssetCode             string                   `json:"asset_code"`
	OrganisationalUnitID  int64                    `json:"organisational_unit_id,omitempty"`
	LifecyclePhase        string                   `json:"lifecycle_phase"`
	EntityLifecycleStatus id.EntityLifecycleStatus `json:"entity_lifecycle_status"`
	IsRemoved             bool                     `json:"is_removed"`
}

// IsActive reports whether the application takes part in selections and
// association reads.
func (a Application) IsActive() bool {
	return !a.IsRemoved && a.EntityLifecycleStatus == id.LifecycleActive
}

func (a Application) Ref() id.EntityReference {
	return id.MkRef(id.KindApplication, a.ID)
}
