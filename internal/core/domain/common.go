package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// ActorRole identifies which trusted role performed a wallet operation.
type ActorRole string

const (
	RoleCitizen      ActorRole = "citizen"
	RoleMunicipality ActorRole = "municipality"
	RoleWaterplant   ActorRole = "waterplant"
	RoleAdmin        ActorRole = "admin"
)

// Valid reports whether the role is one of the known actor roles.
func (r ActorRole) Valid() bool {
	switch r {
	case RoleCitizen, RoleMunicipality, RoleWaterplant, RoleAdmin:
		return true
	}
	return false
}
