package entities

import "time"

// Project is a tenant-owned work site. TenantID never changes after
// creation. Coordinates are optional; projects without them skip the
// attendance geofence.
type Project struct {
	ID                 string
	TenantID           string
	Name               string
	Timezone           string
	Lat                *float64
	Lng                *float64
	Location           string
	Address            string
	ProjectAdminUserID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProjectMembership is one (project, user) row with a project-scope role.
type ProjectMembership struct {
	ProjectID string
	UserID    string
	Role      string
	CreatedAt time.Time
}
