package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a dual-purpose record: it marks either where a person was last
// seen or where a task must be performed. Exactly one of PersonID / TaskID is
// meaningful at a time. Lives in the common partition so the map can query
// all pins in one place.
type Location struct {
	ID           string     `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LookupStatus int        `json:"lookup_status" gorm:"not null;default:-1"` // reverse-geocode result code
	HaveLatLon   bool       `json:"have_lat_lon" gorm:"not null;default:false"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Elevation    float64    `json:"elevation"`

	StreetAddress *string `json:"street_address,omitempty" gorm:"size:200"`
	City          *string `json:"city,omitempty" gorm:"size:100"`
	StateProvince *string `json:"state_province,omitempty" gorm:"size:100"`
	CountryCode   *string `json:"country_code,omitempty" gorm:"size:8"`
	PostalCode    *string `json:"postal_code,omitempty" gorm:"size:20"`
	Title         *string `json:"title,omitempty" gorm:"size:200"`
	Subtitle      *string `json:"subtitle,omitempty" gorm:"size:200"`

	PersonID *string `json:"person_id,omitempty" gorm:"size:64;index"`
	TaskID   *string `json:"task_id,omitempty" gorm:"size:64;index"`

	// TeamID mirrors the owning task's current team so map queries can filter
	// by team without following the task reference into another partition.
	// Must always equal the task's team (or nil); maintained by the
	// replication engine on every assignment change.
	TeamID *string `json:"team_id,omitempty" gorm:"size:64;index"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}

// BeforeCreate allocates the id if the caller did not.
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
