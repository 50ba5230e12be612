package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team is a named group of people with a dedicated task partition. The id
// doubles as the suffix of that partition's name, so the partition handle can
// be derived without a lookup. Display name must be unique among teams
// (case-insensitive); the id, not the name, is what other records reference.
type Team struct {
	ID          string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name" gorm:"size:100;not null;index"`
	Description string    `json:"description" gorm:"size:200"`
	BgColor     string    `json:"bgcolor" gorm:"size:6;default:'000000'"`
	CreatedByID *string   `json:"created_by,omitempty" gorm:"size:64"`
	UpdatedByID *string   `json:"updated_by,omitempty" gorm:"size:64"`

	// Partition is the full handle of this team's task partition. Derivable
	// from the id, but persisted too so clients that only replicated the Team
	// record can open it directly.
	Partition string `json:"partition" gorm:"size:200;not null"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate allocates the id if the caller did not.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
