package models

import "time"

// Preference keys
const (
	PrefSelectedTeam = "selected_team_id"
)

// Preference is a simple per-person key-value setting, e.g. the currently
// selected team. Not authoritative: readers re-validate values against the
// real data (a selected team id is checked against actual membership).
type Preference struct {
	PersonID  string    `json:"person_id" gorm:"primaryKey;size:64"`
	Key       string    `json:"key" gorm:"primaryKey;size:64"`
	Value     string    `json:"value" gorm:"size:200"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Preference
func (Preference) TableName() string {
	return "preferences"
}
