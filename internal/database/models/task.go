package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a unit of field work. The authoritative copy lives in the manager
// partition; once assigned to a team, a derived copy with the same id lives
// in that team's partition. The (id, partition) pair is therefore the
// primary key. All references to other records are string ids, since object
// graphs cannot cross partition boundaries.
type Task struct {
	ID        string `json:"id" gorm:"primaryKey;size:64"`
	Partition string `json:"-" gorm:"primaryKey;size:200"`

	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Title          string     `json:"title" gorm:"size:200;not null"`
	Description    string     `json:"description" gorm:"size:2000"`
	IsCompleted    bool       `json:"is_completed" gorm:"not null;default:false"`

	AssigneeID    *string `json:"assignee_id,omitempty" gorm:"size:64"`
	SignedOffByID *string `json:"signed_off_by_id,omitempty" gorm:"size:64"`
	LocationID    *string `json:"location_id,omitempty" gorm:"size:64"`

	// TeamID on the master copy is the authority for "current team"; nil
	// means unassigned. Team copies mirror it.
	TeamID *string `json:"team_id,omitempty" gorm:"size:64;index"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// BeforeCreate allocates the id if the caller did not.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// SameTeam reports whether the task's current team equals the given team id
// (nil meaning unassigned on both sides).
func (t *Task) SameTeam(teamID *string) bool {
	if t.TeamID == nil || teamID == nil {
		return t.TeamID == nil && teamID == nil
	}
	return *t.TeamID == *teamID
}
