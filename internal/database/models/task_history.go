package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskHistory is an append-only audit entry recorded when a task changes
// hands. Entries are never updated or deleted.
type TaskHistory struct {
	ID               string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt        time.Time `json:"created_at"`
	TaskID           string    `json:"task_id" gorm:"size:64;not null;index"`
	AssignedToID     *string   `json:"assigned_to_id,omitempty" gorm:"size:64"`
	ReassignedFromID *string   `json:"reassigned_from_id,omitempty" gorm:"size:64"`
}

// TableName returns the table name for TaskHistory
func (TaskHistory) TableName() string {
	return "task_history"
}

// BeforeCreate allocates the id if the caller did not.
func (h *TaskHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
