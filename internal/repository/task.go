package repository

import (
	"context"
	"errors"
	"time"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/store"

	"gorm.io/gorm"
)

// TaskRepository handles Task records in one partition - either the manager
// partition (master copies) or a team's task partition (derived copies).
// Every query is scoped to the handle's partition.
type TaskRepository struct {
	h *store.Handle
}

// NewTaskRepository creates a new task repository over an open partition
// handle.
func NewTaskRepository(h *store.Handle) *TaskRepository {
	return &TaskRepository{h: h}
}

func (r *TaskRepository) scoped(ctx context.Context) *gorm.DB {
	return r.h.Read(ctx).Where("partition = ?", r.h.Partition())
}

// Get retrieves this partition's copy of a task.
func (r *TaskRepository) Get(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.scoped(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a task in this partition.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	task.Partition = r.h.Partition()
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
}

// Save persists changes to this partition's copy of a task.
func (r *TaskRepository) Save(ctx context.Context, task *models.Task) error {
	task.Partition = r.h.Partition()
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Save(task).Error
	})
}

// Delete removes this partition's copy of a task, if present.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Delete(&models.Task{}, "id = ? AND partition = ?", id, r.h.Partition()).Error
	})
}

// List retrieves all tasks in this partition.
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := r.scoped(ctx).Order("created_at").Find(&tasks).Error
	return tasks, err
}

// ListByAssignee retrieves this partition's tasks assigned to a person.
func (r *TaskRepository) ListByAssignee(ctx context.Context, personID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.scoped(ctx).Where("assignee_id = ?", personID).Order("created_at").Find(&tasks).Error
	return tasks, err
}

// Count returns how many tasks this partition holds.
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.Task{}).Count(&count).Error
	return count, err
}

// CountPending returns how many of this partition's tasks are not completed.
func (r *TaskRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.Task{}).Where("is_completed = ?", false).Count(&count).Error
	return count, err
}

// Upsert copies src into this partition. If a copy with the same id already
// exists, only the fields that differ are written, one by one - concurrent
// local edits from another device must not be clobbered wholesale. If
// absent, a full copy is created.
func (r *TaskRepository) Upsert(ctx context.Context, src *models.Task) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		var existing models.Task
		err := tx.Where("id = ? AND partition = ?", src.ID, r.h.Partition()).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			copy := *src
			copy.Partition = r.h.Partition()
			return tx.Create(&copy).Error
		}
		if err != nil {
			return err
		}

		updates := diffTaskFields(&existing, src)
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&models.Task{}).
			Where("id = ? AND partition = ?", src.ID, r.h.Partition()).
			Updates(updates).Error
	})
}

// diffTaskFields compares the replicated fields one by one and returns only
// the columns that changed.
func diffTaskFields(existing, src *models.Task) map[string]interface{} {
	updates := map[string]interface{}{}
	if existing.Title != src.Title {
		updates["title"] = src.Title
	}
	if existing.Description != src.Description {
		updates["description"] = src.Description
	}
	if !equalTimePtr(existing.DueDate, src.DueDate) {
		updates["due_date"] = src.DueDate
	}
	if !equalTimePtr(existing.CompletionDate, src.CompletionDate) {
		updates["completion_date"] = src.CompletionDate
	}
	if existing.IsCompleted != src.IsCompleted {
		updates["is_completed"] = src.IsCompleted
	}
	if !equalStrPtr(existing.AssigneeID, src.AssigneeID) {
		updates["assignee_id"] = src.AssigneeID
	}
	if !equalStrPtr(existing.SignedOffByID, src.SignedOffByID) {
		updates["signed_off_by_id"] = src.SignedOffByID
	}
	if !equalStrPtr(existing.LocationID, src.LocationID) {
		updates["location_id"] = src.LocationID
	}
	if !equalStrPtr(existing.TeamID, src.TeamID) {
		updates["team_id"] = src.TeamID
	}
	return updates
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
