package repository

import (
	"context"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/store"

	"gorm.io/gorm"
)

// HistoryRepository handles the append-only task audit trail in the common
// partition.
type HistoryRepository struct {
	h *store.Handle
}

// NewHistoryRepository creates a new history repository over an open common
// partition handle.
func NewHistoryRepository(h *store.Handle) *HistoryRepository {
	return &HistoryRepository{h: h}
}

// Append records a reassignment. Entries are never updated or deleted.
func (r *HistoryRepository) Append(ctx context.Context, entry *models.TaskHistory) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

// ListByTask retrieves a task's audit trail, oldest first.
func (r *HistoryRepository) ListByTask(ctx context.Context, taskID string) ([]models.TaskHistory, error) {
	var entries []models.TaskHistory
	err := r.h.Read(ctx).Where("task_id = ?", taskID).Order("created_at").Find(&entries).Error
	return entries, err
}
