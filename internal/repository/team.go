package repository

import (
	"context"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/store"

	"gorm.io/gorm"
)

// TeamRepository handles Team records in the common partition.
type TeamRepository struct {
	h *store.Handle
}

// NewTeamRepository creates a new team repository over an open common
// partition handle.
func NewTeamRepository(h *store.Handle) *TeamRepository {
	return &TeamRepository{h: h}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(team).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	err := r.h.Read(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// NameExists reports whether a team with this name exists, matching
// case-insensitively.
func (r *TeamRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.h.Read(ctx).Model(&models.Team{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}

// List retrieves all teams ordered by name
func (r *TeamRepository) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.h.Read(ctx).Order("name").Find(&teams).Error
	return teams, err
}

// Save persists changes to a team
func (r *TeamRepository) Save(ctx context.Context, team *models.Team) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Save(team).Error
	})
}

// Delete deletes a team record
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
