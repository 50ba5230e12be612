package repository

import (
	"context"
	"errors"
	"time"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/store"

	"gorm.io/gorm"
)

// LocationRepository handles Location records in the common partition.
type LocationRepository struct {
	h *store.Handle
}

// NewLocationRepository creates a new location repository over an open
// common partition handle.
func NewLocationRepository(h *store.Handle) *LocationRepository {
	return &LocationRepository{h: h}
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	var location models.Location
	err := r.h.Read(ctx).First(&location, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByTaskID retrieves the work location paired with a task.
func (r *LocationRepository) GetByTaskID(ctx context.Context, taskID string) (*models.Location, error) {
	var location models.Location
	err := r.h.Read(ctx).First(&location, "task_id = ?", taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Create creates a new location
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(location).Error
	})
}

// Save persists changes to a location
func (r *LocationRepository) Save(ctx context.Context, location *models.Location) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Save(location).Error
	})
}

// List retrieves all locations, optionally filtered to one team's pins via
// the denormalized team-id mirror.
func (r *LocationRepository) List(ctx context.Context, teamID *string) ([]models.Location, error) {
	q := r.h.Read(ctx).Model(&models.Location{})
	if teamID != nil {
		q = q.Where("team_id = ?", *teamID)
	}
	var locations []models.Location
	err := q.Find(&locations).Error
	return locations, err
}

// SetTeamMirror updates the team-id mirror on a task's location so map
// queries can filter by team without crossing partitions. A task without a
// location is tolerated: the update is skipped silently.
func (r *LocationRepository) SetTeamMirror(ctx context.Context, taskID string, teamID *string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		var location models.Location
		err := tx.First(&location, "task_id = ?", taskID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&location).Update("team_id", teamID).Error
	})
}

// DeleteByTaskID removes the location paired with a task, if any.
func (r *LocationRepository) DeleteByTaskID(ctx context.Context, taskID string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Delete(&models.Location{}, "task_id = ?", taskID).Error
	})
}

// UpsertPresence writes a person's last known position. The location id is
// the person id itself, which guarantees a single presence record per
// person. Coordinates are optional: without them only the last-updated time
// moves, so we at least know when the person was last seen.
func (r *LocationRepository) UpsertPresence(ctx context.Context, personID string, lat, lon *float64) (*models.Location, error) {
	now := time.Now().UTC()
	var location models.Location
	err := r.h.Write(ctx, func(tx *gorm.DB) error {
		err := tx.First(&location, "id = ?", personID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			location = models.Location{
				ID:           personID,
				PersonID:     &personID,
				LookupStatus: models.LookupStatusUnresolved,
			}
			if lat != nil && lon != nil {
				location.Latitude = *lat
				location.Longitude = *lon
				location.HaveLatLon = true
			}
			return tx.Create(&location).Error
		}
		if err != nil {
			return err
		}
		if lat != nil && lon != nil {
			location.Latitude = *lat
			location.Longitude = *lon
			location.HaveLatLon = true
		}
		location.UpdatedAt = now
		return tx.Save(&location).Error
	})
	if err != nil {
		return nil, err
	}
	return &location, nil
}
