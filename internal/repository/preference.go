package repository

import (
	"context"
	"errors"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/store"

	"gorm.io/gorm"
)

// PreferenceRepository handles per-person key-value preferences in the
// common partition.
type PreferenceRepository struct {
	h *store.Handle
}

// NewPreferenceRepository creates a new preference repository over an open
// common partition handle.
func NewPreferenceRepository(h *store.Handle) *PreferenceRepository {
	return &PreferenceRepository{h: h}
}

// Get returns the value for a person's preference key, or "" when unset.
func (r *PreferenceRepository) Get(ctx context.Context, personID, key string) (string, error) {
	var pref models.Preference
	err := r.h.Read(ctx).First(&pref, "person_id = ? AND key = ?", personID, key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

// Set writes a person's preference, creating or replacing it.
func (r *PreferenceRepository) Set(ctx context.Context, personID, key, value string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		var pref models.Preference
		err := tx.First(&pref, "person_id = ? AND key = ?", personID, key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.Preference{PersonID: personID, Key: key, Value: value}).Error
		}
		if err != nil {
			return err
		}
		pref.Value = value
		return tx.Save(&pref).Error
	})
}
