package repository

import (
	"context"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/store"

	"gorm.io/gorm"
)

// PersonRepository handles Person records and membership edges in the common
// partition.
type PersonRepository struct {
	h *store.Handle
}

// NewPersonRepository creates a new person repository over an open common
// partition handle.
func NewPersonRepository(h *store.Handle) *PersonRepository {
	return &PersonRepository{h: h}
}

// GetByID retrieves a person by identity
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*models.Person, error) {
	var person models.Person
	err := r.h.Read(ctx).First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// Create creates a new person
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(person).Error
	})
}

// Save persists changes to a person
func (r *PersonRepository) Save(ctx context.Context, person *models.Person) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Save(person).Error
	})
}

// List retrieves all people
func (r *PersonRepository) List(ctx context.Context) ([]models.Person, error) {
	var people []models.Person
	err := r.h.Read(ctx).Order("last_name, first_name").Find(&people).Error
	return people, err
}

// TeamIDs returns the ids of the teams the person belongs to. The edge set
// is the authoritative membership record.
func (r *PersonRepository) TeamIDs(ctx context.Context, personID string) ([]string, error) {
	var ids []string
	err := r.h.Read(ctx).Model(&models.TeamMembership{}).
		Where("person_id = ?", personID).
		Pluck("team_id", &ids).Error
	return ids, err
}

// ListByTeam finds all people whose team set contains the given team - the
// index-query counterpart of the back-reference-only membership design.
func (r *PersonRepository) ListByTeam(ctx context.Context, teamID string) ([]models.Person, error) {
	var people []models.Person
	err := r.h.Read(ctx).
		Joins("JOIN team_memberships ON team_memberships.person_id = people.id").
		Where("team_memberships.team_id = ?", teamID).
		Order("last_name, first_name").
		Find(&people).Error
	return people, err
}

// IsMember reports whether the person belongs to the team.
func (r *PersonRepository) IsMember(ctx context.Context, personID, teamID string) (bool, error) {
	var count int64
	err := r.h.Read(ctx).Model(&models.TeamMembership{}).
		Where("person_id = ? AND team_id = ?", personID, teamID).
		Count(&count).Error
	return count > 0, err
}

// AddTeam records the person -> team membership edge.
func (r *PersonRepository) AddTeam(ctx context.Context, personID, teamID string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(&models.TeamMembership{PersonID: personID, TeamID: teamID}).Error
	})
}

// RemoveTeam deletes the person -> team membership edge.
func (r *PersonRepository) RemoveTeam(ctx context.Context, personID, teamID string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Delete(&models.TeamMembership{}, "person_id = ? AND team_id = ?", personID, teamID).Error
	})
}

// RemoveAllMembers deletes every membership edge pointing at the team.
func (r *PersonRepository) RemoveAllMembers(ctx context.Context, teamID string) error {
	return r.h.Write(ctx, func(tx *gorm.DB) error {
		return tx.Delete(&models.TeamMembership{}, "team_id = ?", teamID).Error
	})
}
