package service

import (
	"context"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/repository"
)

// PreferenceService stores small per-person settings in the common
// partition, the currently selected team being the one the app cares about.
type PreferenceService struct {
	log *logger.Logger
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(log *logger.Logger) *PreferenceService {
	return &PreferenceService{log: log}
}

// SelectedTeam returns the caller's remembered team selection, re-validated
// against their current memberships. A selection pointing at a team the
// person has since left (or that was deleted) is treated as empty, so a
// stale preference can never steer the app into a partition the person no
// longer has access to.
func (s *PreferenceService) SelectedTeam(ctx context.Context, sess *Session) (string, error) {
	prefs := repository.NewPreferenceRepository(sess.Common)
	teamID, err := prefs.Get(ctx, sess.Person.ID, models.PrefSelectedTeam)
	if err != nil {
		return "", err
	}
	if teamID == "" {
		return "", nil
	}

	member, err := repository.NewPersonRepository(sess.Common).IsMember(ctx, sess.Person.ID, teamID)
	if err != nil {
		return "", err
	}
	if !member {
		s.log.WithFields(map[string]interface{}{
			"person": sess.Person.ID,
			"team":   teamID,
		}).Info("clearing stale team selection")
		if err := prefs.Set(ctx, sess.Person.ID, models.PrefSelectedTeam, ""); err != nil {
			return "", err
		}
		return "", nil
	}
	return teamID, nil
}

// SetSelectedTeam remembers the caller's team selection. The person must
// currently be a member of the team.
func (s *PreferenceService) SetSelectedTeam(ctx context.Context, sess *Session, teamID string) error {
	if teamID != "" {
		member, err := repository.NewPersonRepository(sess.Common).IsMember(ctx, sess.Person.ID, teamID)
		if err != nil {
			return err
		}
		if !member {
			return apperrors.ErrMemberNotInTeam
		}
	}
	return repository.NewPreferenceRepository(sess.Common).Set(ctx, sess.Person.ID, models.PrefSelectedTeam, teamID)
}
