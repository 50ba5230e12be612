package service

import (
	"context"
	"errors"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/repository"
	"teamwork-backend/internal/store"

	"gorm.io/gorm"
)

// IdentityService resolves principals to Person records and applies the
// login-time permission protocol.
type IdentityService struct {
	store    *store.Store
	ldap     *LDAPService
	presence *PresenceService
	log      *logger.Logger
}

// NewIdentityService creates a new identity service. ldap and presence are
// optional.
func NewIdentityService(st *store.Store, ldap *LDAPService, presence *PresenceService, log *logger.Logger) *IdentityService {
	return &IdentityService{store: st, ldap: ldap, presence: presence, log: log}
}

// Login resolves the principal's Person record, creating one on first login,
// and applies the login side effects:
//
//   - a principal the store recognizes as a server administrator has its
//     Person role force-set to Manager, but only when not already
//     Admin/Manager, to avoid redundant writes and change notifications;
//   - an administrator login (re)issues the global ("*", write) grant on the
//     common partition. This is the intentionally permissive default policy
//     of the original deployment, kept as-is;
//   - the presence updater is started for the resolved identity.
func (s *IdentityService) Login(ctx context.Context, principal store.Principal) (*Session, error) {
	common, err := s.store.Open(ctx, s.store.Naming().Common(), principal)
	if err != nil {
		return nil, err
	}

	people := repository.NewPersonRepository(common)
	person, err := people.GetByID(ctx, principal.Identity)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		person = s.newPerson(principal.Identity)
		if err := people.Create(ctx, person); err != nil {
			return nil, err
		}
		s.log.WithField("identity", principal.Identity).Info("created person record on first login")
	case err != nil:
		return nil, err
	}

	if principal.ServerAdmin && person.Role() != models.RoleManager && person.Role() != models.RoleAdmin {
		person.SetRole(models.RoleManager)
		if err := people.Save(ctx, person); err != nil {
			return nil, err
		}
		s.log.WithField("identity", principal.Identity).Info("promoted server administrator to manager role")
	}

	if principal.ServerAdmin {
		err := s.store.GrantAccess(ctx, principal, s.store.Naming().Common(), "*", models.GrantWrite)
		if err != nil {
			// The grant is eventually re-issued on the next admin login.
			s.log.WithError(err).Warn("could not refresh global grant on common partition")
		}
	}

	if s.presence != nil {
		s.presence.Track(principal)
	}

	return &Session{Principal: principal, Person: person, Common: common}, nil
}

// Resolve loads an existing session for a principal without applying login
// side effects. Used on every authenticated request.
func (s *IdentityService) Resolve(ctx context.Context, principal store.Principal) (*Session, error) {
	common, err := s.store.Open(ctx, s.store.Naming().Common(), principal)
	if err != nil {
		return nil, err
	}

	person, err := repository.NewPersonRepository(common).GetByID(ctx, principal.Identity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}

	return &Session{Principal: principal, Person: person, Common: common}, nil
}

// newPerson builds a first-login Person record with the Worker default role,
// enriched with directory names when a directory is configured.
func (s *IdentityService) newPerson(identity string) *models.Person {
	person := &models.Person{ID: identity}
	person.SetRole(models.RoleWorker)

	if s.ldap != nil {
		profile, err := s.ldap.LookupProfile(identity)
		if err != nil {
			s.log.WithError(err).WithField("identity", identity).Debug("directory lookup failed, leaving profile empty")
			return person
		}
		if profile != nil {
			person.FirstName = profile.GivenName
			person.LastName = profile.SN
		}
	}
	return person
}
