package service

import (
	"context"
	"sync"
	"time"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/repository"
	"teamwork-backend/internal/store"
)

// LocationProvider supplies the most recent device fix, when one exists.
type LocationProvider interface {
	LastKnown() (lat, lon float64, ok bool)
}

// PresenceService periodically stamps a principal's last-seen time and
// last-known position into the common partition. Each person owns exactly
// one presence location record, keyed by their own id, so repeated updates
// rewrite it in place instead of accumulating pins.
//
// Presence is advisory. Every failure here is logged and swallowed: a
// missed heartbeat must never disturb whatever the user is doing.
type PresenceService struct {
	store    *store.Store
	provider LocationProvider
	interval time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// NewPresenceService creates a new presence service. provider may be nil,
// in which case only last-seen times are maintained.
func NewPresenceService(st *store.Store, provider LocationProvider, interval time.Duration, log *logger.Logger) *PresenceService {
	return &PresenceService{
		store:    st,
		provider: provider,
		interval: interval,
		log:      log,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Track starts the periodic update loop for a principal. Starting an
// already-tracked identity is a no-op.
func (s *PresenceService) Track(principal store.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.cancels[principal.Identity]; running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancels[principal.Identity] = cancel

	go s.run(ctx, principal)
}

func (s *PresenceService) run(ctx context.Context, principal store.Principal) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.updateOnce(ctx, principal)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.updateOnce(ctx, principal)
		}
	}
}

func (s *PresenceService) updateOnce(ctx context.Context, principal store.Principal) {
	var lat, lon *float64
	if s.provider != nil {
		if la, lo, ok := s.provider.LastKnown(); ok {
			lat, lon = &la, &lo
		}
	}
	if err := s.apply(ctx, principal, lat, lon); err != nil {
		s.log.WithError(err).WithField("identity", principal.Identity).Warn("presence update skipped")
	}
}

// UpdateWith records an explicitly reported position for the session's
// person, outside the periodic loop.
func (s *PresenceService) UpdateWith(ctx context.Context, sess *Session, lat, lon float64) error {
	return s.apply(ctx, sess.Principal, &lat, &lon)
}

func (s *PresenceService) apply(ctx context.Context, principal store.Principal, lat, lon *float64) error {
	common, err := s.store.Open(ctx, s.store.Naming().Common(), principal)
	if err != nil {
		return err
	}

	people := repository.NewPersonRepository(common)
	person, err := people.GetByID(ctx, principal.Identity)
	if err != nil {
		return err
	}

	var location *models.Location
	if lat != nil && lon != nil {
		location, err = repository.NewLocationRepository(common).UpsertPresence(ctx, person.ID, lat, lon)
		if err != nil {
			return err
		}
	}

	now := time.Now()
	person.LastSeenAt = &now
	if location != nil {
		person.LastLocationID = &location.ID
	}
	return people.Save(ctx, person)
}

// Untrack stops the update loop for one identity.
func (s *PresenceService) Untrack(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.cancels[identity]; ok {
		cancel()
		delete(s.cancels, identity)
	}
}

// Stop cancels every running update loop.
func (s *PresenceService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for identity, cancel := range s.cancels {
		cancel()
		delete(s.cancels, identity)
	}
}
