package store

import (
	"context"
	"errors"
	"time"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/logger"

	"gorm.io/gorm"
)

// Principal is the authenticated identity performing store operations.
// ServerAdmin marks identities the sync service itself recognizes as
// administrators; it is a property of the credential, not of the Person
// record.
type Principal struct {
	Identity    string
	ServerAdmin bool
}

// DefaultOpenTimeout bounds how long Open waits before treating the
// partition as unavailable. Matches the reference client's ceiling.
const DefaultOpenTimeout = 10 * time.Second

// Options configures a Store.
type Options struct {
	OpenTimeout time.Duration
}

// Store is the partition store: a set of independently replicated slices of
// the dataset, each identified by a handle. This implementation keeps all
// partitions in one database and scopes task rows by a partition column; the
// access rules, bounded opens, serialized local writes and change
// notifications of the sync client contract are preserved.
type Store struct {
	db          *gorm.DB
	naming      Naming
	log         *logger.Logger
	openTimeout time.Duration
	notifier    *notifier
}

// New creates a Store over the given database.
func New(db *gorm.DB, naming Naming, log *logger.Logger, opts *Options) *Store {
	if opts == nil {
		opts = &Options{}
	}
	timeout := opts.OpenTimeout
	if timeout == 0 {
		timeout = DefaultOpenTimeout
	}
	return &Store{
		db:          db,
		naming:      naming,
		log:         log,
		openTimeout: timeout,
		notifier:    newNotifier(),
	}
}

// Naming returns the partition naming scheme in use.
func (s *Store) Naming() Naming {
	return s.naming
}

// Open resolves a partition handle for the principal. The wait is bounded:
// callers may pass a context with their own deadline, and the store applies
// its ceiling on top. A deadline exceeded is reported as
// PartitionUnavailableError, a retryable soft failure. A principal without
// read access gets an authentication failure.
func (s *Store) Open(ctx context.Context, partition string, principal Principal) (*Handle, error) {
	kind, ok := s.naming.Kind(partition)
	if !ok {
		return nil, &apperrors.PartitionUnavailableError{Partition: partition, Cause: errors.New("unknown partition name")}
	}
	if principal.Identity == "" {
		return nil, apperrors.ErrAuthFailure
	}

	ctx, cancel := context.WithTimeout(ctx, s.openTimeout)
	defer cancel()

	mayRead, mayWrite, err := s.access(ctx, partition, kind, principal)
	if err != nil {
		return nil, err
	}
	if !mayRead {
		return nil, &apperrors.AuthenticationError{
			Message: "principal " + principal.Identity + " has no access to " + partition,
		}
	}

	return &Handle{
		store:     s,
		partition: partition,
		kind:      kind,
		principal: principal,
		mayWrite:  mayWrite,
	}, nil
}

// access resolves the principal's effective permissions on a partition.
// The common partition is readable and writable by every authenticated
// principal: the reference deployment grants ("*", write) on it at first
// admin login, and that intentionally permissive default is kept as-is.
func (s *Store) access(ctx context.Context, partition string, kind PartitionKind, principal Principal) (mayRead, mayWrite bool, err error) {
	if principal.ServerAdmin || kind == KindCommon {
		return true, true, nil
	}

	var grants []models.PartitionGrant
	err = s.db.WithContext(ctx).
		Where("partition = ? AND pattern IN (?, ?)", partition, principal.Identity, "*").
		Find(&grants).Error
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return false, false, &apperrors.PartitionUnavailableError{Partition: partition, Cause: err}
		}
		return false, false, err
	}
	for _, g := range grants {
		mayRead = mayRead || g.MayRead
		mayWrite = mayWrite || g.MayWrite
	}
	return mayRead, mayWrite, nil
}

// GrantAccess records (or revokes, with GrantNone) a principal pattern's
// access to a partition. Only a principal the sync service recognizes as a
// server administrator, or one holding a manage grant on the partition, may
// issue changes. The grantee observes the change eventually, on its next
// open.
func (s *Store) GrantAccess(ctx context.Context, by Principal, partition, pattern string, level models.GrantLevel) error {
	if !by.ServerAdmin {
		managed, err := s.mayManage(ctx, partition, by)
		if err != nil {
			return err
		}
		if !managed {
			return &apperrors.NotPermittedError{Operation: "grant access on " + partition}
		}
	}

	var grant models.PartitionGrant
	err := s.db.WithContext(ctx).
		Where("partition = ? AND pattern = ?", partition, pattern).
		First(&grant).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		grant = models.PartitionGrant{Partition: partition, Pattern: pattern}
		grant.SetLevel(level)
		if err := s.db.WithContext(ctx).Create(&grant).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		grant.SetLevel(level)
		if err := s.db.WithContext(ctx).Save(&grant).Error; err != nil {
			return err
		}
	}

	s.log.WithFields(map[string]interface{}{
		"partition": partition,
		"pattern":   pattern,
		"level":     level.String(),
	}).Info("partition grant updated")
	return nil
}

func (s *Store) mayManage(ctx context.Context, partition string, principal Principal) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.PartitionGrant{}).
		Where("partition = ? AND pattern IN (?, ?) AND may_manage", partition, principal.Identity, "*").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
