package testutils

import (
	"context"
	"testing"
	"time"

	"teamwork-backend/internal/database"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/service"
	"teamwork-backend/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB opens an in-memory database with the full schema migrated.
// Each call returns an isolated database, so tests never share state.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// NewTestStore creates a partition store over a fresh in-memory database,
// named for the "Teamwork" application and with a short open timeout so
// timeout paths stay fast in tests.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, _ := NewTestStoreWithDB(t)
	return st
}

// NewTestStoreWithDB also returns the underlying database, for tests that
// need to seed rows the store API does not create.
func NewTestStoreWithDB(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()
	db := OpenTestDB(t)
	st := store.New(db, store.Naming{AppName: "Teamwork"}, logger.New(), &store.Options{
		OpenTimeout: 2 * time.Second,
	})
	return st, db
}

// AdminPrincipal returns a server administrator principal for tests.
func AdminPrincipal() store.Principal {
	return store.Principal{Identity: "admin@example.com", ServerAdmin: true}
}

// UserPrincipal returns a plain authenticated principal for tests.
func UserPrincipal(identity string) store.Principal {
	return store.Principal{Identity: identity, ServerAdmin: false}
}

// LoginSession runs the real first-login flow for a principal and returns
// the resolved session. Presence tracking is disabled.
func LoginSession(t *testing.T, st *store.Store, principal store.Principal) *service.Session {
	t.Helper()

	identity := service.NewIdentityService(st, nil, nil, logger.New())
	sess, err := identity.Login(context.Background(), principal)
	require.NoError(t, err)
	return sess
}
