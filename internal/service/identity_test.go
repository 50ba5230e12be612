package service_test

import (
	"context"
	"testing"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/service"
	"teamwork-backend/internal/store"
	"teamwork-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("first login creates a worker person record", func(t *testing.T) {
		st := testutils.NewTestStore(t)
		identity := service.NewIdentityService(st, nil, nil, logger.New())

		sess, err := identity.Login(ctx, testutils.UserPrincipal("newbie@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "newbie@example.com", sess.Person.ID)
		assert.Equal(t, models.RoleWorker, sess.Person.Role())
		assert.False(t, sess.IsAdmin())
		assert.False(t, sess.CanAdminister())
	})

	t.Run("repeat login reuses the record", func(t *testing.T) {
		st := testutils.NewTestStore(t)
		identity := service.NewIdentityService(st, nil, nil, logger.New())
		principal := testutils.UserPrincipal("regular@example.com")

		first, err := identity.Login(ctx, principal)
		require.NoError(t, err)
		first.Person.FirstName = "Reg"
		require.NoError(t, first.Common.Write(ctx, func(tx *gorm.DB) error {
			return tx.Save(first.Person).Error
		}))

		second, err := identity.Login(ctx, principal)
		require.NoError(t, err)
		assert.Equal(t, "Reg", second.Person.FirstName)
	})

	t.Run("server admin is promoted to manager", func(t *testing.T) {
		st := testutils.NewTestStore(t)
		identity := service.NewIdentityService(st, nil, nil, logger.New())

		sess, err := identity.Login(ctx, testutils.AdminPrincipal())
		require.NoError(t, err)
		assert.Equal(t, models.RoleManager, sess.Person.Role())
		assert.True(t, sess.CanAdminister())
	})

	t.Run("promotion does not demote an existing admin", func(t *testing.T) {
		st := testutils.NewTestStore(t)
		identity := service.NewIdentityService(st, nil, nil, logger.New())
		principal := testutils.AdminPrincipal()

		sess, err := identity.Login(ctx, principal)
		require.NoError(t, err)
		sess.Person.SetRole(models.RoleAdmin)
		require.NoError(t, sess.Common.Write(ctx, func(tx *gorm.DB) error {
			return tx.Save(sess.Person).Error
		}))

		again, err := identity.Login(ctx, principal)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, again.Person.Role())
	})

	t.Run("admin login issues the global common grant", func(t *testing.T) {
		st, db := testutils.NewTestStoreWithDB(t)
		identity := service.NewIdentityService(st, nil, nil, logger.New())

		_, err := identity.Login(ctx, testutils.AdminPrincipal())
		require.NoError(t, err)

		var grant models.PartitionGrant
		err = db.First(&grant, "partition = ? AND pattern = ?", st.Naming().Common(), "*").Error
		require.NoError(t, err)
		assert.True(t, grant.MayRead)
		assert.True(t, grant.MayWrite)
		assert.False(t, grant.MayManage)
	})

	t.Run("empty identity cannot log in", func(t *testing.T) {
		st := testutils.NewTestStore(t)
		identity := service.NewIdentityService(st, nil, nil, logger.New())

		_, err := identity.Login(ctx, store.Principal{})
		assert.ErrorIs(t, err, apperrors.ErrAuthFailure)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	st := testutils.NewTestStore(t)
	identity := service.NewIdentityService(st, nil, nil, logger.New())

	t.Run("unknown person does not resolve", func(t *testing.T) {
		_, err := identity.Resolve(ctx, testutils.UserPrincipal("ghost@example.com"))
		assert.ErrorIs(t, err, apperrors.ErrPersonNotFound)
	})

	t.Run("resolve has no side effects", func(t *testing.T) {
		principal := testutils.UserPrincipal("known@example.com")
		_, err := identity.Login(ctx, principal)
		require.NoError(t, err)

		sess, err := identity.Resolve(ctx, principal)
		require.NoError(t, err)
		assert.Equal(t, principal.Identity, sess.Person.ID)
		assert.Equal(t, models.RoleWorker, sess.Person.Role())
	})
}
