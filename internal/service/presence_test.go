package service_test

import (
	"context"
	"testing"
	"time"

	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/repository"
	"teamwork-backend/internal/service"
	"teamwork-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedLocation struct {
	lat, lon float64
	ok       bool
}

func (f fixedLocation) LastKnown() (float64, float64, bool) {
	return f.lat, f.lon, f.ok
}

func TestPresenceUpdateWith(t *testing.T) {
	ctx := context.Background()
	st := testutils.NewTestStore(t)
	presence := service.NewPresenceService(st, nil, time.Minute, logger.New())
	sess := testutils.LoginSession(t, st, testutils.UserPrincipal("field@example.com"))

	require.NoError(t, presence.UpdateWith(ctx, sess, 52.52, 13.405))

	t.Run("one presence record keyed by the person id", func(t *testing.T) {
		location, err := repository.NewLocationRepository(sess.Common).GetByID(ctx, sess.Person.ID)
		require.NoError(t, err)
		assert.Equal(t, 52.52, location.Latitude)
		assert.Equal(t, 13.405, location.Longitude)
		assert.True(t, location.HaveLatLon)
		require.NotNil(t, location.PersonID)
		assert.Equal(t, sess.Person.ID, *location.PersonID)
	})

	t.Run("repeated updates rewrite in place", func(t *testing.T) {
		require.NoError(t, presence.UpdateWith(ctx, sess, 48.86, 2.35))

		locations, err := repository.NewLocationRepository(sess.Common).List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, locations, 1, "no pin accumulation")
		assert.Equal(t, 48.86, locations[0].Latitude)
	})

	t.Run("person record points at the presence location", func(t *testing.T) {
		person, err := repository.NewPersonRepository(sess.Common).GetByID(ctx, sess.Person.ID)
		require.NoError(t, err)
		require.NotNil(t, person.LastSeenAt)
		require.NotNil(t, person.LastLocationID)
		assert.Equal(t, person.ID, *person.LastLocationID)
	})
}

func TestPresenceTracking(t *testing.T) {
	st := testutils.NewTestStore(t)
	provider := fixedLocation{lat: 40.4, lon: -3.7, ok: true}
	presence := service.NewPresenceService(st, provider, 20*time.Millisecond, logger.New())
	defer presence.Stop()

	sess := testutils.LoginSession(t, st, testutils.UserPrincipal("roamer@example.com"))
	presence.Track(sess.Principal)
	// Tracking twice must not start a second loop.
	presence.Track(sess.Principal)

	require.Eventually(t, func() bool {
		location, err := repository.NewLocationRepository(sess.Common).GetByID(context.Background(), sess.Person.ID)
		return err == nil && location.HaveLatLon
	}, 2*time.Second, 10*time.Millisecond)

	locations, err := repository.NewLocationRepository(sess.Common).List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, locations, 1)

	presence.Untrack(sess.Principal.Identity)
}
