package repository_test

import (
	"context"
	"testing"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/repository"
	"teamwork-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipEdges(t *testing.T) {
	ctx := context.Background()
	st := testutils.NewTestStore(t)

	common, err := st.Open(ctx, st.Naming().Common(), testutils.AdminPrincipal())
	require.NoError(t, err)
	people := repository.NewPersonRepository(common)
	teams := repository.NewTeamRepository(common)

	alice := testutils.NewTestPerson("alice@example.com", models.RoleWorker)
	bob := testutils.NewTestPerson("bob@example.com", models.RoleWorker)
	require.NoError(t, people.Create(ctx, alice))
	require.NoError(t, people.Create(ctx, bob))

	north := testutils.NewTestTeam("North")
	south := testutils.NewTestTeam("South")
	require.NoError(t, teams.Create(ctx, north))
	require.NoError(t, teams.Create(ctx, south))

	require.NoError(t, people.AddTeam(ctx, alice.ID, north.ID))
	require.NoError(t, people.AddTeam(ctx, alice.ID, south.ID))
	require.NoError(t, people.AddTeam(ctx, bob.ID, north.ID))

	t.Run("team ids follow the person's edge set", func(t *testing.T) {
		ids, err := people.TeamIDs(ctx, alice.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{north.ID, south.ID}, ids)
	})

	t.Run("members are found by index query", func(t *testing.T) {
		members, err := people.ListByTeam(ctx, north.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)

		members, err = people.ListByTeam(ctx, south.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, alice.ID, members[0].ID)
	})

	t.Run("is member", func(t *testing.T) {
		member, err := people.IsMember(ctx, bob.ID, north.ID)
		require.NoError(t, err)
		assert.True(t, member)

		member, err = people.IsMember(ctx, bob.ID, south.ID)
		require.NoError(t, err)
		assert.False(t, member)
	})

	t.Run("removing an edge leaves others intact", func(t *testing.T) {
		require.NoError(t, people.RemoveTeam(ctx, alice.ID, north.ID))

		ids, err := people.TeamIDs(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{south.ID}, ids)

		member, err := people.IsMember(ctx, bob.ID, north.ID)
		require.NoError(t, err)
		assert.True(t, member)
	})

	t.Run("remove all members clears the team's edges", func(t *testing.T) {
		require.NoError(t, people.RemoveAllMembers(ctx, north.ID))

		members, err := people.ListByTeam(ctx, north.ID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}

func TestTeamNameExists(t *testing.T) {
	ctx := context.Background()
	st := testutils.NewTestStore(t)

	common, err := st.Open(ctx, st.Naming().Common(), testutils.AdminPrincipal())
	require.NoError(t, err)
	teams := repository.NewTeamRepository(common)

	require.NoError(t, teams.Create(ctx, testutils.NewTestTeam("Night Shift")))

	exists, err := teams.NameExists(ctx, "night shift")
	require.NoError(t, err)
	assert.True(t, exists, "name match is case-insensitive")

	exists, err = teams.NameExists(ctx, "Day Shift")
	require.NoError(t, err)
	assert.False(t, exists)
}
