package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamMembership(t *testing.T) {
	team := newTeam("red")
	require.Equal(t, "red", team.Name())
	require.False(t, team.Contains("alice"))

	team.SetMembers("alice", "bob")
	require.True(t, team.Contains("alice"))
	require.True(t, team.Contains("bob"))

	team.AddMembers("carol")
	team.RemoveMembers("alice")
	require.False(t, team.Contains("alice"))
	require.True(t, team.Contains("carol"))

	members := team.Members()
	require.Len(t, members, 2)
	// the returned set is a copy
	delete(members, "bob")
	require.True(t, team.Contains("bob"))
}

func TestTeamDecorate(t *testing.T) {
	team := newTeam("red")
	require.Equal(t, "alice", team.Decorate("alice"))

	team.SetDecoration("§c[RED] ", " §r")
	require.Equal(t, "§c[RED] alice §r", team.Decorate("alice"))
}
