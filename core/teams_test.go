package core

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubTeamDB struct {
	addCalls   int
	addTeam    Team
	addRefs    []string
	addMembers []User
	addErr     error
	listTeams  []Team
	listErr    error
}

func (s *stubTeamDB) Add(_ context.Context, team Team, memberRefs []string) (Team, []User, error) {
	s.addCalls++
	s.addTeam = team
	s.addRefs = memberRefs
	if s.addErr != nil {
		return Team{}, nil, s.addErr
	}
	team.ID = uuid.New()
	return team, s.addMembers, nil
}

func (s *stubTeamDB) List(_ context.Context, _ TeamFilter, _ ListOptions) ([]Team, error) {
	return s.listTeams, s.listErr
}

func TestTeamCreateRequiresName(t *testing.T) {
	stub := &stubTeamDB{}
	svc := NewTeamService(discardLogger(), stub)

	_, _, err := svc.Create(context.Background(), Team{}, nil)

	require.ErrorIs(t, err, ErrValidation)
	require.Zero(t, stub.addCalls, "no storage call without a valid payload")
}

func TestTeamCreatePassesMemberRefs(t *testing.T) {
	alice := User{ID: uuid.New()}
	bob := User{ID: uuid.New()}
	stub := &stubTeamDB{addMembers: []User{alice, bob}}
	svc := NewTeamService(discardLogger(), stub)

	team, members, err := svc.Create(context.Background(), Team{Name: "Core"}, []string{"ext-1", "ext-2"})

	require.NoError(t, err)
	require.Equal(t, "Core", team.Name)
	require.Equal(t, []string{"ext-1", "ext-2"}, stub.addRefs)
	require.Len(t, members, 2)
}

func TestTeamCreateSurfacesUnresolvedMembers(t *testing.T) {
	stub := &stubTeamDB{addErr: ErrDependencyNotFound}
	svc := NewTeamService(discardLogger(), stub)

	_, _, err := svc.Create(context.Background(), Team{Name: "Ghost"}, []string{"ext-missing"})

	require.ErrorIs(t, err, ErrDependencyNotFound)
}

func TestTeamCreateAllowsEmptyMemberSet(t *testing.T) {
	stub := &stubTeamDB{addMembers: []User{}}
	svc := NewTeamService(discardLogger(), stub)

	_, members, err := svc.Create(context.Background(), Team{Name: "Solo"}, nil)

	require.NoError(t, err)
	require.Empty(t, members)
	require.Equal(t, 1, stub.addCalls)
}
