package cli

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
	"github.com/pac-cee/mongocli/internal/service"
)

// memSocialRepo keeps the friend graph and statuses in memory with the same
// contract as the storage-backed repositories, including the all-or-nothing
// accept.
type memSocialRepo struct {
	users    map[string]*model.SocialUser
	statuses []model.Status
}

var (
	_ repository.SocialUserRepository = (*memSocialRepo)(nil)
	_ repository.StatusRepository     = (*memSocialRepo)(nil)
)

func newMemSocialRepo() *memSocialRepo {
	return &memSocialRepo{users: map[string]*model.SocialUser{}}
}

func (m *memSocialRepo) Register(_ context.Context, username string) error {
	if _, ok := m.users[username]; ok {
		return errs.ErrAlreadyExists
	}
	m.users[username] = &model.SocialUser{Username: username}
	return nil
}

func (m *memSocialRepo) GetByUsername(_ context.Context, username string) (*model.SocialUser, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

func (m *memSocialRepo) AddRequest(_ context.Context, to, from string) error {
	u, ok := m.users[to]
	if !ok {
		return errs.ErrNotFound
	}
	u.Requests = append(u.Requests, from)
	return nil
}

func (m *memSocialRepo) AcceptRequest(_ context.Context, username, from string) error {
	u, ok := m.users[username]
	if !ok {
		return errs.ErrNotFound
	}
	idx := -1
	for i, r := range u.Requests {
		if r == from {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errs.ErrNoSuchRequest
	}
	other, ok := m.users[from]
	if !ok {
		return errs.ErrNotFound
	}
	u.Requests = append(u.Requests[:idx], u.Requests[idx+1:]...)
	u.Friends = append(u.Friends, from)
	other.Friends = append(other.Friends, username)
	return nil
}

func (m *memSocialRepo) Add(_ context.Context, s *model.Status) error {
	m.statuses = append(m.statuses, *s)
	return nil
}

func (m *memSocialRepo) Feed(_ context.Context, usernames []string, limit int) ([]model.Status, error) {
	authors := map[string]bool{}
	for _, u := range usernames {
		authors[u] = true
	}
	var out []model.Status
	for _, s := range m.statuses {
		if authors[s.Username] {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestSocialSession_AcceptMakesFriendshipMutual(t *testing.T) {
	t.Parallel()
	repo := newMemSocialRepo()
	menu := SocialMenu(service.NewSocial(repo, repo))

	input := strings.Join([]string{
		"1", "ann",
		"1", "bob",
		"2", "ann", "bob",
		"3", "bob", "ann",
		"4", "ann", "hello world",
		"5", "bob",
		"6",
	}, "\n") + "\n"

	out := &bytes.Buffer{}
	s := NewSession(strings.NewReader(input), out, zap.NewNop())
	require.NoError(t, s.Run(context.Background(), menu))

	got := out.String()
	require.Contains(t, got, "Friend request sent!")
	require.Contains(t, got, "Pending requests: ann")
	require.Contains(t, got, "Friend request accepted!")
	require.Contains(t, got, "Status posted!")
	require.Contains(t, got, "ann: hello world")

	require.Equal(t, []string{"ann"}, repo.users["bob"].Friends)
	require.Equal(t, []string{"bob"}, repo.users["ann"].Friends)
	require.Empty(t, repo.users["bob"].Requests)
}

func TestSocialSession_RejectsSelfAndDuplicateRequests(t *testing.T) {
	t.Parallel()
	repo := newMemSocialRepo()
	menu := SocialMenu(service.NewSocial(repo, repo))

	input := strings.Join([]string{
		"1", "ann",
		"1", "bob",
		"2", "ann", "ann",
		"2", "ann", "bob",
		"2", "ann", "bob",
		"6",
	}, "\n") + "\n"

	out := &bytes.Buffer{}
	s := NewSession(strings.NewReader(input), out, zap.NewNop())
	require.NoError(t, s.Run(context.Background(), menu))

	got := out.String()
	require.Contains(t, got, "Cannot friend yourself.")
	require.Contains(t, got, "Request already sent or you are already friends.")
	require.Equal(t, []string{"ann"}, repo.users["bob"].Requests)
}
