package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
	"github.com/pac-cee/mongocli/internal/service"
)

// memAccountRepo keeps balances in memory with the same contract as the
// storage-backed repository.
type memAccountRepo struct {
	order    []string
	balances map[string]float64
}

var _ repository.AccountRepository = (*memAccountRepo)(nil)

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{balances: map[string]float64{}}
}

func (m *memAccountRepo) Create(_ context.Context, name string) error {
	if _, ok := m.balances[name]; !ok {
		m.order = append(m.order, name)
	}
	m.balances[name] = 0
	return nil
}

func (m *memAccountRepo) GetByName(_ context.Context, name string) (*model.Account, error) {
	b, ok := m.balances[name]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &model.Account{Name: name, Balance: b}, nil
}

func (m *memAccountRepo) List(_ context.Context) ([]model.Account, error) {
	out := make([]model.Account, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, model.Account{Name: name, Balance: m.balances[name]})
	}
	return out, nil
}

func (m *memAccountRepo) Deposit(_ context.Context, name string, amount float64) error {
	if _, ok := m.balances[name]; !ok {
		return errs.ErrNotFound
	}
	m.balances[name] += amount
	return nil
}

func (m *memAccountRepo) Withdraw(_ context.Context, name string, amount float64) error {
	b, ok := m.balances[name]
	if !ok {
		return errs.ErrNotFound
	}
	if b < amount {
		return errs.ErrInsufficientFunds
	}
	m.balances[name] = b - amount
	return nil
}

func (m *memAccountRepo) Transfer(_ context.Context, sender, receiver string, amount float64) error {
	if _, ok := m.balances[sender]; !ok {
		return fmt.Errorf("sender %q: %w", sender, errs.ErrNotFound)
	}
	if _, ok := m.balances[receiver]; !ok {
		return fmt.Errorf("receiver %q: %w", receiver, errs.ErrNotFound)
	}
	if m.balances[sender] < amount {
		return errs.ErrInsufficientFunds
	}
	m.balances[sender] -= amount
	m.balances[receiver] += amount
	return nil
}

func TestBankingSession(t *testing.T) {
	t.Parallel()
	repo := newMemAccountRepo()
	menu := BankingMenu(service.NewBanking(repo))

	input := strings.Join([]string{
		"1", "alice",
		"1", "bob",
		"2", "alice", "100",
		"4", "alice", "bob", "30",
		"3", "bob", "1000",
		"5",
		"6",
	}, "\n") + "\n"

	out := &bytes.Buffer{}
	s := NewSession(strings.NewReader(input), out, zap.NewNop())
	require.NoError(t, s.Run(context.Background(), menu))

	got := out.String()
	require.Contains(t, got, "Account created!")
	require.Contains(t, got, "Deposit successful!")
	require.Contains(t, got, "Transfer successful!")
	require.Contains(t, got, "Insufficient funds.")
	require.Contains(t, got, "1. Name: alice, Balance: $70.00")
	require.Contains(t, got, "2. Name: bob, Balance: $30.00")
	require.Contains(t, got, "Goodbye!")

	require.Equal(t, 100.0, repo.balances["alice"]+repo.balances["bob"], "transfer must conserve total funds")
}

func TestBankingSession_InvalidAmountAborts(t *testing.T) {
	t.Parallel()
	repo := newMemAccountRepo()
	menu := BankingMenu(service.NewBanking(repo))

	input := strings.Join([]string{
		"1", "alice",
		"2", "alice", "abc",
		"6",
	}, "\n") + "\n"

	out := &bytes.Buffer{}
	s := NewSession(strings.NewReader(input), out, zap.NewNop())
	require.NoError(t, s.Run(context.Background(), menu))

	require.Contains(t, out.String(), "Invalid amount.")
	require.Equal(t, 0.0, repo.balances["alice"], "aborted deposit must not change the balance")
}
