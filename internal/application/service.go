package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
)

const maxAccountNameLength = 32

// AccountService registers and lists services accounts.
type AccountService struct {
	repo  ports.AccountRepository
	clock ports.Clock
}

func NewAccountService(repo ports.AccountRepository, clock ports.Clock) *AccountService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AccountService{repo: repo, clock: clock}
}

func (s *AccountService) Register(ctx context.Context, name string) (domain.Account, error) {
	name = strings.TrimSpace(name)
	if err := validateAccountName(name); err != nil {
		return domain.Account{}, err
	}

	id := domain.NewAccountID(name)
	_, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountExists, name)
	case !errors.Is(err, domain.ErrAccountNotFound):
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	account := domain.Account{
		ID:           id,
		Name:         name,
		RegisteredAt: s.clock.Now(),
	}
	if err := s.repo.Save(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("save account: %w", err)
	}

	return account, nil
}

func (s *AccountService) Get(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (s *AccountService) List(ctx context.Context) ([]AccountSummary, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, summaryFromAccount(account))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})

	return summaries, nil
}

func validateAccountName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", domain.ErrInvalidAccount)
	}
	if len(name) > maxAccountNameLength {
		return fmt.Errorf("%w: longer than %d bytes", domain.ErrInvalidAccount, maxAccountNameLength)
	}
	if strings.ContainsAny(name, " \t\r\n:,*?!@") {
		return fmt.Errorf("%w: %q contains reserved characters", domain.ErrInvalidAccount, name)
	}

	return nil
}

func summaryFromAccount(account domain.Account) AccountSummary {
	return AccountSummary{
		ID:           account.ID,
		Name:         account.Name,
		RegisteredAt: account.RegisteredAt,
		Gender:       account.Gender,
	}
}
