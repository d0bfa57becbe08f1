package application

import (
	"context"
	"fmt"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
)

// GenderStore reads and writes the gender attribute of an account. It does not validate values.
type GenderStore struct {
	repo ports.AccountRepository
}

func NewGenderStore(repo ports.AccountRepository) *GenderStore {
	return &GenderStore{repo: repo}
}

func (s *GenderStore) Get(ctx context.Context, id domain.AccountID) (string, bool, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", false, fmt.Errorf("get account by id: %w", err)
	}

	return account.Gender, account.HasGender(), nil
}

func (s *GenderStore) Set(ctx context.Context, id domain.AccountID, gender string) error {
	if gender == "" {
		return fmt.Errorf("set gender for %q: empty value", id)
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	account.Gender = gender

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account gender: %w", err)
	}

	return nil
}

// Clear removes the gender and reports whether one was set.
func (s *GenderStore) Clear(ctx context.Context, id domain.AccountID) (bool, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get account by id: %w", err)
	}
	if !account.HasGender() {
		return false, nil
	}

	account.Gender = ""

	if err := s.repo.Save(ctx, account); err != nil {
		return false, fmt.Errorf("clear account gender: %w", err)
	}

	return true, nil
}
