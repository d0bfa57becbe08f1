package application

import (
	"time"

	"github.com/bnema/nickserv-gender/internal/domain"
)

type AccountSummary struct {
	ID           domain.AccountID
	Name         string
	RegisteredAt time.Time
	Gender       string
}
