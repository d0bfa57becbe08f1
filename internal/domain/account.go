package domain

import (
	"strings"
	"time"
)

// GenderMetadataKey is the account metadata key the gender is persisted under.
const GenderMetadataKey = "private:gender"

type AccountID string

// NewAccountID derives the canonical account id from an account name.
func NewAccountID(name string) AccountID {
	return AccountID(strings.ToLower(strings.TrimSpace(name)))
}

type Account struct {
	ID           AccountID
	Name         string
	RegisteredAt time.Time
	// Gender is empty when unset.
	Gender string
}

func (a Account) HasGender() bool {
	return a.Gender != ""
}
