// Package sqlite provides a SQLite-backed account repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/nickserv-gender/internal/adapters/repo/sqlite/migrations"
	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Store persists accounts and their metadata in SQLite.
type Store struct {
	db *sql.DB
}

var _ ports.AccountRepository = (*Store)(nil)

// NewStore wraps an already migrated database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the database at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewStore(db), nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const selectAccounts = `
	SELECT a.id, a.name, a.registered_at, m.value
	FROM accounts a
	LEFT JOIN account_metadata m ON m.account_id = a.id AND m.key = ?`

func (s *Store) GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, selectAccounts+` WHERE a.id = ?`, domain.GenderMetadataKey, string(id))

	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("failed to get account[%s]: %w", id, err)
	}

	return account, nil
}

func (s *Store) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.QueryContext(ctx, selectAccounts+` ORDER BY a.id`, domain.GenderMetadataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) Save(ctx context.Context, account domain.Account) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO accounts (id, name, registered_at) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name, registered_at = excluded.registered_at
		`, string(account.ID), account.Name, toMillis(account.RegisteredAt))
		if err != nil {
			return fmt.Errorf("failed to save account[%s]: %w", account.ID, err)
		}

		if !account.HasGender() {
			_, err = tx.ExecContext(ctx, `DELETE FROM account_metadata WHERE account_id = ? AND key = ?`,
				string(account.ID), domain.GenderMetadataKey)
			if err != nil {
				return fmt.Errorf("failed to delete metadata[%s]: %w", domain.GenderMetadataKey, err)
			}
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO account_metadata (account_id, key, value) VALUES (?, ?, ?)
			ON CONFLICT(account_id, key) DO UPDATE SET value = excluded.value
		`, string(account.ID), domain.GenderMetadataKey, account.Gender)
		if err != nil {
			return fmt.Errorf("failed to set metadata[%s]: %w", domain.GenderMetadataKey, err)
		}

		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var (
		id, name     string
		registeredAt int64
		gender       sql.NullString
	)
	if err := row.Scan(&id, &name, &registeredAt, &gender); err != nil {
		return domain.Account{}, err
	}

	return domain.Account{
		ID:           domain.AccountID(id),
		Name:         name,
		RegisteredAt: fromMillis(registeredAt),
		Gender:       gender.String,
	}, nil
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
