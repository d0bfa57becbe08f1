package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreSaveAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	account := domain.Account{
		ID:           "alice",
		Name:         "Alice",
		RegisteredAt: time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC),
		Gender:       "nonbinary",
	}
	require.NoError(t, store.Save(ctx, account))

	got, err := store.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestStoreGetMissingAccountReturnsNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestStoreSaveOverwritesGender(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Account{ID: "alice", Name: "Alice", Gender: "agender"}))
	require.NoError(t, store.Save(ctx, domain.Account{ID: "alice", Name: "Alice", Gender: "nonbinary"}))

	got, err := store.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "nonbinary", got.Gender)
}

func TestStoreClearingGenderDeletesMetadataRow(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Account{ID: "alice", Name: "Alice", Gender: "nonbinary"}))
	require.NoError(t, store.Save(ctx, domain.Account{ID: "alice", Name: "Alice"}))

	var rows int
	require.NoError(t, store.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM account_metadata WHERE account_id = ?`, "alice").Scan(&rows))
	assert.Zero(t, rows)

	got, err := store.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, got.HasGender())
	assert.True(t, got.RegisteredAt.IsZero())
}

func TestStoreListOrdersByID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Account{ID: "carol", Name: "Carol"}))
	require.NoError(t, store.Save(ctx, domain.Account{ID: "alice", Name: "Alice", Gender: "nonbinary"}))

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, domain.AccountID("alice"), accounts[0].ID)
	assert.Equal(t, "nonbinary", accounts[0].Gender)
	assert.Equal(t, domain.AccountID("carol"), accounts[1].ID)
	assert.Empty(t, accounts[1].Gender)
}

func TestStoreReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")
	ctx := context.Background()

	first, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, domain.Account{ID: "alice", Name: "Alice", Gender: "nonbinary"}))
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "nonbinary", got.Gender)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage path is required")
}

func TestStoreGetPropagatesDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM accounts a").WillReturnError(errors.New("disk I/O error"))

	_, err = NewStore(db).GetByID(context.Background(), "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Contains(t, err.Error(), "failed to get account[alice]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSaveRollsBackOnMetadataFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO accounts").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO account_metadata").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err = NewStore(db).Save(context.Background(), domain.Account{ID: "alice", Name: "Alice", Gender: "nonbinary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set metadata[private:gender]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreListPropagatesDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM accounts a").WillReturnError(errors.New("no such table: accounts"))

	_, err = NewStore(db).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list accounts")
}
