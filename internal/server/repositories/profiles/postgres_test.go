package profiles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var columns = []string{"uid", "user_name", "user_email", "registration_time", "last_sign_in_time", "status", "updated_at"}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)^SELECT\s+uid,.*FROM\s+profiles\s+ORDER\s+BY\s+uid$`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a", "Ann", "a@x.io", "r", "l", "active", now).
			AddRow("b", "Bob", "b@x.io", "", "", "blocked", now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.Profile{UID: "a", UserName: "Ann", UserEmail: "a@x.io", RegistrationTime: "r", LastSignInTime: "l", Status: "active", UpdatedAt: now}, got[0])
	assert.Equal(t, "blocked", got[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+profiles`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "db error: db down")
}

func TestListOrphans(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)LEFT\s+JOIN\s+identities.*WHERE\s+i\.id\s+IS\s+NULL`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("ghost", "G", "g@x.io", "", "", "active", time.Now()))

	got, err := repo.ListOrphans(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ghost", got[0].UID)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+profiles\s+WHERE\s+uid\s*=\s*\$1$`).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("a", "Ann", "a@x.io", "", "", "active", time.Now()))

	p, err := repo.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Ann", p.UserName)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+profiles`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetForUpdate_LocksRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE\s+uid\s*=\s*\$1\s+FOR\s+UPDATE$`).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("a", "", "", "", "", "active", time.Now()))

	_, err := repo.GetForUpdate(context.Background(), "a")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+profiles.*ON\s+CONFLICT\s+\(uid\)\s+DO\s+UPDATE`).
		WithArgs("a", "Ann", "a@x.io", "r", "l", "blocked").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.Profile{
		UID: "a", UserName: "Ann", UserEmail: "a@x.io", RegistrationTime: "r", LastSignInTime: "l", Status: "blocked",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT\s+INTO\s+profiles`).WillReturnError(errors.New("check violation"))

	err := repo.Upsert(context.Background(), &models.Profile{UID: "a", Status: "weird"})
	assert.ErrorContains(t, err, "db error: check violation")
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+profiles\s+WHERE\s+uid\s*=\s*\$1`).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+profiles`).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, removed)
}
