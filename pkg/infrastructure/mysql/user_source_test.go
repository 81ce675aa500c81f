package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter/pkg/domain/model"
)

func setup(t *testing.T) (*UserSource, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewUserSource(sqlx.NewDb(db, "mysql")), mock
}

func TestUserSource(t *testing.T) {
	t.Run("Nullable columns become empty fields", func(t *testing.T) {
		src, mock := setup(t)
		rows := sqlmock.NewRows([]string{"name", "email", "device_id"}).
			AddRow("Ivan", "ivan@test.com", "Ks[dqweer4").
			AddRow("Peter", "peter@test.com", nil).
			AddRow(nil, "...", "")
		mock.ExpectQuery(regexp.QuoteMeta(selectUsers)).WillReturnRows(rows)

		users, err := src.Users(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []model.User{
			{Name: "Ivan", Email: "ivan@test.com", DeviceID: "Ks[dqweer4"},
			{Name: "Peter", Email: "peter@test.com"},
			{Email: "..."},
		}, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty table", func(t *testing.T) {
		src, mock := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUsers)).
			WillReturnRows(sqlmock.NewRows([]string{"name", "email", "device_id"}))

		users, err := src.Users(context.Background())

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Query failure is a source failure", func(t *testing.T) {
		src, mock := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUsers)).WillReturnError(errors.New("connection refused"))

		users, err := src.Users(context.Background())

		assert.Nil(t, users)
		assert.ErrorIs(t, err, model.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
