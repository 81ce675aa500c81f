package mysql

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"newsletter/pkg/domain/model"
)

const selectUsers = `SELECT name, email, device_id FROM newsletter_user ORDER BY id`

func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	return db, nil
}

type userRow struct {
	Name     sql.NullString `db:"name"`
	Email    sql.NullString `db:"email"`
	DeviceID sql.NullString `db:"device_id"`
}

// UserSource reads recipients from the newsletter_user table in id order.
type UserSource struct {
	db *sqlx.DB
}

func NewUserSource(db *sqlx.DB) *UserSource {
	return &UserSource{db: db}
}

func (s *UserSource) Users(ctx context.Context) ([]model.User, error) {
	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, selectUsers); err != nil {
		return nil, errors.Wrapf(model.ErrSourceUnavailable, "query newsletter users: %v", err)
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, model.User{
			Name:     row.Name.String,
			Email:    row.Email.String,
			DeviceID: row.DeviceID.String,
		})
	}
	return users, nil
}
