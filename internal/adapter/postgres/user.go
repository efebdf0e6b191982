package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

var userColumns = []string{"id", "username", "password", "display_name", "email", "profile_picture", "role"}

// UserRepo persists users; usernames are unique.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, 0)
}

func (r *UserRepo) getBy(ctx context.Context, where squirrel.Eq, id int64) (*domain.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	u, err := scanUser(QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "user", id)
	}
	return u, nil
}

// Create inserts u, applying the default role when none is set.
func (r *UserRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.Role == "" {
		u.Role = domain.DefaultRole
	}

	sql, args, err := psql.Insert("users").
		Columns(userColumns[1:]...).
		Values(u.Username, u.Password, u.DisplayName, u.Email, u.ProfilePicture, u.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	if err := QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&u.ID); err != nil {
		return nil, mapError(err, "user", 0)
	}
	return &u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.DisplayName, &u.Email, &u.ProfilePicture, &u.Role); err != nil {
		return nil, err
	}
	return &u, nil
}
