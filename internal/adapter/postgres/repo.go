package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Repo is a generic record repository over one Table.
type Repo[E domain.Entity[E]] struct {
	pool  *pgxpool.Pool
	tx    *TxManager
	table Table[E]
}

// NewRepo creates a repository for table.
func NewRepo[E domain.Entity[E]](pool *pgxpool.Pool, table Table[E]) *Repo[E] {
	return &Repo[E]{pool: pool, tx: NewTxManager(pool), table: table}
}

// List returns the owner's records ordered by id.
func (r *Repo[E]) List(ctx context.Context, ownerID int64) ([]*E, error) {
	sql, args, err := psql.Select(r.table.selectColumns()...).
		From(r.table.Name).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", r.table.Name, err)
	}

	rows, err := QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, r.table.Entity, 0)
	}
	defer rows.Close()

	items := []*E{}
	for rows.Next() {
		e, err := r.table.Scan(rows)
		if err != nil {
			return nil, mapError(err, r.table.Entity, 0)
		}
		items = append(items, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, r.table.Entity, 0)
	}
	return items, nil
}

func (r *Repo[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	return r.get(ctx, id, false)
}

func (r *Repo[E]) get(ctx context.Context, id int64, forUpdate bool) (*E, error) {
	q := psql.Select(r.table.selectColumns()...).
		From(r.table.Name).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", r.table.Entity, err)
	}

	e, err := r.table.Scan(QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, r.table.Entity, id)
	}
	return &e, nil
}

// Create inserts e; the database assigns the id.
func (r *Repo[E]) Create(ctx context.Context, e E) (*E, error) {
	sql, args, err := psql.Insert(r.table.Name).
		Columns(r.table.Columns...).
		Values(r.table.Values(e)...).
		Suffix(r.table.returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", r.table.Entity, err)
	}

	created, err := r.table.Scan(QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, r.table.Entity, 0)
	}
	return &created, nil
}

// Update locks the row, merges p over it and writes every column back.
func (r *Repo[E]) Update(ctx context.Context, id int64, p domain.Patch) (*E, error) {
	var updated E

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := r.get(ctx, id, true)
		if err != nil {
			return err
		}

		next, err := domain.ApplyPatch(*cur, p)
		if err != nil {
			return fmt.Errorf("%s %d: %w", r.table.Entity, id, err)
		}

		set := make(map[string]any, len(r.table.Columns))
		for i, v := range r.table.Values(next) {
			set[r.table.Columns[i]] = v
		}

		sql, args, err := psql.Update(r.table.Name).
			SetMap(set).
			Where(squirrel.Eq{"id": id}).
			Suffix(r.table.returning()).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update %s: %w", r.table.Entity, err)
		}

		updated, err = r.table.Scan(QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
		if err != nil {
			return mapError(err, r.table.Entity, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repo[E]) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete(r.table.Name).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", r.table.Entity, err)
	}

	tag, err := QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, r.table.Entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", r.table.Entity, id, domain.ErrNotFound)
	}
	return nil
}
