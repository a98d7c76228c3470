package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// result is what a write statement reports.
type result struct {
	InsertedID   int64
	RowsAffected int64
}

// getOne runs a single-row query and scans it with scan.
// Returns types.ErrNotFound when the query yields no row.
func getOne[T any](ctx context.Context, q querier, scan func(scanner) (T, error), query string, args ...any) (T, error) {
	v, err := scan(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, types.ErrNotFound
	}
	return v, err
}

// getMany runs a multi-row query and scans every row with scan.
// The result is never nil, so an empty table marshals as [].
func getMany[T any](ctx context.Context, q querier, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// run executes a write statement.
func run(ctx context.Context, q querier, stmt string, args ...any) (result, error) {
	res, err := q.ExecContext(ctx, stmt, args...)
	if err != nil {
		return result{}, err
	}
	var r result
	if r.InsertedID, err = res.LastInsertId(); err != nil {
		return result{}, err
	}
	if r.RowsAffected, err = res.RowsAffected(); err != nil {
		return result{}, err
	}
	return r, nil
}

// tableBase carries what every entity accessor shares: its backend, SQL table,
// display name and primary key column.
type tableBase struct {
	backend *Backend
	table   string // SQL table name, e.g. "member".
	entity  string // Display name used in errors, e.g. "Member".
	key     string // Primary key column, e.g. "member_id".
}

func (t tableBase) notFound(id int64) error {
	return &types.NotFoundError{Entity: t.entity, ID: id}
}

// exists reports whether a row with id exists.
func (t tableBase) exists(ctx context.Context, q querier, id int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ?", t.table, t.key), id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s %d: %w", t.table, id, err)
	}
	return true, nil
}

// get fetches one row by id through the backend connection.
func get[T any](ctx context.Context, t tableBase, scan func(scanner) (T, error), query string, id int64) (*T, error) {
	db, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	v, err := getOne(ctx, db, scan, query, id)
	if errors.Is(err, types.ErrNotFound) {
		return nil, t.notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", t.table, id, err)
	}
	return &v, nil
}

// list fetches every row through the backend connection.
func list[T any](ctx context.Context, t tableBase, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	db, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := getMany(ctx, db, scan, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.table, err)
	}
	return rows, nil
}

// insert validates data and runs the INSERT statement, returning the new id.
func (t tableBase) insert(ctx context.Context, data interface{ Validate() error }, stmt string, args ...any) (int64, error) {
	if err := data.Validate(); err != nil {
		return 0, err
	}
	db, err := t.backend.conn()
	if err != nil {
		return 0, err
	}
	r, err := run(ctx, db, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", t.table, err)
	}
	return r.InsertedID, nil
}

// replace validates data, then checks that the row exists and runs the
// UPDATE statement in one transaction. A missing row is a NotFoundError;
// an update that leaves every column unchanged succeeds.
func (t tableBase) replace(ctx context.Context, id int64, data interface{ Validate() error }, stmt string, args ...any) error {
	if err := data.Validate(); err != nil {
		return err
	}
	return t.backend.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := t.exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return t.notFound(id)
		}
		if _, err := run(ctx, tx, stmt, args...); err != nil {
			return fmt.Errorf("updating %s %d: %w", t.table, id, err)
		}
		return nil
	})
}

// remove deletes the row with id, or returns a NotFoundError.
func (t tableBase) remove(ctx context.Context, id int64) error {
	return t.backend.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := t.exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return t.notFound(id)
		}
		stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.table, t.key)
		if _, err := run(ctx, tx, stmt, id); err != nil {
			return fmt.Errorf("deleting %s %d: %w", t.table, id, err)
		}
		return nil
	})
}
