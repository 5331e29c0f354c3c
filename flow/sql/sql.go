// Package sql adapts database/sql result sets to flow pipelines.
//
// A Source runs its query once per traversal and closes the rows as soon
// as the terminal operation stops asking for elements. Pipelines carry no
// error channel, so the error that ended the latest traversal is kept on
// the Source and read with Err.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Source is a query whose rows can be consumed as a Pipeline.
type Source[T any] struct {
	ctx     context.Context
	db      *sql.DB
	query   string
	args    []any
	scanner Scanner[T]

	mu  sync.Mutex
	err error
}

// Query creates a Source for query. The scanner function is called for
// each row to convert it to the element type.
func Query[T any](ctx context.Context, db *sql.DB, query string, scanner Scanner[T], args ...any) *Source[T] {
	core.CheckNotNil("Query", "db", db == nil)
	core.CheckNotNil("Query", "scanner", scanner == nil)
	return &Source[T]{ctx: ctx, db: db, query: query, args: args, scanner: scanner}
}

// Pipeline returns a Pipeline that executes the query on every traversal.
// A query, scan or iteration error ends the traversal and is reported by
// Err.
func (s *Source[T]) Pipeline(opts ...core.Option) core.Pipeline[T] {
	return core.Iterate(s.Drive, opts...)
}

// Drive implements core.Source.
func (s *Source[T]) Drive(accept func(T, int), interrupt func(T) bool) {
	s.setErr(s.drive(accept, interrupt))
}

func (s *Source[T]) drive(accept func(T, int), interrupt func(T) bool) error {
	rows, err := s.db.QueryContext(s.ctx, s.query, s.args...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for i := 0; rows.Next(); i++ {
		value, err := s.scanner(rows)
		if err != nil {
			return fmt.Errorf("scan row %d: %w", i, err)
		}
		if interrupt(value) {
			return nil
		}
		accept(value, i)
	}
	return rows.Err()
}

// Err returns the error that ended the latest traversal, or nil.
func (s *Source[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Source[T]) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// QueryRow runs a query expecting a single row and returns it as an
// Optional. sql.ErrNoRows yields an empty Optional and a nil error.
func QueryRow[T any](ctx context.Context, db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) (core.Optional[T], error) {
	value, err := scanner(db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return core.None[T](), nil
	case err != nil:
		return core.None[T](), err
	}
	return core.OfNullable(value), nil
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// Exec executes a single statement.
func Exec(ctx context.Context, db *sql.DB, query string, args ...any) (ExecResult, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, err
	}
	return toExecResult(result), nil
}

// ExecEach traverses p and executes query once per element inside a
// single transaction. The binder converts an element to query arguments.
// The first failing statement stops the traversal and rolls the
// transaction back. On success the summed RowsAffected and the last
// insert id are returned.
func ExecEach[T any](ctx context.Context, db *sql.DB, p core.Pipeline[T], query string, binder func(T) []any) (ExecResult, error) {
	core.CheckNotNil("ExecEach", "binder", binder == nil)
	return Transaction(ctx, db, func(tx *sql.Tx) (ExecResult, error) {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return ExecResult{}, err
		}
		defer stmt.Close()

		var (
			total   ExecResult
			execErr error
		)
		p.Drive(func(v T, index int) {
			result, err := stmt.ExecContext(ctx, binder(v)...)
			if err != nil {
				execErr = fmt.Errorf("exec element %d: %w", index, err)
				return
			}
			r := toExecResult(result)
			total.LastInsertId = r.LastInsertId
			total.RowsAffected += r.RowsAffected
		}, func(T) bool { return execErr != nil })
		return total, execErr
	})
}

// Transaction executes fn within a database transaction.
// If fn returns an error, the transaction is rolled back.
// Otherwise, it is committed.
func Transaction[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	value, err := fn(tx)
	if err != nil {
		_ = tx.Rollback()
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, err
	}
	return value, nil
}

// QueryStrings is a convenience function that queries for string slices.
// Each row is scanned into a slice of strings.
func QueryStrings(ctx context.Context, db *sql.DB, query string, args ...any) *Source[[]string] {
	return Query(ctx, db, query, func(rows *sql.Rows) ([]string, error) {
		values, err := scanAny(rows)
		if err != nil {
			return nil, err
		}
		result := make([]string, len(values))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				result[i] = ""
			case []byte:
				result[i] = string(val)
			default:
				result[i] = fmt.Sprint(val)
			}
		}
		return result, nil
	}, args...)
}

// QueryMaps is a convenience function that queries for map results.
// Each row is scanned into a map with column names as keys.
func QueryMaps(ctx context.Context, db *sql.DB, query string, args ...any) *Source[map[string]any] {
	return Query(ctx, db, query, func(rows *sql.Rows) (map[string]any, error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		values, err := scanAny(rows)
		if err != nil {
			return nil, err
		}
		result := make(map[string]any, len(cols))
		for i, col := range cols {
			result[col] = values[i]
		}
		return result, nil
	}, args...)
}

func scanAny(rows *sql.Rows) ([]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	return values, nil
}

func toExecResult(result sql.Result) ExecResult {
	lastID, _ := result.LastInsertId()
	rowsAffected, _ := result.RowsAffected()
	return ExecResult{
		LastInsertId: lastID,
		RowsAffected: rowsAffected,
	}
}
