// Package sqlseq exposes database/sql result sets as seqs.Sequence values.
//
// Rows are read on demand: each call to Next advances the underlying
// *sql.Rows by one row. Errors cannot travel through Next, so a failed read or
// scan ends the sequence and is reported by Err, like sql.Rows.Err.
package sqlseq

import (
	"context"
	"database/sql"
	"fmt"

	"basekit/seqs"
	"basekit/validate"
)

// Queryer is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Rows is a Sequence over a result set.
type Rows[T any] struct {
	rows *sql.Rows
	scan Scanner[T]
	err  error
	done bool
}

var _ seqs.Sequence[int] = (*Rows[int])(nil)

// Query runs query and returns its rows as a Sequence. The caller must drain
// or Stop the result to release the connection.
func Query[T any](ctx context.Context, db Queryer, query string, scan Scanner[T], args ...any) (*Rows[T], error) {
	validate.NotNil("sqlseq.Query", "db", db)
	validate.NotNil("sqlseq.Query", "scan", scan)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlseq.Query: %w", err)
	}
	return FromRows(rows, scan), nil
}

// FromRows wraps an open result set. The Sequence takes ownership of rows.
func FromRows[T any](rows *sql.Rows, scan Scanner[T]) *Rows[T] {
	validate.NotNil("sqlseq.FromRows", "rows", rows)
	validate.NotNil("sqlseq.FromRows", "scan", scan)
	return &Rows[T]{rows: rows, scan: scan}
}

func (r *Rows[T]) Next() (v T, ok bool) {
	if r.done {
		return v, false
	}
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			r.err = fmt.Errorf("sqlseq.Rows: %w", err)
		}
		r.Stop()
		return v, false
	}
	v, err := r.scan(r.rows)
	if err != nil {
		r.err = fmt.Errorf("sqlseq.Rows: scan: %w", err)
		r.Stop()
		var zero T
		return zero, false
	}
	return v, true
}

func (r *Rows[T]) Traits() seqs.Traits {
	return seqs.Traits{Ordered: true}
}

// Stop closes the result set.
func (r *Rows[T]) Stop() {
	if r.done {
		return
	}
	r.done = true
	if err := r.rows.Close(); err != nil && r.err == nil {
		r.err = fmt.Errorf("sqlseq.Rows: close: %w", err)
	}
}

// Err returns the error that ended the sequence, if any.
func (r *Rows[T]) Err() error {
	return r.err
}

// Collect runs query and drains every row into a slice.
func Collect[T any](ctx context.Context, db Queryer, query string, scan Scanner[T], args ...any) ([]T, error) {
	rows, err := Query(ctx, db, query, scan, args...)
	if err != nil {
		return nil, err
	}
	values := seqs.Collect[T](rows)
	if err := rows.Err(); err != nil {
		return values, err
	}
	return values, nil
}
