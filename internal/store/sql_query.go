// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

// Query is a lazily evaluated, filtered collection backed by one table.
// It implements [paginate.Query]: the paginator first counts the matching
// rows, then fetches a single window of them.
//
// Query values are immutable; Where and OrderBy return modified copies.
type Query[T any] struct {
	db      *DB
	from    sq.SelectBuilder
	columns []string
	orderBy []string
	scan    func(RowScanner) (T, error)
}

// NewQuery returns a query over table selecting columns, with rows decoded
// by scan.
func NewQuery[T any](db *DB, table string, columns []string, scan func(RowScanner) (T, error)) Query[T] {
	return Query[T]{
		db:      db,
		from:    db.builder.Select().From(table),
		columns: columns,
		scan:    scan,
	}
}

// Where narrows the query. pred accepts anything squirrel's Where does,
// typically an sq.Eq.
func (q Query[T]) Where(pred any, args ...any) Query[T] {
	q.from = q.from.Where(pred, args...)
	return q
}

// OrderBy sets the ordering applied by Slice.
func (q Query[T]) OrderBy(orderBy ...string) Query[T] {
	q.orderBy = append([]string(nil), orderBy...)
	return q
}

// Count returns the number of rows matching the query.
func (q Query[T]) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.from.Columns("COUNT(*)").ToSql()
	if err != nil {
		log.Err(err).Str("func", "Query.Count").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	err = q.db.withReadRetry(ctx, func(ctx context.Context) error {
		return q.db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "Query.Count").Msg("error counting rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// Slice returns at most limit rows starting at offset, in query order.
func (q Query[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	log := logger.FromContext(ctx)

	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: negative offset or limit", ErrBuildingSQLQuery)
	}

	query, args, err := q.from.
		Columns(q.columns...).
		OrderBy(q.orderBy...).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "Query.Slice").Msg("error building slice query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []T
	err = q.db.withReadRetry(ctx, func(ctx context.Context) error {
		items = make([]T, 0, limit)

		rows, err := q.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			item, err := q.scan(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			items = append(items, item)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "Query.Slice").Msg("error fetching rows")
		return nil, err
	}

	return items, nil
}
