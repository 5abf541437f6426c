package sqlite

import (
	"context"
)

// Row is one result row keyed by column name, as handed across the store
// boundary to the presentation process.
type Row map[string]any

// ExecResult summarizes a mutation.
type ExecResult struct {
	LastInsertID int64
	RowsAffected int64
}

// Query runs a SELECT and returns the ordered row set. Not-found is an empty
// slice, never an error.
func (d *DB) Query(ctx context.Context, query string, params ...any) ([]Row, error) {
	orm, err := d.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := orm.WithContext(ctx).Raw(query, params...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				row[c] = string(b)
			} else {
				row[c] = values[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Exec runs an INSERT/UPDATE/DELETE and reports the last-inserted identifier
// and affected-row count.
func (d *DB) Exec(ctx context.Context, query string, params ...any) (ExecResult, error) {
	orm, err := d.Acquire(ctx)
	if err != nil {
		return ExecResult{}, err
	}

	raw, err := orm.DB()
	if err != nil {
		return ExecResult{}, err
	}

	res, err := raw.ExecContext(ctx, query, params...)
	if err != nil {
		return ExecResult{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		id = 0
	}
	n, err := res.RowsAffected()
	if err != nil {
		n = 0
	}
	return ExecResult{LastInsertID: id, RowsAffected: n}, nil
}
