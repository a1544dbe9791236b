//go:build unit || e2e

package dbtest

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RecordingDB captures the last statement and serves canned rows.
type RecordingDB struct {
	SQL  string
	Args []any

	Rows    [][]any
	Row     []any
	Err     error
	Tag     pgconn.CommandTag
	Queries int
}

func (d *RecordingDB) record(sql string, args []any) {
	d.SQL, d.Args = sql, args
	d.Queries++
}

func (d *RecordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.record(sql, args)
	return d.Tag, d.Err
}

func (d *RecordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.record(sql, args)
	if d.Err != nil {
		return nil, d.Err
	}
	return &Rows{Data: d.Rows}, nil
}

func (d *RecordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.record(sql, args)
	return &Row{Values: d.Row, Err: d.Err}
}

func (d *RecordingDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("batch not supported by RecordingDB")
}

type Row struct {
	Values []any
	Err    error
}

func (r *Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	if r.Values == nil {
		return pgx.ErrNoRows
	}
	Assign(dest, r.Values)
	return nil
}

// Rows implements pgx.Rows over in-memory values.
type Rows struct {
	Data   [][]any
	idx    int
	Closed bool
}

func (r *Rows) Close()                                       { r.Closed = true }
func (r *Rows) Err() error                                   { return nil }
func (r *Rows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) RawValues() [][]byte                          { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }
func (r *Rows) Values() ([]any, error)                       { return r.Data[r.idx-1], nil }

func (r *Rows) Next() bool {
	if r.idx < len(r.Data) {
		r.idx++
		return true
	}
	return false
}

func (r *Rows) Scan(dest ...any) error {
	Assign(dest, r.Data[r.idx-1])
	return nil
}

// Assign copies values into scan destinations of the same type.
func Assign(dest []any, values []any) {
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(values[i]))
	}
}
