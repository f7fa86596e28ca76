package postgres

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 依序把 values 寫入 Scan 的目標，nil 代表 SQL NULL
type fakeRow struct {
	values  []any
	scanErr error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if len(dest) != len(r.values) {
		panic(fmt.Sprintf("fakeRow.Scan: want %d dest, got %d", len(r.values), len(dest)))
	}
	for i, v := range r.values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v).Convert(target.Type()))
	}
	return nil
}

// fakeRows 實作 pgx.Rows
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	row := &fakeRow{values: r.data[r.idx], scanErr: r.scanErr}
	r.idx++
	return row.Scan(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
