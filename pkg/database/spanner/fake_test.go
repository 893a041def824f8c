package spanner_test

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
)

type (
	fakeTable struct {
		name    string
		indexes []string
	}

	// fakeSpanner is an in-memory stand-in for a Spanner database. It refuses
	// to drop a table that still has indexes, like the real engine.
	fakeSpanner struct {
		tables   []*fakeTable
		execs    []string
		queries  []string
		rows     []*fakeRows
		execFunc func(string) error
		metaErr  error
		queryErr error
	}

	fakeRows struct {
		data   [][]any
		pos    int
		closed bool
		err    error
	}
)

func newFakeSpanner(tables ...*fakeTable) *fakeSpanner {
	return &fakeSpanner{tables: tables}
}

func (f *fakeSpanner) Execute(_ context.Context, query string, _ ...any) error {
	f.execs = append(f.execs, query)
	if f.execFunc != nil {
		if err := f.execFunc(query); err != nil {
			return err
		}
	}

	switch {
	case strings.HasPrefix(query, "DROP INDEX "):
		name := unquote(strings.TrimPrefix(query, "DROP INDEX "))
		for _, t := range f.tables {
			if i := slices.Index(t.indexes, name); i >= 0 {
				t.indexes = slices.Delete(t.indexes, i, i+1)
				return nil
			}
		}
		return errors.Errorf("index not found: %s", name)

	case strings.HasPrefix(query, "DROP TABLE "):
		name := unquote(strings.TrimPrefix(query, "DROP TABLE "))
		for i, t := range f.tables {
			if t.name != name {
				continue
			}
			if len(t.indexes) > 0 {
				return errors.Errorf("cannot drop table %s with indices: %s", name, strings.Join(t.indexes, ", "))
			}
			f.tables = slices.Delete(f.tables, i, i+1)
			return nil
		}
		return errors.Errorf("table not found: %s", name)
	}

	return nil
}

func (f *fakeSpanner) QueryForInt(_ context.Context, query string, _ ...any) (int, error) {
	f.queries = append(f.queries, query)
	if f.queryErr != nil {
		return 0, f.queryErr
	}

	return 42, nil
}

func (f *fakeSpanner) QueryForString(_ context.Context, query string, _ ...any) (string, error) {
	f.queries = append(f.queries, query)
	return "", f.queryErr
}

func (f *fakeSpanner) MetaData() database.MetaData { return f }

func (f *fakeSpanner) Tables(_ context.Context, catalog, schema, pattern *string, _ []string) (database.Rows, error) {
	f.queries = append(f.queries, fmt.Sprintf("tables(%s, %s, %s)", show(catalog), show(schema), show(pattern)))
	if f.metaErr != nil {
		return nil, f.metaErr
	}

	rows := &fakeRows{}
	for _, t := range f.tables {
		if pattern == nil || *pattern == t.name {
			rows.data = append(rows.data, []any{"", "", t.name, "BASE TABLE"})
		}
	}

	f.rows = append(f.rows, rows)
	return rows, nil
}

func (f *fakeSpanner) IndexInfo(_ context.Context, catalog, schema *string, table string, _, _ bool) (database.Rows, error) {
	f.queries = append(f.queries, fmt.Sprintf("indexes(%s, %s, %s)", show(catalog), show(schema), table))
	if f.metaErr != nil {
		return nil, f.metaErr
	}

	rows := &fakeRows{}
	for _, t := range f.tables {
		if t.name == table {
			for _, idx := range t.indexes {
				rows.data = append(rows.data, []any{t.name, idx, true})
			}
		}
	}

	f.rows = append(f.rows, rows)
	return rows, nil
}

func (f *fakeSpanner) allRowsClosed() bool {
	for _, r := range f.rows {
		if !r.closed {
			return false
		}
	}

	return true
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}

	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return errors.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}

	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *bool:
			*p = row[i].(bool)
		default:
			return errors.Errorf("unsupported destination %T", d)
		}
	}

	return nil
}

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}

// unquote strips the outer backticks only, so a qualified name never matches
// an object in the default schema.
func unquote(name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(name, "`"), "`")
}

func show(s *string) string {
	if s == nil {
		return "nil"
	}

	return fmt.Sprintf("%q", *s)
}
