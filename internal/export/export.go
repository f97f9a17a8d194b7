// Package export dumps each database table to a dated CSV file.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
)

var tables = []string{"orders", "products", "couriers", "customers"}

// Dump writes one CSV file per table into dir, named <table>_<YYYY-MM-DD>.csv,
// header row first, rows in whatever order the store returns them. Returns
// the paths written.
func Dump(ctx context.Context, db *sqlx.DB, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	stamp := time.Now().Format("2006-01-02")
	written := make([]string, 0, len(tables))
	for _, table := range tables {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", table, stamp))
		if err := dumpTable(ctx, db, table, path); err != nil {
			return written, fmt.Errorf("export %s: %w", table, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func dumpTable(ctx context.Context, db *sqlx.DB, table, path string) error {
	// table comes from the fixed list above, never from input
	rows, err := db.QueryxContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return err
		}
		for i, v := range vals {
			record[i] = formatValue(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
