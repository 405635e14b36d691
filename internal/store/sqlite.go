package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"jobfinder/internal/model"

	_ "modernc.org/sqlite"
)

const companiesSchema = `CREATE TABLE IF NOT EXISTS companies (
	ord INTEGER NOT NULL,
	company_id TEXT PRIMARY KEY,
	company_name TEXT NOT NULL DEFAULT '',
	first_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	phone_number TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	latitude REAL NOT NULL,
	longitude REAL NOT NULL
)`

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// LoadSQLite reads a dataset written by ExportSQLite. Rows come back in
// their original dataset order.
func LoadSQLite(ctx context.Context, path string) ([]model.Record, error) {
	// Opening a missing path would silently create an empty database.
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, errNoDataset)
		}
		return nil, err
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT
		company_id, company_name, first_name, last_name,
		address, phone_number, email, state, industry,
		latitude, longitude
	FROM companies ORDER BY ord ASC`)
	if err != nil {
		return nil, fmt.Errorf("select companies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Record
	for rows.Next() {
		var w wireRecord
		var id string
		if err := rows.Scan(
			&id, &w.CompanyName, &w.FirstName, &w.LastName,
			&w.Address, &w.PhoneNumber, &w.Email, &w.State, &w.Industry,
			&w.Latitude, &w.Longitude,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		w.CompanyID = wireID(id)
		out = append(out, w.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportSQLite writes records to a fresh SQLite dataset at path, replacing
// any existing companies table.
func ExportSQLite(ctx context.Context, path string, records []model.Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS companies`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, companiesSchema); err != nil {
		return fmt.Errorf("create companies table: %w", err)
	}
	for i, r := range records {
		w := fromModel(r)
		if _, err := tx.ExecContext(ctx, `INSERT INTO companies(
			ord, company_id, company_name, first_name, last_name,
			address, phone_number, email, state, industry,
			latitude, longitude
		) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, string(w.CompanyID), w.CompanyName, w.FirstName, w.LastName,
			w.Address, w.PhoneNumber, w.Email, w.State, w.Industry,
			w.Latitude, w.Longitude,
		); err != nil {
			return fmt.Errorf("insert %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}
