package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetValue reads the value stored under key. The bool is false when the
// key has never been written.
func (d *Database) GetValue(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapKVErr("get", key, err)
	}
	return value, true, nil
}

// SetValue replaces the whole value stored under key.
func (d *Database) SetValue(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	return wrapKVErr("set", key, err)
}

// DeleteValue removes key. Deleting a missing key is not an error.
func (d *Database) DeleteValue(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key)
	return wrapKVErr("delete", key, err)
}
