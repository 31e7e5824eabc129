package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStorage implements Storage over a MySQL table, for deployments
// where several dashboard instances share one database server.
type MySQLStorage struct {
	db *sql.DB
}

// NewMySQLStorage connects to MySQL using the given DSN and prepares
// the collections table.
func NewMySQLStorage(dsn string) (*MySQLStorage, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS collections (
		collection_key VARCHAR(128) PRIMARY KEY,
		value LONGTEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	log.Println("[MySQLStorage] Initialized")
	return &MySQLStorage{db: db}, nil
}

// Get retrieves the value stored under key.
func (s *MySQLStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM collections WHERE collection_key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}

	return []byte(value), nil
}

// Set stores value under key, replacing any previous value.
func (s *MySQLStorage) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO collections (collection_key, value, updated_at)
		VALUES (?, ?, UTC_TIMESTAMP())
		ON DUPLICATE KEY UPDATE
			value = VALUES(value),
			updated_at = UTC_TIMESTAMP()`

	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *MySQLStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM collections WHERE collection_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *MySQLStorage) Close() error {
	return s.db.Close()
}

// Ensure MySQLStorage implements Storage
var _ Storage = (*MySQLStorage)(nil)
