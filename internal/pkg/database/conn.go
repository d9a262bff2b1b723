package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Conn is one dedicated pool connection with a gorm session pinned to it.
// It must be handed back with Release.
type Conn struct {
	DB  *gorm.DB
	raw *sql.Conn
}

// Acquire takes a dedicated connection out of the pool. Every statement run
// through the returned Conn uses that connection and ctx.
func (db *DB) Acquire(ctx context.Context) (*Conn, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	raw, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	session := db.DB.WithContext(ctx)
	session.Statement.ConnPool = raw

	return &Conn{DB: session, raw: raw}, nil
}

// Release returns the connection to the pool. Releasing twice is a no-op.
func (db *DB) Release(conn *Conn) error {
	if conn == nil || conn.raw == nil {
		return nil
	}

	raw := conn.raw
	conn.raw = nil
	conn.DB = nil

	if err := raw.Close(); err != nil && err != sql.ErrConnDone {
		return fmt.Errorf("failed to release connection: %w", err)
	}
	return nil
}
