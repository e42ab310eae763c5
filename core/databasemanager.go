package core

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// DatabaseManager owns one MySQL pool shared by every site. Each logistics
// site lives in its own schema; requests pick the schema from the host they
// were addressed to.
type DatabaseManager struct {
	SqlDB    *sql.DB
	LogLevel LogLevel
}

// New creates the shared pool. dsn should NOT include a schema (just
// host/user/pass); the schema is selected per request.
func New(dsn string, maxConnection int) (*DatabaseManager, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{SqlDB: sqlDB}, nil
}

// ResolveSchema maps a request host to a site schema.
// "sunter1.absensi.example" selects "sunter1"; "localhost" falls back to the
// schema named in the DSN env so local runs need no virtual hosts.
func ResolveSchema(host string) string {
	if host == "localhost" || host == "127.0.0.1" {
		dsn := os.Getenv("DSN")

		parts := strings.SplitN(dsn, "?", 2)
		segments := strings.Split(parts[0], "/")
		return segments[len(segments)-1]
	}
	parts := strings.Split(host, ".")
	return parts[0]
}

// GetDB hands out a *gorm.DB locked to a single pooled connection with the
// site schema already selected. The caller must close the returned conn.
func (dm *DatabaseManager) GetDB(ctx context.Context, host string) (*gorm.DB, *sql.Conn, error) {
	schema := ResolveSchema(host)

	conn, err := dm.SqlDB.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get conn: %w", err)
	}
	defer func() {
		if conn != nil {
			conn.Close()
		}
	}()

	if _, err := conn.ExecContext(ctx, "USE `"+schema+"`"); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to use schema %s: %w", schema, err)
	}

	// Lock GORM to this one connection so every statement sees the schema.
	dialector := mysql.New(mysql.Config{
		Conn: conn,
	})

	gormLogLevel := logger.Silent
	switch dm.LogLevel {
	case LogLevelError:
		gormLogLevel = logger.Error
	case LogLevelWarn:
		gormLogLevel = logger.Warn
	case LogLevelInfo:
		gormLogLevel = logger.Info
	case LogLevelSilent:
		gormLogLevel = logger.Silent
	default:
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	// cancel the deferred close; caller will close
	defer func() { conn = nil }()
	return db, conn, nil
}

// Close closes the shared pool.
func (dm *DatabaseManager) Close() error {
	return dm.SqlDB.Close()
}

// Exec runs fn against the given site and releases the connection after.
func (dm *DatabaseManager) Exec(ctx context.Context, site string, fn func(db *gorm.DB) error) error {
	db, conn, err := dm.GetDB(ctx, site)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(db)
}

// GetAllDatabases lists every site schema on the server. Jobs prefer the
// site registry and fall back to this when none is provisioned.
func (dm *DatabaseManager) GetAllDatabases(ctx context.Context) ([]string, error) {
	rows, err := dm.SqlDB.QueryContext(ctx, "SHOW DATABASES")
	if err != nil {
		return nil, fmt.Errorf("failed to query databases: %w", err)
	}
	defer rows.Close()

	var databases []string
	for rows.Next() {
		var db string
		if err := rows.Scan(&db); err != nil {
			return nil, fmt.Errorf("failed to scan database name: %w", err)
		}

		switch db {
		case "information_schema", "mysql", "performance_schema", "sys":
			continue
		}
		databases = append(databases, db)
	}

	return databases, nil
}
