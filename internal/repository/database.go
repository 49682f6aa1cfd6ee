package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"horas-api/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var databaseNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// DSN builds the MySQL data source name. With withDatabase false the
// connection is opened against the server only, with no schema selected.
func DSN(cfg *config.Config, withDatabase bool) string {
	mc := mysql.NewConfig()
	mc.User = cfg.Database.User
	mc.Passwd = cfg.Database.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Database.Host, cfg.Database.Port)
	mc.ParseTime = true
	if withDatabase {
		mc.DBName = cfg.Database.Name
	}
	return mc.FormatDSN()
}

// OpenMySQLDB builds the pooled handle without contacting the server.
// Connections are dialed lazily, so it succeeds while MySQL is still down.
func OpenMySQLDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", DSN(cfg, true))
	if err != nil {
		return nil, fmt.Errorf("failed to open database pool: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime())
	return db, nil
}

// NewMySQLDB establishes the pooled connection used by every repository.
func NewMySQLDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := OpenMySQLDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrapStoreError("connect", err)
	}

	logger.Info("Successfully connected to the database!",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name))
	return db, nil
}

// EnsureSchema creates the database and its tables when they are missing.
// It only ever creates: running it on every start is safe.
func EnsureSchema(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	server, err := sqlx.ConnectContext(ctx, "mysql", DSN(cfg, false))
	if err != nil {
		return &StoreError{Op: "bootstrap connect", Err: err, unavailable: true}
	}
	defer server.Close()

	if err := EnsureDatabase(ctx, server, cfg.Database.Name); err != nil {
		return err
	}
	logger.Info("Database verified/created", zap.String("database", cfg.Database.Name))

	db, err := sqlx.ConnectContext(ctx, "mysql", DSN(cfg, true))
	if err != nil {
		return &StoreError{Op: "bootstrap connect", Err: err, unavailable: true}
	}
	defer db.Close()

	if err := MigrateDB(db, cfg.Database.Name, logger); err != nil {
		return err
	}
	logger.Info("Tables verified/created successfully")
	return nil
}

// EnsureDatabase runs CREATE DATABASE IF NOT EXISTS on a server-level connection.
func EnsureDatabase(ctx context.Context, db *sqlx.DB, name string) error {
	if !databaseNameRe.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}
	// Identifiers cannot be bound as parameters; name is checked above.
	if _, err := db.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS `"+name+"`"); err != nil {
		return wrapStoreError("create database", err)
	}
	return nil
}

// MigrateDB applies the embedded table migrations in order.
func MigrateDB(db *sqlx.DB, databaseName string, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("couldn't open embedded migrations: %w", err)
	}

	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{DatabaseName: databaseName})
	if err != nil {
		return wrapStoreError("migrate driver", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return fmt.Errorf("couldn't create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return wrapStoreError("migrate up", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return wrapStoreError("migrate version", err)
	}
	logger.Info("Database migration was run successfully", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
