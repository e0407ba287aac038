package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookshelf/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DSN builds a postgres connection URL from the database settings.
func DSN(cfg config.Database) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	if cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	} else if cfg.User != "" {
		u.User = url.User(cfg.User)
	}
	return u.String()
}

// NewPool creates the bounded connection pool. It does not connect; use Ping
// to check the database.
func NewPool(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = cfg.PoolSize

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}

// Ping acquires one connection, pings it and hands it back. Failures are
// logged and returned so callers can keep serving.
func Ping(ctx context.Context, pool *pgxpool.Pool, dsn string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	slog.Info("pinging database", slog.String("dsn", RedactDSN(dsn)))

	conn, err := pool.Acquire(ctx)
	if err != nil {
		slog.Error("cannot ping database", slog.String("err", err.Error()))
		return err
	}
	defer conn.Release()

	if err := conn.Ping(ctx); err != nil {
		slog.Error("cannot ping database", slog.String("err", err.Error()))
		return err
	}
	slog.Info("database connection OK")
	return nil
}

func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
