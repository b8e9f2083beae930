/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

var (
	globalMu    sync.RWMutex
	globalDB    *bun.DB
	globalSQLDB *sql.DB
)

// GetDB returns the global Bun database instance, or nil before InitDB.
func GetDB() *bun.DB {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalDB
}

// GetSQLDB returns the underlying sql.DB, or nil before InitDB.
func GetSQLDB() *sql.DB {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalSQLDB
}

// InitDB opens the global database connection from the provided configuration.
func InitDB(cfg *Config) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	conn := cfg.Connection
	applyDefaults(&conn)
	overrideFromEnv(&conn)

	sqldb, db, err := open(&conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	sqldb.SetMaxIdleConns(conn.MaxIdleConns)
	sqldb.SetMaxOpenConns(conn.MaxOpenConns)
	sqldb.SetConnMaxLifetime(conn.ConnMaxLifetime)
	sqldb.SetConnMaxIdleTime(conn.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), conn.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithEnabled(conn.EnableQueryLog),
		bundebug.FromEnv("BUNDEBUG"),
	))

	globalMu.Lock()
	globalDB, globalSQLDB = db, sqldb
	globalMu.Unlock()

	GetLogger().Info("Database connected successfully:", "type", conn.Type, "host", conn.Host)
	return db, nil
}

// CloseDB closes the global database connection.
func CloseDB() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalDB == nil {
		return nil
	}
	err := globalDB.Close()
	globalDB, globalSQLDB = nil, nil
	return err
}

func open(cfg *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	switch cfg.Type {
	case "mysql":
		charset := cfg.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=true&loc=Local",
			cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, charset)
		sqldb, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, nil, err
		}
		return sqldb, bun.NewDB(sqldb, mysqldialect.New()), nil
	case "postgres", "postgresql":
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, sslmode)
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, err
		}
		return sqldb, bun.NewDB(sqldb, pgdialect.New()), nil
	case "sqlite", "sqlite3":
		dsn := cfg.DBName
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
		if err != nil {
			return nil, nil, err
		}
		return sqldb, bun.NewDB(sqldb, sqlitedialect.New()), nil
	}
	return nil, nil, fmt.Errorf("unsupported database type: %s, supported types: [mysql postgres sqlite]", cfg.Type)
}

func applyDefaults(cfg *ConnectionConfig) {
	def := DefaultConnectionConfig()
	if cfg.Type == "" {
		cfg.Type = def.Type
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = def.MaxIdleConns
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = def.MaxOpenConns
	}
	if cfg.ConnMaxLifetime == 0 {
		cfg.ConnMaxLifetime = def.ConnMaxLifetime
	}
	if cfg.ConnMaxIdleTime == 0 {
		cfg.ConnMaxIdleTime = def.ConnMaxIdleTime
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = def.ConnectTimeout
	}
}

// overrideFromEnv overrides sensitive configuration values from environment
// variables.
func overrideFromEnv(cfg *ConnectionConfig) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if username := os.Getenv("DB_USERNAME"); username != "" {
		cfg.Username = username
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.DBName = dbname
	}
	if sslmode := os.Getenv("DB_SSLMODE"); sslmode != "" {
		cfg.SSLMode = sslmode
	}
	if enableQueryLog := os.Getenv("DB_ENABLE_QUERY_LOG"); enableQueryLog != "" {
		cfg.EnableQueryLog = enableQueryLog == "true"
	}
	if maxLifetime := os.Getenv("DB_CONN_MAX_LIFETIME"); maxLifetime != "" {
		if val, err := strconv.Atoi(maxLifetime); err == nil {
			cfg.ConnMaxLifetime = time.Duration(val) * time.Second
		}
	}
}
