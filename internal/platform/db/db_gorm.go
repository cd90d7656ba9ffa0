// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "expense_backend/internal/feature/auth/adapters"
	"expense_backend/internal/feature/auth/domain/entity"
	expenseadapters "expense_backend/internal/feature/expenses/adapters"
)

const (
	// DriverMySQL / DriverPostgres はDB_DRIVERで選択できる値です。
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Config はデータベース接続設定です。
type Config struct {
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName はCloud SQLのUnixソケット接続名です。設定時はHost/Portより優先されます。
	InstanceName string
}

// LoadConfigFromEnv は環境変数から接続設定を読み込みます。
func LoadConfigFromEnv() Config {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverMySQL
	}
	return Config{
		Driver:       driver,
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN はMySQL用のDSN文字列を組み立てます。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// BuildPostgresDSN はPostgreSQL用のDSN文字列を組み立てます。
func BuildPostgresDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えられるように分離しています。
type Opener func(dsn string) (*gorm.DB, error)

func mysqlOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
}

func postgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry はタイムアウトまで一定間隔で接続を試みます。
// コンテナ起動直後にDBがまだ受け付けていないケースを吸収します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying...", "error", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB は環境変数の設定でデータベースを開き、必要ならマイグレーションを実行します。
func OpenDB() (*gorm.DB, error) {
	cfg := LoadConfigFromEnv()

	var (
		dsn    string
		opener Opener
	)
	switch cfg.Driver {
	case DriverPostgres:
		dsn = BuildPostgresDSN(cfg)
		opener = postgresOpener
	case DriverMySQL:
		dsn = BuildDSN(cfg)
		opener = mysqlOpener
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %q", cfg.Driver)
	}

	db, err := ConnectWithRetry(dsn, connectTimeout, opener)
	if err != nil {
		return nil, err
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&entity.User{},
			&authadapters.SessionModel{},
			&expenseadapters.ExpenseModel{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
