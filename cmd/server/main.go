package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"expense_backend/internal/app/di"
	"expense_backend/internal/app/router"
	authadapters "expense_backend/internal/feature/auth/adapters"
	authhandler "expense_backend/internal/feature/auth/transport/handler"
	authusecase "expense_backend/internal/feature/auth/usecase"
	expensehandler "expense_backend/internal/feature/expenses/transport/handler"
	expenseusecase "expense_backend/internal/feature/expenses/usecase"
	receipthandler "expense_backend/internal/feature/receiptscan/transport/handler"
	settingshandler "expense_backend/internal/feature/settings/transport/handler"
	settingsusecase "expense_backend/internal/feature/settings/usecase"
	"expense_backend/internal/platform/db"
	jwtmw "expense_backend/internal/platform/jwt"
	platformredis "expense_backend/internal/platform/redis"
)

func main() {
	// ローカル開発用。本番環境では環境変数を直接設定する
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("no .env file, using process environment")
	}

	// db
	gormDB, err := db.OpenDB()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable. Running without cache, sessions fall back to MySQL.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)
	sessionRepo := di.NewSessionRepository(rdb, gormDB)
	expenseRepo := di.NewExpenseRepository(rdb, gormDB)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), authusecase.AccessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	expensesUC := expenseusecase.NewExpensesUsecase(expenseRepo)
	settingsUC := settingsusecase.NewSettingsUsecase(userRepo, sessionRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	expensesH := expensehandler.NewExpensesHandler(expensesUC)
	settingsH := settingshandler.NewSettingsHandler(settingsUC)

	// レシート読み取りはGoogleの認証情報がない環境では無効化して起動を続ける
	var receiptsH *receipthandler.ReceiptScanHandler
	if scanUC, closeScan, err := di.NewReceiptScanUsecase(context.Background()); err != nil {
		slog.Warn("receipt scanning disabled", "error", err)
	} else {
		receiptsH = receipthandler.NewReceiptScanHandler(scanUC)
		defer func() {
			if err := closeScan(); err != nil {
				slog.Error("failed to close vision client", "error", err)
			}
		}()
	}

	// ルータ生成（CORS込み）
	r := router.NewRouter(authH, expensesH, settingsH, receiptsH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
