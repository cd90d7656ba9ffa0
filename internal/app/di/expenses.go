package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	expenseadapters "expense_backend/internal/feature/expenses/adapters"
	"expense_backend/internal/feature/expenses/usecase"
	"expense_backend/internal/platform/cache"
)

// NewExpenseRepository creates the MySQL expense repository wrapped with the
// Redis list cache. With a nil Redis client the decorator passes through.
func NewExpenseRepository(rdb *redis.Client, db *gorm.DB) usecase.ExpenseRepository {
	inner := expenseadapters.NewExpenseRepository(db)
	return cache.NewCachingExpenseRepository(rdb, 5*time.Minute, inner, "expenses")
}
