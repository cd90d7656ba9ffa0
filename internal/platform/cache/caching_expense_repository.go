// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"expense_backend/internal/feature/expenses/domain/entity"
	"expense_backend/internal/feature/expenses/usecase"
)

// CachingExpenseRepository decorates an ExpenseRepository with Redis caching.
// Only the per-user list is cached; every write invalidates the owner's entry.
type CachingExpenseRepository struct {
	inner     usecase.ExpenseRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ExpenseRepository = (*CachingExpenseRepository)(nil)

// NewCachingExpenseRepository decorates an ExpenseRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "expenses".
func NewCachingExpenseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ExpenseRepository, namespace string) *CachingExpenseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "expenses"
	}
	return &CachingExpenseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey returns the cache key holding one user's expense list.
func (c *CachingExpenseRepository) listKey(ownerID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, ownerID)
}

// invalidate drops the owner's cached list. Best effort: cache failures
// never fail the write that triggered them.
func (c *CachingExpenseRepository) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(ownerID)).Err()
}

// Create inserts an expense and invalidates the owner's cached list.
func (c *CachingExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	if err := c.inner.Create(ctx, expense); err != nil {
		return err
	}
	c.invalidate(ctx, expense.UserID)
	return nil
}

// FindByOwner retrieves the owner's expenses, checking cache first then
// falling back to the database.
func (c *CachingExpenseRepository) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Expense, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByOwner(ctx, ownerID)
	}

	key := c.listKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Expense
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByIDAndOwner always goes to the database. Single-record reads precede
// writes in the usecase, so serving them from cache would risk stale updates.
func (c *CachingExpenseRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Expense, error) {
	return c.inner.FindByIDAndOwner(ctx, id, ownerID)
}

// Update saves an expense and invalidates the owner's cached list.
func (c *CachingExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	if err := c.inner.Update(ctx, expense); err != nil {
		return err
	}
	c.invalidate(ctx, expense.UserID)
	return nil
}

// Delete removes an expense and invalidates the owner's cached list.
func (c *CachingExpenseRepository) Delete(ctx context.Context, id, ownerID uint) error {
	if err := c.inner.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}
