package adapters

import (
	"context"
	"errors"
	"time"

	"expense_backend/internal/feature/expenses/domain/entity"
	"expense_backend/internal/feature/expenses/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type expenseMySQL struct {
	db *gorm.DB
}

var _ usecase.ExpenseRepository = (*expenseMySQL)(nil)

func NewExpenseRepository(db *gorm.DB) *expenseMySQL {
	return &expenseMySQL{db: db}
}

// ExpenseModel はexpensesテーブルの行を表すGORMモデルです。
type ExpenseModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:expense_user_date,priority:1"`
	Date        time.Time `gorm:"not null;index:expense_user_date,priority:2"`
	Amount      float64   `gorm:"not null"`
	Category    string    `gorm:"size:32;not null"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ExpenseModel) TableName() string {
	return "expenses"
}

func toModel(e *entity.Expense) ExpenseModel {
	return ExpenseModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEntity(m ExpenseModel) entity.Expense {
	return entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        m.Date,
		Amount:      m.Amount,
		Category:    entity.Category(m.Category),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *expenseMySQL) Create(ctx context.Context, expense *entity.Expense) error {
	m := toModel(expense)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*expense = toEntity(m)
	return nil
}

// FindByOwner は所有者の支出を日付の降順で返します。
func (r *expenseMySQL) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Expense, error) {
	var rows []ExpenseModel
	// dateは予約語に近い名前のため、方言ごとに正しくクォートされるようclauseで指定します。
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.Expense, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

func (r *expenseMySQL) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Expense, error) {
	var m ExpenseModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrExpenseNotFound
		}
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

func (r *expenseMySQL) Update(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == 0 {
		return usecase.ErrExpenseNotFound
	}
	m := toModel(expense)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*expense = toEntity(m)
	return nil
}

// Delete は所有者スコープで1件削除します。該当行が無ければErrExpenseNotFoundを返します。
func (r *expenseMySQL) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&ExpenseModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrExpenseNotFound
	}
	return nil
}
