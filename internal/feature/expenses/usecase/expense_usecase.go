// Package usecase は支出データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"math"
	"time"

	"expense_backend/internal/feature/expenses/domain"
	"expense_backend/internal/feature/expenses/domain/entity"
)

// ExpenseRepository は支出データの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
// すべてのクエリは所有者IDでスコープされます。
type ExpenseRepository interface {
	// Create は新しい支出レコードを永続化します。
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByOwner は指定された所有者の全支出を日付降順で返します。
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Expense, error)

	// FindByIDAndOwner はIDと所有者の両方に一致する支出を取得します。
	// 一致しない場合（所有者不一致を含む）、ErrExpenseNotFoundを返します。
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Expense, error)

	// Update は既存の支出レコードを保存します。
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete はIDと所有者の両方に一致する支出を削除します。
	// 一致しない場合、ErrExpenseNotFoundを返します。
	Delete(ctx context.Context, id, ownerID uint) error
}

// ExpenseInput は支出作成時の入力値です。
type ExpenseInput struct {
	Date        time.Time
	Amount      float64
	Category    string
	Description string
}

// ExpenseUpdate は支出の部分更新の入力値です。nilのフィールドは変更されません。
// 所有者は更新対象に含まれず、変更されることはありません。
type ExpenseUpdate struct {
	Date        *time.Time
	Amount      *float64
	Category    *string
	Description *string
}

// expensesUsecase は支出CRUDと集計のユースケースを実装します。
type expensesUsecase struct {
	expenses ExpenseRepository
}

// NewExpensesUsecase はexpensesUsecaseの新しいインスタンスを生成します。
func NewExpensesUsecase(expenses ExpenseRepository) *expensesUsecase {
	return &expensesUsecase{expenses: expenses}
}

// validAmount は金額が正の有限数であるかを検証します。
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// Create は認証済みユーザーを所有者として新しい支出を作成します。
// バリデーションはストレージへの書き込み前に行われ、部分書き込みは発生しません。
func (u *expensesUsecase) Create(ctx context.Context, ownerID uint, in ExpenseInput) (*entity.Expense, error) {
	if in.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	category := entity.Category(in.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	expense := &entity.Expense{
		UserID:      ownerID,
		Date:        in.Date,
		Amount:      in.Amount,
		Category:    category,
		Description: in.Description,
	}
	if err := u.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List は呼び出し元が所有する全支出を日付降順で返します。
// 支出が存在しない場合は空スライスを返します（エラーではありません）。
func (u *expensesUsecase) List(ctx context.Context, ownerID uint) ([]entity.Expense, error) {
	return u.expenses.FindByOwner(ctx, ownerID)
}

// Update は呼び出し元が所有する支出を部分更新します。
// 所有者不一致はErrExpenseNotFoundとなり、他ユーザーのデータの存在を漏らしません。
// 変更されたフィールドのみ再検証され、未指定フィールドは元の値を保持します。
func (u *expensesUsecase) Update(ctx context.Context, ownerID, id uint, upd ExpenseUpdate) (*entity.Expense, error) {
	expense, err := u.expenses.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if upd.Date != nil {
		if upd.Date.IsZero() {
			return nil, ErrInvalidDate
		}
		expense.Date = *upd.Date
	}
	if upd.Amount != nil {
		if !validAmount(*upd.Amount) {
			return nil, ErrInvalidAmount
		}
		expense.Amount = *upd.Amount
	}
	if upd.Category != nil {
		category := entity.Category(*upd.Category)
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		expense.Category = category
	}
	if upd.Description != nil {
		expense.Description = *upd.Description
	}

	if err := u.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete は呼び出し元が所有する支出を削除します。
// 削除済みまたは存在しないIDへの再削除はErrExpenseNotFoundです（暗黙の成功にはしません）。
func (u *expensesUsecase) Delete(ctx context.Context, ownerID, id uint) error {
	return u.expenses.Delete(ctx, id, ownerID)
}

// Summary は呼び出し元の全支出に対する集計（合計・平均・カテゴリ別・最大カテゴリ）を返します。
func (u *expensesUsecase) Summary(ctx context.Context, ownerID uint) (*domain.Summary, error) {
	expenses, err := u.expenses.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(expenses)
	return &summary, nil
}
