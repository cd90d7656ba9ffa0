// Package handler はexpensesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/expenses/domain"
	"expense_backend/internal/feature/expenses/domain/entity"
	"expense_backend/internal/feature/expenses/usecase"
	jwtmw "expense_backend/internal/platform/jwt"
)

// ExpensesUsecase は支出操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ExpensesUsecase interface {
	Create(ctx context.Context, ownerID uint, in usecase.ExpenseInput) (*entity.Expense, error)
	List(ctx context.Context, ownerID uint) ([]entity.Expense, error)
	Update(ctx context.Context, ownerID, id uint, upd usecase.ExpenseUpdate) (*entity.Expense, error)
	Delete(ctx context.Context, ownerID, id uint) error
	Summary(ctx context.Context, ownerID uint) (*domain.Summary, error)
}

// ExpensesHandler は支出のHTTPリクエストを処理します。
type ExpensesHandler struct {
	uc ExpensesUsecase
}

// NewExpensesHandler は指定されたusecaseでExpensesHandlerの新しいインスタンスを生成します。
func NewExpensesHandler(uc ExpensesUsecase) *ExpensesHandler {
	return &ExpensesHandler{uc: uc}
}

// currentUserID は認証ミドルウェアが設定したユーザーIDを取り出します。
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return id, true
}

func toResponse(e *entity.Expense) api.ExpenseResponse {
	return api.ExpenseResponse{
		ID:          e.ID,
		Date:        openapi_types.Date{Time: e.Date},
		Amount:      e.Amount,
		Category:    string(e.Category),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Create は新しい支出を登録します。
//
// エンドポイント: POST /expenses
func (h *ExpensesHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req api.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create expense validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), userID, usecase.ExpenseInput{
		Date:        req.Date.Time,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err, "failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, toResponse(created))
}

// List は呼び出し元ユーザーの支出を日付の降順で返します。
//
// エンドポイント: GET /expenses
func (h *ExpensesHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	expenses, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list expenses"})
		return
	}

	out := make([]api.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toResponse(&e))
	}
	c.JSON(http.StatusOK, api.ExpenseListResponse{Expenses: out})
}

// Update は既存の支出を部分更新します。
//
// エンドポイント: PUT /expenses
func (h *ExpensesHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req api.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update expense validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	upd := usecase.ExpenseUpdate{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		upd.Date = &req.Date.Time
	}

	updated, err := h.uc.Update(c.Request.Context(), userID, req.ID, upd)
	if err != nil {
		h.writeError(c, err, "failed to update expense")
		return
	}

	c.JSON(http.StatusOK, toResponse(updated))
}

// Delete は支出を1件削除します。
//
// エンドポイント: DELETE /expenses?id=123
func (h *ExpensesHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	idStr := c.Query("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid expense id"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		h.writeError(c, err, "failed to delete expense")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "expense deleted"})
}

// Summary は呼び出し元ユーザーの支出集計を返します。
//
// エンドポイント: GET /expenses/summary
func (h *ExpensesHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	s, err := h.uc.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to summarize expenses"})
		return
	}

	byCategory := make(map[string]float64, len(s.ByCategory))
	for cat, sum := range s.ByCategory {
		byCategory[string(cat)] = sum
	}
	top := "N/A"
	if s.TopCategory != "" {
		top = string(s.TopCategory)
	}

	c.JSON(http.StatusOK, api.SummaryResponse{
		Total:       s.Total,
		Average:     s.Average,
		Count:       s.Count,
		ByCategory:  byCategory,
		TopCategory: top,
	})
}

// writeError はユースケースのエラーをHTTPステータスに変換します。
func (h *ExpensesHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "expense not found"})
	case errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}
