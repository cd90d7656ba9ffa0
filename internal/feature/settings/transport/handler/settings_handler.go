// Package handler はユーザー設定のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/auth/domain/entity"
	"expense_backend/internal/feature/settings/usecase"
	jwtmw "expense_backend/internal/platform/jwt"
)

// SettingsUsecase はユーザー設定操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SettingsUsecase interface {
	GetSettings(ctx context.Context, userID uint) (*entity.User, error)
	UpdateSettings(ctx context.Context, userID uint, upd usecase.SettingsUpdate) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}

// SettingsHandler はユーザー設定のHTTPリクエストを処理します。
type SettingsHandler struct {
	uc SettingsUsecase
}

// NewSettingsHandler は指定されたusecaseでSettingsHandlerの新しいインスタンスを生成します。
func NewSettingsHandler(uc SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

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

func toSettingsResponse(u *entity.User) api.SettingsResponse {
	return api.SettingsResponse{
		Name:               u.Name,
		Email:              u.Email,
		Theme:              u.Theme,
		EmailNotifications: u.EmailNotifications,
		PushNotifications:  u.PushNotifications,
		Language:           u.Language,
		Currency:           u.Currency,
	}
}

// GetSettings はユーザーの現在の設定を返します。
//
// エンドポイント: GET /user/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.uc.GetSettings(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, toSettingsResponse(user))
}

// UpdateSettings は設定を部分更新し、更新後の設定を返します。
//
// エンドポイント: PUT /user/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req api.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update settings validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.uc.UpdateSettings(c.Request.Context(), userID, usecase.SettingsUpdate{
		Theme:              req.Theme,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		Language:           req.Language,
		Currency:           req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTheme):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update settings"})
		}
		return
	}

	c.JSON(http.StatusOK, toSettingsResponse(user))
}

// ChangePassword は現在のパスワードを検証してから新しいパスワードに変更します。
//
// エンドポイント: POST /user/change-password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req api.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("change password validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.uc.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "current password is incorrect"})
		case errors.Is(err, usecase.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to change password"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "password changed"})
}
