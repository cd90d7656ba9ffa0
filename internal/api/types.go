// Package api defines the request and response types shared by the HTTP handlers.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the generic error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupRequest is the request body for POST /signup.
// It uses Gin's binding tags for validation (required, email format, password length).
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by POST /login and POST /refresh.
// Token is a short-lived access JWT; RefreshToken is an opaque server-side
// session credential used to obtain new access tokens.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RefreshRequest is the request body for POST /refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest is the request body for POST /logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateExpenseRequest is the request body for POST /expenses.
// Dates travel as YYYY-MM-DD calendar dates.
type CreateExpenseRequest struct {
	Date        openapi_types.Date `json:"date" binding:"required"`
	Amount      float64            `json:"amount" binding:"required"`
	Category    string             `json:"category" binding:"required"`
	Description string             `json:"description"`
}

// UpdateExpenseRequest is the request body for PUT /expenses.
// Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	ID          uint                `json:"id" binding:"required"`
	Date        *openapi_types.Date `json:"date"`
	Amount      *float64            `json:"amount"`
	Category    *string             `json:"category"`
	Description *string             `json:"description"`
}

// ExpenseResponse is the wire representation of a single expense record.
type ExpenseResponse struct {
	ID          uint               `json:"id"`
	Date        openapi_types.Date `json:"date"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ExpenseListResponse is returned by GET /expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// SummaryResponse is returned by GET /expenses/summary.
// TopCategory is "N/A" when the caller has no expenses.
type SummaryResponse struct {
	Total       float64            `json:"total"`
	Average     float64            `json:"average"`
	Count       int                `json:"count"`
	ByCategory  map[string]float64 `json:"by_category"`
	TopCategory string             `json:"top_category"`
}

// SettingsResponse is returned by GET /user/settings and PUT /user/settings.
// Field names mirror the client-side preference store.
type SettingsResponse struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Theme              string `json:"theme"`
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
	Language           string `json:"language"`
	Currency           string `json:"currency"`
}

// UpdateSettingsRequest is the request body for PUT /user/settings.
// Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	Theme              *string `json:"theme" binding:"omitempty,oneof=light dark"`
	EmailNotifications *bool   `json:"emailNotifications"`
	PushNotifications  *bool   `json:"pushNotifications"`
	Language           *string `json:"language"`
	Currency           *string `json:"currency"`
}

// ChangePasswordRequest is the request body for POST /user/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ReceiptDraftResponse is returned by POST /receipts/scan. It is a suggestion
// for the client to confirm; nothing is persisted by the scan itself.
type ReceiptDraftResponse struct {
	Merchant    string             `json:"merchant,omitempty"`
	Date        openapi_types.Date `json:"date"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
}
