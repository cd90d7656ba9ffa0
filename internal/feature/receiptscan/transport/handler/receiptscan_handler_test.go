package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	expenses "expense_backend/internal/feature/expenses/domain/entity"
	"expense_backend/internal/feature/receiptscan/domain/entity"
	"expense_backend/internal/feature/receiptscan/transport/handler"
)

// mockReceiptScanUsecase はReceiptScanUsecaseインターフェースのモック実装です。
type mockReceiptScanUsecase struct {
	ScanReceiptFunc func(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error)
}

func (m *mockReceiptScanUsecase) ScanReceipt(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error) {
	return m.ScanReceiptFunc(ctx, imageData)
}

// createMultipartRequest はテスト用のマルチパートリクエストを生成するヘルパー関数です。
func createMultipartRequest(t *testing.T, fieldName, fileName string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}

	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		t.Fatalf("failed to copy content: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/receipts/scan", body)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestReceiptScanHandler_ScanReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupRequest   func(t *testing.T) *http.Request
		mockFunc       func(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: draft returned",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "receipt.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error) {
				assert.Equal(t, []byte("fake-image"), imageData)
				return &entity.ExpenseDraft{
					Merchant:    "SUPERMART",
					Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
					Amount:      5.50,
					Category:    expenses.CategoryGroceries,
					Description: "milk and bread",
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"merchant":"SUPERMART","date":"2024-01-05","amount":5.5,"category":"Groceries","description":"milk and bread"}`,
		},
		{
			name: "error: no image field",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "wrongfield", "receipt.jpg", []byte("fake-image"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"image file is required"}`,
		},
		{
			name: "error: not multipart",
			setupRequest: func(t *testing.T) *http.Request {
				req, _ := http.NewRequest(http.MethodPost, "/receipts/scan", strings.NewReader("plain body"))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"image file is required"}`,
		},
		{
			name: "error: usecase returns error",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "receipt.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error) {
				return nil, errors.New("vision API request failed")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"failed to scan receipt"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockReceiptScanUsecase{ScanReceiptFunc: tt.mockFunc}
			h := handler.NewReceiptScanHandler(mock)

			r := gin.New()
			r.POST("/receipts/scan", h.ScanReceipt)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.setupRequest(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
