package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	expenses "expense_backend/internal/feature/expenses/domain/entity"
)

// mockTextExtractor is a mock implementation of TextExtractor.
type mockTextExtractor struct {
	ExtractTextFunc func(ctx context.Context, imageData []byte) (string, error)
}

func (m *mockTextExtractor) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	return m.ExtractTextFunc(ctx, imageData)
}

// mockExpenseDrafter is a mock implementation of ExpenseDrafter.
type mockExpenseDrafter struct {
	DraftFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockExpenseDrafter) Draft(ctx context.Context, prompt string) (string, error) {
	return m.DraftFunc(ctx, prompt)
}

// noopLimiter counts calls without ever waiting.
type noopLimiter struct {
	calls int
}

func (l *noopLimiter) WaitIfNeeded() { l.calls++ }

const receiptText = "SUPERMART\n2024-01-05\nMilk 3.00\nBread 2.50\nTOTAL 5.50"

func TestScanReceipt(t *testing.T) {
	t.Run("success: draft parsed from model response", func(t *testing.T) {
		extractor := &mockTextExtractor{
			ExtractTextFunc: func(ctx context.Context, imageData []byte) (string, error) {
				return receiptText, nil
			},
		}
		drafter := &mockExpenseDrafter{
			DraftFunc: func(ctx context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, receiptText) {
					t.Error("prompt does not contain the extracted text")
				}
				if !strings.Contains(prompt, "Groceries") {
					t.Error("prompt does not list the known categories")
				}
				// Models often wrap JSON in a code fence
				return "```json\n{\"merchant\":\"SUPERMART\",\"date\":\"2024-01-05\",\"amount\":5.50,\"category\":\"Groceries\",\"description\":\"milk and bread\"}\n```", nil
			},
		}
		limiter := &noopLimiter{}
		uc := NewReceiptScanUsecase(extractor, drafter, limiter)

		draft, err := uc.ScanReceipt(context.Background(), []byte("image-bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Merchant != "SUPERMART" || draft.Amount != 5.50 {
			t.Errorf("unexpected draft: %+v", draft)
		}
		if draft.Category != expenses.CategoryGroceries {
			t.Errorf("unexpected category: %s", draft.Category)
		}
		if draft.Date.Format("2006-01-02") != "2024-01-05" {
			t.Errorf("unexpected date: %v", draft.Date)
		}
		if limiter.calls != 1 {
			t.Errorf("rate limiter was called %d times", limiter.calls)
		}
	})

	t.Run("success: unknown category falls back to Other", func(t *testing.T) {
		extractor := &mockTextExtractor{
			ExtractTextFunc: func(ctx context.Context, imageData []byte) (string, error) {
				return receiptText, nil
			},
		}
		drafter := &mockExpenseDrafter{
			DraftFunc: func(ctx context.Context, prompt string) (string, error) {
				return `{"merchant":"SUPERMART","date":"2024-01-05","amount":5.50,"category":"Snacks"}`, nil
			},
		}
		uc := NewReceiptScanUsecase(extractor, drafter, &noopLimiter{})

		draft, err := uc.ScanReceipt(context.Background(), []byte("image-bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Category != expenses.CategoryOther {
			t.Errorf("expected Other, got %s", draft.Category)
		}
	})

	t.Run("success: unreadable date falls back to today", func(t *testing.T) {
		extractor := &mockTextExtractor{
			ExtractTextFunc: func(ctx context.Context, imageData []byte) (string, error) {
				return receiptText, nil
			},
		}
		drafter := &mockExpenseDrafter{
			DraftFunc: func(ctx context.Context, prompt string) (string, error) {
				return `{"merchant":"SUPERMART","date":"","amount":5.50,"category":"Groceries"}`, nil
			},
		}
		uc := NewReceiptScanUsecase(extractor, drafter, &noopLimiter{})
		uc.now = func() time.Time {
			return time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
		}

		draft, err := uc.ScanReceipt(context.Background(), []byte("image-bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Date.Format("2006-01-02") != "2024-06-01" {
			t.Errorf("unexpected fallback date: %v", draft.Date)
		}
	})

	t.Run("error: empty image data", func(t *testing.T) {
		uc := NewReceiptScanUsecase(&mockTextExtractor{}, &mockExpenseDrafter{}, &noopLimiter{})

		if _, err := uc.ScanReceipt(context.Background(), nil); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("error: image too large", func(t *testing.T) {
		uc := NewReceiptScanUsecase(&mockTextExtractor{}, &mockExpenseDrafter{}, &noopLimiter{})

		big := make([]byte, MaxImageSize+1)
		if _, err := uc.ScanReceipt(context.Background(), big); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("error: no text found in image", func(t *testing.T) {
		extractor := &mockTextExtractor{
			ExtractTextFunc: func(ctx context.Context, imageData []byte) (string, error) {
				return "   \n", nil
			},
		}
		drafter := &mockExpenseDrafter{
			DraftFunc: func(ctx context.Context, prompt string) (string, error) {
				t.Error("Draft should not be called when extraction finds nothing")
				return "", nil
			},
		}
		uc := NewReceiptScanUsecase(extractor, drafter, &noopLimiter{})

		if _, err := uc.ScanReceipt(context.Background(), []byte("image-bytes")); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("error: drafter returns no JSON", func(t *testing.T) {
		extractor := &mockTextExtractor{
			ExtractTextFunc: func(ctx context.Context, imageData []byte) (string, error) {
				return receiptText, nil
			},
		}
		drafter := &mockExpenseDrafter{
			DraftFunc: func(ctx context.Context, prompt string) (string, error) {
				return "sorry, I could not read the receipt", nil
			},
		}
		uc := NewReceiptScanUsecase(extractor, drafter, &noopLimiter{})

		if _, err := uc.ScanReceipt(context.Background(), []byte("image-bytes")); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
