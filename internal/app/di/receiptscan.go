package di

import (
	"context"
	"fmt"
	"time"

	"expense_backend/internal/feature/receiptscan/adapters/gemini"
	"expense_backend/internal/feature/receiptscan/adapters/vision"
	"expense_backend/internal/feature/receiptscan/usecase"
	"expense_backend/internal/shared/ratelimiter"
)

// レシート読み取りはVisionとGeminiを1リクエストで1回ずつ呼ぶため、
// 外部APIの無料枠に収まるよう呼び出し頻度を抑えます。
const scansPerMinute = 30

// NewReceiptScanUsecase creates the receipt scan usecase backed by the
// Vision and Gemini clients. Both require Google ADC credentials.
func NewReceiptScanUsecase(ctx context.Context) (usecase.ReceiptScanner, func() error, error) {
	extractor, err := vision.NewVisionTextExtractor(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init text extractor: %w", err)
	}

	drafter, err := gemini.NewGeminiDrafter(ctx)
	if err != nil {
		_ = extractor.Close()
		return nil, nil, fmt.Errorf("failed to init expense drafter: %w", err)
	}

	rl := ratelimiter.NewRateLimiter(scansPerMinute, time.Minute)
	uc := usecase.NewReceiptScanUsecase(extractor, drafter, rl)
	return uc, extractor.Close, nil
}
