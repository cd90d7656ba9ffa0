// Package gemini はGoogle Gemini APIを使用した支出下書きクライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"expense_backend/internal/feature/receiptscan/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiDrafter はGoogle Gemini APIを使用して支出の下書きを生成します。
type GeminiDrafter struct {
	client *genai.Client
	model  string
}

// GeminiDrafterがExpenseDrafterを実装していることをコンパイル時に検証します。
var _ usecase.ExpenseDrafter = (*GeminiDrafter)(nil)

// NewGeminiDrafter はADCを使用してGeminiDrafterの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewGeminiDrafter(ctx context.Context) (*GeminiDrafter, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiDrafter{client: client, model: DefaultModel}, nil
}

// Draft はプロンプトからJSON形式の下書きを生成します。
func (g *GeminiDrafter) Draft(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
