// Package usecase はreceiptscanフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	expenses "expense_backend/internal/feature/expenses/domain/entity"
	"expense_backend/internal/feature/receiptscan/domain/entity"
	"expense_backend/internal/shared/ratelimiter"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// DraftPromptTemplate はレシート読み取りのプロンプトテンプレートです。
	// 返答はJSONのみを要求し、カテゴリは既知の値に限定します。
	DraftPromptTemplate = `The following text was extracted from a purchase receipt.
Respond with a single JSON object and nothing else, using the keys
"merchant" (string), "date" (YYYY-MM-DD string), "amount" (number, the receipt total),
"category" (one of: %s) and "description" (short summary of the purchase).
Use an empty string for anything you cannot read.

Receipt text:
%s`
)

// TextExtractor は画像からテキストを抽出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextExtractor interface {
	// ExtractText は画像バイト列から読み取ったテキスト全文を返します。
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

// ExpenseDrafter はレシートのテキストから支出の下書きを生成するインターフェースです。
type ExpenseDrafter interface {
	// Draft はプロンプトからJSON形式の下書きを生成します。
	Draft(ctx context.Context, prompt string) (string, error)
}

// draftPayload はExpenseDrafterの返すJSONのワイヤ形式です。
type draftPayload struct {
	Merchant    string  `json:"merchant"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// ReceiptScanner はレシート読み取りユースケースの公開インターフェースです。
type ReceiptScanner interface {
	ScanReceipt(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error)
}

type receiptScanUsecase struct {
	extractor TextExtractor
	drafter   ExpenseDrafter
	limiter   ratelimiter.RateLimiterInterface
	now       func() time.Time
}

var _ ReceiptScanner = (*receiptScanUsecase)(nil)

// NewReceiptScanUsecase はreceiptScanUsecaseの新しいインスタンスを生成します。
func NewReceiptScanUsecase(te TextExtractor, ed ExpenseDrafter, rl ratelimiter.RateLimiterInterface) *receiptScanUsecase {
	return &receiptScanUsecase{extractor: te, drafter: ed, limiter: rl, now: time.Now}
}

// ScanReceipt はレシート画像から支出の下書きを生成します。何も保存しません。
func (u *receiptScanUsecase) ScanReceipt(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}

	// 外部APIの呼び出し頻度を抑える
	u.limiter.WaitIfNeeded()

	text, err := u.extractor.ExtractText(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text found in image")
	}

	prompt := fmt.Sprintf(DraftPromptTemplate, strings.Join(categoryNames(), ", "), text)
	raw, err := u.drafter.Draft(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("expense drafter failed: %w", err)
	}

	return u.parseDraft(raw)
}

// parseDraft はモデルの返答を下書きに変換します。返答はコードフェンスで
// 囲まれていることがあるため、最初の '{' から最後の '}' までを取り出します。
func (u *receiptScanUsecase) parseDraft(raw string) (*entity.ExpenseDraft, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("drafter returned no JSON object")
	}

	var p draftPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &p); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}

	draft := &entity.ExpenseDraft{
		Merchant:    strings.TrimSpace(p.Merchant),
		Amount:      p.Amount,
		Description: strings.TrimSpace(p.Description),
	}

	// 未知のカテゴリはOtherに落とす
	cat := expenses.Category(p.Category)
	if !cat.Valid() {
		cat = expenses.CategoryOther
	}
	draft.Category = cat

	// 日付が読めなければ当日を提案する
	date, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		date = u.now().UTC().Truncate(24 * time.Hour)
	}
	draft.Date = date

	return draft, nil
}

func categoryNames() []string {
	all := expenses.AllCategories()
	out := make([]string, 0, len(all))
	for _, c := range all {
		out = append(out, string(c))
	}
	return out
}
