// Package entity はreceiptscanフィーチャーのドメインモデルを定義します。
package entity

import (
	"time"

	expenses "expense_backend/internal/feature/expenses/domain/entity"
)

// ExpenseDraft はレシート画像から推定した支出の下書きを表します。
// 確定はクライアント側で行い、スキャン自体は何も保存しません。
type ExpenseDraft struct {
	Merchant    string            // 店舗名（読み取れなければ空）
	Date        time.Time         // 購入日（読み取れなければ当日）
	Amount      float64           // 合計金額
	Category    expenses.Category // 推定カテゴリ
	Description string            // 明細の要約
}
