// Package router はHTTPルーティングを構成します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "expense_backend/internal/feature/auth/transport/handler"
	expensehandler "expense_backend/internal/feature/expenses/transport/handler"
	receipthandler "expense_backend/internal/feature/receiptscan/transport/handler"
	settingshandler "expense_backend/internal/feature/settings/transport/handler"
	"expense_backend/internal/platform/http/handler"
	jwtmw "expense_backend/internal/platform/jwt"
)

// NewRouter は全エンドポイントを登録したGinエンジンを返します。
// receipts がnilの場合、レシート読み取りのルートは登録されません。
func NewRouter(
	auth *authhandler.AuthHandler,
	expenses *expensehandler.ExpensesHandler,
	settings *settingshandler.SettingsHandler,
	receipts *receipthandler.ReceiptScanHandler,
) *gin.Engine {
	r := gin.Default()

	// WebクライアントからのアクセスのためCORSを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT + リフレッシュトークン発行）
	r.POST("/login", auth.Login)
	// リフレッシュトークンのローテーション
	r.POST("/refresh", auth.Refresh)

	// 認証必須のルート
	authRequired := r.Group("/")
	authRequired.Use(jwtmw.AuthRequired())
	{
		authRequired.POST("/logout", auth.Logout)

		authRequired.POST("/expenses", expenses.Create)
		authRequired.GET("/expenses", expenses.List)
		authRequired.PUT("/expenses", expenses.Update)
		authRequired.DELETE("/expenses", expenses.Delete)
		authRequired.GET("/expenses/summary", expenses.Summary)

		authRequired.GET("/user/settings", settings.GetSettings)
		authRequired.PUT("/user/settings", settings.UpdateSettings)
		authRequired.POST("/user/change-password", settings.ChangePassword)

		if receipts != nil {
			authRequired.POST("/receipts/scan", receipts.ScanReceipt)
		}
	}

	return r
}
