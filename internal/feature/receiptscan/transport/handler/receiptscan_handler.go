// Package handler はreceiptscanフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/receiptscan/domain/entity"
)

// ReceiptScanUsecase はレシート読み取りのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ReceiptScanUsecase interface {
	ScanReceipt(ctx context.Context, imageData []byte) (*entity.ExpenseDraft, error)
}

// ReceiptScanHandler はレシート読み取りのHTTPリクエストを処理します。
type ReceiptScanHandler struct {
	uc ReceiptScanUsecase
}

// NewReceiptScanHandler はReceiptScanHandlerの新しいインスタンスを生成します。
func NewReceiptScanHandler(uc ReceiptScanUsecase) *ReceiptScanHandler {
	return &ReceiptScanHandler{uc: uc}
}

// ScanReceipt はレシート画像をアップロードして支出の下書きを返します。
//
// エンドポイント: POST /receipts/scan
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *ReceiptScanHandler) ScanReceipt(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	draft, err := h.uc.ScanReceipt(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("レシート読み取りに失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to scan receipt"})
		return
	}

	c.JSON(http.StatusOK, api.ReceiptDraftResponse{
		Merchant:    draft.Merchant,
		Date:        openapi_types.Date{Time: draft.Date},
		Amount:      draft.Amount,
		Category:    string(draft.Category),
		Description: draft.Description,
	})
}
