package handler

import (
	"khqr-payment-gateway/internal/adapter/http/dto"
	"khqr-payment-gateway/internal/adapter/qrimage"
	"khqr-payment-gateway/internal/core/ports"
	"khqr-payment-gateway/pkg/apperror"
	"khqr-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// QRHandler handles payment-request endpoints.
type QRHandler struct {
	qrSvc ports.QRService
}

// NewQRHandler creates a new QRHandler.
func NewQRHandler(qrSvc ports.QRService) *QRHandler {
	return &QRHandler{qrSvc: qrSvc}
}

// Generate handles POST /api/v1/qr.
func (h *QRHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.qrSvc.Generate(c.Request.Context(), ports.GenerateRequest{
		Amount:       req.Amount,
		Currency:     req.Currency,
		BillNumber:   req.BillNumber,
		WithDeepLink: req.WithDeepLink,
		WithImage:    req.WithImage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toGenerateResponse(result))
}

// CheckStatus handles GET /api/v1/qr/:md5/status.
func (h *QRHandler) CheckStatus(c *gin.Context) {
	fingerprint := c.Param("md5")

	result, err := h.qrSvc.CheckStatus(c.Request.Context(), fingerprint)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatusResponse{
		Status: string(result.Status),
		IsPaid: result.IsPaid,
	})
}

// CheckBulkStatus handles POST /api/v1/qr/status/bulk.
func (h *QRHandler) CheckBulkStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.qrSvc.CheckBulkStatus(c.Request.Context(), req.Fingerprints)
	if err != nil {
		response.Error(c, err)
		return
	}

	details := make(map[string]dto.BulkStatusDetail, len(result.Entries))
	for _, e := range result.Entries {
		details[e.Fingerprint] = dto.BulkStatusDetail{
			Status:        string(e.Status),
			IsPaid:        e.Status.IsPaid(),
			TransactionID: e.TransactionID,
			Amount:        e.Amount,
			Timestamp:     e.Timestamp,
		}
	}

	response.OK(c, dto.BulkStatusResponse{
		PaidTransactions: result.PaidFingerprints,
		TotalChecked:     result.TotalChecked,
		PaidCount:        result.PaidCount,
		PaymentDetails:   details,
	})
}

// GetTransactionInfo handles GET /api/v1/qr/:md5/info.
func (h *QRHandler) GetTransactionInfo(c *gin.Context) {
	fingerprint := c.Param("md5")

	info, err := h.qrSvc.GetTransactionInfo(c.Request.Context(), fingerprint)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionInfoResponse{
		MD5:           info.Fingerprint,
		Status:        string(info.Status),
		IsPaid:        info.Status.IsPaid(),
		TransactionID: info.TransactionID,
		Amount:        info.Amount,
		Currency:      info.Currency,
		MerchantName:  info.MerchantName,
		BillNumber:    info.BillNumber,
		CreatedAt:     info.CreatedAt,
		PaidAt:        info.PaidAt,
		PayerAccount:  info.PayerAccount,
		PayerName:     info.PayerName,
	})
}

// toGenerateResponse converts the service result to a DTO.
func toGenerateResponse(result *ports.GenerateResult) dto.GenerateResponse {
	resp := dto.GenerateResponse{
		QR:         result.Payload,
		MD5:        result.Fingerprint,
		BillNumber: result.BillNumber,
		DeepLink:   result.DeepLink,
	}
	if result.ImagePNG != nil {
		s := qrimage.ToBase64(result.ImagePNG)
		resp.QRImage = &s
	}
	return resp
}
