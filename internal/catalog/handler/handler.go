// Package handler exposes the catalog module's HTTP endpoints.
package handler

import (
	"net/http"

	"emsinet_landing_backend/internal/catalog/service"
	"emsinet_landing_backend/internal/catalog/transport"
	"emsinet_landing_backend/platform/httpkit"
	"emsinet_landing_backend/platform/validator"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// Handler handles HTTP requests for the landing catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// PaymentMethods handles GET /api/v1/landing/metodos-pago
func (h *Handler) PaymentMethods(c *gin.Context) {
	result, err := h.svc.PaymentMethods(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ServicePlans handles GET /api/v1/landing/servicios
func (h *Handler) ServicePlans(c *gin.Context) {
	result, err := h.svc.ServicePlans(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Info handles GET /api/v1/landing/info
func (h *Handler) Info(c *gin.Context) {
	result, err := h.svc.Info(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AccountQR handles GET /api/v1/landing/metodos-pago/qr?number=...
// It renders an account number as a PNG QR code so mobile visitors can scan
// instead of copying.
func (h *Handler) AccountQR(c *gin.Context) {
	var req transport.QRRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "a valid 'number' is required", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "a valid 'number' is required", err.Error())
		return
	}

	png, err := qrcode.Encode(req.Number, qrcode.Medium, qrImageSize)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "could not render QR code", nil)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}
