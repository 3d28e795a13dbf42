package handler

import (
	"net/http"

	"emsinet_landing_backend/internal/contact/service"
	"emsinet_landing_backend/internal/contact/transport"
	"emsinet_landing_backend/platform/httpkit"
	"emsinet_landing_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the contact form endpoint.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func NewHandler(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit handles POST /api/v1/landing/contacto
func (h *Handler) Submit(c *gin.Context) {
	var req transport.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid contact request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
