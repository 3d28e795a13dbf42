package geocode

import (
	"net/http"

	"emsinet_landing_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the geocoding endpoints.
type Handler struct {
	svc *Resolver
}

func NewHandler(svc *Resolver) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/v1/geocode/search?q=...
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' is required", nil)
		return
	}

	results, err := h.svc.Search(c.Request.Context(), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, SearchResponse{Items: results, Total: len(results)})
}

// Reverse handles GET /api/v1/geocode/reverse?lat=...&lon=...
func (h *Handler) Reverse(c *gin.Context) {
	var req ReverseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "valid 'lat' and 'lon' are required", nil)
		return
	}

	result, err := h.svc.Reverse(c.Request.Context(), req.Lat, req.Lon)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
