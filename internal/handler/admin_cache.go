package handler

import (
	"net/http"

	"github.com/osse101/tinklepaw-gacha/internal/catalog"
)

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	catalogService catalog.Service
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(catalogService catalog.Service) *AdminCacheHandler {
	return &AdminCacheHandler{
		catalogService: catalogService,
	}
}

// HandleGetCacheStats returns catalog cache statistics
// GET /api/v1/gacha/admin/cache/stats
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalogService.CacheStats())
}

// HandleInvalidateCache drops every cached pool and pool item list, used after
// pools are edited out of band
// POST /api/v1/gacha/admin/cache/invalidate
func (h *AdminCacheHandler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.catalogService.InvalidateCache()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCatalogCacheInvalidated})
}
