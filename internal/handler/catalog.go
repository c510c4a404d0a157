package handler

import (
	"net/http"

	"github.com/osse101/tinklepaw-gacha/internal/catalog"
	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
)

// PoolsResponse lists the active pools
type PoolsResponse struct {
	Pools []domain.Pool `json:"pools"`
}

// PoolItemsResponse lists the items of one pool
type PoolItemsResponse struct {
	Items []domain.PoolItem `json:"items"`
}

// CatalogHandler serves pool listings and member status
type CatalogHandler struct {
	service catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// HandleListPools returns the active pools, most recently updated first
// GET /api/v1/gacha/pools
func (h *CatalogHandler) HandleListPools(w http.ResponseWriter, r *http.Request) {
	pools, err := h.service.ListPools(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgListPoolsFailed, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	if pools == nil {
		pools = []domain.Pool{}
	}

	respondJSON(w, http.StatusOK, PoolsResponse{Pools: pools})
}

// HandleListPoolItems returns the items that can drop from a pool
// GET /api/v1/gacha/pool-items?pool_id=
func (h *CatalogHandler) HandleListPoolItems(w http.ResponseWriter, r *http.Request) {
	poolID := GetOptionalQueryParam(r, "pool_id", "")
	if poolID == "" {
		respondErrorCode(w, http.StatusBadRequest, ErrMsgPoolIDRequired, CodePoolIDRequired)
		return
	}
	if !isPoolID(poolID) {
		respondErrorCode(w, http.StatusBadRequest, ErrMsgPoolIDInvalid, CodePoolIDInvalid)
		return
	}

	items, err := h.service.ListPoolItems(r.Context(), poolID)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgPoolItemsFailed, "pool_id", poolID, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	if items == nil {
		items = []domain.PoolItem{}
	}

	respondJSON(w, http.StatusOK, PoolItemsResponse{Items: items})
}

// HandleGetStatus returns the member's balance and, when pool_id is given,
// their pity and cooldown state in that pool
// GET /api/v1/gacha/status?pool_id=
func (h *CatalogHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var poolID *string
	if raw := GetOptionalQueryParam(r, "pool_id", ""); raw != "" {
		if !isPoolID(raw) {
			respondErrorCode(w, http.StatusBadRequest, ErrMsgPoolIDInvalid, CodePoolIDInvalid)
			return
		}
		poolID = &raw
	}

	status, err := h.service.GetStatus(r.Context(), userID, poolID)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgGetStatusFailed, "user_id", userID, "error", err)
		code, msg := mapServiceErrorToUserMessage(err)
		respondError(w, code, msg)
		return
	}

	respondJSON(w, http.StatusOK, status)
}
