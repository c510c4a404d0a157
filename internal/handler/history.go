package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/history"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
)

// HandleGetHistory returns a filtered page of the member's pulls
// GET /api/v1/gacha/history?limit=&offset=&pool_id=&rarities=&pity=&q=
func HandleGetHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		query, ok := parseHistoryQuery(w, r)
		if !ok {
			return
		}

		page, err := svc.Page(ctx, userID, query)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			if status < http.StatusInternalServerError {
				respondErrorCode(w, status, msg, errorCode(err))
				return
			}

			requestID := logger.GetRequestID(ctx)
			if requestID == "" {
				requestID = logger.GenerateRequestID()
			}
			log.Error(LogMsgHistoryFailed, "user_id", userID, "request_id", requestID, "error", err)
			respondJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:     ErrMsgHistoryFailed,
				Code:      CodeHistoryQueryFailed,
				RequestID: requestID,
			})
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// parseHistoryQuery reads the history filters. Out of range numbers are
// clamped and unknown rarities dropped; only a malformed pool id is rejected.
func parseHistoryQuery(w http.ResponseWriter, r *http.Request) (domain.HistoryQuery, bool) {
	params := r.URL.Query()

	query := domain.HistoryQuery{
		Limit:    parseIntInRange(params.Get("limit"), domain.DefaultHistoryLimit, domain.MinHistoryLimit, domain.MaxHistoryLimit),
		Offset:   parseIntInRange(params.Get("offset"), 0, 0, domain.MaxHistoryOffset),
		Rarities: parseRarities(params.Get("rarities")),
		PityOnly: params.Get("pity") == "1",
		Q:        truncateRunes(strings.TrimSpace(params.Get("q")), domain.MaxHistoryQueryLen),
	}

	if poolID := params.Get("pool_id"); poolID != "" {
		if !isPoolID(poolID) {
			respondErrorCode(w, http.StatusBadRequest, ErrMsgPoolIDInvalid, CodePoolIDInvalid)
			return domain.HistoryQuery{}, false
		}
		query.PoolID = &poolID
	}

	return query, true
}

// parseRarities splits a comma separated list, keeping known tiers once each.
func parseRarities(raw string) []domain.Rarity {
	if raw == "" {
		return nil
	}

	var rarities []domain.Rarity
	seen := make(map[domain.Rarity]bool)
	for _, part := range strings.Split(raw, ",") {
		rarity, ok := domain.ParseRarity(strings.TrimSpace(part))
		if !ok || seen[rarity] {
			continue
		}
		seen[rarity] = true
		rarities = append(rarities, rarity)
	}
	return rarities
}
