package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
)

func TestParseHistoryQuery(t *testing.T) {
	poolID := testPoolID

	tests := []struct {
		name     string
		rawQuery string
		expected domain.HistoryQuery
	}{
		{
			name:     "Defaults",
			rawQuery: "",
			expected: domain.HistoryQuery{Limit: 30},
		},
		{
			name:     "All filters",
			rawQuery: "limit=10&offset=40&pool_id=" + poolID + "&rarities=SSS,SS&pity=1&q=%20Moon%20",
			expected: domain.HistoryQuery{
				Limit:    10,
				Offset:   40,
				PoolID:   &poolID,
				Rarities: []domain.Rarity{domain.RaritySSS, domain.RaritySS},
				PityOnly: true,
				Q:        "Moon",
			},
		},
		{
			name:     "Limit clamped high",
			rawQuery: "limit=500",
			expected: domain.HistoryQuery{Limit: 50},
		},
		{
			name:     "Limit clamped low",
			rawQuery: "limit=0",
			expected: domain.HistoryQuery{Limit: 1},
		},
		{
			name:     "Fractional limit truncated",
			rawQuery: "limit=7.9",
			expected: domain.HistoryQuery{Limit: 7},
		},
		{
			name:     "Non numeric falls back",
			rawQuery: "limit=lots&offset=far",
			expected: domain.HistoryQuery{Limit: 30},
		},
		{
			name:     "Offset clamped",
			rawQuery: "offset=250000",
			expected: domain.HistoryQuery{Limit: 30, Offset: 100000},
		},
		{
			name:     "Negative offset clamped",
			rawQuery: "offset=-5",
			expected: domain.HistoryQuery{Limit: 30},
		},
		{
			name:     "Unknown and repeated rarities dropped",
			rawQuery: "rarities=sss,S,,UR,S,%20R%20",
			expected: domain.HistoryQuery{Limit: 30, Rarities: []domain.Rarity{domain.RarityS, domain.RarityR}},
		},
		{
			name:     "Only pity=1 enables pity filter",
			rawQuery: "pity=true",
			expected: domain.HistoryQuery{Limit: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history?"+tt.rawQuery, nil)
			w := httptest.NewRecorder()

			query, ok := parseHistoryQuery(w, req)

			require.True(t, ok)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestParseHistoryQuery_TruncatesSearchText(t *testing.T) {
	long := strings.Repeat("냥", 200)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history?q="+url.QueryEscape(long), nil)

	query, ok := parseHistoryQuery(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, strings.Repeat("냥", 120), query.Q)
}

func TestParseHistoryQuery_InvalidPoolID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history?pool_id=not-a-pool", nil)
	w := httptest.NewRecorder()

	_, ok := parseHistoryQuery(w, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodePoolIDInvalid, resp.Code)
}

func TestHandleGetHistory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockHistoryService)
		page := &domain.HistoryPage{
			Entries:    []domain.HistoryEntry{{PullID: "p1", Pool: domain.HistoryPool{PoolID: testPoolID}}},
			NextOffset: 12,
			Exhausted:  true,
		}
		svc.On("Page", mock.Anything, testUserID, domain.HistoryQuery{Limit: 5}).Return(page, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history?limit=5", nil)
		req.Header.Set(HeaderUserID, testUserID)
		w := httptest.NewRecorder()

		HandleGetHistory(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.HistoryPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 12, got.NextOffset)
		assert.True(t, got.Exhausted)
		require.Len(t, got.Entries, 1)
		assert.Equal(t, "p1", got.Entries[0].PullID)
		svc.AssertExpectations(t)
	})

	t.Run("Ledger failure carries request id", func(t *testing.T) {
		svc := new(MockHistoryService)
		svc.On("Page", mock.Anything, testUserID, mock.Anything).Return(nil, errors.New("relation gacha_pulls does not exist"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history", nil)
		req.Header.Set(HeaderUserID, testUserID)
		req = req.WithContext(logger.WithRequestID(req.Context(), "req-42"))
		w := httptest.NewRecorder()

		HandleGetHistory(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgHistoryFailed, resp.Error)
		assert.Equal(t, CodeHistoryQueryFailed, resp.Code)
		assert.Equal(t, "req-42", resp.RequestID)
		assert.NotContains(t, w.Body.String(), "gacha_pulls")
	})

	t.Run("Ledger failure without middleware still gets a request id", func(t *testing.T) {
		svc := new(MockHistoryService)
		svc.On("Page", mock.Anything, testUserID, mock.Anything).Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history", nil)
		req.Header.Set(HeaderUserID, testUserID)
		w := httptest.NewRecorder()

		HandleGetHistory(svc).ServeHTTP(w, req)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("Invalid pool id never reaches the service", func(t *testing.T) {
		svc := new(MockHistoryService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history?pool_id=xyz", nil)
		req.Header.Set(HeaderUserID, testUserID)
		w := httptest.NewRecorder()

		HandleGetHistory(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Page", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing identity", func(t *testing.T) {
		svc := new(MockHistoryService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gacha/history", nil)
		w := httptest.NewRecorder()

		HandleGetHistory(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), CodeUserIDRequired)
	})
}
