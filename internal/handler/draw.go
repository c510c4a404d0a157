package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/draw"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
)

// DrawRequest is the body of POST /api/v1/gacha/draw. A missing pool_id lets
// the remote pick the default active pool; amount is clamped to [1, 10].
type DrawRequest struct {
	PoolID *string `json:"pool_id" validate:"omitempty,pool_id"`
	Amount int     `json:"amount"`
}

// HandleDraw runs a draw batch for the calling member
// POST /api/v1/gacha/draw
func HandleDraw(svc draw.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req DrawRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Gacha draw"); err != nil {
			return
		}

		outcome, err := svc.ExecuteBatch(r.Context(), domain.DrawRequest{
			UserID: userID,
			PoolID: req.PoolID,
			Amount: req.Amount,
		})
		if err != nil {
			log.Error(LogMsgDrawFailed, "user_id", userID, "error", err)
			status, msg := drawErrorResponse(err)
			respondErrorCode(w, status, msg, drawErrorCode(err))
			return
		}

		if outcome.CompletedAmount == 0 {
			// Nothing was granted; the outcome still explains why
			log.Warn(LogMsgDrawNothingComplete, "user_id", userID, "warning", outcome.Warning)
			respondJSON(w, http.StatusServiceUnavailable, outcome)
			return
		}

		respondJSON(w, http.StatusOK, outcome)
	}
}

// drawErrorResponse picks the status for a failed batch. A fatal abort is
// always the caller's problem even when the remote text was not recognized.
func drawErrorResponse(err error) (int, string) {
	status, msg := mapServiceErrorToUserMessage(err)

	var fatal *draw.FatalError
	if errors.As(err, &fatal) && status >= http.StatusInternalServerError {
		return http.StatusBadRequest, ErrMsgDrawFailed
	}
	return status, msg
}

func drawErrorCode(err error) string {
	if code := errorCode(err); code != "" {
		return code
	}
	var fatal *draw.FatalError
	if errors.As(err, &fatal) {
		return CodeDrawRejected
	}
	return ""
}
