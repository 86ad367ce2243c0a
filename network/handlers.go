package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/luca-patrignani/hand-scorer/application"
	"github.com/luca-patrignani/hand-scorer/domain/poker"
	"github.com/luca-patrignani/hand-scorer/handfile"
)

// RequestIDHeader carries the id of every request and response.
const RequestIDHeader = "X-Request-ID"

const (
	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes = 1 << 20
	// MaxShowdownHands caps the number of hands in one showdown.
	MaxShowdownHands = 1000
)

type ctxKey struct{}

// requestID reuses a well formed incoming X-Request-ID or generates one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestIDFrom returns the request id stored by the router, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type scoreRequest struct {
	Cards []string `json:"cards"`
}

type showdownRequest struct {
	Hands []handfile.Entry `json:"hands"`
}

// EvaluationResponse is the JSON form of a scored hand.
type EvaluationResponse struct {
	Name         string          `json:"name,omitempty"`
	Cards        []string        `json:"cards"`
	Category     *poker.Category `json:"category,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Score        int             `json:"score"`
	TieBreak     int             `json:"tie_break"`
	Description  string          `json:"description,omitempty"`
	Winner       bool            `json:"winner,omitempty"`
	Error        string          `json:"error,omitempty"`
}

type ShowdownResponse struct {
	Results []EvaluationResponse `json:"results"`
	Winners []string             `json:"winners"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type handlers struct {
	service *application.ScoringService
	logger  *slog.Logger
}

func newEvaluationResponse(ev poker.Evaluation) EvaluationResponse {
	category := ev.Category
	return EvaluationResponse{
		Cards:        ev.Hand.Codes(),
		Category:     &category,
		CategoryName: ev.Category.String(),
		Score:        int(ev.Score),
		TieBreak:     ev.TieBreak,
		Description:  ev.Description,
	}
}

func (h *handlers) score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !h.decode(w, r, &req) {
		return
	}
	ev, err := h.service.ScoreHand(r.Context(), req.Cards)
	if err != nil {
		h.respondError(w, r, statusFor(err), err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, newEvaluationResponse(ev))
}

func (h *handlers) showdown(w http.ResponseWriter, r *http.Request) {
	var req showdownRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Hands) == 0 {
		h.respondError(w, r, http.StatusUnprocessableEntity, handfile.ErrNoHands.Error())
		return
	}
	if len(req.Hands) > MaxShowdownHands {
		h.respondError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("showdown lists %d hands, at most %d are allowed", len(req.Hands), MaxShowdownHands))
		return
	}
	for i := range req.Hands {
		if req.Hands[i].Name == "" {
			req.Hands[i].Name = "hand-" + strconv.Itoa(i+1)
		}
	}

	outcomes, err := h.service.ScoreBatch(r.Context(), req.Hands)
	if err != nil {
		h.respondError(w, r, statusFor(err), err.Error())
		return
	}
	resp := ShowdownResponse{
		Results: make([]EvaluationResponse, 0, len(outcomes)),
		Winners: application.WinnerNames(outcomes),
	}
	for _, o := range outcomes {
		var er EvaluationResponse
		if o.Err != nil {
			er = EvaluationResponse{Cards: o.Cards, Error: o.Err.Error()}
		} else {
			er = newEvaluationResponse(o.Evaluation)
			er.Winner = o.Winner
		}
		er.Name = o.Name
		resp.Results = append(resp.Results, er)
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// decode reads the JSON body into v and answers the request itself when the
// body is too large or malformed.
func (h *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.respondError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
	} else {
		h.respondError(w, r, http.StatusBadRequest, "malformed request body")
	}
	return false
}

func statusFor(err error) int {
	var invalid *poker.InvalidHandError
	switch {
	case errors.As(err, &invalid), errors.Is(err, poker.ErrInvalidCard):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *handlers) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (h *handlers) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	id := RequestIDFrom(r.Context())
	h.logger.Debug("sending error response", "status_code", status, "error", message, "request_id", id)
	h.respondJSON(w, status, ErrorResponse{Error: message, RequestID: id})
}
