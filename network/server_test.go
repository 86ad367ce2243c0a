package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/hand-scorer/application"
	"github.com/luca-patrignani/hand-scorer/domain/poker"
)

func newTestRouter(table poker.ScoreTable) http.Handler {
	svc := application.NewScoringService(table, 4, nil)
	return NewServer(svc, nil).Router()
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestScoreEndpoint(t *testing.T) {
	rec := post(t, newTestRouter(poker.DefaultScoreTable), "/api/score",
		`{"cards":["AS","AH","10D","10C","KS"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var er EvaluationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	require.NotNil(t, er.Category)
	assert.Equal(t, poker.TwoPair, *er.Category)
	assert.Equal(t, "Two Pair", er.CategoryName)
	assert.Equal(t, 248, er.Score)
	assert.Equal(t, 48, er.TieBreak)
	assert.Equal(t, []string{"AS", "AH", "10D", "10C", "KS"}, er.Cards)
	assert.Contains(t, rec.Body.String(), `"category":"two_pair"`)
}

func TestScoreEndpointLegacyTable(t *testing.T) {
	rec := post(t, newTestRouter(poker.LegacyScoreTable), "/api/score",
		`{"cards":["2H","3H","5H","9H","KH"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var er EvaluationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	assert.Equal(t, poker.Flush, *er.Category)
	assert.Equal(t, 32, er.TieBreak)
	assert.Equal(t, 82, er.Score)
}

func TestScoreEndpointErrors(t *testing.T) {
	router := newTestRouter(poker.DefaultScoreTable)
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"cards":`, http.StatusBadRequest},
		{"duplicate", `{"cards":["AS","AS","KD","QD","JD"]}`, http.StatusUnprocessableEntity},
		{"too few", `{"cards":["AS","KD"]}`, http.StatusUnprocessableEntity},
		{"bad card", `{"cards":["AS","KD","QD","JD","ZZ"]}`, http.StatusUnprocessableEntity},
		{"empty", `{}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, router, "/api/score", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var er ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
			assert.NotEmpty(t, er.Error)
			assert.Equal(t, rec.Header().Get(RequestIDHeader), er.RequestID)
		})
	}
}

func TestScoreEndpointMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/score", nil)
	rec := httptest.NewRecorder()
	newTestRouter(poker.DefaultScoreTable).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestShowdownEndpoint(t *testing.T) {
	rec := post(t, newTestRouter(poker.DefaultScoreTable), "/api/showdown", `{"hands":[
		{"name":"alice","cards":["AS","AH","10D","10C","KS"]},
		{"cards":["2S","2H","2D","5C","5S"]},
		{"name":"broken","cards":["AS","AS","KD","QD","JD"]}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ShowdownResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Equal(t, []string{"hand-2"}, resp.Winners)

	assert.Equal(t, "alice", resp.Results[0].Name)
	assert.False(t, resp.Results[0].Winner)
	assert.Equal(t, "hand-2", resp.Results[1].Name)
	assert.True(t, resp.Results[1].Winner)
	assert.Equal(t, poker.FullHouse, *resp.Results[1].Category)

	assert.Equal(t, "broken", resp.Results[2].Name)
	assert.Nil(t, resp.Results[2].Category)
	assert.Contains(t, resp.Results[2].Error, "duplicate")
}

func TestShowdownEndpointNoValidHand(t *testing.T) {
	rec := post(t, newTestRouter(poker.DefaultScoreTable), "/api/showdown",
		`{"hands":[{"name":"short","cards":["AS","KS"]}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"winners":[]`)

	var resp ShowdownResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Winners)
	assert.Empty(t, resp.Winners)
}

func TestShowdownEndpointTooManyHands(t *testing.T) {
	hands := make([]string, MaxShowdownHands+1)
	for i := range hands {
		hands[i] = `{"cards":["AS","AH","10D","10C","KS"]}`
	}
	rec := post(t, newTestRouter(poker.DefaultScoreTable), "/api/showdown",
		`{"hands":[`+strings.Join(hands, ",")+`]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestScoreEndpointBodyTooLarge(t *testing.T) {
	body := `{"cards":["AS","AH","10D","10C","KS"],"padding":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
	rec := post(t, newTestRouter(poker.DefaultScoreTable), "/api/score", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestWithTimeout(t *testing.T) {
	svc := application.NewScoringService(poker.DefaultScoreTable, 1, nil)

	s := NewServer(svc, nil)
	assert.Equal(t, 10*time.Second, s.timeout)

	s = NewServer(svc, nil, WithTimeout(250*time.Millisecond))
	assert.Equal(t, 250*time.Millisecond, s.timeout)
	assert.Equal(t, 250*time.Millisecond, s.server.ReadHeaderTimeout)
}

func TestShowdownEndpointEmpty(t *testing.T) {
	rec := post(t, newTestRouter(poker.DefaultScoreTable), "/api/showdown", `{"hands":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestRouter(poker.DefaultScoreTable).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(poker.DefaultScoreTable)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}
