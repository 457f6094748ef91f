package transport_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/company"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/dashboard"
	"github.com/hferris/pipecrm/internal/domain/deal"
	"github.com/hferris/pipecrm/internal/domain/note"
	"github.com/hferris/pipecrm/internal/sqlite"
	"github.com/hferris/pipecrm/internal/transport"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := transport.Services{
		Companies:  company.NewService(sqlite.NewCompanyRepository(db), logger),
		Contacts:   contact.NewService(sqlite.NewContactRepository(db), logger),
		Deals:      deal.NewService(sqlite.NewDealRepository(db), logger),
		Activities: activity.NewService(sqlite.NewActivityRepository(db), logger),
		Notes:      note.NewService(sqlite.NewNoteRepository(db), logger),
		Dashboard:  dashboard.NewService(sqlite.NewStatsRepository(db), logger),
	}

	return transport.NewRouter(services, db, logger)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestInitSeedsOnce(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "Database initialized successfully", resp.Message)

	rec = doJSON(t, h, http.MethodPost, "/api/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "Database already seeded", resp.Message)
}

func TestDashboardAfterSeed(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sum struct {
		Stats struct {
			TotalContacts     int     `json:"totalContacts"`
			TotalCompanies    int     `json:"totalCompanies"`
			WonDealsValue     float64 `json:"wonDealsValue"`
			PendingActivities int     `json:"pendingActivities"`
		} `json:"stats"`
		DealsByStage []struct {
			Stage string  `json:"stage"`
			Count int     `json:"count"`
			Value float64 `json:"value"`
		} `json:"dealsByStage"`
		RecentDeals        []json.RawMessage `json:"recentDeals"`
		UpcomingActivities []json.RawMessage `json:"upcomingActivities"`
		RecentContacts     []json.RawMessage `json:"recentContacts"`
	}
	decodeBody(t, rec, &sum)

	require.Equal(t, 12, sum.Stats.TotalContacts)
	require.Equal(t, 8, sum.Stats.TotalCompanies)
	require.InDelta(t, 365000, sum.Stats.WonDealsValue, 0.001)
	require.Equal(t, 9, sum.Stats.PendingActivities)

	// Five pipeline stages in order, plus the lost bucket appended.
	require.Len(t, sum.DealsByStage, 6)
	wantOrder := []string{"lead", "qualified", "proposal", "negotiation", "won", "lost"}
	for i, row := range sum.DealsByStage {
		require.Equal(t, wantOrder[i], row.Stage)
	}

	require.Len(t, sum.RecentDeals, 5)
	require.Len(t, sum.UpcomingActivities, 5)
	require.Len(t, sum.RecentContacts, 4)
}

func TestDashboardEmptyStore(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.NotContains(t, body, "null", "empty lists must encode as [], not null")

	var sum struct {
		DealsByStage []struct {
			Stage string `json:"stage"`
			Count int    `json:"count"`
		} `json:"dealsByStage"`
	}
	decodeBody(t, rec, &sum)
	require.Len(t, sum.DealsByStage, 5, "all pipeline stages reported even with no deals")
	for _, row := range sum.DealsByStage {
		require.Zero(t, row.Count)
	}
}

func TestContactCreateValidationAndConflict(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "Bad", "last_name": "Status", "status": "archived",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payload := map[string]any{
		"first_name": "Alexandra", "last_name": "Chen", "email": "a.chen@meridianvc.com",
	}
	rec = doJSON(t, h, http.MethodPost, "/api/contacts", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/contacts", payload)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestContactListEmpty(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestDealCreateAndUpdate(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/deals", map[string]any{
		"title": "Bad stage", "stage": "pending",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/deals", map[string]any{
		"title": "Brand Campaign", "value": 95000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created deal.Deal
	decodeBody(t, rec, &created)
	require.Equal(t, deal.StageLead, created.Stage)
	require.Equal(t, 10, created.Probability)

	rec = doJSON(t, h, http.MethodPut, "/api/deals", map[string]any{
		"id": created.ID, "title": "Brand Campaign", "value": 95000,
		"stage": "proposal", "probability": 40,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated deal.Deal
	decodeBody(t, rec, &updated)
	require.Equal(t, deal.StageProposal, updated.Stage)
	require.Equal(t, 40, updated.Probability)
}

func TestDealUpdateNotFound(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/api/deals", map[string]any{
		"id": 999, "title": "Ghost",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivityCompleteToggle(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/activities", map[string]any{
		"type": "call", "title": "Follow-up call",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created activity.Activity
	decodeBody(t, rec, &created)
	require.False(t, created.Completed)
	require.Equal(t, activity.PriorityMedium, created.Priority)

	rec = doJSON(t, h, http.MethodPut, "/api/activities", map[string]any{
		"id": created.ID, "completed": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/activities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []activity.Activity
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	require.True(t, list[0].Completed)
}

func TestActivitySummaryEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/activities/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sum activity.Summary
	decodeBody(t, rec, &sum)
	require.Equal(t, 9, sum.Pending)
	require.Equal(t, 1, sum.Completed)
}

func TestNotesFilter(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "Elena", "last_name": "Vasquez",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var person contact.Contact
	decodeBody(t, rec, &person)

	rec = doJSON(t, h, http.MethodPost, "/api/notes", map[string]any{
		"content": "Prefers morning calls.", "contact_id": person.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/notes", map[string]any{
		"content": "Unattached note.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []note.Note
	decodeBody(t, rec, &all)
	require.Len(t, all, 2)

	rec = doJSON(t, h, http.MethodGet, "/api/notes?contact_id="+strconv.FormatInt(person.ID, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []note.Note
	decodeBody(t, rec, &filtered)
	require.Len(t, filtered, 1)
	require.Equal(t, "Prefers morning calls.", filtered[0].Content)

	rec = doJSON(t, h, http.MethodGet, "/api/notes?contact_id=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyUpdateNotFound(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/api/companies", map[string]any{
		"id": 999, "name": "Ghost Corp",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
