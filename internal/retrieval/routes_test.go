package retrieval

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupTestRouter(t *testing.T, source RecordSource) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, source)
	return r
}

func TestTeamStatsEndpoint(t *testing.T) {
	r := setupTestRouter(t, fieldFixture())

	req := httptest.NewRequest(http.MethodGet, "/api/stats/teams", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var teams map[string]*TeamStatistics
	if err := json.Unmarshal(w.Body.Bytes(), &teams); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(teams) != 3 {
		t.Errorf("len(teams) = %d, want 3", len(teams))
	}
	if !almostEqual(teams["254"].AverageScore, 50) {
		t.Errorf("team 254 averageScore = %v, want 50", teams["254"].AverageScore)
	}
}

func TestTeamStatsEndpointSingleTeam(t *testing.T) {
	r := setupTestRouter(t, fieldFixture())

	req := httptest.NewRequest(http.MethodGet, "/api/stats/teams?team=1678", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var teams map[string]*TeamStatistics
	if err := json.Unmarshal(w.Body.Bytes(), &teams); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(teams) != 1 || teams["1678"] == nil {
		t.Fatalf("teams = %v, want only 1678", teams)
	}
	if teams["1678"].MatchCount != 2 {
		t.Errorf("matchCount = %d, want 2", teams["1678"].MatchCount)
	}
}

func TestRankingsEndpoint(t *testing.T) {
	r := setupTestRouter(t, fieldFixture())

	req := httptest.NewRequest(http.MethodGet, "/api/rankings?metric=averageScore&limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Metric   string       `json:"metric"`
		Rankings []RankedTeam `json:"rankings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Metric != "averageScore" {
		t.Errorf("metric = %q, want averageScore", resp.Metric)
	}
	if len(resp.Rankings) != 2 {
		t.Fatalf("len(rankings) = %d, want 2", len(resp.Rankings))
	}
	// 1678 averages 85, 254 averages 50, 118 averages 40.
	if resp.Rankings[0].TeamNumber != "1678" || resp.Rankings[1].TeamNumber != "254" {
		t.Errorf("rankings = %v, want [1678 254]", resp.Rankings)
	}
}

func TestRankingsEndpointStoreError(t *testing.T) {
	r := setupTestRouter(t, failingSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/rankings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
