package retrieval

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robowhales/reefscout/internal/scouting"
)

// RegisterRoutes mounts the aggregate-statistics and rankings API routes.
func RegisterRoutes(r chi.Router, source RecordSource) {
	r.Get("/api/stats/teams", handleTeamStats(source))
	r.Get("/api/rankings", handleRankings(source))
}

func handleTeamStats(source RecordSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			teams map[string]*TeamStatistics
			err   error
		)
		if team := r.URL.Query().Get("team"); team != "" {
			var records []scouting.MatchRecord
			records, err = source.FetchByTeam(r.Context(), team)
			if err == nil {
				teams = map[string]*TeamStatistics{team: AggregateTeam(team, records)}
			}
		} else {
			var all []scouting.MatchRecord
			all, err = source.FetchAll(r.Context())
			if err == nil {
				teams = AggregateAll(all)
			}
		}
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(teams)
	}
}

func handleRankings(source RecordSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metric := r.URL.Query().Get("metric")
		if metric == "" {
			metric = "averageScore"
		}
		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		all, err := source.FetchAll(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		teams := AggregateAll(all)

		var ranked []RankedTeam
		if metric == "defensiveRating" {
			ranked = TopDefensiveTeams(teams, limit)
		} else {
			ranked = TopTeamsByMetric(teams, metric, limit)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"metric":   metric,
			"rankings": ranked,
		})
	}
}
