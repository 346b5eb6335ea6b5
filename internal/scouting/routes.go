package scouting

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the scouting record API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/records", func(r chi.Router) {
		r.Post("/", handleSubmitRecord(store))
		r.Get("/", handleListRecords(store))
		r.Get("/count", handleCountRecords(store))
	})
}

func handleSubmitRecord(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec MatchRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if rec.MatchInfo.TeamNumber == "" {
			http.Error(w, `{"error":"matchInfo.teamNumber is required"}`, http.StatusBadRequest)
			return
		}
		if rec.MatchInfo.MatchNumber == "" {
			http.Error(w, `{"error":"matchInfo.matchNumber is required"}`, http.StatusBadRequest)
			return
		}
		if _, err := strconv.Atoi(rec.MatchInfo.TeamNumber); err != nil {
			http.Error(w, `{"error":"matchInfo.teamNumber must be numeric"}`, http.StatusBadRequest)
			return
		}

		// Scores are derived server-side; whatever the client sent is ignored.
		rec.Scores = ComputeScores(&rec)

		saved, err := store.Insert(r.Context(), rec)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}
}

func handleListRecords(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := r.URL.Query().Get("team")
		match := r.URL.Query().Get("match")

		var (
			records []MatchRecord
			err     error
		)
		switch {
		case team != "":
			records, err = store.FetchByTeam(r.Context(), team)
		case match != "":
			records, err = store.FetchByMatch(r.Context(), match)
		default:
			records, err = store.FetchAll(r.Context())
		}
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []MatchRecord{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

func handleCountRecords(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := store.Count(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"count": count})
	}
}
