package retrieval

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robowhales/reefscout/internal/scouting"
)

// NoteNoData marks a payload where the store was reachable but nothing
// relevant to the query was found. The prompt formatter turns it into an
// instruction to say so instead of inventing numbers.
const NoteNoData = "NO_DATA_FOUND"

// RecordSource is the slice of the record store the retriever needs. Tests
// substitute in-memory and failing implementations.
type RecordSource interface {
	FetchAll(ctx context.Context) ([]scouting.MatchRecord, error)
	FetchByTeam(ctx context.Context, teamNumber string) ([]scouting.MatchRecord, error)
	FetchByMatch(ctx context.Context, matchNumber string) ([]scouting.MatchRecord, error)
}

// QueryContext echoes what the retriever understood about the query.
type QueryContext struct {
	Intent       string   `json:"intent"`
	TeamNumbers  []string `json:"teamNumbers"`
	MatchNumbers []string `json:"matchNumbers"`
	Note         string   `json:"note,omitempty"`
	Message      string   `json:"message,omitempty"`
}

// Result is the structured context retrieved for one query. Teams and Matches
// are always non-nil so downstream formatting never branches on nil.
type Result struct {
	Teams        map[string]*TeamStatistics `json:"teams"`
	Matches      []scouting.MatchRecord     `json:"matches"`
	QueryContext QueryContext               `json:"queryContext"`
}

// Retriever turns a free-text query into the structured context an assistant
// prompt is built from. It never fails: when the store is missing or errors,
// it degrades to an empty payload with the intent marked accordingly.
type Retriever struct {
	source RecordSource
}

// NewRetriever creates a retriever over the given record source, which may be
// nil when no store is configured.
func NewRetriever(source RecordSource) *Retriever {
	return &Retriever{source: source}
}

// Retrieve extracts entities from the query, classifies its intent, and
// gathers the team statistics and match records the query needs.
func (r *Retriever) Retrieve(ctx context.Context, query string) (result *Result) {
	qc := QueryContext{
		Intent:       ClassifyIntent(query),
		TeamNumbers:  ExtractTeamNumbers(query),
		MatchNumbers: ExtractMatchNumbers(query),
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("retrieval: recovered from panic: %v", rec)
			result = degraded(qc, IntentError, fmt.Sprintf("error retrieving data: %v", rec))
		}
	}()

	if r.source == nil {
		return degraded(qc, IntentFallback, "scouting record store is unavailable")
	}

	result = &Result{
		Teams:        map[string]*TeamStatistics{},
		Matches:      []scouting.MatchRecord{},
		QueryContext: qc,
	}

	aggregatedAll := false
	if len(qc.TeamNumbers) > 0 {
		groups, err := r.fetchTeams(ctx, qc.TeamNumbers)
		if err != nil {
			return degraded(qc, IntentError, fmt.Sprintf("error retrieving data: %v", err))
		}
		for team, records := range groups {
			result.Teams[team] = AggregateTeam(team, records)
		}
		// None of the mentioned numbers matched a scouted team; they were
		// probably not team numbers at all. Fall back to the whole field so
		// the assistant still has something to work with.
		if len(result.Teams) == 0 {
			if err := r.aggregateAll(ctx, result); err != nil {
				return degraded(qc, IntentError, fmt.Sprintf("error retrieving data: %v", err))
			}
			aggregatedAll = true
		}
	}

	if len(qc.MatchNumbers) > 0 {
		matches, err := r.fetchMatches(ctx, qc.MatchNumbers)
		if err != nil {
			return degraded(qc, IntentError, fmt.Sprintf("error retrieving data: %v", err))
		}
		result.Matches = append(result.Matches, matches...)
	}

	// Ranking-style intents and entity-free queries need the whole field.
	entityFree := len(qc.TeamNumbers) == 0 && len(qc.MatchNumbers) == 0
	if !aggregatedAll && (entityFree || needsAllTeams(qc.Intent)) {
		if err := r.aggregateAll(ctx, result); err != nil {
			return degraded(qc, IntentError, fmt.Sprintf("error retrieving data: %v", err))
		}
	}

	if len(result.Teams) == 0 && len(result.Matches) == 0 {
		result.QueryContext.Note = NoteNoData
	}
	return result
}

// fetchTeams loads each requested team's records concurrently and returns
// only the teams that have at least one record.
func (r *Retriever) fetchTeams(ctx context.Context, teamNumbers []string) (map[string][]scouting.MatchRecord, error) {
	records := make([][]scouting.MatchRecord, len(teamNumbers))
	errs := make([]error, len(teamNumbers))

	var wg sync.WaitGroup
	for i, team := range teamNumbers {
		wg.Add(1)
		go func(i int, team string) {
			defer wg.Done()
			records[i], errs[i] = r.source.FetchByTeam(ctx, team)
		}(i, team)
	}
	wg.Wait()

	groups := make(map[string][]scouting.MatchRecord)
	for i, team := range teamNumbers {
		if errs[i] != nil {
			return nil, fmt.Errorf("fetching team %s: %w", team, errs[i])
		}
		if len(records[i]) > 0 {
			groups[team] = records[i]
		}
	}
	return groups, nil
}

// fetchMatches loads each requested match's records concurrently, preserving
// the order the matches were mentioned in.
func (r *Retriever) fetchMatches(ctx context.Context, matchNumbers []string) ([]scouting.MatchRecord, error) {
	records := make([][]scouting.MatchRecord, len(matchNumbers))
	errs := make([]error, len(matchNumbers))

	var wg sync.WaitGroup
	for i, match := range matchNumbers {
		wg.Add(1)
		go func(i int, match string) {
			defer wg.Done()
			records[i], errs[i] = r.source.FetchByMatch(ctx, match)
		}(i, match)
	}
	wg.Wait()

	var matches []scouting.MatchRecord
	for i, match := range matchNumbers {
		if errs[i] != nil {
			return nil, fmt.Errorf("fetching match %s: %w", match, errs[i])
		}
		matches = append(matches, records[i]...)
	}
	return matches, nil
}

func (r *Retriever) aggregateAll(ctx context.Context, result *Result) error {
	all, err := r.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetching all records: %w", err)
	}
	for team, stats := range AggregateAll(all) {
		if _, ok := result.Teams[team]; !ok {
			result.Teams[team] = stats
		}
	}
	return nil
}

// degraded builds an empty-but-well-formed payload for store-missing and
// store-error conditions.
func degraded(qc QueryContext, intent, message string) *Result {
	qc.Intent = intent
	qc.Message = message
	return &Result{
		Teams:        map[string]*TeamStatistics{},
		Matches:      []scouting.MatchRecord{},
		QueryContext: qc,
	}
}
