package assistant

import (
	"time"

	"github.com/robowhales/reefscout/internal/retrieval"
)

// Session is one chat conversation.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationMessage is one stored turn of a session. Metadata holds the
// retrieval query context of assistant turns as JSON.
type ConversationMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // "user", "assistant", "system"
	Content   string    `json:"content"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatResponse is the answer to one chat message.
type ChatResponse struct {
	Response  string      `json:"response"`
	SessionID string      `json:"sessionId"`
	Context   ChatContext `json:"context"`
}

// ChatContext tells the client what data backed the answer.
type ChatContext struct {
	TeamsAnalyzed   []string `json:"teamsAnalyzed"`
	MatchesAnalyzed []string `json:"matchesAnalyzed"`
	Intent          string   `json:"intent"`
}

func buildChatContext(result *retrieval.Result) ChatContext {
	matches := []string{}
	for _, rec := range result.Matches {
		if rec.MatchInfo.MatchNumber != "" {
			matches = append(matches, rec.MatchInfo.MatchNumber)
		}
	}
	return ChatContext{
		TeamsAnalyzed:   retrieval.SortedTeamNumbers(result.Teams),
		MatchesAnalyzed: matches,
		Intent:          result.QueryContext.Intent,
	}
}
