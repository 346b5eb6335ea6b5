package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/robowhales/reefscout/internal/llm"
	"github.com/robowhales/reefscout/internal/retrieval"
)

// errorReply is returned to the user when the model call fails. The failure
// is logged; the chat itself stays up.
const errorReply = "Sorry, there was an error generating a response. Please try again."

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	MaxTokens    int
	Temperature  float64
	HistoryLimit int

	// OnCompletion is called after each successful model call, for metrics.
	OnCompletion func(model string, inputTokens, outputTokens int)
}

// Engine answers chat messages: it retrieves scouting context for the
// message, builds the system prompt, calls the model, and persists the
// conversation.
type Engine struct {
	retriever *retrieval.Retriever
	provider  llm.Provider
	store     *SessionStore
	opts      Options
}

// NewEngine creates an assistant engine.
func NewEngine(retriever *retrieval.Retriever, provider llm.Provider, store *SessionStore, opts Options) *Engine {
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 1024
	}
	if opts.Temperature == 0 {
		opts.Temperature = 0.5
	}
	if opts.HistoryLimit == 0 {
		opts.HistoryLimit = 10
	}
	return &Engine{
		retriever: retriever,
		provider:  provider,
		store:     store,
		opts:      opts,
	}
}

// Store exposes the session store for route handlers.
func (e *Engine) Store() *SessionStore {
	return e.store
}

// Ask answers one chat message. An empty sessionID starts a new session; the
// session ID in the response lets the client continue the conversation.
func (e *Engine) Ask(ctx context.Context, sessionID, userID, message string) (*ChatResponse, error) {
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if userID == "" {
		userID = "anonymous"
	}

	if sessionID == "" {
		sess, err := e.store.CreateSession(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("creating session: %w", err)
		}
		sessionID = sess.ID
	}

	history, err := e.store.RecentMessages(ctx, sessionID, e.opts.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	result := e.retriever.Retrieve(ctx, message)
	systemPrompt := BuildSystemPrompt(message, result)

	messages := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}
	for _, h := range history {
		messages = append(messages, llm.Message{Role: llm.Role(h.Role), Content: h.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	reply := errorReply
	completion, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Messages:    messages,
		MaxTokens:   e.opts.MaxTokens,
		Temperature: e.opts.Temperature,
	})
	if err != nil {
		log.Printf("assistant: completion failed: %v", err)
	} else {
		reply = completion.Content
		if e.opts.OnCompletion != nil {
			e.opts.OnCompletion(completion.Model, completion.InputTokens, completion.OutputTokens)
		}
	}

	metadata, _ := json.Marshal(result.QueryContext)
	if _, err := e.store.AddMessage(ctx, ConversationMessage{
		SessionID: sessionID,
		Role:      string(llm.RoleUser),
		Content:   message,
	}); err != nil {
		log.Printf("assistant: saving user message: %v", err)
	}
	if _, err := e.store.AddMessage(ctx, ConversationMessage{
		SessionID: sessionID,
		Role:      string(llm.RoleAssistant),
		Content:   reply,
		Metadata:  string(metadata),
	}); err != nil {
		log.Printf("assistant: saving assistant message: %v", err)
	}

	return &ChatResponse{
		Response:  reply,
		SessionID: sessionID,
		Context:   buildChatContext(result),
	}, nil
}
