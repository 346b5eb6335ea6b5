package assistant

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type      string `json:"type"` // "response" or "error"
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
	Intent    string `json:"intent,omitempty"`
}

// handleWebSocket serves a persistent chat connection so the strategy bench
// can keep a conversation open through a whole event day.
func handleWebSocket(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("assistant: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("assistant: websocket read: %v", err)
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWSError(conn, "", "invalid message format")
				continue
			}
			if req.Message == "" {
				sendWSError(conn, req.SessionID, "message is required")
				continue
			}

			resp, err := engine.Ask(r.Context(), req.SessionID, req.UserID, req.Message)
			if err != nil {
				sendWSError(conn, req.SessionID, err.Error())
				continue
			}

			sendWS(conn, wsResponse{
				Type:      "response",
				SessionID: resp.SessionID,
				Content:   resp.Response,
				Intent:    resp.Context.Intent,
			})
		}
	}
}

func sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("assistant: websocket write: %v", err)
	}
}

func sendWSError(conn *websocket.Conn, sessionID, message string) {
	sendWS(conn, wsResponse{Type: "error", SessionID: sessionID, Content: message})
}
