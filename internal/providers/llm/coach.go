package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

const coachTimeout = 30 * time.Second

// Coach forwards the latest user message to a remote coach agent. The agent
// keeps its own conversation state, so only the last user turn is sent.
type Coach struct {
	httpBackend
}

func NewCoach(baseURL string) *Coach {
	return &Coach{httpBackend: newHTTPBackend(baseURL, "", "", coachTimeout)}
}

type coachRequest struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (c *Coach) Chat(ctx context.Context, history []core.Message, _ []core.Tool) (core.Message, error) {
	var text string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == core.RoleUser {
			text = history[i].Content
			break
		}
	}
	if text == "" {
		return core.Message{}, fmt.Errorf("coach: no user message in history")
	}

	req := coachRequest{Message: text}
	if s, ok := core.SessionFromCtx(ctx); ok {
		req.UserID, req.SessionID = s.UserID, s.SessionID
	}
	if req.UserID == "" {
		req.UserID = uuid.NewString()
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	var result struct {
		Response string `json:"response"`
		Message  string `json:"message"`
	}
	if _, err := c.call(ctx, http.MethodPost, "/run", req, nil, &result); err != nil {
		return core.Message{}, fmt.Errorf("coach: %w", err)
	}

	reply := result.Response
	if reply == "" {
		reply = result.Message
	}
	return core.Message{Role: core.RoleAssistant, Content: reply}, nil
}
