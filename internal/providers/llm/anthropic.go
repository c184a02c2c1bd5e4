package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

const anthropicVersion = "2023-06-01"

type Anthropic struct {
	httpBackend
}

func NewAnthropic(apiKey, model string) *Anthropic {
	return NewAnthropicWithURL("https://api.anthropic.com", apiKey, model)
}

func NewAnthropicWithURL(baseURL, apiKey, model string) *Anthropic {
	return &Anthropic{
		httpBackend: newHTTPBackend(baseURL, apiKey, model, defaultTimeout),
	}
}

type anthropicBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

type anthropicTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// toAnthropic moves system messages into the system prompt and maps tool
// calls and results onto tool_use / tool_result blocks.
func toAnthropic(history []core.Message) (string, []anthropicMessage) {
	var system []string
	var out []anthropicMessage

	appendBlock := func(role string, b anthropicBlock) {
		if n := len(out); n > 0 && out[n-1].Role == role {
			out[n-1].Content = append(out[n-1].Content, b)
			return
		}
		out = append(out, anthropicMessage{Role: role, Content: []anthropicBlock{b}})
	}

	for _, m := range history {
		switch m.Role {
		case core.RoleSystem:
			system = append(system, m.Content)
		case core.RoleTool:
			appendBlock(core.RoleUser, anthropicBlock{Type: "tool_result", ToolUseID: m.ToolCallID, Content: m.Content})
		case core.RoleAssistant:
			if m.Content != "" {
				appendBlock(core.RoleAssistant, anthropicBlock{Type: "text", Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				input := json.RawMessage(tc.Function.Arguments)
				if !json.Valid(input) {
					input = json.RawMessage("{}")
				}
				appendBlock(core.RoleAssistant, anthropicBlock{Type: "tool_use", ID: tc.ID, Name: tc.Function.Name, Input: input})
			}
		default:
			appendBlock(core.RoleUser, anthropicBlock{Type: "text", Text: m.Content})
		}
	}
	return strings.Join(system, "\n\n"), out
}

func (a *Anthropic) Chat(ctx context.Context, history []core.Message, tools []core.Tool) (core.Message, error) {
	system, messages := toAnthropic(history)

	payload := map[string]any{
		"model":      a.model,
		"max_tokens": 4096,
		"messages":   messages,
	}
	if system != "" {
		payload["system"] = system
	}
	if len(tools) > 0 {
		at := make([]anthropicTool, 0, len(tools))
		for _, t := range tools {
			at = append(at, anthropicTool{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				InputSchema: t.Function.Parameters,
			})
		}
		payload["tools"] = at
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}

	var result struct {
		Content []anthropicBlock `json:"content"`
	}
	if _, err := a.call(ctx, http.MethodPost, "/v1/messages", payload, headers, &result); err != nil {
		return core.Message{}, err
	}

	msg := core.Message{Role: core.RoleAssistant}
	for _, c := range result.Content {
		switch c.Type {
		case "text":
			msg.Content += c.Text
		case "tool_use":
			msg.ToolCalls = append(msg.ToolCalls, core.ToolCall{
				ID:       c.ID,
				Type:     "function",
				Function: core.FunctionCall{Name: c.Name, Arguments: string(c.Input)},
			})
		}
	}
	return msg, nil
}
