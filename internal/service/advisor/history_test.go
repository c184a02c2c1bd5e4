package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

func TestSanitizeToolCalls(t *testing.T) {
	tests := []struct {
		name     string
		input    []core.Message
		expected []core.Message
	}{
		{
			name:     "empty messages",
			input:    []core.Message{},
			expected: nil,
		},
		{
			name: "normal conversation",
			input: []core.Message{
				{Role: core.RoleUser, Content: "what should I wear in Denver?"},
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}}},
				{Role: core.RoleTool, ToolCallID: "call_1", Content: `{"city":"Denver"}`},
			},
			expected: []core.Message{
				{Role: core.RoleUser, Content: "what should I wear in Denver?"},
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}}},
				{Role: core.RoleTool, ToolCallID: "call_1", Content: `{"city":"Denver"}`},
			},
		},
		{
			name: "orphaned tool result at start",
			input: []core.Message{
				{Role: core.RoleTool, ToolCallID: "call_1", Content: "result"},
				{Role: core.RoleUser, Content: "hi"},
			},
			expected: []core.Message{
				{Role: core.RoleUser, Content: "hi"},
			},
		},
		{
			name: "orphaned tool result after user message",
			input: []core.Message{
				{Role: core.RoleUser, Content: "hi"},
				{Role: core.RoleTool, ToolCallID: "call_1", Content: "result"},
			},
			expected: []core.Message{
				{Role: core.RoleUser, Content: "hi"},
			},
		},
		{
			name: "tool call id mismatch",
			input: []core.Message{
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}}},
				{Role: core.RoleTool, ToolCallID: "call_2", Content: "result"},
			},
			expected: []core.Message{
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}}},
			},
		},
		{
			name: "multiple valid tool calls",
			input: []core.Message{
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}, {ID: "call_2"}}},
				{Role: core.RoleTool, ToolCallID: "call_1", Content: "weather"},
				{Role: core.RoleTool, ToolCallID: "call_2", Content: "outfit"},
			},
			expected: []core.Message{
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}, {ID: "call_2"}}},
				{Role: core.RoleTool, ToolCallID: "call_1", Content: "weather"},
				{Role: core.RoleTool, ToolCallID: "call_2", Content: "outfit"},
			},
		},
		{
			name: "user message resets pending calls",
			input: []core.Message{
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}}},
				{Role: core.RoleUser, Content: "never mind"},
				{Role: core.RoleTool, ToolCallID: "call_1", Content: "result"},
			},
			expected: []core.Message{
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{{ID: "call_1"}}},
				{Role: core.RoleUser, Content: "never mind"},
			},
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeToolCalls(ctx, tt.input))
		})
	}
}

// wordCounter counts whitespace separated words.
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

func TestTrimToBudget(t *testing.T) {
	msgs := []core.Message{
		{Role: core.RoleUser, Content: "one two three four five six"},
		{Role: core.RoleAssistant, Content: "one two"},
		{Role: core.RoleUser, Content: "one"},
	}

	tests := []struct {
		name   string
		budget int
		want   int
	}{
		{name: "everything fits", budget: 100, want: 3},
		{name: "oldest dropped", budget: 12, want: 2},
		{name: "last message always kept", budget: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimToBudget(wordCounter{}, msgs, tt.budget)
			assert.Len(t, got, tt.want)
			assert.Equal(t, msgs[len(msgs)-1], got[len(got)-1])
		})
	}

	assert.Empty(t, trimToBudget(wordCounter{}, nil, 10))
}
