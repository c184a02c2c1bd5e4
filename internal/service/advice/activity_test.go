package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyActivity(t *testing.T) {
	tests := []struct {
		text     string
		category string
		movement string
	}{
		{"office meeting", "work", "low"},
		{"Going hiking", "sports", "high"},
		{"wedding reception", "formal", "low"},
		{"coffee with friends", "casual", "medium"},
		{"", "casual", "medium"},
		// "work" is declared before "workout"
		{"workout", "work", "low"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ClassifyActivity(tt.text)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.movement, got.Movement)
			assert.NotEmpty(t, got.Notes)
		})
	}
}
