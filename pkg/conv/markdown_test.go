package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "Light rain in Seattle", want: "Light rain in Seattle\n"},
		{name: "bold temperature", input: "**52°F**", want: "<strong>52°F</strong>\n"},
		{name: "italic", input: "*feels like 49°F*", want: "<em>feels like 49°F</em>\n"},
		{name: "underscore bold", input: "__Rain Jacket__", want: "<strong>Rain Jacket</strong>\n"},
		{name: "strikethrough", input: "~~Sandals~~", want: "<del>Sandals</del>\n"},
		{name: "inline code", input: "`/city Denver`", want: "<code>/city Denver</code>\n"},
		{name: "underline kept", input: "<u>UV 9</u>", want: "<u>UV 9</u>\n"},
		{
			name:  "fenced block",
			input: "```\nwind 18 mph\n```",
			want:  "<pre><code>wind 18 mph\n</code></pre>\n",
		},
		{
			name:  "blockquote",
			input: "> Stay hydrated",
			want:  "<blockquote>\nStay hydrated\n</blockquote>\n",
		},
		{
			name:  "link",
			input: "[Forecast](https://open-meteo.com)",
			want:  "<a href=\"https://open-meteo.com\">Forecast</a>\n",
		},
		{name: "heading flattened", input: "## Safety", want: "Safety\n"},
		{name: "script dropped", input: "<script>alert(1)</script>", want: "\n"},
		{
			name:  "mixed",
			input: "**Boots** and *wool socks* for `snow`",
			want:  "<strong>Boots</strong> and <em>wool socks</em> for <code>snow</code>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkdownToTelegramHTML([]byte(tt.input)))
		})
	}
}

func TestMarkdownToText(t *testing.T) {
	assert.Equal(t, "", MarkdownToText("  "))

	got := MarkdownToText("## Today in Seattle\n\n**52°F**, light rain\n\n- Rain Jacket\n- [Forecast](https://open-meteo.com)")
	assert.NotContains(t, got, "<")
	assert.Contains(t, got, "Today in Seattle")
	assert.Contains(t, got, "52°F")
	assert.Contains(t, got, "Rain Jacket")
	assert.Contains(t, got, "https://open-meteo.com")
}

func TestMarkdownToText_KeepsLines(t *testing.T) {
	got := MarkdownToText("[1] Beach day outfit?\n[2] Hiking outfit ideas?")
	assert.Contains(t, got, "Beach day outfit?\n")
	assert.Contains(t, got, "[2] Hiking outfit ideas?")
}
