package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions     = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	textExtensions = extensions | parser.HardLineBreak
	htmlFlags      = html.CommonFlags | html.HrefTargetBlank
	tgPolicy       = bluemonday.NewPolicy()
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

func render(md []byte, ext parser.Extensions) []byte {
	p := parser.NewWithExtensions(ext)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	return markdown.Render(p.Parse(md), renderer)
}

func MarkdownToTelegramHTML(md []byte) string {
	return string(tgPolicy.SanitizeBytes(render(md, extensions)))
}

// MarkdownToText renders Markdown for a plain terminal. It falls back to the
// raw input if the HTML cannot be converted.
func MarkdownToText(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	text, err := html2text.FromString(string(render([]byte(md), textExtensions)), html2text.Options{
		OmitLinks:    false,
		PrettyTables: true,
	})
	if err != nil {
		return md
	}
	return text
}
