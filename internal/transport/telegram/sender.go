package telegram

import (
	"context"
	"strings"
	"unicode/utf8"

	tele "gopkg.in/telebot.v3"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/conv"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

// maxTelegramMsgLen leaves room under the 4096 limit for entities.
const maxTelegramMsgLen = 4000

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks.
// Extra options such as keyboards are attached to the last chunk only.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string, extra ...any) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	chunks := splitHTML(html, maxTelegramMsgLen)
	for i, chunk := range chunks {
		opts := []any{tele.ModeHTML}
		if i == len(chunks)-1 {
			opts = append(opts, extra...)
		}

		if _, err := s.bot.Send(to, chunk, opts...); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitHTML cuts text into chunks of at most limit bytes. It cuts at the
// last paragraph break, then the last newline, in the final two thirds of
// the window, and otherwise at a rune boundary so emoji stay intact.
func splitHTML(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		cut := splitPoint(text, limit)
		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" || len(chunks) == 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

func splitPoint(text string, limit int) int {
	window := text[:limit]
	for _, sep := range []string{"\n\n", "\n"} {
		if i := strings.LastIndex(window, sep); i > limit/3 {
			return i
		}
	}
	for cut := limit; cut > 0; cut-- {
		if utf8.RuneStart(text[cut]) {
			return cut
		}
	}
	return limit
}
