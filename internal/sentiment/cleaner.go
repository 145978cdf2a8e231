package sentiment

import (
	"regexp"
	"strings"
)

// Word characters are Unicode-aware: "café" keeps its accent and a whole
// "@usuário" token is removed, not just its ASCII prefix.
var (
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern = regexp.MustCompile(`[@#][\p{L}\p{N}_]+`)
	symbolPattern  = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// Clean normalizes raw input for scoring: URLs first, then @mentions and
// #hashtags, then any remaining punctuation, then whitespace collapse.
// The order matters; stripping punctuation before URLs would leave the
// scheme and host behind as bare words.
//
// Clean is pure and idempotent: already-clean text comes back unchanged.
func Clean(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = symbolPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
