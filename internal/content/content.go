package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	policy = bluemonday.UGCPolicy()

	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
)

// Sanitize removes unsafe HTML from the input string using a strict policy.
// It is used for sanitizing user inputs like usernames and message text.
func Sanitize(input string) string {
	return policy.Sanitize(input)
}

// Render converts message markdown to sanitized HTML.
func Render(input string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(input), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}

// ExtractMentions returns the usernames mentioned in the message text: the
// content is split on single spaces and every token starting with "@" yields
// the token with the marker stripped, verbatim. A bare "@" yields an empty
// string. Matching is case-sensitive and the result is nil-free (an empty
// slice when nothing is mentioned).
func ExtractMentions(text string) []string {
	mentions := []string{}
	for _, word := range strings.Split(text, " ") {
		if strings.HasPrefix(word, "@") {
			mentions = append(mentions, word[1:])
		}
	}
	return mentions
}
