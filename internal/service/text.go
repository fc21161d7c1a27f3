package service

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultExcerptLength 是摘要截断的默认长度。
const DefaultExcerptLength = 150

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
	)
	sanitizer     = bluemonday.UGCPolicy()
	excerptPolicy = bluemonday.StrictPolicy()
	slugPattern   = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug derives a URL-safe identifier from a title: lowercase,
// runs of non-alphanumerics collapsed to a single hyphen, no leading or
// trailing hyphen.
func GenerateSlug(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// GenerateExcerpt strips markup from content and truncates the plain
// text to length runes, appending an ellipsis when truncated.
// length <= 0 selects DefaultExcerptLength.
func GenerateExcerpt(content string, length int) string {
	if length <= 0 {
		length = DefaultExcerptLength
	}

	plain := strings.TrimSpace(excerptPolicy.Sanitize(content))
	runes := []rune(plain)
	if len(runes) <= length {
		return plain
	}
	return string(runes[:length]) + "..."
}

// RenderMarkdown converts markdown content to sanitized HTML for
// preview rendering.
func RenderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
