package service

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"!!!", ""},
		{"already-a-slug", "already-a-slug"},
		{"Mixed CASE Title", "mixed-case-title"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.title); got != tc.want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestGenerateSlug_NeverHyphenAtEdges(t *testing.T) {
	for _, title := range []string{"...dots...", "- dash -", "( parens )"} {
		slug := GenerateSlug(title)
		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
			t.Fatalf("GenerateSlug(%q) = %q has a hyphen at an edge", title, slug)
		}
	}
}

func TestGenerateExcerpt(t *testing.T) {
	if got := GenerateExcerpt("<p>Hello <b>world</b></p>", 5); got != "Hello..." {
		t.Fatalf("expected %q, got %q", "Hello...", got)
	}
}

func TestGenerateExcerpt_ShortContentUntouched(t *testing.T) {
	if got := GenerateExcerpt("short text", 150); got != "short text" {
		t.Fatalf("expected unmodified text, got %q", got)
	}
}

func TestGenerateExcerpt_DefaultLength(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := GenerateExcerpt(long, 0)
	if got != strings.Repeat("a", DefaultExcerptLength)+"..." {
		t.Fatalf("expected %d chars plus ellipsis, got %d", DefaultExcerptLength, len(got))
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("unexpected html: %q", html)
	}
}

func TestRenderMarkdown_StripsScripts(t *testing.T) {
	html, err := RenderMarkdown("hello <script>alert(1)</script> world")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tag survived sanitization: %q", html)
	}
}
