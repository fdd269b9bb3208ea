package extract

import (
	"fmt"
	"strings"
	"testing"
)

func TestNormalizer_StripsScriptsAndStyles(t *testing.T) {
	html := `<html><head>
		<style>body { color: red; }</style>
		<script>var tracking = "should not appear";</script>
	</head><body><p>Visible content here.</p></body></html>`

	n := NewNormalizer(0, 10000)
	text := n.Normalize(html, "https://example.com/a")

	if strings.Contains(text, "tracking") || strings.Contains(text, "color: red") {
		t.Errorf("script/style content leaked into output: %q", text)
	}
	if !strings.Contains(text, "Visible content here.") {
		t.Errorf("visible content missing from output: %q", text)
	}
}

func TestNormalizer_CollapsesWhitespace(t *testing.T) {
	html := "<body><p>one</p>\n\n\t  <p>two</p></body>"

	n := NewNormalizer(0, 10000)
	text := n.Normalize(html, "")

	if strings.Contains(text, "  ") || strings.Contains(text, "\n") || strings.Contains(text, "\t") {
		t.Errorf("whitespace not collapsed: %q", text)
	}
}

func TestNormalizer_Truncates(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<body><article>")
	for i := 0; i < 3000; i++ {
		fmt.Fprintf(&sb, "<p>Sentence number %d padded out with words.</p>", i)
	}
	sb.WriteString("</article></body>")

	n := NewNormalizer(300, 10000)
	text := n.Normalize(sb.String(), "https://example.com/long")

	if len(text) > 10000 {
		t.Errorf("normalized text length = %d, want <= 10000", len(text))
	}
}

func TestTruncate_InteriorInvalidByteKeepsBudget(t *testing.T) {
	// Latin-1 bytes early in the text must not shrink the cut below the
	// budget; only a rune split at the boundary may be trimmed.
	text := "ab\xffcd" + strings.Repeat("x", 20000)

	got := truncate(text, 10000)

	if len(got) != 10000 {
		t.Errorf("truncate length = %d, want 10000", len(got))
	}
	if !strings.HasPrefix(got, "ab\xffcd") {
		t.Errorf("interior bytes altered: %q", got[:5])
	}
}

func TestTruncate_SplitRuneTrimmed(t *testing.T) {
	// Cut point lands inside the 3-byte "é"-style rune; the partial rune
	// is dropped, nothing more.
	text := strings.Repeat("a", 9999) + "€" // euro sign, 3 bytes

	got := truncate(text, 10000)

	if len(got) != 9999 {
		t.Errorf("truncate length = %d, want 9999", len(got))
	}
	if strings.ContainsRune(got, '�') {
		t.Errorf("partial rune left in output")
	}
}

func TestTruncate_CompleteRuneAtBoundaryKept(t *testing.T) {
	text := strings.Repeat("a", 9997) + "€" + "tail"

	got := truncate(text, 10000)

	if got != strings.Repeat("a", 9997)+"€" {
		t.Errorf("complete boundary rune mishandled, len = %d", len(got))
	}
}

func TestNormalizer_Usable(t *testing.T) {
	n := NewNormalizer(300, 10000)

	if n.Usable(strings.Repeat("x", 299)) {
		t.Error("Usable(299 chars) = true, want false at threshold 300")
	}
	if !n.Usable(strings.Repeat("x", 300)) {
		t.Error("Usable(300 chars) = false, want true")
	}
}

func TestNormalizer_ShortThreshold(t *testing.T) {
	// A JS shell page returns 200 with almost no server-rendered text.
	html := `<html><body><div id="root"></div><script src="/app.js"></script></body></html>`

	n := NewNormalizer(50, 10000)
	text := n.Normalize(html, "https://spa.example.com/")

	if n.Usable(text) {
		t.Errorf("JS shell output %q should not be usable", text)
	}
}

func TestNormalizer_DecodesEntitiesInFallback(t *testing.T) {
	// Too little content for readability; fallback strip must still decode.
	html := `<p>Ben &amp; Jerry</p>`

	n := NewNormalizer(0, 10000)
	text := n.Normalize(html, "")

	if !strings.Contains(text, "Ben & Jerry") {
		t.Errorf("entities not decoded: %q", text)
	}
}
