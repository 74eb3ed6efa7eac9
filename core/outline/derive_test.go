package outline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleArticle = `# AI in Marketing

Intro paragraph that should be ignored.

## Executive Summary
- this section is reserved and skipped

## The Rise
- Brands adopt AI
- Tooling is mature
* Competition is rising

Some prose between bullets.

## Opportunities
- Smarter    search
- Recommendations
- Assisted selling
- Fourth bullet
- Fifth bullet
- Sixth bullet is dropped

## Risks
- Privacy & IP
`

func TestDeriveFromMarkdown(t *testing.T) {
	got := DeriveFromMarkdown("AI in Marketing", sampleArticle)

	if got.Sections[0].Title != "AI in Marketing" {
		t.Errorf("Sections[0].Title = %q, want topic", got.Sections[0].Title)
	}

	want := []Slide{
		{Title: "The Rise", Bullets: []string{"Brands adopt AI", "Tooling is mature", "Competition is rising"}},
		{Title: "Opportunities", Bullets: []string{"Smarter search", "Recommendations", "Assisted selling", "Fourth bullet", "Fifth bullet"}},
		{Title: "Risks", Bullets: []string{"Privacy & IP"}},
	}
	for i, w := range want {
		if diff := cmp.Diff(w, got.Sections[i+1]); diff != "" {
			t.Errorf("Sections[%d] mismatch (-want +got):\n%s", i+1, diff)
		}
	}

	// Only three headings survive, so the tail is padded from the pool.
	pool := defaultPool()
	for i := 4; i < 6; i++ {
		if diff := cmp.Diff(pool[i-1], got.Sections[i]); diff != "" {
			t.Errorf("Sections[%d] should be pool filler (-want +got):\n%s", i, diff)
		}
	}
}

func TestDeriveFromMarkdownKeepsFirstHeading(t *testing.T) {
	got := DeriveFromMarkdown("Topic", "## Alpha\n- a1\n\n## Beta\n- b1\n")

	if got.Sections[1].Title != "Alpha" {
		t.Errorf("Sections[1].Title = %q, want Alpha", got.Sections[1].Title)
	}
	if got.Sections[2].Title != "Beta" {
		t.Errorf("Sections[2].Title = %q, want Beta", got.Sections[2].Title)
	}

	// Two headings fill slides 2 and 3; padding resumes at the matching
	// pool positions, starting with pool[2].
	pool := defaultPool()
	for i := 3; i < 6; i++ {
		if diff := cmp.Diff(pool[i-1], got.Sections[i]); diff != "" {
			t.Errorf("Sections[%d] should be pool filler (-want +got):\n%s", i, diff)
		}
	}
}

func TestDeriveFromMarkdownSkipsExecutiveSummary(t *testing.T) {
	got := DeriveFromMarkdown("Topic", "## Executive Summary\n- hidden\n\n## Real Section\n- visible\n")

	for _, s := range got.Sections {
		if strings.EqualFold(s.Title, "executive summary") {
			t.Errorf("reserved heading leaked into outline: %+v", s)
		}
	}
	if got.Sections[1].Title != "Real Section" {
		t.Errorf("Sections[1].Title = %q, want Real Section", got.Sections[1].Title)
	}
}

func TestDeriveFromMarkdownEmptyBody(t *testing.T) {
	got := DeriveFromMarkdown("Topic", "")

	if len(got.Sections) != 6 {
		t.Fatalf("len(Sections) = %d, want 6", len(got.Sections))
	}
	// No headings at all: everything past the topic comes from the pool.
	pool := defaultPool()
	for i := 1; i < 6; i++ {
		if diff := cmp.Diff(pool[i-1], got.Sections[i]); diff != "" {
			t.Errorf("Sections[%d] mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestDeriveFromMarkdownCollapsesWhitespaceAndClamps(t *testing.T) {
	long := strings.Repeat("w ", 100) // collapses to 199 chars
	got := DeriveFromMarkdown("Topic", "## Section\n- "+long+"\n")

	b := got.Sections[1].Bullets[0]
	if strings.Contains(b, "  ") {
		t.Errorf("whitespace runs should collapse: %q", b)
	}
	if len(b) > 120 {
		t.Errorf("bullet length = %d, want <= 120", len(b))
	}
}

func TestDeriveFromHTML(t *testing.T) {
	html := `<h1>Doc</h1>
<h2>First Section</h2>
<ul><li>alpha</li><li>beta</li></ul>
<h2>Second Section</h2>
<ul><li>gamma</li></ul>`

	got := DeriveFromHTML("Topic", html)

	if got.Sections[1].Title != "First Section" {
		t.Errorf("Sections[1].Title = %q, want First Section", got.Sections[1].Title)
	}
	if len(got.Sections[1].Bullets) != 2 {
		t.Errorf("Sections[1].Bullets = %v, want two items", got.Sections[1].Bullets)
	}
	if got.Sections[2].Title != "Second Section" {
		t.Errorf("Sections[2].Title = %q, want Second Section", got.Sections[2].Title)
	}
}

func TestDeriveFromHTMLGarbageInputStaysTotal(t *testing.T) {
	got := DeriveFromHTML("Topic", "<<<<not really html>>>>")

	if len(got.Sections) != 6 {
		t.Fatalf("len(Sections) = %d, want 6", len(got.Sections))
	}
	if got.Sections[0].Title != "Topic" {
		t.Errorf("Sections[0].Title = %q, want Topic", got.Sections[0].Title)
	}
}
