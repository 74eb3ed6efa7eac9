package deck

import (
	"strings"
	"testing"
)

func TestFallbackBlogWithSummary(t *testing.T) {
	research := &Research{Summary: "First finding.\nSecond finding.\n\n- Already a bullet\nFourth.\nFifth.\nSixth never appears."}

	got := fallbackBlog("AI for retail", research)

	if !strings.HasPrefix(got, "# AI for retail\n") {
		t.Errorf("post does not open with topic heading:\n%s", got)
	}
	for _, heading := range []string{"## Executive Summary", "## Landscape", "## Opportunities", "## Risks & Governance", "## Getting Started"} {
		if !strings.Contains(got, heading) {
			t.Errorf("post missing %q", heading)
		}
	}
	if !strings.Contains(got, "- First finding.") {
		t.Errorf("summary line not bulleted:\n%s", got)
	}
	if !strings.Contains(got, "- Already a bullet") {
		t.Errorf("pre-bulleted line mangled:\n%s", got)
	}
	if strings.Contains(got, "Sixth never appears.") {
		t.Errorf("summary bullets not capped at five:\n%s", got)
	}
}

func TestFallbackBlogWithoutResearch(t *testing.T) {
	got := fallbackBlog("Topic", nil)

	if strings.Contains(got, "Executive Summary") {
		t.Errorf("generic primer should not carry an executive summary:\n%s", got)
	}
	for _, heading := range []string{"## Overview", "## Core Concepts", "## Applications", "## Rollout"} {
		if !strings.Contains(got, heading) {
			t.Errorf("primer missing %q", heading)
		}
	}
}

func TestFallbackBlogBlankSummaryIsGeneric(t *testing.T) {
	got := fallbackBlog("Topic", &Research{Summary: "   \n  "})
	if strings.Contains(got, "Executive Summary") {
		t.Errorf("blank summary should use the generic primer:\n%s", got)
	}
}

func TestResearchHint(t *testing.T) {
	t.Run("nil research", func(t *testing.T) {
		if got := researchHint(nil); got != "" {
			t.Errorf("researchHint(nil) = %q, want empty", got)
		}
	})

	t.Run("summary and sources", func(t *testing.T) {
		got := researchHint(&Research{
			Summary: "Short summary.",
			Sources: []Source{
				{Title: "A Study", URL: "https://example.com/study"},
				{Title: "", URL: ""},
			},
		})
		if !strings.HasPrefix(got, "SUMMARY:\nShort summary.") {
			t.Errorf("hint missing summary block:\n%s", got)
		}
		if !strings.Contains(got, "- A Study (https://example.com/study)") {
			t.Errorf("hint missing source line:\n%s", got)
		}
		if strings.Contains(got, "- (") {
			t.Errorf("blank source should be skipped:\n%s", got)
		}
	})

	t.Run("summary clamped", func(t *testing.T) {
		got := researchHint(&Research{Summary: strings.Repeat("x", 2000)})
		want := "SUMMARY:\n" + strings.Repeat("x", hintSummaryLimit)
		if got != want {
			t.Errorf("hint length = %d, want summary clamped to %d runes", len(got), hintSummaryLimit)
		}
	})

	t.Run("sources capped", func(t *testing.T) {
		var sources []Source
		for i := 0; i < 10; i++ {
			sources = append(sources, Source{Title: "T", URL: "https://e.io"})
		}
		got := researchHint(&Research{Sources: sources})
		if n := strings.Count(got, "- T"); n != hintSourceLimit {
			t.Errorf("got %d source lines, want %d", n, hintSourceLimit)
		}
	})
}
