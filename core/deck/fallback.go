package deck

import (
	"fmt"
	"strings"

	"github.com/graphdeck/graphdeck/internal/utils"
)

const (
	hintSummaryLimit = 800
	hintSourceLimit  = 6
	hintTitleLimit   = 100
	hintURLLimit     = 160
)

// fallbackBlog produces a usable markdown post without any backend. When a
// research summary exists its first lines seed the Executive Summary;
// otherwise the post is a generic primer for the topic.
func fallbackBlog(topic string, research *Research) string {
	summary := ""
	if research != nil {
		summary = strings.TrimSpace(research.Summary)
	}

	lines := []string{"# " + topic, ""}
	if summary != "" {
		lines = append(lines, "## Executive Summary")
		lines = append(lines, summaryBullets(summary, 5)...)
		lines = append(lines,
			"",
			"## Landscape",
			"- Current state & drivers",
			"- Data/tooling prerequisites",
			"- Metrics that matter",
			"",
			"## Opportunities",
			"- Quick wins (< 90 days)",
			"- Medium bets (quarterly)",
			"- Longer bets (platform/ops)",
			"",
			"## Risks & Governance",
			"- Quality, safety, privacy",
			"- Human-in-the-loop checks",
			"- Change management & training",
			"",
			"## Getting Started",
			"- Pick one pilot and KPI",
			"- Baseline, iterate weekly",
			"- Document wins to scale",
		)
	} else {
		lines = append(lines,
			"## Overview",
			"This primer outlines value, use cases, and a phased rollout plan.",
			"",
			"## Core Concepts",
			"- Where AI helps most",
			"- Data readiness",
			"- Guardrails",
			"",
			"## Applications",
			"- Quick wins",
			"- Medium bets",
			"- Long bets",
			"",
			"## Rollout",
			"- Pilot, measure, iterate",
			"- Enable team",
			"- Scale",
		)
	}
	return strings.Join(lines, "\n")
}

// summaryBullets turns the first max non-empty lines of a summary into
// markdown bullets, keeping lines that already carry a dash as-is.
func summaryBullets(summary string, max int) []string {
	var out []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "- ") {
			line = "- " + line
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}

// researchHint flattens research into a compact plain-text block suitable for
// embedding in a diagram prompt. It returns "" when there is nothing to say.
func researchHint(research *Research) string {
	if research == nil {
		return ""
	}
	var parts []string
	if s := strings.TrimSpace(research.Summary); s != "" {
		parts = append(parts, "SUMMARY:\n"+utils.Clamp(s, hintSummaryLimit))
	}
	for i, src := range research.Sources {
		if i == hintSourceLimit {
			break
		}
		title := utils.Clamp(strings.TrimSpace(src.Title), hintTitleLimit)
		link := utils.Clamp(strings.TrimSpace(src.URL), hintURLLimit)
		if title == "" && link == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("- %s (%s)", title, link))
	}
	return strings.Join(parts, "\n")
}
