package deck

import (
	"fmt"
	"strings"

	"github.com/graphdeck/graphdeck/internal/utils"
)

/*
	##### BLOG #####
*/

const blogSystem = "You are a professional content writer who creates engaging, well-structured blog posts."

const blogPromptTemplate = `Create a comprehensive blog post about the TOPIC that tells a complete story.

Use this RESEARCH SUMMARY as grounding context (if any):
---
%s
---

The blog should:
- Start with an engaging introduction that hooks the reader
- Develop key concepts progressively and connect ideas logically
- End with actionable insights and conclusions
- Be 800-1200 words total%s
- Use a storytelling approach with clear headings (Markdown)

TOPIC: %s`

func blogPrompt(topic, researchContext string, fast bool) string {
	if researchContext == "" {
		researchContext = "(none provided)"
	}
	lengthHint := ""
	if fast {
		lengthHint = " (or 350-500 words when brevity is requested)"
	}
	return fmt.Sprintf(blogPromptTemplate, researchContext, lengthHint, topic)
}

/*
	##### OUTLINE #####
*/

const outlineSystem = "Return STRICT JSON. Design cohesive 6-slide outlines that tell a story."

const outlinePromptTemplate = `You design slide outlines. Return STRICT JSON only, matching this schema:
{
  "slide_count": 6,
  "sections": [
    {"title": "string", "bullets": ["string", ...]}
  ]
}

Rules:
- Exactly 6 sections.
- Section 1 is the title slide: its title is the topic and its bullets are [].
- Sections 2..6 each have a short title (max 70 chars) and 3-5 bullets (max 120 chars each).
- Bullets are concrete and specific to the BLOG below, not generic filler.
- No markdown, no commentary, no trailing text. JSON only.

NOW PRODUCE THE JSON FOR:
{
  "topic": %s,
  "blog": %s
}`

func outlinePrompt(topic, blog string) string {
	if strings.TrimSpace(blog) == "" {
		blog = "(empty blog)"
	}
	return fmt.Sprintf(outlinePromptTemplate, utils.JSONToString(topic), utils.JSONToString(blog))
}

/*
	##### MERMAID #####
*/

const mermaidSystem = "You output only Mermaid flowchart code. No prose, no fences, no explanations. " +
	"Start with 'flowchart TD'. Use short node ids and double-quoted labels."

const mermaidPromptPreamble = "Create a small Mermaid flowchart (6-10 nodes) that captures the structure of the payload below. " +
	"Return ONLY Mermaid.\n\n"

/*
	##### SUMMARY #####
*/

const summarySystem = "You craft precise, cited summaries."

const summaryInstructions = `You are a careful researcher. Write a concise, multi-paragraph summary of the TOPIC using the SOURCES table.
- Keep it tight, fact-focused, and practical for a small-business audience.
- Cite inline like [1], [2] using the id column when you borrow a claim.
- End with 3-5 specific, fast-ROI recommendations.
INPUT (JSON):
`
