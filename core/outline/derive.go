package outline

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/graphdeck/graphdeck/internal/utils"
)

var (
	headingPattern = regexp.MustCompile(`(?m)^## +(.+)$`)
	bulletPattern  = regexp.MustCompile(`(?m)^[-*]\s+(.+)$`)
	spaceRun       = regexp.MustCompile(`\s+`)
)

// reservedHeading names sections that never become slides of their own.
const reservedHeading = "executive summary"

// DeriveFromMarkdown extracts a candidate outline from an article body:
// level-2 headings become slide titles in document order, and up to five
// bullet lines under each heading become that slide's bullets, whitespace
// collapsed and clamped to the bullet length cap. A document with no usable
// headings falls through to the default pool inside [Normalize].
//
// Slot 0 is reserved for the title slide that [Normalize] installs, so the
// first heading of the article becomes slide 2, not slide 1.
func DeriveFromMarkdown(topic, markdown string) Outline {
	candidates := append([]Slide{{}}, candidatesFromMarkdown(markdown)...)
	return Normalize(topic, candidates)
}

func candidatesFromMarkdown(markdown string) []Slide {
	headings := headingPattern.FindAllStringSubmatchIndex(markdown, -1)

	var sections []Slide
	for i, m := range headings {
		title := strings.TrimSpace(markdown[m[2]:m[3]])
		if title == "" || strings.ToLower(title) == reservedHeading {
			continue
		}

		blockEnd := len(markdown)
		if i+1 < len(headings) {
			blockEnd = headings[i+1][0]
		}
		block := markdown[m[1]:blockEnd]

		var bullets []string
		for _, bm := range bulletPattern.FindAllStringSubmatch(block, -1) {
			text := strings.TrimSpace(spaceRun.ReplaceAllString(bm[1], " "))
			if text == "" {
				continue
			}
			bullets = append(bullets, utils.Clamp(text, maxBulletLen))
			if len(bullets) == maxBullets {
				break
			}
		}

		sections = append(sections, Slide{Title: utils.Clamp(title, maxTitleLen), Bullets: bullets})
	}

	return sections
}

// DeriveFromHTML converts an HTML article to markdown and derives an outline
// from the result. Conversion failure degrades to an empty candidate list,
// so the function stays total: the worst case is an outline padded entirely
// from the default pool.
func DeriveFromHTML(topic, html string) Outline {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return DeriveFromMarkdown(topic, "")
	}
	return DeriveFromMarkdown(topic, markdown)
}
