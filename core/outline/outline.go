package outline

import (
	"strings"

	"github.com/graphdeck/graphdeck/internal/utils"
)

const (
	// SlideCount is the fixed number of sections in every outline.
	SlideCount = 6

	maxTitleLen  = 70
	maxBullets   = 5
	maxBulletLen = 120
)

// Slide is one section of an outline: a short title and up to five bullets.
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Outline is the persisted interchange artifact of the pipeline. SlideCount
// is always 6 and Sections always holds exactly 6 slides; Sections[0] carries
// the topic as its title and never has bullets.
type Outline struct {
	SlideCount int     `json:"slide_count"`
	Sections   []Slide `json:"sections"`
}

// defaultPool returns the fixed filler slides used to pad short candidate
// lists. A fresh copy is returned on every call so callers can never corrupt
// the pool.
func defaultPool() []Slide {
	return []Slide{
		{Title: "Context & Opportunity", Bullets: []string{"Why now", "Where value concentrates", "Impact on CX & ops"}},
		{Title: "Core Concepts", Bullets: []string{"Key idea 1", "Key idea 2", "Key idea 3"}},
		{Title: "Process / Flow", Bullets: []string{"Step 1 → Step 2 → Step 3", "Decision points", "Metrics: quality, speed, cost"}},
		{Title: "Use Cases", Bullets: []string{"Quick wins", "Medium bets", "Long bets"}},
		{Title: "Next Steps", Bullets: []string{"Pick pilot + KPI", "Baseline & iterate", "Scale what works"}},
	}
}

// Normalize forces any candidate list into a valid Outline. The candidate
// list is truncated to six entries and padded from the default pool, where
// the pool entry for section i is pool[i-1] so a short candidate list always
// gets the same filler slides in the same order. Section 0 is then
// overwritten with the topic and an empty bullet list, and every field is
// clamped to its cap.
//
// Normalize is pure and total: it never mutates candidates and there is no
// input for which it fails.
func Normalize(topic string, candidates []Slide) Outline {
	sections := make([]Slide, 0, SlideCount)
	for _, s := range candidates {
		if len(sections) == SlideCount {
			break
		}
		sections = append(sections, s)
	}

	pool := defaultPool()
	for len(sections) < SlideCount {
		if len(sections) == 0 {
			// Placeholder; replaced by the topic slide below.
			sections = append(sections, Slide{})
			continue
		}
		sections = append(sections, pool[len(sections)-1])
	}

	out := Outline{SlideCount: SlideCount, Sections: make([]Slide, SlideCount)}
	for i, s := range sections {
		title := utils.Clamp(strings.TrimSpace(s.Title), maxTitleLen)
		bullets := []string{}
		if i > 0 {
			for _, b := range s.Bullets {
				if len(bullets) == maxBullets {
					break
				}
				bullets = append(bullets, utils.Clamp(strings.TrimSpace(b), maxBulletLen))
			}
		}
		out.Sections[i] = Slide{Title: title, Bullets: bullets}
	}

	out.Sections[0] = Slide{
		Title:   utils.Clamp(strings.TrimSpace(topic), maxTitleLen),
		Bullets: []string{},
	}

	return out
}
