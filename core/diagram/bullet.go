package diagram

import "strings"

// BulletKind classifies a bullet line by its structural pattern.
type BulletKind string

const (
	// KindPipeline is a chain of steps separated by "->".
	KindPipeline BulletKind = "pipeline"
	// KindHeading is a heading followed by a colon-delimited list of items.
	KindHeading BulletKind = "heading"
	// KindDecision is a decision point, rendered as a diamond.
	KindDecision BulletKind = "decision"
	// KindPlain is any bullet that matches no other pattern.
	KindPlain BulletKind = "plain"
)

// Bullet is one line of slide content together with its computed
// classification. The classification is derived once by [ClassifyBullet] and
// never mutated afterwards.
type Bullet struct {
	Raw  string
	Kind BulletKind

	// Steps holds the ordered chain segments when Kind is KindPipeline.
	Steps []string

	// Head and Items hold the heading and its sub-items when Kind is KindHeading.
	Head  string
	Items []string
}

// ClassifyBullet derives the structural pattern of a single bullet line.
// Detection order matters: a decision takes priority over pipeline and
// heading detection, and a pipeline takes priority over a heading. Input that
// matches nothing resolves to KindPlain, so classification never fails.
func ClassifyBullet(text string) Bullet {
	trimmed := strings.TrimSpace(text)
	b := Bullet{Raw: trimmed, Kind: KindPlain}

	if strings.Contains(trimmed, "?") || strings.HasPrefix(strings.ToLower(trimmed), "decision") {
		b.Kind = KindDecision
		return b
	}

	if strings.Contains(trimmed, "->") {
		var steps []string
		for _, part := range strings.Split(trimmed, "->") {
			if p := strings.TrimSpace(part); p != "" {
				steps = append(steps, p)
			}
		}
		// A single surviving segment is still treated as a one-node chain.
		if len(steps) > 0 {
			b.Kind = KindPipeline
			b.Steps = steps
			return b
		}
	}

	if head, tail, found := strings.Cut(trimmed, ":"); found {
		if items := splitItems(tail); len(items) > 0 {
			b.Kind = KindHeading
			b.Head = strings.TrimSpace(head)
			b.Items = items
			return b
		}
	}

	return b
}

// splitItems breaks the tail of a heading bullet on the supported item
// separators (comma, semicolon, bullet glyph, pipe), dropping empty segments.
func splitItems(tail string) []string {
	parts := strings.FieldsFunc(tail, func(r rune) bool {
		return r == ',' || r == ';' || r == '•' || r == '|'
	})

	var items []string
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}
