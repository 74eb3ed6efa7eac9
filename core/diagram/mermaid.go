package diagram

import (
	"fmt"
	"strings"
)

// The three style declarations are reproduced verbatim in every emission so
// that identical graphs always yield byte-identical diagram text.
const (
	headerLine    = "flowchart TD"
	classDefTitle = `  classDef title fill:#202a45,stroke:#6b86ff,stroke-width:1px,color:#e8ecff,rx:8,ry:8`
	classDefBlock = `  classDef block fill:#121a2b,stroke:#6b86ff,stroke-width:1px,color:#e8ecff,rx:8,ry:8`
	classDefWarn  = `  classDef warn  fill:#2b2312,stroke:#fbbf24,color:#ffeab6,rx:8,ry:8`
)

// RenderMermaid serialises a Graph as Mermaid flowchart text: one header
// line, the three fixed classDef lines, every node declaration in insertion
// order, then every edge in insertion order, with a single trailing newline.
func RenderMermaid(g Graph) string {
	var b strings.Builder

	b.WriteString(headerLine + "\n")
	b.WriteString(classDefTitle + "\n")
	b.WriteString(classDefBlock + "\n")
	b.WriteString(classDefWarn + "\n")

	for _, node := range g.Nodes {
		open, closing := "[", "]"
		if node.Shape == ShapeDiamond {
			open, closing = "{", "}"
		}
		fmt.Fprintf(&b, "  %s%s\"%s\"%s:::%s\n", node.ID, open, node.Label, closing, node.Class)
	}

	for _, edge := range g.Edges {
		fmt.Fprintf(&b, "  %s --> %s\n", edge.From, edge.To)
	}

	return b.String()
}

// Compile turns a title and raw bullet lines into diagram text in one call.
// Blank bullet lines are dropped before classification so positions count
// only real content.
func Compile(title string, rawBullets []string) string {
	var bullets []Bullet
	for _, raw := range rawBullets {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		bullets = append(bullets, ClassifyBullet(raw))
	}
	return RenderMermaid(BuildGraph(title, bullets))
}

// Propose emits a fixed topic-only diagram for callers that have a topic but
// no bullet content yet. The layout is static; only the root label changes.
func Propose(topic string) string {
	topic = strings.ReplaceAll(strings.TrimSpace(topic), "\n", " ")
	if topic == "" {
		topic = "Topic"
	}
	if len(topic) > 100 {
		topic = topic[:100]
	}

	g := Graph{
		Nodes: []Node{
			{ID: "A", Label: escapeLabel(topic), Shape: ShapeRectangle, Class: ClassTitle},
			{ID: "B", Label: escapeLabel("Key Areas"), Shape: ShapeRectangle, Class: ClassBlock},
			{ID: "C", Label: escapeLabel("Research"), Shape: ShapeRectangle, Class: ClassBlock},
			{ID: "D", Label: escapeLabel("Data & Trends"), Shape: ShapeRectangle, Class: ClassBlock},
			{ID: "E", Label: escapeLabel("Use Cases"), Shape: ShapeRectangle, Class: ClassBlock},
			{ID: "F", Label: escapeLabel("Sources & Notes"), Shape: ShapeRectangle, Class: ClassBlock},
			{ID: "G", Label: escapeLabel("Signals / Benchmarks"), Shape: ShapeRectangle, Class: ClassBlock},
			{ID: "H", Label: escapeLabel("Impact / Outcomes"), Shape: ShapeRectangle, Class: ClassBlock},
		},
		Edges: []Edge{
			{From: "A", To: "B"},
			{From: "B", To: "C"},
			{From: "B", To: "D"},
			{From: "B", To: "E"},
			{From: "C", To: "F"},
			{From: "D", To: "G"},
			{From: "E", To: "H"},
		},
	}

	return RenderMermaid(g)
}
