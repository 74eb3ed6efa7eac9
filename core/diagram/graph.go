package diagram

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Shape selects the Mermaid node outline.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeDiamond   Shape = "diamond"
)

// StyleClass names one of the three fixed classDef styles.
type StyleClass string

const (
	ClassTitle StyleClass = "title"
	ClassBlock StyleClass = "block"
	ClassWarn  StyleClass = "warn"
)

// Node is a single diagram node. The ID is stable for a given input: it is
// derived from the node's role, its bullet position, and a slug of its text.
type Node struct {
	ID    string
	Label string
	Shape Shape
	Class StyleClass
}

// Edge is a directed connection between two nodes by ID.
type Edge struct {
	From string
	To   string
}

// Graph is the intermediate representation between bullet classification and
// Mermaid rendering. Nodes[0] is always the root (the slide title); every
// other node is reachable from it, and node IDs are unique by construction.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// BuildGraph assembles a forest rooted at the slide title from classified
// bullets. Bullet positions are 1-based and preserved in node IDs. The
// builder is total: any input, including an empty bullet list, yields a
// valid graph.
func BuildGraph(title string, bullets []Bullet) Graph {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Slide"
	}

	root := Node{
		ID:    "T_" + slug(title),
		Label: escapeLabel(title),
		Shape: ShapeRectangle,
		Class: ClassTitle,
	}
	g := Graph{Nodes: []Node{root}}

	for i, b := range bullets {
		base := fmt.Sprintf("B%d_%s", i+1, slug(b.Raw))

		switch b.Kind {
		case KindDecision:
			g.Nodes = append(g.Nodes, Node{ID: base, Label: escapeLabel(b.Raw), Shape: ShapeDiamond, Class: ClassWarn})
			g.Edges = append(g.Edges, Edge{From: root.ID, To: base})

		case KindPipeline:
			prev := root.ID
			for j, step := range b.Steps {
				id := fmt.Sprintf("%s_S%d", base, j)
				g.Nodes = append(g.Nodes, Node{ID: id, Label: escapeLabel(step), Shape: ShapeRectangle, Class: ClassBlock})
				g.Edges = append(g.Edges, Edge{From: prev, To: id})
				prev = id
			}

		case KindHeading:
			head := base + "_H"
			g.Nodes = append(g.Nodes, Node{ID: head, Label: escapeLabel(b.Head), Shape: ShapeRectangle, Class: ClassBlock})
			g.Edges = append(g.Edges, Edge{From: root.ID, To: head})
			prev := head
			for j, item := range b.Items {
				id := fmt.Sprintf("%s_I%d", base, j+1)
				g.Nodes = append(g.Nodes, Node{ID: id, Label: escapeLabel(item), Shape: ShapeRectangle, Class: ClassBlock})
				g.Edges = append(g.Edges, Edge{From: prev, To: id})
				prev = id
			}

		default:
			g.Nodes = append(g.Nodes, Node{ID: base, Label: escapeLabel(b.Raw), Shape: ShapeRectangle, Class: ClassBlock})
			g.Edges = append(g.Edges, Edge{From: root.ID, To: base})
		}
	}

	return g
}

var nonAlnumRun = regexp.MustCompile(`[^A-Za-z0-9]+`)

// slug normalises text into an identifier fragment: non-alphanumeric runs
// collapse to a single underscore, the result is capped at 40 characters,
// and empty results become the literal placeholder "N".
func slug(s string) string {
	s = nonAlnumRun.ReplaceAllString(strings.TrimSpace(s), "_")
	if len(s) > 40 {
		s = s[:40]
	}
	if s == "" {
		return "N"
	}
	return s
}

// escapeLabel trims and HTML-escapes display text before it is stored on a node.
func escapeLabel(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
