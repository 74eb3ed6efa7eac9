package deck

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/graphdeck/graphdeck/core/diagram"
	"github.com/graphdeck/graphdeck/core/generate"
	"github.com/graphdeck/graphdeck/core/outline"
	"github.com/graphdeck/graphdeck/core/parse"
	"github.com/graphdeck/graphdeck/internal/utils"
	"github.com/graphdeck/graphdeck/providers/ai"
)

/*
	##### RESEARCH #####
*/

// Source is a single research reference, usually a page found while
// investigating the topic.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Research is optional grounding material for generation: a prose summary
// plus the sources it was drawn from. A nil *Research is always accepted.
type Research struct {
	Summary string   `json:"summary"`
	Sources []Source `json:"sources"`
}

/*
	##### CLIENT #####
*/

// Options configures a [Client]. The zero value is a sensible default:
// generation enabled, full budgets, registration-order backend selection.
type Options struct {
	// Fast trades output quality for latency: lower temperatures, smaller
	// token budgets, tighter context clipping, and diagrams compiled
	// deterministically instead of generated.
	Fast bool

	// DisableGeneration skips backends entirely. Every method except
	// Summarize then answers from its deterministic fallback.
	DisableGeneration bool

	// Prefer names backends to try first, in order. Unknown names are
	// ignored; remaining backends follow in registration order.
	Prefer []string

	// Logger receives fallback decisions at debug level. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is the top-level pipeline API. Construct it with [New]; the zero
// value is not usable.
type Client struct {
	gen    *generate.Orchestrator
	opts   Options
	logger *slog.Logger
}

// New builds a Client over an orchestrator. opts is copied; mutating it
// afterwards has no effect.
func New(gen *generate.Orchestrator, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{gen: gen, opts: opts, logger: logger}
}

// temperature picks the sampling temperature for the current mode.
func (c *Client) temperature(normal, fast float32) float32 {
	if c.opts.Fast {
		return fast
	}
	return normal
}

// budget picks a token or character budget for the current mode.
func (c *Client) budget(normal, fast int) int {
	if c.opts.Fast {
		return fast
	}
	return normal
}

/*
	##### DIAGRAM #####
*/

const (
	diagramTopicBullets = 6
	minBlogLen          = 200
	maxSummarySources   = 10
	sourceTitleLimit    = 120
)

// Diagram returns a Mermaid flowchart for a slide. In fast mode, with
// generation disabled, or whenever the generated output does not look like a
// flowchart, the deterministic compiler takes over. The result always starts
// with "flowchart TD".
func (c *Client) Diagram(ctx context.Context, title string, bullets []string, research *Research) string {
	if c.opts.DisableGeneration || c.opts.Fast {
		return diagram.Compile(title, bullets)
	}
	raw, err := c.generateMermaid(ctx, diagramTopic(title, bullets), research)
	if err != nil {
		c.logger.DebugContext(ctx, "diagram generation failed, compiling from bullets", slog.String("error", err.Error()))
		return diagram.Compile(title, bullets)
	}
	raw = strings.TrimSpace(raw)
	if !diagram.LooksLikeFlowchart(raw) {
		c.logger.DebugContext(ctx, "diagram output not a flowchart, compiling from bullets")
		return diagram.Compile(title, bullets)
	}
	return raw
}

// TopicDiagram returns a Mermaid flowchart for a bare topic with no slide
// content, falling back to the static proposal shape.
func (c *Client) TopicDiagram(ctx context.Context, topic string, research *Research) string {
	if c.opts.DisableGeneration || c.opts.Fast {
		return diagram.Propose(topic)
	}
	raw, err := c.generateMermaid(ctx, topic, research)
	if err != nil {
		c.logger.DebugContext(ctx, "topic diagram generation failed, proposing static shape", slog.String("error", err.Error()))
		return diagram.Propose(topic)
	}
	raw = strings.TrimSpace(raw)
	if !diagram.LooksLikeFlowchart(raw) {
		c.logger.DebugContext(ctx, "topic diagram output not a flowchart, proposing static shape")
		return diagram.Propose(topic)
	}
	return raw
}

func (c *Client) generateMermaid(ctx context.Context, topic string, research *Research) (string, error) {
	payload := struct {
		Topic string `json:"topic"`
		Hint  string `json:"hint,omitempty"`
	}{Topic: topic, Hint: researchHint(research)}
	return c.gen.Generate(ctx, ai.Request{
		System: mermaidSystem,
		User:   mermaidPromptPreamble + utils.JSONToString(payload, true),
		Config: &ai.GenerationConfig{Temperature: 0.2, MaxTokens: 700},
	}, c.opts.Prefer...)
}

// diagramTopic folds a slide title and its leading bullets into a single
// topic line for the diagram prompt.
func diagramTopic(title string, bullets []string) string {
	kept := bullets
	if len(kept) > diagramTopicBullets {
		kept = kept[:diagramTopicBullets]
	}
	if len(kept) == 0 {
		return title
	}
	return title + " - " + strings.Join(kept, "; ")
}

/*
	##### OUTLINE #####
*/

// Outline produces a normalized six-slide outline for a topic, grounded in
// the blog text. Generation failures, malformed JSON, and an empty blog all
// degrade to deriving the outline from the blog's own markdown structure.
func (c *Client) Outline(ctx context.Context, topic, blog string) outline.Outline {
	blog = strings.TrimSpace(blog)
	if c.opts.DisableGeneration || blog == "" {
		return outline.DeriveFromMarkdown(topic, blog)
	}

	clipped := utils.Clamp(blog, c.budget(1600, 900))
	raw, err := c.gen.Generate(ctx, ai.Request{
		System: outlineSystem,
		User:   outlinePrompt(topic, clipped),
		Config: &ai.GenerationConfig{
			Temperature: c.temperature(0.3, 0.25),
			MaxTokens:   c.budget(700, 450),
			ForceJSON:   true,
		},
	}, c.opts.Prefer...)
	if err != nil {
		c.logger.DebugContext(ctx, "outline generation failed, deriving from blog", slog.String("error", err.Error()))
		return outline.DeriveFromMarkdown(topic, blog)
	}

	candidate, err := parse.ParseAs[outline.Outline](raw)
	if err != nil {
		c.logger.DebugContext(ctx, "outline output unusable, deriving from blog", slog.String("error", err.Error()))
		return outline.DeriveFromMarkdown(topic, blog)
	}
	return outline.Normalize(topic, candidate.Sections)
}

/*
	##### BLOG #####
*/

// Blog writes a markdown post for the topic. Output shorter than a couple of
// sentences is treated as a failed generation; the deterministic fallback
// post is returned instead, seeded from the research summary when present.
func (c *Client) Blog(ctx context.Context, topic string, research *Research) string {
	if c.opts.DisableGeneration {
		return fallbackBlog(topic, research)
	}

	researchContext := ""
	if research != nil {
		researchContext = utils.Clamp(strings.TrimSpace(research.Summary), c.budget(1200, 700))
	}

	raw, err := c.gen.Generate(ctx, ai.Request{
		System: blogSystem,
		User:   blogPrompt(topic, researchContext, c.opts.Fast),
		Config: &ai.GenerationConfig{
			Temperature: c.temperature(0.4, 0.2),
			MaxTokens:   c.budget(1200, 550),
		},
	}, c.opts.Prefer...)
	if err == nil && len(strings.TrimSpace(raw)) > minBlogLen {
		return raw
	}
	if err != nil {
		c.logger.DebugContext(ctx, "blog generation failed, using fallback post", slog.String("error", err.Error()))
	} else {
		c.logger.DebugContext(ctx, "blog output too short, using fallback post", slog.Int("length", len(strings.TrimSpace(raw))))
	}
	return fallbackBlog(topic, research)
}

/*
	##### SUMMARY #####
*/

// Summarize writes a cited research summary from a source table. Unlike the
// other pipeline methods there is no deterministic fallback worth returning,
// so backend failure surfaces as an error.
func (c *Client) Summarize(ctx context.Context, topic string, sources []Source) (string, error) {
	payload := struct {
		Topic   string      `json:"topic"`
		Sources []sourceRow `json:"sources"`
	}{Topic: topic, Sources: sourceTable(sources)}

	return c.gen.Generate(ctx, ai.Request{
		System: summarySystem,
		User:   summaryInstructions + utils.JSONToString(payload, true),
		Config: &ai.GenerationConfig{
			Temperature: c.temperature(0.3, 0.2),
			MaxTokens:   c.budget(1200, 900),
		},
	}, c.opts.Prefer...)
}

// sourceRow is one entry of the numbered table handed to the summary prompt.
// IDs are 1-based strings so inline citations read as [1], [2].
type sourceRow struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Domain string `json:"domain"`
}

func sourceTable(sources []Source) []sourceRow {
	n := len(sources)
	if n > maxSummarySources {
		n = maxSummarySources
	}
	rows := make([]sourceRow, 0, n)
	for i := 0; i < n; i++ {
		s := sources[i]
		rows = append(rows, sourceRow{
			ID:     strconv.Itoa(i + 1),
			Title:  utils.Clamp(strings.TrimSpace(s.Title), sourceTitleLimit),
			URL:    s.URL,
			Domain: shortenDomain(s.URL),
		})
	}
	return rows
}

// shortenDomain reduces a URL to its host with any leading "www." removed.
// Unparseable input comes back unchanged so the table never loses a source.
func shortenDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}
