// Package diagram compiles short structured slide text (a title plus a list
// of bullet lines) into a Mermaid flowchart description. The compiler is
// deterministic and total: every input, including empty or unclassifiable
// bullets, produces a well-formed diagram, which makes it safe to use as the
// fallback path whenever a generative backend fails or returns garbage.
//
// The pipeline is [ClassifyBullet] → [BuildGraph] → [RenderMermaid], wrapped
// by [Compile] for the common case. [LooksLikeFlowchart] is the cheap
// acceptance gate applied to generator output, and [Propose] emits a fixed
// topic-only diagram when no bullet content is available at all.
package diagram
