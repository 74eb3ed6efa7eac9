// Package outline enforces the fixed shape of a six-slide talk outline and
// derives candidate outlines from long-form text. [Normalize] is the single
// authority on outline structure: whatever the candidate list looks like,
// the result always has exactly six sections, the first section always
// carries the topic with no bullets, and every title and bullet respects its
// length cap. [DeriveFromMarkdown] and [DeriveFromHTML] build candidate
// lists from article bodies for the deterministic path.
//
// Every function in this package is pure and total: no input shape can make
// it fail, which is what lets callers use it as the last line of defence
// behind unreliable generative backends.
package outline
