// Package deck is the top-level content pipeline: blog text, six-slide
// outlines, and Mermaid diagrams for a topic, produced through a generation
// orchestrator with deterministic fallbacks behind every call. With the sole
// exception of [Client.Summarize], every method on [Client] is total: when
// all backends fail or return garbage, the deterministic compiler or deriver
// takes over and the caller never sees an error.
//
// All behavioural switches (fast mode, disabling generation, backend
// preference) live in an explicit [Options] value handed to [New]; the
// package reads no ambient process state.
package deck
