package diagram

import "strings"

// LooksLikeFlowchart reports whether s plausibly begins a top-down Mermaid
// flowchart: after trimming and lowercasing, the text must start with
// "flowchart" and mention "td" within its first 40 characters.
//
// This is an intentionally cheap gate for generator output, not a syntax
// parser. It reliably rejects prose, but an accepted string may still be
// refused by a downstream renderer.
func LooksLikeFlowchart(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(t, "flowchart") {
		return false
	}
	if len(t) > 40 {
		t = t[:40]
	}
	return strings.Contains(t, "td")
}
