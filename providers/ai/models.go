package ai

/*
	##### PROVIDER INPUT #####
*/

// Request represents a single generation call: a system instruction, the
// user content, and optional generation tuning.
type Request struct {
	System string            `json:"system,omitempty"` // System instruction framing the task
	User   string            `json:"user"`             // User content, usually a rendered prompt payload
	Config *GenerationConfig `json:"generation_config,omitempty"`
}

// GenerationConfig carries per-call tuning. The zero value means "backend
// defaults" for every field.
type GenerationConfig struct {
	Temperature float32 `json:"temperature,omitempty"` // Sampling temperature. Higher => more random; lower => more deterministic.
	MaxTokens   int     `json:"max_tokens,omitempty"`  // Output-length budget for the response
	ForceJSON   bool    `json:"force_json,omitempty"`  // Ask the orchestrator to brace-extract the winning output
}

/*
	##### PROVIDER OUTPUT #####
*/

// Response represents a completed generation. Content may still be noisy
// (prose around JSON, code fences); cleanup is the caller's concern.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model,omitempty"`
}
