// Package parse extracts structured data from raw generator output. Language
// models frequently wrap JSON in narrative prose, markdown code fences, or
// invalid syntax, so this package layers two recovery steps: candidate
// extraction via [FirstJSONObject], then automatic JSON repair inside
// [ParseAs], before giving up with a clear error.
//
// Callers are expected to treat a ParseAs error exactly like an extraction
// miss: fall back to a deterministic path rather than surfacing the failure.
package parse
