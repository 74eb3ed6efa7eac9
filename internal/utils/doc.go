// Package utils provides shared low-level string helpers used throughout the
// graphdeck internals: JSON stringification for prompt payloads and log
// output, length-limited truncation with an omission marker, and hard rune
// clamping for prompt context and outline fields.
//
// Key entry points: [JSONToString] for safe JSON rendering, [TruncateString]
// for log-friendly shortening, and [Clamp] for exact length caps.
package utils
