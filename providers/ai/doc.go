// Package ai defines the shared, backend-agnostic types and the uniform
// contract every text-generation backend must satisfy. Concrete backends
// (hosted APIs, local model servers) implement [Provider] and are registered
// with the orchestrator at startup; the rest of the codebase never knows
// which service is actually answering.
//
// Request data flows through [Request] with optional tuning in
// [GenerationConfig]; backends answer with [Response]. [StaticProvider] is a
// deterministic in-memory implementation for tests and examples.
package ai
