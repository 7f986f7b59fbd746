// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TranscriptStore: loads the transcript corpus at startup
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Generator: the LLM completion service. Without it, asking questions
//     is disabled but direct search still works.
//   - LinkBuilder: builds external lookup URLs for citations. Without it,
//     sources carry no URL.
//   - PromptStore: customisable prompt templates. Without it, embedded
//     defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
