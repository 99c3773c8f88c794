// Package provider defines the base provider abstraction shared by the
// transcription and diarization backends.
//
// Backends register a named factory in a Registry; the bootstrap selects one
// by name from configuration and caches the instance.
package provider
