// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends.
//
// It follows the provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/whisper: faster-whisper HTTP sidecar
package transcription
