// Package diarization defines the provider interface and common types
// for interacting with speaker diarization backends.
//
// It follows the provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - diarization/pyannote: Pyannote-based speaker diarization
package diarization
