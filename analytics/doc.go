// Package analytics derives speaking statistics from aligned speaker
// segments: per-speaker talk time, word counts, monologue lengths and
// ratios, plus whole-conversation totals bounded by the diarization span.
// All computations are request-local and return empty results for empty
// inputs.
package analytics
