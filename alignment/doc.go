// Package alignment reconciles transcription segments and speaker
// diarization segments into a single speaker-attributed transcript.
//
// The two inputs are produced independently and carry imprecise timing, so
// the engine approximates per-word timing by uniformly slicing each
// transcript segment, maps words onto diarization windows by interval
// overlap, merges adjacent same-speaker blocks across small silence gaps,
// and attaches a [0,1] confidence score derived from the recognizer's
// acoustic metadata.
//
// Word timing is a uniform-distribution approximation, not a forced
// alignment; the trade-off buys determinism and zero model cost at the
// price of word-boundary accuracy.
//
// All failure modes are soft: malformed or missing input degrades to an
// empty result and a warning log, never an error.
package alignment
