package alignment

import (
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
	"github.com/HAMZAJAWED12/voiceiq-AI/logger"
)

// Aligner runs the full alignment pipeline: word slicing, speaker mapping,
// block merging, and confidence attachment. It holds no per-request state,
// so one Aligner serves any number of concurrent requests.
type Aligner struct {
	maxGap float64
	log    *logger.Logger
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithMaxGap overrides the merge gap threshold in seconds.
func WithMaxGap(gap float64) Option {
	return func(a *Aligner) {
		if gap > 0 {
			a.maxGap = gap
		}
	}
}

// WithLogger sets the logger used for degradation warnings.
func WithLogger(log *logger.Logger) Option {
	return func(a *Aligner) { a.log = log }
}

// NewAligner creates an Aligner with the default 0.75s merge gap.
func NewAligner(opts ...Option) *Aligner {
	a := &Aligner{
		maxGap: DefaultMaxGap,
		log:    logger.WithComponent("alignment"),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// MaxGap returns the configured merge gap threshold.
func (a *Aligner) MaxGap() float64 { return a.maxGap }

// Align reconciles normalized recognition segments with diarization
// segments into the merged, confidence-scored speaker timeline. Either
// input being empty means alignment is not possible; the result is then
// empty and a warning is logged, never an error.
func (a *Aligner) Align(asr []TextSegment, diar []diarization.Segment) []SpeakerSegment {
	if len(asr) == 0 || len(diar) == 0 {
		a.log.Warn("alignment skipped: missing recognition or diarization segments",
			logger.Fields("asr_segments", len(asr), "diarization_segments", len(diar)))
		return nil
	}

	words := SliceWords(asr)
	raw := MapWordsToSpeakers(words, diar)
	merged := MergeBlocks(raw, a.maxGap)
	scored := AttachConfidence(merged, asr)

	a.log.Info("alignment complete", logger.Fields(
		"asr_segments", len(asr),
		"diarization_segments", len(diar),
		"speaker_segments", len(scored),
	))
	return scored
}

// AlignRaw is Align over unnormalized recognition output; the input shape
// is detected and canonicalized at this boundary.
func (a *Aligner) AlignRaw(result any, diar []diarization.Segment) []SpeakerSegment {
	return a.Align(ExtractSegments(result), diar)
}
