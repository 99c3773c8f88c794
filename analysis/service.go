package analysis

import (
	"github.com/HAMZAJAWED12/voiceiq-AI/alignment"
	"github.com/HAMZAJAWED12/voiceiq-AI/analytics"
	"github.com/HAMZAJAWED12/voiceiq-AI/conversation"
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
	"github.com/HAMZAJAWED12/voiceiq-AI/insight"
	"github.com/HAMZAJAWED12/voiceiq-AI/logger"
)

// TimelineEntry is the flat turn projection consumed by UI charts.
// Speaker carries the inferred role, matching what the conversation view
// shows.
type TimelineEntry struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Intent  string  `json:"intent"`
}

// Result is the full analysis of one audio file.
type Result struct {
	Transcript        string                            `json:"transcript"`
	SpeakerSegments   []alignment.SpeakerSegment        `json:"speaker_segments"`
	Conversation      []conversation.Turn               `json:"conversation"`
	SpeakerStats      map[string]analytics.SpeakerStats `json:"speaker_stats"`
	ConversationStats *analytics.ConversationStats      `json:"conversation_stats,omitempty"`
	IntentsSummary    map[string]int                    `json:"intents_summary"`
	Flags             []insight.Flag                    `json:"flags,omitempty"`
	FactChecks        []insight.FactCheck               `json:"fact_checks,omitempty"`
	Timeline          []TimelineEntry                   `json:"timeline,omitempty"`
}

// Service wires the pipeline stages together.
type Service struct {
	aligner *alignment.Aligner
	builder *conversation.Builder
	log     *logger.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithAligner replaces the default aligner.
func WithAligner(a *alignment.Aligner) Option {
	return func(s *Service) { s.aligner = a }
}

// WithBuilder replaces the default conversation builder.
func WithBuilder(b *conversation.Builder) Option {
	return func(s *Service) { s.builder = b }
}

// NewService creates a Service with default pipeline stages.
func NewService(opts ...Option) *Service {
	s := &Service{
		aligner: alignment.NewAligner(),
		builder: conversation.NewBuilder(),
		log:     logger.WithComponent("analysis"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Analyze runs every pipeline stage over normalized recognition segments
// and diarization output. Degenerate input produces a Result with empty
// collections, never an error.
func (s *Service) Analyze(transcript string, asr []alignment.TextSegment, diar []diarization.Segment) *Result {
	segments := s.aligner.Align(asr, diar)
	turns := s.builder.Build(segments)
	annotated := conversation.AnnotateIntents(turns)

	result := &Result{
		Transcript:        transcript,
		SpeakerSegments:   segments,
		Conversation:      annotated,
		SpeakerStats:      analytics.ComputeSpeakerStats(segments),
		ConversationStats: analytics.ComputeConversationStats(segments, diar),
		IntentsSummary:    conversation.SummarizeIntents(annotated),
		Flags:             insight.GenerateFlags(annotated),
		FactChecks:        insight.ExtractFactChecks(transcript),
		Timeline:          buildTimeline(annotated),
	}

	s.log.Info("analysis complete", logger.Fields(
		"speaker_segments", len(result.SpeakerSegments),
		"turns", len(result.Conversation),
		"flags", len(result.Flags),
		"fact_checks", len(result.FactChecks),
	))
	return result
}

// AnalyzeRaw is Analyze over unnormalized recognition output.
func (s *Service) AnalyzeRaw(transcript string, asrResult any, diar []diarization.Segment) *Result {
	return s.Analyze(transcript, alignment.ExtractSegments(asrResult), diar)
}

func buildTimeline(turns []conversation.Turn) []TimelineEntry {
	if len(turns) == 0 {
		return nil
	}
	timeline := make([]TimelineEntry, len(turns))
	for i, turn := range turns {
		intent := turn.Intent
		if intent == "" {
			intent = conversation.IntentOther
		}
		timeline[i] = TimelineEntry{
			Start:   turn.Start,
			End:     turn.End,
			Speaker: turn.Role,
			Text:    turn.Text,
			Intent:  intent,
		}
	}
	return timeline
}
