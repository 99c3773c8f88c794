package analysis

import (
	"testing"

	"github.com/HAMZAJAWED12/voiceiq-AI/alignment"
	"github.com/HAMZAJAWED12/voiceiq-AI/conversation"
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
)

func twoSpeakerFixture() ([]alignment.TextSegment, []diarization.Segment) {
	asr := []alignment.TextSegment{
		{Start: 0.0, End: 1.5, Text: "hello world", AvgLogProb: -0.2, NoSpeechProb: 0.01},
		{Start: 1.6, End: 3.5, Text: "how are you", AvgLogProb: -0.3, NoSpeechProb: 0.02},
	}
	diar := []diarization.Segment{
		{Speaker: "SPEAKER_00", Start: 0.0, End: 1.5},
		{Speaker: "SPEAKER_01", Start: 1.6, End: 3.5},
	}
	return asr, diar
}

func TestAnalyzeFullPipeline(t *testing.T) {
	asr, diar := twoSpeakerFixture()
	result := NewService().Analyze("hello world how are you", asr, diar)

	if len(result.SpeakerSegments) != 2 {
		t.Fatalf("expected 2 speaker segments, got %d", len(result.SpeakerSegments))
	}
	if len(result.Conversation) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(result.Conversation))
	}
	if result.Conversation[0].Intent != conversation.IntentGreeting {
		t.Errorf("expected greeting intent, got %q", result.Conversation[0].Intent)
	}
	if len(result.SpeakerStats) != 2 {
		t.Errorf("expected stats for 2 speakers, got %d", len(result.SpeakerStats))
	}
	if result.ConversationStats == nil || result.ConversationStats.SpeakerCount != 2 {
		t.Errorf("unexpected conversation stats: %+v", result.ConversationStats)
	}
	if result.IntentsSummary[conversation.IntentGreeting] != 1 {
		t.Errorf("unexpected intents summary: %v", result.IntentsSummary)
	}
	if len(result.Timeline) != 2 {
		t.Fatalf("expected 2 timeline entries, got %d", len(result.Timeline))
	}
	if result.Timeline[0].Speaker != result.Conversation[0].Role {
		t.Errorf("timeline speaker should carry the role, got %q", result.Timeline[0].Speaker)
	}
}

func TestAnalyzeEmptyDiarization(t *testing.T) {
	asr, _ := twoSpeakerFixture()
	result := NewService().Analyze("hello world how are you", asr, nil)

	if len(result.SpeakerSegments) != 0 {
		t.Errorf("expected no speaker segments, got %+v", result.SpeakerSegments)
	}
	if len(result.Conversation) != 0 {
		t.Errorf("expected no turns, got %+v", result.Conversation)
	}
	if result.ConversationStats != nil {
		t.Errorf("expected nil conversation stats, got %+v", result.ConversationStats)
	}
	if len(result.SpeakerStats) != 0 {
		t.Errorf("expected empty speaker stats, got %v", result.SpeakerStats)
	}
	// Transcript-level extraction still runs.
	if result.Transcript == "" {
		t.Error("transcript should be carried through")
	}
}

func TestAnalyzeFactChecksFromTranscript(t *testing.T) {
	asr, diar := twoSpeakerFixture()
	result := NewService().Analyze("he owes me 50 dollars, see https://example.com", asr, diar)

	if len(result.FactChecks) != 2 {
		t.Fatalf("expected url + number candidates, got %+v", result.FactChecks)
	}
}

func TestAnalyzeRawShapeDetection(t *testing.T) {
	_, diar := twoSpeakerFixture()
	raw := map[string]any{
		"meta": map[string]any{
			"segments": []any{
				map[string]any{"start": 0.0, "end": 1.5, "text": "hello world"},
			},
		},
	}

	result := NewService().AnalyzeRaw("hello world", raw, diar)
	if len(result.SpeakerSegments) != 1 {
		t.Fatalf("expected 1 speaker segment, got %d", len(result.SpeakerSegments))
	}
}

func TestAnalyzeCustomStages(t *testing.T) {
	asr := []alignment.TextSegment{
		{Start: 0.0, End: 1.0, Text: "a"},
		{Start: 3.0, End: 4.0, Text: "b"},
	}
	diar := []diarization.Segment{
		{Speaker: "SPEAKER_00", Start: 0.0, End: 1.0},
		{Speaker: "SPEAKER_00", Start: 3.0, End: 4.0},
	}

	svc := NewService(
		WithAligner(alignment.NewAligner(alignment.WithMaxGap(2.5))),
		WithBuilder(conversation.NewBuilder(conversation.WithTurnGap(2.5))),
	)
	result := svc.Analyze("a b", asr, diar)
	if len(result.SpeakerSegments) != 1 {
		t.Errorf("expected widened merge gap to apply, got %d segments", len(result.SpeakerSegments))
	}
}
