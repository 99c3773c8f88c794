package alignment

import (
	"testing"

	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
)

func TestAlignTwoSpeakerConversation(t *testing.T) {
	asr := []TextSegment{
		{Start: 0.0, End: 1.5, Text: "hello world", AvgLogProb: -0.2, NoSpeechProb: 0.01},
		{Start: 1.6, End: 3.5, Text: "how are you", AvgLogProb: -0.3, NoSpeechProb: 0.02},
	}
	diar := []diarization.Segment{
		{Speaker: "SPEAKER_00", Start: 0.0, End: 1.5},
		{Speaker: "SPEAKER_01", Start: 1.6, End: 3.5},
	}

	got := NewAligner().Align(asr, diar)
	if len(got) != 2 {
		t.Fatalf("expected 2 speaker segments, got %d", len(got))
	}
	if got[0].Speaker != "SPEAKER_00" || got[0].Text != "hello world" {
		t.Errorf("unexpected first segment: %+v", got[0])
	}
	if got[1].Speaker != "SPEAKER_01" || got[1].Text != "how are you" {
		t.Errorf("unexpected second segment: %+v", got[1])
	}
	for i, seg := range got {
		if seg.Confidence <= 0 || seg.Confidence > 1 {
			t.Errorf("segment %d confidence out of range: %v", i, seg.Confidence)
		}
	}
}

func TestAlignMergesSameSpeakerAcrossWindows(t *testing.T) {
	asr := []TextSegment{
		{Start: 0.0, End: 2.0, Text: "first part second part"},
	}
	diar := []diarization.Segment{
		{Speaker: "SPEAKER_00", Start: 0.0, End: 1.0},
		{Speaker: "SPEAKER_00", Start: 1.0, End: 2.0},
	}

	got := NewAligner().Align(asr, diar)
	if len(got) != 1 {
		t.Fatalf("expected adjacent same-speaker windows merged, got %d segments", len(got))
	}
	if got[0].Start != 0.0 || got[0].End != 2.0 {
		t.Errorf("expected merged span [0,2], got [%v,%v]", got[0].Start, got[0].End)
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	a := NewAligner()
	asr := []TextSegment{{Start: 0, End: 1, Text: "hi"}}
	diar := []diarization.Segment{{Speaker: "SPEAKER_00", Start: 0, End: 1}}

	if got := a.Align(nil, diar); got != nil {
		t.Errorf("expected nil for empty recognition input, got %+v", got)
	}
	if got := a.Align(asr, nil); got != nil {
		t.Errorf("expected nil for empty diarization input, got %+v", got)
	}
	if got := a.Align(nil, nil); got != nil {
		t.Errorf("expected nil for both empty, got %+v", got)
	}
}

func TestAlignRawDetectsShape(t *testing.T) {
	raw := map[string]any{
		"segments": []any{
			map[string]any{"start": 0.0, "end": 1.0, "text": "hi there"},
		},
	}
	diar := []diarization.Segment{{Speaker: "SPEAKER_00", Start: 0.0, End: 1.0}}

	got := NewAligner().AlignRaw(raw, diar)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if got[0].Text != "hi there" {
		t.Errorf("unexpected text %q", got[0].Text)
	}
}

func TestAlignRawMalformedInput(t *testing.T) {
	diar := []diarization.Segment{{Speaker: "SPEAKER_00", Start: 0.0, End: 1.0}}
	if got := NewAligner().AlignRaw("not a transcript", diar); got != nil {
		t.Errorf("expected nil for unrecognized input shape, got %+v", got)
	}
}

func TestNewAlignerOptions(t *testing.T) {
	a := NewAligner(WithMaxGap(2.0))
	if a.MaxGap() != 2.0 {
		t.Errorf("expected max gap 2.0, got %v", a.MaxGap())
	}

	// Non-positive overrides are ignored.
	a = NewAligner(WithMaxGap(-1.0))
	if a.MaxGap() != DefaultMaxGap {
		t.Errorf("expected default max gap, got %v", a.MaxGap())
	}
}
