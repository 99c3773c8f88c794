package alignment

import (
	"encoding/json"
	"testing"

	"github.com/HAMZAJAWED12/voiceiq-AI/transcription"
)

func TestExtractSegmentsShapes(t *testing.T) {
	record := map[string]any{
		"start": 0.0, "end": 1.5, "text": " hello world ",
		"avg_logprob": -0.25, "no_speech_prob": 0.02,
	}

	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"flat list", []any{record}, 1},
		{"segments field", map[string]any{"segments": []any{record}}, 1},
		{"nested under meta", map[string]any{"meta": map[string]any{"segments": []any{record}}}, 1},
		{"typed record list", []map[string]any{record}, 1},
		{"unrecognized shape", map[string]any{"words": []any{record}}, 0},
		{"scalar", 42, 0},
		{"nil", nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractSegments(tc.input)
			if len(got) != tc.want {
				t.Fatalf("expected %d segments, got %d", tc.want, len(got))
			}
			if tc.want == 1 {
				seg := got[0]
				if seg.Text != "hello world" {
					t.Errorf("expected trimmed text, got %q", seg.Text)
				}
				if seg.AvgLogProb != -0.25 || seg.NoSpeechProb != 0.02 {
					t.Errorf("metadata not carried: %+v", seg)
				}
			}
		})
	}
}

func TestExtractSegmentsDropsRecordsWithoutBounds(t *testing.T) {
	input := []any{
		map[string]any{"start": 0.0, "text": "no end"},
		map[string]any{"end": 2.0, "text": "no start"},
		map[string]any{"start": 0.0, "end": 2.0, "text": "kept"},
	}
	got := ExtractSegments(input)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if got[0].Text != "kept" {
		t.Errorf("expected the bounded record, got %q", got[0].Text)
	}
}

func TestExtractSegmentsMetadataDefaults(t *testing.T) {
	got := ExtractSegments([]any{
		map[string]any{"start": 0.0, "end": 1.0, "text": "hi"},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if got[0].AvgLogProb != -1.0 {
		t.Errorf("expected default avg_logprob -1.0, got %v", got[0].AvgLogProb)
	}
	if got[0].NoSpeechProb != 0.0 {
		t.Errorf("expected default no_speech_prob 0.0, got %v", got[0].NoSpeechProb)
	}
}

func TestExtractSegmentsFromDecodedJSON(t *testing.T) {
	payload := `{"segments":[{"start":1,"end":2,"text":"one"},{"start":"bad","end":3,"text":"two"}]}`
	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := ExtractSegments(decoded)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment (integer bounds coerced, string bounds dropped), got %d", len(got))
	}
	if got[0].Start != 1.0 || got[0].End != 2.0 {
		t.Errorf("expected bounds 1..2, got %v..%v", got[0].Start, got[0].End)
	}
}

func TestFromResponse(t *testing.T) {
	resp := &transcription.TranscriptionResponse{
		Segments: []transcription.Segment{
			{Start: 0, End: 1.5, Text: " hello ", AvgLogProb: -0.3, NoSpeechProb: 0.1},
		},
	}
	got := FromResponse(resp)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if got[0].Text != "hello" {
		t.Errorf("expected trimmed text, got %q", got[0].Text)
	}

	if FromResponse(nil) != nil {
		t.Error("expected nil for nil response")
	}
}
