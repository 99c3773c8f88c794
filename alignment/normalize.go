package alignment

import (
	"encoding/json"
	"strings"

	"github.com/HAMZAJAWED12/voiceiq-AI/transcription"
)

// Defaults for recognition metadata absent from a segment record.
const (
	defaultAvgLogProb   = -1.0
	defaultNoSpeechProb = 0.0
)

// ExtractSegments canonicalizes recognition output into an ordered sequence
// of TextSegments. Accepted shapes, detected at this boundary only:
//
//   - a flat list of segment records
//   - an object with a "segments" list
//   - an object with a "meta" object containing a "segments" list
//
// Any other shape yields an empty sequence. A record missing start or end is
// dropped; text is trimmed; missing avg_logprob defaults to -1.0 and missing
// no_speech_prob to 0.0. An empty result means alignment is not possible,
// not that extraction failed.
func ExtractSegments(result any) []TextSegment {
	records := segmentRecords(result)
	if len(records) == 0 {
		return nil
	}

	norm := make([]TextSegment, 0, len(records))
	for _, rec := range records {
		start, okStart := floatField(rec, "start")
		end, okEnd := floatField(rec, "end")
		if !okStart || !okEnd {
			continue
		}

		text := ""
		if v, ok := rec["text"].(string); ok {
			text = strings.TrimSpace(v)
		}

		avgLogProb := defaultAvgLogProb
		if v, ok := floatField(rec, "avg_logprob"); ok {
			avgLogProb = v
		}
		noSpeechProb := defaultNoSpeechProb
		if v, ok := floatField(rec, "no_speech_prob"); ok {
			noSpeechProb = v
		}

		norm = append(norm, TextSegment{
			Start:        start,
			End:          end,
			Text:         text,
			AvgLogProb:   avgLogProb,
			NoSpeechProb: noSpeechProb,
		})
	}
	return norm
}

// FromResponse converts a typed transcription response into the normalized
// segment sequence, applying the same text-trimming policy.
func FromResponse(resp *transcription.TranscriptionResponse) []TextSegment {
	if resp == nil || len(resp.Segments) == 0 {
		return nil
	}
	norm := make([]TextSegment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		norm = append(norm, TextSegment{
			Start:        seg.Start,
			End:          seg.End,
			Text:         strings.TrimSpace(seg.Text),
			AvgLogProb:   seg.AvgLogProb,
			NoSpeechProb: seg.NoSpeechProb,
		})
	}
	return norm
}

// segmentRecords resolves the accepted input shapes to a list of raw records.
func segmentRecords(result any) []map[string]any {
	switch v := result.(type) {
	case []map[string]any:
		return v
	case []any:
		return toRecordList(v)
	case map[string]any:
		if list, ok := recordList(v["segments"]); ok {
			return list
		}
		if meta, ok := v["meta"].(map[string]any); ok {
			if list, ok := recordList(meta["segments"]); ok {
				return list
			}
		}
	}
	return nil
}

func recordList(v any) ([]map[string]any, bool) {
	switch list := v.(type) {
	case []map[string]any:
		return list, true
	case []any:
		return toRecordList(list), true
	}
	return nil, false
}

func toRecordList(items []any) []map[string]any {
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}

// floatField reads a numeric field, coercing the numeric types JSON
// decoding can produce.
func floatField(rec map[string]any, key string) (float64, bool) {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
