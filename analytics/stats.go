package analytics

import (
	"strings"

	"github.com/HAMZAJAWED12/voiceiq-AI/alignment"
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
)

// SpeakerStats aggregates one speaker's activity across the conversation.
type SpeakerStats struct {
	TotalSpeakingTime float64 `json:"total_speaking_time"`
	SegmentCount      int     `json:"segment_count"`
	TotalWords        int     `json:"total_words"`
	LongestMonologue  float64 `json:"longest_monologue"`
	FirstSpokeAt      float64 `json:"first_spoke_at"`
	LastSpokeAt       float64 `json:"last_spoke_at"`
	AvgSegmentLength  float64 `json:"avg_segment_length"`
	WordsPerMinute    float64 `json:"words_per_minute"`
	SpeakingTimeRatio float64 `json:"speaking_time_ratio"`
	WordCountRatio    float64 `json:"word_count_ratio"`
}

// ConversationStats describes the conversation as a whole. Bounds come
// from the diarization span, which may cover silence the transcript does
// not.
type ConversationStats struct {
	TotalDuration     float64 `json:"total_duration"`
	TotalSegments     int     `json:"total_segments"`
	TotalWords        int     `json:"total_words"`
	AvgTurnLength     float64 `json:"avg_turn_length"`
	SpeakerCount      int     `json:"speaker_count"`
	ConversationStart float64 `json:"conversation_start"`
	ConversationEnd   float64 `json:"conversation_end"`
}

// ComputeSpeakerStats builds per-speaker statistics keyed by the raw
// speaker label. Empty input yields an empty map.
func ComputeSpeakerStats(segments []alignment.SpeakerSegment) map[string]SpeakerStats {
	stats := make(map[string]SpeakerStats)
	if len(segments) == 0 {
		return stats
	}

	for _, seg := range segments {
		s, seen := stats[seg.Speaker]
		duration := seg.End - seg.Start
		words := len(strings.Fields(seg.Text))

		s.TotalSpeakingTime += duration
		s.SegmentCount++
		s.TotalWords += words
		if duration > s.LongestMonologue {
			s.LongestMonologue = duration
		}
		if !seen {
			s.FirstSpokeAt = seg.Start
			s.LastSpokeAt = seg.End
		} else {
			if seg.Start < s.FirstSpokeAt {
				s.FirstSpokeAt = seg.Start
			}
			if seg.End > s.LastSpokeAt {
				s.LastSpokeAt = seg.End
			}
		}
		stats[seg.Speaker] = s
	}

	var totalTalkTime float64
	var totalWords int
	for _, s := range stats {
		totalTalkTime += s.TotalSpeakingTime
		totalWords += s.TotalWords
	}

	for spk, s := range stats {
		s.AvgSegmentLength = s.TotalSpeakingTime / float64(maxInt(s.SegmentCount, 1))
		if s.TotalSpeakingTime > 0 {
			s.WordsPerMinute = float64(s.TotalWords) / s.TotalSpeakingTime * 60
		}
		s.SpeakingTimeRatio = s.TotalSpeakingTime / maxFloat(totalTalkTime, 1.0)
		s.WordCountRatio = float64(s.TotalWords) / maxFloat(float64(totalWords), 1.0)
		stats[spk] = s
	}
	return stats
}

// ComputeConversationStats builds whole-conversation statistics. Either
// input being empty yields nil.
func ComputeConversationStats(segments []alignment.SpeakerSegment, diar []diarization.Segment) *ConversationStats {
	if len(segments) == 0 || len(diar) == 0 {
		return nil
	}

	start := diar[0].Start
	end := diar[len(diar)-1].End

	var totalWords int
	speakers := make(map[string]struct{})
	for _, seg := range segments {
		totalWords += len(strings.Fields(seg.Text))
		speakers[seg.Speaker] = struct{}{}
	}

	return &ConversationStats{
		TotalDuration:     end - start,
		TotalSegments:     len(segments),
		TotalWords:        totalWords,
		AvgTurnLength:     (end - start) / float64(maxInt(len(segments), 1)),
		SpeakerCount:      len(speakers),
		ConversationStart: start,
		ConversationEnd:   end,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
