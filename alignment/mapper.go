package alignment

import (
	"math"
	"sort"
	"strings"

	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
)

// MapWordsToSpeakers attributes transcript words to diarization windows.
// For each diarization segment it collects every word interval that
// overlaps it in time and concatenates their text in time order. A
// diarization segment with no overlapping words is skipped entirely; a
// word overlapping two diarization segments is attributed to both.
//
// Output order follows diarization segments sorted by start. Bounds are
// rounded to milliseconds.
func MapWordsToSpeakers(words []WordInterval, diar []diarization.Segment) []SpeakerSegment {
	if len(words) == 0 || len(diar) == 0 {
		return nil
	}

	// Sort copies for stability; callers keep their own order.
	sortedWords := make([]WordInterval, len(words))
	copy(sortedWords, words)
	sort.SliceStable(sortedWords, func(i, j int) bool {
		return sortedWords[i].Start < sortedWords[j].Start
	})

	sortedDiar := make([]diarization.Segment, len(diar))
	copy(sortedDiar, diar)
	sort.SliceStable(sortedDiar, func(i, j int) bool {
		return sortedDiar[i].Start < sortedDiar[j].Start
	})

	var aligned []SpeakerSegment
	for _, d := range sortedDiar {
		var parts []string
		for _, w := range sortedWords {
			if w.End <= d.Start || w.Start >= d.End {
				continue
			}
			parts = append(parts, w.Word)
		}
		if len(parts) == 0 {
			continue
		}

		aligned = append(aligned, SpeakerSegment{
			Start:   round3(d.Start),
			End:     round3(d.End),
			Speaker: d.Speaker,
			Text:    strings.TrimSpace(strings.Join(parts, " ")),
		})
	}

	return aligned
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
