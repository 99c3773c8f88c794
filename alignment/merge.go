package alignment

import (
	"sort"
	"strings"
)

// DefaultMaxGap is the largest silence, in seconds, across which two
// adjacent same-speaker segments are still considered one block.
const DefaultMaxGap = 0.75

// MergeBlocks merges adjacent same-speaker segments separated by a gap in
// [0, maxGap] seconds into single blocks with concatenated text. Input is
// re-sorted by start first and never mutated; merging an already-merged
// sequence returns it unchanged.
func MergeBlocks(segments []SpeakerSegment, maxGap float64) []SpeakerSegment {
	if len(segments) == 0 {
		return nil
	}

	sorted := make([]SpeakerSegment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := []SpeakerSegment{sorted[0]}
	for _, seg := range sorted[1:] {
		last := &merged[len(merged)-1]
		gap := seg.Start - last.End

		if seg.Speaker == last.Speaker && gap >= 0 && gap <= maxGap {
			last.End = seg.End
			last.Text = strings.TrimSpace(last.Text + " " + seg.Text)
		} else {
			merged = append(merged, seg)
		}
	}

	return merged
}
