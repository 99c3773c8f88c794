package alignment

import (
	"math"
	"sort"
)

// neutralConfidence is assigned when no recognition segment overlaps a block.
const neutralConfidence = 0.5

// AttachConfidence returns a copy of blocks with a confidence score
// attached to each. The score comes from the recognition segment with the
// largest temporal overlap against the block's span; ties break to the
// earliest-starting segment. A block with no overlapping recognition
// segment gets the neutral 0.5.
func AttachConfidence(blocks []SpeakerSegment, asr []TextSegment) []SpeakerSegment {
	if len(blocks) == 0 {
		return nil
	}

	// Pre-sort so the strictly-greater comparison below makes the
	// earliest-start candidate win overlap ties deterministically.
	sorted := make([]TextSegment, len(asr))
	copy(sorted, asr)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	scored := make([]SpeakerSegment, len(blocks))
	for i, block := range blocks {
		scored[i] = block
		if best, ok := bestOverlapping(sorted, block.Start, block.End); ok {
			scored[i].Confidence = segmentConfidence(best)
		} else {
			scored[i].Confidence = neutralConfidence
		}
	}
	return scored
}

// bestOverlapping finds the recognition segment with maximum overlap
// against [start, end). Returns false when nothing overlaps.
func bestOverlapping(sortedASR []TextSegment, start, end float64) (TextSegment, bool) {
	var best TextSegment
	bestOverlap := 0.0
	found := false

	for _, seg := range sortedASR {
		ov := overlap(start, end, seg.Start, seg.End)
		if ov > bestOverlap {
			bestOverlap = ov
			best = seg
			found = true
		}
	}
	return best, found
}

// segmentConfidence maps recognition metadata to a [0,1] score: a logistic
// squash of the (typically negative) average log-probability, discounted by
// the probability the segment contains no speech at all.
func segmentConfidence(seg TextSegment) float64 {
	conf := sigmoid(seg.AvgLogProb) * (1.0 - seg.NoSpeechProb)
	return clamp01(conf)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	ov := math.Min(aEnd, bEnd) - math.Max(aStart, bStart)
	if ov < 0 {
		return 0
	}
	return ov
}
