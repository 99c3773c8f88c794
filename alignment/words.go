package alignment

import "strings"

// minDuration guards against zero or inverted segment spans before the
// per-word division.
const minDuration = 1e-6

// SliceWords approximates word timings by uniformly slicing each segment's
// duration across its whitespace-delimited words. For a segment with N
// words the result is N contiguous, non-overlapping intervals covering the
// full span; the final word's end is pinned to the segment end so
// floating-point slicing cannot drift past it. Segments with empty text
// are skipped.
func SliceWords(segments []TextSegment) []WordInterval {
	var words []WordInterval

	for _, seg := range segments {
		fields := strings.Fields(seg.Text)
		if len(fields) == 0 {
			continue
		}

		duration := seg.End - seg.Start
		if duration < minDuration {
			duration = minDuration
		}
		wordDur := duration / float64(len(fields))

		for i, w := range fields {
			start := seg.Start + float64(i)*wordDur
			end := seg.Start + float64(i+1)*wordDur
			if i == len(fields)-1 {
				end = seg.End
			}
			words = append(words, WordInterval{
				Start: start,
				End:   end,
				Word:  w,
			})
		}
	}

	return words
}
