package alignment

import (
	"math"
	"strings"
	"testing"
)

func TestSliceWordsPartitionsSegment(t *testing.T) {
	seg := TextSegment{Start: 1.0, End: 4.0, Text: "one two three"}
	words := SliceWords([]TextSegment{seg})

	if len(words) != 3 {
		t.Fatalf("expected 3 word intervals, got %d", len(words))
	}
	if words[0].Start != seg.Start {
		t.Errorf("first word should start at segment start, got %v", words[0].Start)
	}
	if words[len(words)-1].End != seg.End {
		t.Errorf("last word should end exactly at segment end, got %v", words[len(words)-1].End)
	}
	for i := 1; i < len(words); i++ {
		if math.Abs(words[i].Start-words[i-1].End) > 1e-9 {
			t.Errorf("intervals %d and %d not contiguous: %v vs %v", i-1, i, words[i-1].End, words[i].Start)
		}
	}
	for i, w := range words {
		if w.End < w.Start {
			t.Errorf("interval %d inverted: %+v", i, w)
		}
	}
	got := make([]string, len(words))
	for i, w := range words {
		got[i] = w.Word
	}
	if strings.Join(got, " ") != seg.Text {
		t.Errorf("word order not preserved: %v", got)
	}
}

func TestSliceWordsWordCountMatchesText(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"hello", 1},
		{"hello world", 2},
		{"  spaced   out   words  ", 3},
		{"", 0},
		{"   ", 0},
	}
	for _, tc := range tests {
		words := SliceWords([]TextSegment{{Start: 0, End: 1, Text: tc.text}})
		if len(words) != tc.want {
			t.Errorf("text %q: expected %d words, got %d", tc.text, tc.want, len(words))
		}
	}
}

func TestSliceWordsZeroDurationSegment(t *testing.T) {
	words := SliceWords([]TextSegment{{Start: 2.0, End: 2.0, Text: "a b"}})
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	for _, w := range words {
		if w.End < w.Start {
			t.Errorf("inverted interval from zero-duration segment: %+v", w)
		}
	}
	if words[1].End != 2.0 {
		t.Errorf("last word end must equal segment end, got %v", words[1].End)
	}
}

func TestSliceWordsInvertedSegment(t *testing.T) {
	// end < start gets the epsilon duration guard, not a negative slice.
	words := SliceWords([]TextSegment{{Start: 3.0, End: 2.0, Text: "oops"}})
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}
	if words[0].Start != 3.0 {
		t.Errorf("expected word to start at segment start, got %v", words[0].Start)
	}
}

func TestSliceWordsMultipleSegments(t *testing.T) {
	words := SliceWords([]TextSegment{
		{Start: 0, End: 1, Text: "a b"},
		{Start: 5, End: 6, Text: "c"},
	})
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[2].Start != 5.0 || words[2].End != 6.0 {
		t.Errorf("second segment word misplaced: %+v", words[2])
	}
}
