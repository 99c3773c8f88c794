package alignment

// TextSegment is a normalized recognition segment: a time-bounded unit of
// transcribed text with the acoustic metadata confidence is derived from.
type TextSegment struct {
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	Text         string  `json:"text"`
	AvgLogProb   float64 `json:"avg_logprob"`
	NoSpeechProb float64 `json:"no_speech_prob"`
}

// WordInterval is an approximate per-word time slice derived from a
// TextSegment. It only exists within one pipeline run.
type WordInterval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// SpeakerSegment is a speaker-attributed, timestamped transcript block.
type SpeakerSegment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Speaker    string  `json:"speaker"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
