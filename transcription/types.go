package transcription

// TranscriptionRequest holds parameters for a transcription call.
type TranscriptionRequest struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
	// Model is the transcription model to use.
	Model string `json:"model,omitempty"`
}

// TranscriptionResponse holds the result of a transcription call.
type TranscriptionResponse struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// Segments contains time-aligned transcript segments.
	Segments []Segment `json:"segments,omitempty"`
	// Duration is the audio duration in seconds.
	Duration float64 `json:"duration,omitempty"`
	// Language is the detected or specified language.
	Language string `json:"language,omitempty"`
	// Model is the model that produced the transcript.
	Model string `json:"model,omitempty"`
}

// Segment represents a time-aligned portion of a transcript with the
// acoustic metadata the alignment engine derives confidence from.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
	// AvgLogProb is the average token log-probability, typically negative.
	AvgLogProb float64 `json:"avg_logprob"`
	// NoSpeechProb is the probability the segment contains no speech.
	NoSpeechProb float64 `json:"no_speech_prob"`
}
