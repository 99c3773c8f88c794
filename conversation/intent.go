package conversation

import "strings"

// Intent labels produced by ClassifyUtterance.
const (
	IntentGreeting    = "greeting"
	IntentQuestion    = "question"
	IntentApology     = "apology"
	IntentComplaint   = "complaint"
	IntentStorytell   = "storytelling"
	IntentGratitude   = "gratitude"
	IntentAgreement   = "agreement"
	IntentClosing     = "closing"
	IntentInformation = "information_sharing"
	IntentOther       = "other"
)

var (
	greetingPrefixes = []string{"hi", "hello", "hey"}
	questionPhrases  = []string{"?", "could you", "would you", "can you"}
	apologyPhrases   = []string{"sorry", "apologize", "my fault"}
	complaintPhrases = []string{"angry", "mad", "upset", "frustrated", "terrible", "horrible"}
	storyPhrases     = []string{"story", "when i was", "i remember", "i tell you", "basically what this is about"}
	gratitudePhrases = []string{"thanks", "thank you", "appreciate it"}
	agreementPhrases = []string{"okay", "ok", "that works", "sounds good"}
	closingPhrases   = []string{"bye", "goodbye", "talk to you later"}
)

// ClassifyUtterance assigns a coarse intent label to one utterance using
// keyword heuristics. It is a placeholder for a real classifier and makes
// no claim beyond surface patterns.
func ClassifyUtterance(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return IntentOther
	}

	for _, p := range greetingPrefixes {
		if strings.HasPrefix(t, p) {
			return IntentGreeting
		}
	}
	if strings.HasSuffix(t, "?") || containsAny(t, questionPhrases) {
		return IntentQuestion
	}
	if containsAny(t, apologyPhrases) {
		return IntentApology
	}
	if containsAny(t, complaintPhrases) {
		return IntentComplaint
	}
	if containsAny(t, storyPhrases) {
		return IntentStorytell
	}
	if containsAny(t, gratitudePhrases) {
		return IntentGratitude
	}
	if containsAny(t, agreementPhrases) {
		return IntentAgreement
	}
	if containsAny(t, closingPhrases) {
		return IntentClosing
	}
	if len(strings.Fields(t)) > 5 {
		return IntentInformation
	}
	return IntentOther
}

// AnnotateIntents returns a copy of the turns with the Intent field set on
// each. The input slice is not modified.
func AnnotateIntents(turns []Turn) []Turn {
	if len(turns) == 0 {
		return nil
	}
	annotated := make([]Turn, len(turns))
	for i, turn := range turns {
		turn.Intent = ClassifyUtterance(turn.Text)
		annotated[i] = turn
	}
	return annotated
}

// SummarizeIntents counts how often each intent label occurs across the
// conversation. Turns without an intent count as "other".
func SummarizeIntents(turns []Turn) map[string]int {
	counts := make(map[string]int)
	for _, turn := range turns {
		intent := turn.Intent
		if intent == "" {
			intent = IntentOther
		}
		counts[intent]++
	}
	return counts
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
