package insight

import (
	"strings"

	"github.com/HAMZAJAWED12/voiceiq-AI/conversation"
)

// Flag types produced by GenerateFlags.
const (
	FlagHesitation = "hesitation"
	FlagAggression = "aggression"
	FlagLieRisk    = "lie_risk"
)

// Flag marks a turn that matched a heuristic pattern.
type Flag struct {
	Type    string  `json:"type"`
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Score   float64 `json:"score"`
	Note    string  `json:"note"`
}

var (
	hesitationMarkers = []string{"um", "uh", "you know", "er", "ah", "kind of", "sort of", "..."}
	aggressionWords   = []string{"crap", "stupid", "idiot", "hate", "dumb", "aggressive", "angry"}
	absoluteWords     = []string{"always", "never", "impossible", "absolutely", "definitely"}
	hedgingPhrases    = []string{"i think", "maybe", "probably", "i guess"}
)

// GenerateFlags scans turns for hesitation markers, aggressive wording,
// and the absolute-plus-hedging mix treated as a weak lie-risk signal.
// A single turn can produce several flags. The flag speaker carries the
// turn's inferred role, matching the conversation and timeline views.
func GenerateFlags(turns []conversation.Turn) []Flag {
	var flags []Flag

	for _, turn := range turns {
		text := strings.ToLower(turn.Text)

		if matchesAny(text, hesitationMarkers) {
			flags = append(flags, Flag{
				Type:    FlagHesitation,
				Speaker: turn.Role,
				Start:   turn.Start,
				End:     turn.End,
				Text:    turn.Text,
				Score:   0.6,
				Note:    "Contains hesitation markers (um/uh/you know/etc.).",
			})
		}

		if matchesAny(text, aggressionWords) {
			flags = append(flags, Flag{
				Type:    FlagAggression,
				Speaker: turn.Role,
				Start:   turn.Start,
				End:     turn.End,
				Text:    turn.Text,
				Score:   0.7,
				Note:    "Contains aggressive or rude wording.",
			})
		}

		if matchesAny(text, absoluteWords) && matchesAny(text, hedgingPhrases) {
			flags = append(flags, Flag{
				Type:    FlagLieRisk,
				Speaker: turn.Role,
				Start:   turn.Start,
				End:     turn.End,
				Text:    turn.Text,
				Score:   0.5,
				Note: "Mix of absolute terms ('always/never') and hedging ('I think/maybe'). " +
					"This is a weak heuristic, NOT proof of deception.",
			})
		}
	}
	return flags
}

func matchesAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
