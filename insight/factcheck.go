package insight

import "regexp"

// Verification status for extracted candidates. Nothing is checked here;
// a downstream knowledge-graph lookup owns actual verification.
const StatusToVerify = "TO_VERIFY"

// FactCheck is a claim-like token pulled from the transcript.
type FactCheck struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Status string `json:"status"`
	Source string `json:"source"`
	Note   string `json:"note"`
}

var (
	urlRe = regexp.MustCompile(`(?i)\bhttps?://[^\s]+`)
	numRe = regexp.MustCompile(`\b\d+\b`)
)

// ExtractFactChecks pulls URLs and standalone numbers from the transcript
// and marks them TO_VERIFY for a later verification pass.
func ExtractFactChecks(transcript string) []FactCheck {
	var candidates []FactCheck

	for _, u := range urlRe.FindAllString(transcript, -1) {
		candidates = append(candidates, FactCheck{
			Type:   "url",
			Value:  u,
			Status: StatusToVerify,
			Source: "regex",
			Note:   "URL mentioned in transcript; not yet checked against any knowledge graph.",
		})
	}

	for _, n := range numRe.FindAllString(transcript, -1) {
		candidates = append(candidates, FactCheck{
			Type:   "number",
			Value:  n,
			Status: StatusToVerify,
			Source: "regex",
			Note:   "Numeric value mentioned; could be age, quantity, etc.",
		})
	}
	return candidates
}
