// Package insight produces heuristic analyst hints over conversation
// turns: hesitation, aggression, and lie-risk flags from keyword patterns,
// plus fact-check candidates (URLs and numbers) extracted from the
// transcript. None of these are truth detectors; they mark spots a human
// reviewer may want to look at.
package insight
