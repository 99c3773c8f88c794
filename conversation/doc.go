// Package conversation builds conversation turns from aligned speaker
// segments. Speakers are ranked by total speaking time to infer a
// presentational PRIMARY/SECONDARY role; turn merging is always keyed on
// the raw speaker label, so two speakers sharing a role never collapse
// into one turn. Turns can be annotated with a heuristic utterance intent.
package conversation
