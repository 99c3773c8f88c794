package conversation

import (
	"sort"
	"strings"

	"github.com/HAMZAJAWED12/voiceiq-AI/alignment"
	"github.com/HAMZAJAWED12/voiceiq-AI/logger"
)

// Roles assigned to the two most talkative speakers. Additional speakers
// keep their raw label as role.
const (
	RolePrimary   = "PRIMARY"
	RoleSecondary = "SECONDARY"
)

// DefaultTurnGap is the maximum silence, in seconds, bridged when folding
// consecutive same-speaker segments into one turn.
const DefaultTurnGap = 0.75

// Turn is one contiguous block of speech attributed to a participant.
// Role is presentational; Speaker carries the raw diarization label.
type Turn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Role    string  `json:"role"`
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Intent  string  `json:"intent,omitempty"`
}

// Builder converts aligned speaker segments into conversation turns.
type Builder struct {
	maxGap float64
	log    *logger.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithTurnGap overrides the turn merge gap threshold in seconds.
func WithTurnGap(gap float64) Option {
	return func(b *Builder) {
		if gap > 0 {
			b.maxGap = gap
		}
	}
}

// WithLogger sets the logger used by the builder.
func WithLogger(log *logger.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// NewBuilder creates a Builder with the default 0.75s turn gap.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		maxGap: DefaultTurnGap,
		log:    logger.WithComponent("conversation"),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build produces the chronological turn list for the given speaker
// segments. Empty input yields an empty result, never an error.
func (b *Builder) Build(segments []alignment.SpeakerSegment) []Turn {
	if len(segments) == 0 {
		b.log.Warn("conversation skipped: no speaker segments")
		return nil
	}

	ordered := make([]alignment.SpeakerSegment, len(segments))
	copy(ordered, segments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	roles := AssignRoles(ordered)

	var turns []Turn
	var current *Turn
	for _, seg := range ordered {
		role, ok := roles[seg.Speaker]
		if !ok {
			role = seg.Speaker
		}

		if current != nil &&
			current.Speaker == seg.Speaker &&
			seg.Start-current.End <= b.maxGap {
			current.End = seg.End
			current.Text = strings.TrimSpace(current.Text + " " + seg.Text)
			continue
		}

		if current != nil {
			turns = append(turns, *current)
		}
		current = &Turn{
			Start:   seg.Start,
			End:     seg.End,
			Role:    role,
			Speaker: seg.Speaker,
			Text:    seg.Text,
		}
	}
	if current != nil {
		turns = append(turns, *current)
	}

	b.log.Info("conversation built", logger.Fields(
		"segments", len(segments),
		"turns", len(turns),
	))
	return turns
}

// AssignRoles ranks speakers by total speaking time and maps the top two
// to PRIMARY and SECONDARY. Every other speaker maps to its own raw
// label. Ties rank by label so the result is deterministic.
func AssignRoles(segments []alignment.SpeakerSegment) map[string]string {
	if len(segments) == 0 {
		return map[string]string{}
	}

	talkTime := make(map[string]float64)
	for _, seg := range segments {
		talkTime[seg.Speaker] += seg.End - seg.Start
	}

	speakers := make([]string, 0, len(talkTime))
	for spk := range talkTime {
		speakers = append(speakers, spk)
	}
	sort.Slice(speakers, func(i, j int) bool {
		if talkTime[speakers[i]] != talkTime[speakers[j]] {
			return talkTime[speakers[i]] > talkTime[speakers[j]]
		}
		return speakers[i] < speakers[j]
	})

	roles := make(map[string]string, len(speakers))
	for i, spk := range speakers {
		switch i {
		case 0:
			roles[spk] = RolePrimary
		case 1:
			roles[spk] = RoleSecondary
		default:
			roles[spk] = spk
		}
	}
	return roles
}
