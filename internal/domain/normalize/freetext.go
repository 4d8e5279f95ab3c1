package normalize

import (
	"strings"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/domain/teamside"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

// textRule maps free-text content to an event kind. Rules are evaluated in
// declaration order; the first hit wins, which keeps precedence auditable.
type textRule struct {
	kind    match.EventKind
	matches func(text string) bool
}

var textRules = []textRule{
	{match.KindOwnGoal, func(t string) bool {
		return strings.Contains(t, "own goal")
	}},
	{match.KindPenaltyMiss, func(t string) bool {
		return strings.Contains(t, "penalty") && (strings.Contains(t, "miss") || strings.Contains(t, "saved"))
	}},
	{match.KindPenaltyScore, func(t string) bool {
		return strings.Contains(t, "penalty") && (strings.Contains(t, "goal") || strings.Contains(t, "scored") || strings.Contains(t, "converts"))
	}},
	{match.KindGoal, func(t string) bool {
		return strings.Contains(t, "goal") || strings.Contains(t, "scored") || strings.Contains(t, "scores") || strings.Contains(t, "header")
	}},
	{match.KindRedCard, func(t string) bool {
		return strings.Contains(t, "red card") || strings.Contains(t, "sent off") || strings.Contains(t, "second yellow")
	}},
	{match.KindYellowCard, func(t string) bool {
		return strings.Contains(t, "yellow card") || strings.Contains(t, "booked")
	}},
	{match.KindSubstitution, func(t string) bool {
		return strings.Contains(t, "substitution") || strings.Contains(t, "subbed") || strings.Contains(t, "replaces")
	}},
}

// Commentary scans the alternate timeline/comments/play-by-play arrays of a
// provider document and classifies each entry. Entries matching no rule, or
// whose side cannot be resolved, are dropped silently.
func Commentary(doc extract.Record, teams teamside.Teams) []match.TimelineEvent {
	records := extract.Records(doc, commentaryArrayKeys)
	out := make([]match.TimelineEvent, 0, len(records))

	for _, record := range records {
		kind, text := classifyCommentEntry(record)
		if kind == "" {
			continue
		}
		side, ok := teamside.Resolve(record, teams)
		if !ok {
			continue
		}

		out = append(out, match.TimelineEvent{
			Minute:          minuteOf(record),
			Kind:            kind,
			Side:            side,
			PrimaryPlayer:   extract.String(record, commentPlayerKeys, ""),
			SecondaryPlayer: extract.String(record, commentAssistKeys, ""),
			Note:            text,
			SecondYellow:    kind == match.KindRedCard && strings.Contains(strings.ToLower(text), "second yellow"),
		})
	}
	return out
}

// classifyCommentEntry prefers an explicit tag/label field and only then
// falls back to keyword heuristics on the free text.
func classifyCommentEntry(record extract.Record) (match.EventKind, string) {
	text, _ := extract.StringOK(record, commentTextKeys)

	if tag, ok := extract.StringOK(record, commentTagKeys); ok {
		if kind := classifyText(tag); kind != "" {
			return kind, text
		}
	}
	return classifyText(text), text
}

func classifyText(text string) match.EventKind {
	lowered := strings.ToLower(text)
	if strings.TrimSpace(lowered) == "" {
		return ""
	}
	for _, rule := range textRules {
		if rule.matches(lowered) {
			return rule.kind
		}
	}
	return ""
}
