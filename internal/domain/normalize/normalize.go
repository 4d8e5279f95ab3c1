package normalize

import (
	"strings"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/domain/teamside"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

// Structured converts the structured goal/card/substitution arrays of one
// provider document into canonical events. Records whose side cannot be
// resolved are dropped, never guessed.
func Structured(doc extract.Record, teams teamside.Teams) []match.TimelineEvent {
	out := make([]match.TimelineEvent, 0, 16)
	out = append(out, Goals(extract.Records(doc, goalArrayKeys), teams)...)
	out = append(out, Cards(extract.Records(doc, cardArrayKeys), teams)...)
	out = append(out, Substitutions(extract.Records(doc, substitutionArrayKeys), teams)...)
	return out
}

// Goals normalizes scorer records, classifying own goals and penalties from
// the info text.
func Goals(records []extract.Record, teams teamside.Teams) []match.TimelineEvent {
	out := make([]match.TimelineEvent, 0, len(records))
	for _, record := range records {
		side, ok := teamside.Resolve(record, teams)
		if !ok {
			continue
		}

		info, _ := extract.StringOK(record, goalInfoKeys)
		event := match.TimelineEvent{
			Minute:          minuteOf(record),
			Kind:            classifyGoalInfo(info),
			Side:            side,
			PrimaryPlayer:   extract.String(record, goalScorerKeys, ""),
			SecondaryPlayer: extract.String(record, goalAssistKeys, ""),
			Note:            info,
		}
		out = append(out, event)
	}
	return out
}

// Cards normalizes booking records. A "yellowred" second booking becomes a
// red card flagged as a second yellow.
func Cards(records []extract.Record, teams teamside.Teams) []match.TimelineEvent {
	out := make([]match.TimelineEvent, 0, len(records))
	for _, record := range records {
		side, ok := teamside.Resolve(record, teams)
		if !ok {
			continue
		}

		cardType, _ := extract.StringOK(record, cardTypeKeys)
		kind, note, secondYellow := classifyCardType(cardType)
		if kind == "" {
			continue
		}
		if note == "" {
			note = extract.String(record, cardInfoKeys, "")
		}

		out = append(out, match.TimelineEvent{
			Minute:        minuteOf(record),
			Kind:          kind,
			Side:          side,
			PrimaryPlayer: extract.String(record, cardPlayerKeys, ""),
			Note:          note,
			SecondYellow:  secondYellow,
		})
	}
	return out
}

// Substitutions normalizes substitution records: primary is the player
// coming on, secondary the player going off.
func Substitutions(records []extract.Record, teams teamside.Teams) []match.TimelineEvent {
	out := make([]match.TimelineEvent, 0, len(records))
	for _, record := range records {
		side, ok := teamside.Resolve(record, teams)
		if !ok {
			continue
		}

		playerOn, playerOff := substitutionPlayers(record)
		if playerOn == "" && playerOff == "" {
			continue
		}

		out = append(out, match.TimelineEvent{
			Minute:          minuteOf(record),
			Kind:            match.KindSubstitution,
			Side:            side,
			PrimaryPlayer:   playerOn,
			SecondaryPlayer: playerOff,
			Note:            extract.String(record, subInfoKeys, ""),
		})
	}
	return out
}

func minuteOf(record extract.Record) int {
	for _, key := range minuteKeys {
		raw, ok := record[key]
		if !ok || raw == nil {
			continue
		}
		return ParseMinute(raw)
	}
	return 0
}

func classifyGoalInfo(info string) match.EventKind {
	lowered := strings.ToLower(info)
	switch {
	case strings.Contains(lowered, "own goal"), strings.Contains(lowered, "o.g"):
		return match.KindOwnGoal
	case strings.Contains(lowered, "penalty") && strings.Contains(lowered, "miss"):
		return match.KindPenaltyMiss
	case strings.Contains(lowered, "penalty"):
		return match.KindPenaltyScore
	default:
		return match.KindGoal
	}
}

func classifyCardType(cardType string) (kind match.EventKind, note string, secondYellow bool) {
	lowered := strings.ToLower(cardType)
	switch {
	case strings.Contains(lowered, "yellowred"),
		strings.Contains(lowered, "yellow/red"),
		strings.Contains(lowered, "second yellow"):
		return match.KindRedCard, "second yellow", true
	case strings.Contains(lowered, "red"):
		return match.KindRedCard, "", false
	case strings.Contains(lowered, "yellow"):
		return match.KindYellowCard, "", false
	default:
		return "", "", false
	}
}

// substitutionPlayers also accepts combined "A for B" / "A replaces B"
// notations under a single field.
func substitutionPlayers(record extract.Record) (in, out string) {
	in = extract.String(record, subInKeys, "")
	out = extract.String(record, subOutKeys, "")

	if out == "" {
		for _, sep := range []string{" for ", " replaces ", " | "} {
			if a, b, found := strings.Cut(in, sep); found {
				return strings.TrimSpace(a), strings.TrimSpace(b)
			}
		}
	}
	return in, out
}
