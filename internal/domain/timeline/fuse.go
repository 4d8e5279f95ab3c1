package timeline

import (
	"sort"

	"github.com/danurahman/matchlens/internal/domain/match"
)

const (
	halfTimeMinute = 45
	fullTimeMinute = 90
)

type dedupKey struct {
	minute    int
	kind      match.EventKind
	side      match.Side
	primary   string
	secondary string
}

// Fuse merges structured-normalizer output with free-text-fallback output
// into the canonical timeline. Structured events win key collisions against
// fallback events, synthetic half/full-time markers are inserted when
// absent, and the result is stably ordered by (minute, kind rank).
func Fuse(structured, fallback []match.TimelineEvent) []match.TimelineEvent {
	seen := make(map[dedupKey]struct{}, len(structured)+len(fallback))
	fused := make([]match.TimelineEvent, 0, len(structured)+len(fallback)+2)

	// Structured first so that a colliding fallback entry is the one
	// discarded.
	for _, event := range structured {
		key := keyOf(event)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fused = append(fused, event)
	}
	for _, event := range fallback {
		key := keyOf(event)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fused = append(fused, event)
	}

	fused = ensureMarkers(fused)

	sort.SliceStable(fused, func(i, j int) bool {
		if fused[i].Minute != fused[j].Minute {
			return fused[i].Minute < fused[j].Minute
		}
		return fused[i].Kind.Rank() < fused[j].Kind.Rank()
	})

	return fused
}

func keyOf(event match.TimelineEvent) dedupKey {
	return dedupKey{
		minute:    event.Minute,
		kind:      event.Kind,
		side:      event.Side,
		primary:   event.PrimaryPlayer,
		secondary: event.SecondaryPlayer,
	}
}

// ensureMarkers inserts the half/full-time markers only if the source did
// not already carry them, keeping fusion idempotent.
func ensureMarkers(events []match.TimelineEvent) []match.TimelineEvent {
	hasHalfTime, hasFullTime := false, false
	for _, event := range events {
		switch event.Kind {
		case match.KindHalfTime:
			hasHalfTime = true
		case match.KindFullTime:
			hasFullTime = true
		}
	}

	if !hasHalfTime {
		events = append(events, match.TimelineEvent{Minute: halfTimeMinute, Kind: match.KindHalfTime})
	}
	if !hasFullTime {
		events = append(events, match.TimelineEvent{Minute: fullTimeMinute, Kind: match.KindFullTime})
	}
	return events
}
