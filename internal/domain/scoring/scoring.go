package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danurahman/matchlens/internal/domain/match"
)

// Weights is the composite scoring policy. The weighting is a product
// decision, so it travels as configuration rather than constants inside the
// algorithm.
type Weights struct {
	Goal         int
	Assist       int
	SecondYellow int
}

func DefaultWeights() Weights {
	return Weights{Goal: 3, Assist: 2, SecondYellow: 1}
}

// contribution accumulates one player's countable actions across the fused
// timeline. Own goals never credit the scorer.
type contribution struct {
	name         string
	side         match.Side
	goals        int
	assists      int
	yellows      int
	reds         int
	secondYellow bool // dismissed via a second booking, however the provider encoded it
	first        int  // first-occurrence index in the timeline, for tie-breaks
}

// BestPlayer picks the highest composite score across all contributing
// players; ties break on first occurrence in the fused timeline. With no
// positive score it degrades to the first goal-scorer at score 0, and to
// nil when the match has no goals at all.
func BestPlayer(events []match.TimelineEvent, weights Weights) *match.BestPlayer {
	contributions := collect(events)

	var best *contribution
	bestScore := 0
	for _, c := range contributions {
		score := compositeScore(c, weights)
		if score <= 0 {
			continue
		}
		if best == nil || score > bestScore || (score == bestScore && c.first < best.first) {
			best = c
			bestScore = score
		}
	}

	if best != nil {
		return &match.BestPlayer{
			PlayerName:     best.name,
			CompositeScore: float64(bestScore),
			Rationale:      rationale(*best),
		}
	}

	// Degenerate but deterministic: no positive score anywhere, fall back
	// to the first genuine goal-scorer.
	for _, event := range events {
		if (event.Kind == match.KindGoal || event.Kind == match.KindPenaltyScore) && event.PrimaryPlayer != "" {
			return &match.BestPlayer{
				PlayerName:     event.PrimaryPlayer,
				CompositeScore: 0,
				Rationale:      "first goal-scorer",
			}
		}
	}
	return nil
}

// Leaders selects the per-side leader for goals, assists and cards. A
// category whose top candidate has no positive metric stays nil.
func Leaders(events []match.TimelineEvent) match.Leaders {
	contributions := collect(events)

	bySide := map[match.Side][]*contribution{}
	for _, c := range contributions {
		bySide[c.side] = append(bySide[c.side], c)
	}

	return match.Leaders{
		Home: sideLeaders(bySide[match.SideHome]),
		Away: sideLeaders(bySide[match.SideAway]),
	}
}

func collect(events []match.TimelineEvent) []*contribution {
	byKey := make(map[string]*contribution)
	ordered := make([]*contribution, 0, 8)

	touch := func(name string, side match.Side, index int) *contribution {
		if strings.TrimSpace(name) == "" || side == "" {
			return nil
		}
		key := string(side) + "|" + name
		if c, ok := byKey[key]; ok {
			return c
		}
		c := &contribution{name: name, side: side, first: index}
		byKey[key] = c
		ordered = append(ordered, c)
		return c
	}

	for index, event := range events {
		switch event.Kind {
		case match.KindGoal, match.KindPenaltyScore:
			if c := touch(event.PrimaryPlayer, event.Side, index); c != nil {
				c.goals++
			}
			if c := touch(event.SecondaryPlayer, event.Side, index); c != nil {
				c.assists++
			}
		case match.KindYellowCard:
			if c := touch(event.PrimaryPlayer, event.Side, index); c != nil {
				c.yellows++
			}
		case match.KindRedCard:
			if c := touch(event.PrimaryPlayer, event.Side, index); c != nil {
				c.reds++
				if event.SecondYellow {
					c.secondYellow = true
				}
			}
		case match.KindOwnGoal:
			// Rendered on the timeline but never credited to a leader
			// or the composite score.
		}
	}
	return ordered
}

func compositeScore(c *contribution, weights Weights) int {
	score := c.goals*weights.Goal + c.assists*weights.Assist
	if dismissedSecondYellow(c) {
		score += weights.SecondYellow
	}
	return score
}

// dismissedSecondYellow covers both encodings of the same dismissal: two
// separate yellow events, or a single red event flagged as a second booking.
func dismissedSecondYellow(c *contribution) bool {
	return c.yellows >= 2 || c.secondYellow
}

func sideLeaders(contributions []*contribution) match.TeamLeaders {
	return match.TeamLeaders{
		Goals:   topBy(contributions, goalRanking),
		Assists: topBy(contributions, assistRanking),
		Cards:   topBy(contributions, cardRanking),
	}
}

type ranking struct {
	metric func(*contribution) int
	less   func(a, b *contribution) bool
}

var goalRanking = ranking{
	metric: func(c *contribution) int { return c.goals },
	less: func(a, b *contribution) bool {
		if a.goals != b.goals {
			return a.goals > b.goals
		}
		return a.first < b.first
	},
}

var assistRanking = ranking{
	metric: func(c *contribution) int { return c.assists },
	less: func(a, b *contribution) bool {
		if a.assists != b.assists {
			return a.assists > b.assists
		}
		return a.first < b.first
	},
}

// Cards rank by red count, then yellow count, then combined goals+assists
// as the final tie-break.
var cardRanking = ranking{
	metric: func(c *contribution) int { return c.reds + c.yellows },
	less: func(a, b *contribution) bool {
		if a.reds != b.reds {
			return a.reds > b.reds
		}
		if a.yellows != b.yellows {
			return a.yellows > b.yellows
		}
		if a.goals+a.assists != b.goals+b.assists {
			return a.goals+a.assists > b.goals+b.assists
		}
		return a.first < b.first
	},
}

func topBy(contributions []*contribution, r ranking) *match.LeaderEntry {
	if len(contributions) == 0 {
		return nil
	}

	sorted := make([]*contribution, len(contributions))
	copy(sorted, contributions)
	sort.SliceStable(sorted, func(i, j int) bool { return r.less(sorted[i], sorted[j]) })

	top := sorted[0]
	if r.metric(top) <= 0 {
		return nil
	}
	return &match.LeaderEntry{
		PlayerName:  top.name,
		Side:        top.side,
		Goals:       top.goals,
		Assists:     top.assists,
		YellowCards: top.yellows,
		RedCards:    top.reds,
	}
}

func rationale(c contribution) string {
	parts := make([]string, 0, 3)
	if c.goals > 0 {
		parts = append(parts, fmt.Sprintf("%d goal%s", c.goals, plural(c.goals)))
	}
	if c.assists > 0 {
		parts = append(parts, fmt.Sprintf("%d assist%s", c.assists, plural(c.assists)))
	}
	if dismissedSecondYellow(&c) {
		parts = append(parts, "dismissed after a second yellow")
	}
	if len(parts) == 0 {
		return "no countable contributions"
	}
	return strings.Join(parts, ", ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
