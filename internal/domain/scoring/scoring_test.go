package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/domain/normalize"
	"github.com/danurahman/matchlens/internal/domain/teamside"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

func goalEvent(minute int, side match.Side, scorer, assist string) match.TimelineEvent {
	return match.TimelineEvent{Minute: minute, Kind: match.KindGoal, Side: side, PrimaryPlayer: scorer, SecondaryPlayer: assist}
}

func TestBestPlayer_WeightedComposite(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		goalEvent(10, match.SideHome, "J. Smith", ""),
		{Minute: 45, Kind: match.KindHalfTime},
		goalEvent(48, match.SideAway, "A. Jones", ""),
		goalEvent(80, match.SideHome, "J. Smith", "K. Lee"),
		{Minute: 90, Kind: match.KindFullTime},
	}

	got := BestPlayer(events, DefaultWeights())
	require.NotNil(t, got)
	assert.Equal(t, "J. Smith", got.PlayerName)
	assert.Equal(t, 6.0, got.CompositeScore)
	assert.Equal(t, "2 goals", got.Rationale)
}

func TestBestPlayer_TieBrokenByFirstOccurrence(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		goalEvent(12, match.SideAway, "Early Bird", ""),
		goalEvent(75, match.SideHome, "Late Show", ""),
	}

	got := BestPlayer(events, DefaultWeights())
	require.NotNil(t, got)
	assert.Equal(t, "Early Bird", got.PlayerName)
}

func TestBestPlayer_WeightsArePolicy(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		goalEvent(10, match.SideHome, "Scorer", "Playmaker"),
		goalEvent(20, match.SideHome, "Other", "Playmaker"),
	}

	// Under assist-heavy weights the playmaker overtakes both scorers.
	got := BestPlayer(events, Weights{Goal: 3, Assist: 4, SecondYellow: 1})
	require.NotNil(t, got)
	assert.Equal(t, "Playmaker", got.PlayerName)
	assert.Equal(t, 8.0, got.CompositeScore)
}

func TestBestPlayer_SecondYellowCountsOnce(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		goalEvent(10, match.SideHome, "Striker", ""),
		{Minute: 30, Kind: match.KindYellowCard, Side: match.SideHome, PrimaryPlayer: "Striker"},
		{Minute: 70, Kind: match.KindYellowCard, Side: match.SideHome, PrimaryPlayer: "Striker"},
	}

	got := BestPlayer(events, DefaultWeights())
	require.NotNil(t, got)
	assert.Equal(t, 4.0, got.CompositeScore, "goal (3) plus one dismissal credit (1)")
}

func TestBestPlayer_SecondBookingRedCountsAsDismissal(t *testing.T) {
	t.Parallel()

	// Providers usually report a dismissal as one yellow plus one
	// "yellowred" record, not two yellows.
	cards := normalize.Cards([]extract.Record{
		{"home_fault": "Striker", "time": "30", "card": "yellow card"},
		{"home_fault": "Striker", "time": "78", "card": "yellowred"},
	}, teamside.Teams{Home: "Arsenal", Away: "Chelsea"})
	events := append([]match.TimelineEvent{goalEvent(10, match.SideHome, "Striker", "")}, cards...)

	got := BestPlayer(events, DefaultWeights())
	require.NotNil(t, got)
	assert.Equal(t, "Striker", got.PlayerName)
	assert.Equal(t, 4.0, got.CompositeScore, "goal (3) plus the second-booking dismissal (1)")
	assert.Contains(t, got.Rationale, "dismissed after a second yellow")
}

func TestBestPlayer_DegenerateFallbacks(t *testing.T) {
	t.Parallel()

	// Zero-weight policy: nobody accumulates a score, so the first
	// goal-scorer is returned at score 0.
	events := []match.TimelineEvent{
		goalEvent(30, match.SideAway, "Only Scorer", ""),
	}
	got := BestPlayer(events, Weights{})
	require.NotNil(t, got)
	assert.Equal(t, "Only Scorer", got.PlayerName)
	assert.Equal(t, 0.0, got.CompositeScore)

	// No goals at all: nil.
	assert.Nil(t, BestPlayer([]match.TimelineEvent{
		{Minute: 20, Kind: match.KindYellowCard, Side: match.SideHome, PrimaryPlayer: "A"},
	}, DefaultWeights()))
	assert.Nil(t, BestPlayer(nil, DefaultWeights()))
}

func TestBestPlayer_OwnGoalNeverCredits(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		{Minute: 15, Kind: match.KindOwnGoal, Side: match.SideHome, PrimaryPlayer: "Unlucky Defender"},
	}

	assert.Nil(t, BestPlayer(events, DefaultWeights()))
}

func TestLeaders_PerSidePerCategory(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		goalEvent(10, match.SideHome, "J. Smith", ""),
		goalEvent(48, match.SideAway, "A. Jones", ""),
		goalEvent(80, match.SideHome, "J. Smith", "K. Lee"),
		{Minute: 55, Kind: match.KindYellowCard, Side: match.SideAway, PrimaryPlayer: "Enforcer"},
		{Minute: 85, Kind: match.KindRedCard, Side: match.SideAway, PrimaryPlayer: "Enforcer"},
	}

	got := Leaders(events)

	require.NotNil(t, got.Home.Goals)
	assert.Equal(t, "J. Smith", got.Home.Goals.PlayerName)
	assert.Equal(t, 2, got.Home.Goals.Goals)

	require.NotNil(t, got.Home.Assists)
	assert.Equal(t, "K. Lee", got.Home.Assists.PlayerName)

	require.NotNil(t, got.Away.Goals)
	assert.Equal(t, "A. Jones", got.Away.Goals.PlayerName)

	require.NotNil(t, got.Away.Cards)
	assert.Equal(t, "Enforcer", got.Away.Cards.PlayerName)
	assert.Equal(t, 1, got.Away.Cards.RedCards)
	assert.Equal(t, 1, got.Away.Cards.YellowCards)

	assert.Nil(t, got.Home.Cards, "no home player was carded")
	assert.Nil(t, got.Away.Assists, "no away assists were recorded")
}

func TestLeaders_CardTieBreaks(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		{Minute: 20, Kind: match.KindYellowCard, Side: match.SideHome, PrimaryPlayer: "Quiet"},
		{Minute: 40, Kind: match.KindYellowCard, Side: match.SideHome, PrimaryPlayer: "Busy"},
		goalEvent(60, match.SideHome, "Busy", ""),
	}

	got := Leaders(events)
	require.NotNil(t, got.Home.Cards)
	assert.Equal(t, "Busy", got.Home.Cards.PlayerName, "equal cards break on combined goals+assists")
}

func TestLeaders_OwnGoalExcludedFromTally(t *testing.T) {
	t.Parallel()

	events := []match.TimelineEvent{
		{Minute: 15, Kind: match.KindOwnGoal, Side: match.SideHome, PrimaryPlayer: "Unlucky Defender"},
	}

	got := Leaders(events)
	assert.Nil(t, got.Home.Goals)
	assert.Nil(t, got.Away.Goals)
}
