package winprob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

func TestNormalizeTriple(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		home, draw, away float64
		want             match.ProbabilityTriple
	}{
		{"fractions scale cleanly", 50, 30, 20, match.ProbabilityTriple{Home: 50, Draw: 30, Away: 20}},
		{"already percentages", 40, 35, 25, match.ProbabilityTriple{Home: 40, Draw: 35, Away: 25}},
		{"zero sum", 0, 0, 0, match.ProbabilityTriple{}},
		{"negative component rejected", -1, 50, 51, match.ProbabilityTriple{}},
		{"residual lands on away", 1, 1, 1, match.ProbabilityTriple{Home: 33.3, Draw: 33.3, Away: 33.4}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeTriple(tc.home, tc.draw, tc.away)
			assert.Equal(t, tc.want, got)
			if tc.want != (match.ProbabilityTriple{}) {
				assert.InDelta(t, 100.0, got.Home+got.Draw+got.Away, 1e-9)
			}
		})
	}
}

func TestNormalize_ExplicitModelTriple(t *testing.T) {
	t.Parallel()

	doc := extract.Record{"home": 0.5, "draw": 0.3, "away": 0.2}

	got := Normalize(doc, "Arsenal", "Chelsea", "")
	assert.Equal(t, match.ProbabilityTriple{Home: 50, Draw: 30, Away: 20}, got.ProbabilityTriple)
	assert.Equal(t, match.MethodModel, got.Method)
	assert.Equal(t, "Arsenal", got.HomeLabel)
	assert.Equal(t, "Chelsea", got.AwayLabel)
}

func TestNormalize_AliasedContainerAndSampleSize(t *testing.T) {
	t.Parallel()

	doc := extract.Record{
		"prediction": extract.Record{
			"prob_hw":     "44.1",
			"prob_d":      "27.4",
			"prob_aw":     "28.5",
			"sample_size": float64(10000),
		},
	}

	got := Normalize(doc, "Arsenal", "Chelsea", "")
	assert.Equal(t, match.MethodModel, got.Method)
	assert.Equal(t, 10000, got.SampleSize)
	assert.InDelta(t, 100.0, got.Home+got.Draw+got.Away, 1e-9)
	assert.Equal(t, 44.1, got.Home)
}

func TestNormalize_OddsImplied(t *testing.T) {
	t.Parallel()

	doc := extract.Record{
		"odds": extract.Record{"home": 2.0, "draw": 4.0, "away": 4.0},
	}

	got := Normalize(doc, "Arsenal", "Chelsea", "")
	assert.Equal(t, match.MethodOdds, got.Method)
	// 0.5 + 0.25 + 0.25 renormalizes to 50/25/25.
	assert.Equal(t, match.ProbabilityTriple{Home: 50, Draw: 25, Away: 25}, got.ProbabilityTriple)
}

func TestNormalize_OddsWithMarginStillSumTo100(t *testing.T) {
	t.Parallel()

	doc := extract.Record{
		"1x2": extract.Record{"1": 1.9, "x": 3.6, "2": 4.2},
	}

	got := Normalize(doc, "Arsenal", "Chelsea", "")
	assert.Equal(t, match.MethodOdds, got.Method)
	assert.InDelta(t, 100.0, got.Home+got.Draw+got.Away, 1e-9)
}

func TestNormalize_UniformFallback(t *testing.T) {
	t.Parallel()

	got := Normalize(nil, "Arsenal", "Chelsea", "")
	assert.Equal(t, match.MethodFallback, got.Method)
	assert.Equal(t, match.ProbabilityTriple{Home: 33.4, Draw: 33.3, Away: 33.3}, got.ProbabilityTriple)

	// Zero odds are no signal either.
	got = Normalize(extract.Record{"odds": extract.Record{"home": 0.0, "draw": 3.0, "away": 4.0}}, "A", "B", "")
	assert.Equal(t, match.MethodFallback, got.Method)
}

func TestNormalize_NeutralVenueAffectsLabelsOnly(t *testing.T) {
	t.Parallel()

	doc := extract.Record{"home": 0.5, "draw": 0.3, "away": 0.2}

	neutral := Normalize(doc, "Brazil", "Argentina", "Qatar")
	assert.Equal(t, "Neutral", neutral.HomeLabel)
	assert.Equal(t, "Neutral", neutral.AwayLabel)
	assert.Equal(t, match.ProbabilityTriple{Home: 50, Draw: 30, Away: 20}, neutral.ProbabilityTriple, "values never change with venue")

	hosted := Normalize(doc, "Brazil", "Argentina", "Brazil")
	require.Equal(t, "Brazil", hosted.HomeLabel)
	assert.Equal(t, "Argentina", hosted.AwayLabel)
}
