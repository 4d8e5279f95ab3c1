package winprob

import (
	"math"
	"strings"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/domain/teamside"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

var (
	probabilityContainerKeys = []string{"probabilities", "probability", "prediction", "predictions", "win_probability", "prob"}
	oddsContainerKeys        = []string{"odds", "bookmaker_odds", "1x2", "match_odds"}

	homeComponentKeys = []string{"home", "home_win", "prob_hw", "prob_home", "1", "w1"}
	drawComponentKeys = []string{"draw", "prob_d", "prob_draw", "x"}
	awayComponentKeys = []string{"away", "away_win", "prob_aw", "prob_away", "2", "w2"}

	sampleSizeKeys = []string{"sample_size", "samples", "n", "simulations"}

	neutralLabel = "Neutral"
)

// Normalize derives the win-probability triple for one match. Sources are
// consulted in fixed priority: an explicit model triple, then odds-implied
// probabilities, then the uniform fallback. The returned components always
// sum to exactly 100.0.
func Normalize(doc extract.Record, homeTeam, awayTeam, venueCountry string) match.WinProbability {
	out := match.WinProbability{
		HomeLabel: homeTeam,
		AwayLabel: awayTeam,
	}

	if triple, sampleSize, ok := explicitTriple(doc); ok {
		out.ProbabilityTriple = NormalizeTriple(triple.Home, triple.Draw, triple.Away)
		out.Method = match.MethodModel
		out.SampleSize = sampleSize
	} else if triple, ok := oddsImpliedTriple(doc); ok {
		out.ProbabilityTriple = NormalizeTriple(triple.Home, triple.Draw, triple.Away)
		out.Method = match.MethodOdds
	} else {
		// Uniform fallback already sums to 100; the method flag lets the
		// caller surface a disclaimer.
		out.ProbabilityTriple = match.ProbabilityTriple{Home: 33.4, Draw: 33.3, Away: 33.3}
		out.Method = match.MethodFallback
	}

	if isNeutralVenue(venueCountry, homeTeam, awayTeam) {
		out.HomeLabel = neutralLabel
		out.AwayLabel = neutralLabel
	}
	return out
}

// NormalizeTriple scales a non-negative triple to percentages summing to
// exactly 100.0 after one-decimal rounding; the rounding residual lands
// entirely on the away component. A zero-sum input yields (0, 0, 0).
func NormalizeTriple(home, draw, away float64) match.ProbabilityTriple {
	if !isFiniteNonNegative(home) || !isFiniteNonNegative(draw) || !isFiniteNonNegative(away) {
		return match.ProbabilityTriple{}
	}

	sum := home + draw + away
	if sum <= 0 {
		return match.ProbabilityTriple{}
	}

	scale := 100 / sum
	h := round1(home * scale)
	d := round1(draw * scale)
	a := round1(away * scale)

	if residual := round1(100 - h - d - a); residual != 0 {
		a = round1(a + residual)
	}

	return match.ProbabilityTriple{Home: h, Draw: d, Away: a}
}

// explicitTriple looks for a model-provided probability triple, either at
// the document root or inside an aliased container. Components ≤ 1 are
// read as fractions, larger values as percentages.
func explicitTriple(doc extract.Record) (match.ProbabilityTriple, int, bool) {
	if doc == nil {
		return match.ProbabilityTriple{}, 0, false
	}

	containers := []extract.Record{doc}
	if nested, ok := extract.Object(doc, probabilityContainerKeys); ok {
		containers = append([]extract.Record{nested}, containers...)
	}

	for _, container := range containers {
		home, homeOK := extract.NumberOK(container, homeComponentKeys)
		away, awayOK := extract.NumberOK(container, awayComponentKeys)
		if !homeOK || !awayOK {
			continue
		}
		draw := extract.Number(container, drawComponentKeys, 0)

		sampleSize := int(extract.Number(container, sampleSizeKeys, extract.Number(doc, sampleSizeKeys, 0)))
		return match.ProbabilityTriple{
			Home: asPercentage(home),
			Draw: asPercentage(draw),
			Away: asPercentage(away),
		}, sampleSize, true
	}
	return match.ProbabilityTriple{}, 0, false
}

// oddsImpliedTriple inverts decimal odds (1/odds) into raw probabilities;
// NormalizeTriple removes the bookmaker margin.
func oddsImpliedTriple(doc extract.Record) (match.ProbabilityTriple, bool) {
	if doc == nil {
		return match.ProbabilityTriple{}, false
	}

	container, ok := extract.Object(doc, oddsContainerKeys)
	if !ok {
		return match.ProbabilityTriple{}, false
	}

	home := extract.Number(container, homeComponentKeys, 0)
	draw := extract.Number(container, drawComponentKeys, 0)
	away := extract.Number(container, awayComponentKeys, 0)
	if home <= 0 || draw <= 0 || away <= 0 {
		return match.ProbabilityTriple{}, false
	}

	return match.ProbabilityTriple{
		Home: 1 / home,
		Draw: 1 / draw,
		Away: 1 / away,
	}, true
}

// isNeutralVenue reports whether the venue country names neither competing
// team. Labeling only; probability values are never altered by venue.
func isNeutralVenue(venueCountry, homeTeam, awayTeam string) bool {
	venue := teamside.NormalizeName(venueCountry)
	if venue == "" {
		return false
	}

	home := teamside.NormalizeName(homeTeam)
	away := teamside.NormalizeName(awayTeam)

	touches := func(team string) bool {
		if team == "" {
			return false
		}
		return strings.Contains(team, venue) || strings.Contains(venue, team)
	}
	return !touches(home) && !touches(away)
}

func asPercentage(value float64) float64 {
	if value <= 1 {
		return value * 100
	}
	return value
}

func isFiniteNonNegative(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
