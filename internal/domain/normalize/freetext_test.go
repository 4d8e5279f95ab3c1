package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

func TestClassifyText_RulePrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want match.EventKind
	}{
		{"Own goal by the defender, unlucky deflection", match.KindOwnGoal},
		{"Penalty missed! The keeper guesses right", match.KindPenaltyMiss},
		{"Penalty saved by the goalkeeper", match.KindPenaltyMiss},
		{"Goal! He converts the penalty", match.KindPenaltyScore},
		{"What a header, brilliant goal", match.KindGoal},
		{"He scored from thirty yards", match.KindGoal},
		{"Red card! He is sent off", match.KindRedCard},
		{"Yellow card for a late challenge", match.KindYellowCard},
		{"Substitution: fresh legs up front", match.KindSubstitution},
		{"He replaces the injured captain", match.KindSubstitution},
		{"Corner cleared by the defence", ""},
		{"", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, classifyText(tc.text))
		})
	}
}

func TestCommentary_ExplicitTagBeatsKeywords(t *testing.T) {
	t.Parallel()

	doc := extract.Record{
		"commentary": []any{
			// Tag says substitution even though text mentions a goal.
			extract.Record{
				"tag":    "substitution",
				"text":   "Replaced after scoring the opening goal",
				"minute": "63",
				"team":   "home",
				"player": "B. Saka",
			},
		},
	}

	got := Commentary(doc, testTeams)
	require.Len(t, got, 1)
	assert.Equal(t, match.KindSubstitution, got[0].Kind)
	assert.Equal(t, "B. Saka", got[0].PrimaryPlayer)
	assert.Equal(t, 63, got[0].Minute)
}

func TestCommentary_DropsUnclassifiableAndUnattributable(t *testing.T) {
	t.Parallel()

	doc := extract.Record{
		"timeline": []any{
			extract.Record{"text": "Goal for Arsenal, tidy finish", "minute": "21", "player": "G. Jesus"},
			extract.Record{"text": "Throw-in deep in the half", "minute": "22", "team": "home"},
			extract.Record{"text": "Goal! Scenes in the away end", "minute": "30"}, // no side signal
		},
	}

	got := Commentary(doc, testTeams)
	require.Len(t, got, 1)
	assert.Equal(t, match.KindGoal, got[0].Kind)
	assert.Equal(t, match.SideHome, got[0].Side)
	assert.Equal(t, "G. Jesus", got[0].PrimaryPlayer)
}
