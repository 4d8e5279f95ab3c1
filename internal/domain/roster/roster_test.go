package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

func TestNamesMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"Robert Lewandowski", "R. Lewandowski", true},
		{"R. Lewandowski", "Robert Lewandowski", true},
		{"Thiago Silva", "Silva", true}, // documented false-positive risk on short fragments
		{"Bukayo Saka", "bukayo saka", true},
		{"Bukayo Saka", "Saka", true},
		{"J. Smith", "A. Jones", false},
		{"", "Saka", false},
		{"Saka", "", false},
		{"K. De Bruyne", "Kevin De Bruyne", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.a+" vs "+tc.b, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NamesMatch(tc.a, tc.b))
		})
	}
}

func TestBuild_SkipsNamelessEntries(t *testing.T) {
	t.Parallel()

	home := []extract.Record{
		{"player_name": "R. Lewandowski", "player_image": "https://img/rl9.png", "player_type": "Forwards", "player_number": "9"},
		{"player_image": "https://img/ghost.png"},
	}
	away := []extract.Record{
		{"name": "T. Courtois", "position": "GK"},
	}

	got := Build(home, away)
	require.Len(t, got, 2)
	assert.Equal(t, match.SideHome, got[0].Side)
	assert.Equal(t, "9", got[0].JerseyNumber)
	assert.Equal(t, match.SideAway, got[1].Side)
	assert.Equal(t, "GK", got[1].Position)
}

func TestLookup_FirstMatchInInputOrderWins(t *testing.T) {
	t.Parallel()

	players := []match.PlayerRecord{
		{CanonicalName: "Bernardo Silva", ImageURL: "https://img/bernardo.png", Side: match.SideHome},
		{CanonicalName: "Thiago Silva", ImageURL: "https://img/thiago.png", Side: match.SideAway},
	}

	got, ok := Lookup(players, "Silva")
	require.True(t, ok)
	assert.Equal(t, "https://img/bernardo.png", got.ImageURL)
}

func TestLookup_ContainmentReturnsRosterMetadata(t *testing.T) {
	t.Parallel()

	players := []match.PlayerRecord{
		{CanonicalName: "R. Lewandowski", ImageURL: "https://img/rl9.png", Position: "FW", Side: match.SideHome},
	}

	got, ok := Lookup(players, "Robert Lewandowski")
	require.True(t, ok)
	assert.Equal(t, "https://img/rl9.png", got.ImageURL)
}

func TestLookup_MissReturnsEmptyMetadata(t *testing.T) {
	t.Parallel()

	players := []match.PlayerRecord{{CanonicalName: "A. Jones", Side: match.SideAway}}

	got, ok := Lookup(players, "Nobody Here")
	assert.False(t, ok)
	assert.Equal(t, match.PlayerRecord{}, got)

	_, ok = Lookup(players, "  ")
	assert.False(t, ok)
}
