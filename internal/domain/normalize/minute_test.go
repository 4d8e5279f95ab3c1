package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want int
	}{
		{"plain digits", "10", 10},
		{"injury time", "45+2", 47},
		{"injury time with spaces", " 90 + 4 ", 94},
		{"injury time with suffix", "45+2'", 47},
		{"half time marker", "HT", 45},
		{"full time marker", "ft", 90},
		{"apostrophe suffix", "67'", 67},
		{"json number", float64(81), 81},
		{"int", 12, 12},
		{"negative clamps to zero", float64(-3), 0},
		{"unparseable", "soon", 0},
		{"empty", "", 0},
		{"nil", nil, 0},
		{"plus with garbage extra", "45+x", 45},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseMinute(tc.in))
		})
	}
}
