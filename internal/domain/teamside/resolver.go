package teamside

import (
	"sort"
	"strings"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

// Teams carries the raw competing team names used for side inference.
type Teams struct {
	Home string
	Away string
}

var sideFieldKeys = []string{"side", "team", "team_side", "home_away", "team_name"}

var noteFieldKeys = []string{"note", "description", "text", "comment", "detail", "info"}

// NormalizeName lowercases, strips everything outside [a-z0-9 ] and
// collapses whitespace. Both side resolution and player-name matching rely
// on this exact normalization.
func NormalizeName(value string) string {
	lowered := strings.ToLower(value)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolve assigns an event record to the home or away team. Rules are
// applied in strict precedence; the first definitive answer wins. An
// unresolved record reports ok=false and must be dropped by the caller,
// never guessed.
func Resolve(record extract.Record, teams Teams) (match.Side, bool) {
	if record == nil {
		return "", false
	}

	if side, ok := resolveExplicit(record, teams); ok {
		return side, ok
	}
	if side, ok := resolvePrefixedFlag(record); ok {
		return side, ok
	}
	return resolveFromNotes(record, teams)
}

// Rules 1 and 2: an explicit side/team field that is literally "home"/"away",
// or that names one of the competing teams.
func resolveExplicit(record extract.Record, teams Teams) (match.Side, bool) {
	value, ok := extract.StringOK(record, sideFieldKeys)
	if !ok {
		return "", false
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "home":
		return match.SideHome, true
	case "away":
		return match.SideAway, true
	}

	return matchTeamName(NormalizeName(value), teams)
}

// Rule 3: a home/away-prefixed field (home_scorer, away_fault, is_home)
// present and truthy. When both sides carry a truthy flag the record is
// ambiguous and the rule abstains.
func resolvePrefixedFlag(record extract.Record) (match.Side, bool) {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	homeHit, awayHit := false, false
	for _, key := range keys {
		lowered := strings.ToLower(key)
		switch {
		case strings.HasPrefix(lowered, "home") || lowered == "is_home":
			homeHit = homeHit || extract.Truthy(record[key])
		case strings.HasPrefix(lowered, "away") || lowered == "is_away":
			awayHit = awayHit || extract.Truthy(record[key])
		}
	}

	if homeHit == awayHit {
		return "", false
	}
	if homeHit {
		return match.SideHome, true
	}
	return match.SideAway, true
}

// Rule 4: a free-text note containing a normalized team-name substring.
func resolveFromNotes(record extract.Record, teams Teams) (match.Side, bool) {
	for _, key := range noteFieldKeys {
		text, ok := extract.StringOK(record, []string{key})
		if !ok {
			continue
		}
		if side, ok := matchTeamName(NormalizeName(text), teams); ok {
			return side, true
		}
	}
	return "", false
}

func matchTeamName(normalized string, teams Teams) (match.Side, bool) {
	if normalized == "" {
		return "", false
	}

	home := NormalizeName(teams.Home)
	away := NormalizeName(teams.Away)

	homeMatch := home != "" && (normalized == home || strings.Contains(normalized, home) || strings.Contains(home, normalized))
	awayMatch := away != "" && (normalized == away || strings.Contains(normalized, away) || strings.Contains(away, normalized))

	if homeMatch == awayMatch {
		return "", false
	}
	if homeMatch {
		return match.SideHome, true
	}
	return match.SideAway, true
}
