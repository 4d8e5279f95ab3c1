package roster

import (
	"strings"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/domain/teamside"
	"github.com/danurahman/matchlens/internal/platform/extract"
)

var (
	nameKeys     = []string{"player_name", "name", "player", "full_name", "display_name"}
	imageKeys    = []string{"player_image", "image", "image_path", "photo", "avatar"}
	positionKeys = []string{"player_type", "position", "pos", "player_position"}
	numberKeys   = []string{"player_number", "number", "shirt_number", "jersey", "jersey_number"}
)

// Build converts the optional home/away roster arrays into player records.
// Entries without a usable name are skipped. The result preserves input
// order, which makes lookups deterministic per input.
func Build(home, away []extract.Record) []match.PlayerRecord {
	out := make([]match.PlayerRecord, 0, len(home)+len(away))
	out = appendSide(out, home, match.SideHome)
	out = appendSide(out, away, match.SideAway)
	return out
}

func appendSide(out []match.PlayerRecord, records []extract.Record, side match.Side) []match.PlayerRecord {
	for _, record := range records {
		name, ok := extract.StringOK(record, nameKeys)
		if !ok {
			continue
		}
		out = append(out, match.PlayerRecord{
			CanonicalName: name,
			ImageURL:      extract.String(record, imageKeys, ""),
			Position:      extract.String(record, positionKeys, ""),
			JerseyNumber:  extract.String(record, numberKeys, ""),
			Side:          side,
		})
	}
	return out
}

// NamesMatch reports whether two player names refer to the same player:
// exact equality or containment in either direction after normalization.
// Containment accepts abbreviated forms ("R. Lewandowski" vs "Robert
// Lewandowski") at a documented false-positive risk on short fragments.
func NamesMatch(a, b string) bool {
	left := teamside.NormalizeName(a)
	right := teamside.NormalizeName(b)
	if left == "" || right == "" {
		return false
	}
	if left == right {
		return true
	}
	return containsName(left, right) || containsName(right, left)
}

// containsName checks token-suffix containment: every token of needle must
// appear in haystack, where an initial ("r") matches any token it prefixes.
func containsName(haystack, needle string) bool {
	if strings.Contains(haystack, needle) {
		return true
	}

	hayTokens := strings.Fields(haystack)
	needleTokens := strings.Fields(needle)
	if len(needleTokens) == 0 {
		return false
	}

	for _, nt := range needleTokens {
		matched := false
		for _, ht := range hayTokens {
			if ht == nt || (len(nt) == 1 && strings.HasPrefix(ht, nt)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Lookup returns the first roster entry matching the name in input order.
// A miss returns empty metadata, never an error.
func Lookup(players []match.PlayerRecord, name string) (match.PlayerRecord, bool) {
	if strings.TrimSpace(name) == "" {
		return match.PlayerRecord{}, false
	}
	for _, player := range players {
		if NamesMatch(player.CanonicalName, name) {
			return player, true
		}
	}
	return match.PlayerRecord{}, false
}
