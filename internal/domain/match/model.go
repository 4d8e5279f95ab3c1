package match

// Side identifies which team an event belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// EventKind is the canonical event category on the fused timeline.
type EventKind string

const (
	KindGoal         EventKind = "goal"
	KindOwnGoal      EventKind = "own_goal"
	KindPenaltyScore EventKind = "penalty_score"
	KindPenaltyMiss  EventKind = "penalty_miss"
	KindYellowCard   EventKind = "yellow_card"
	KindRedCard      EventKind = "red_card"
	KindSubstitution EventKind = "substitution"
	KindHalfTime     EventKind = "half_time"
	KindFullTime     EventKind = "full_time"
)

// Rank orders kinds within the same minute: the half-time marker sorts
// before ordinary events, the full-time marker after them.
func (k EventKind) Rank() int {
	switch k {
	case KindHalfTime:
		return 0
	case KindFullTime:
		return 2
	default:
		return 1
	}
}

// TimelineEvent is one entry of the canonical, deduplicated timeline.
type TimelineEvent struct {
	Minute          int       `json:"minute"`
	Kind            EventKind `json:"kind"`
	Side            Side      `json:"side,omitempty"`
	PrimaryPlayer   string    `json:"primaryPlayer,omitempty"`
	SecondaryPlayer string    `json:"secondaryPlayer,omitempty"`
	Note            string    `json:"note,omitempty"`

	// SecondYellow marks a red card issued as a second booking, which
	// providers report as one "yellowred" record rather than two yellows.
	SecondYellow bool `json:"secondYellow,omitempty"`
}

// PlayerRecord is one roster entry, rebuilt per derivation pass and used
// only for metadata lookup.
type PlayerRecord struct {
	CanonicalName string `json:"canonicalName"`
	ImageURL      string `json:"imageUrl,omitempty"`
	Position      string `json:"position,omitempty"`
	JerseyNumber  string `json:"jerseyNumber,omitempty"`
	Side          Side   `json:"side"`
}

// LeaderEntry is the per-team statistical leader for one category.
type LeaderEntry struct {
	PlayerName  string `json:"playerName"`
	Side        Side   `json:"side"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// TeamLeaders holds the leader per category for one side. A nil category
// means no candidate had a positive metric.
type TeamLeaders struct {
	Goals   *LeaderEntry `json:"goals"`
	Assists *LeaderEntry `json:"assists"`
	Cards   *LeaderEntry `json:"cards"`
}

type Leaders struct {
	Home TeamLeaders `json:"home"`
	Away TeamLeaders `json:"away"`
}

// BestPlayer is the single best-player verdict for a match.
type BestPlayer struct {
	PlayerName     string  `json:"playerName"`
	CompositeScore float64 `json:"compositeScore"`
	Rationale      string  `json:"rationale"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Position       string  `json:"position,omitempty"`
}

// ProbabilityTriple holds the three outcome probabilities as percentages.
// After normalization the components sum to exactly 100.0.
type ProbabilityTriple struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

// WinProbability is the normalized triple plus display labeling and the
// provenance of the signal it was derived from.
type WinProbability struct {
	ProbabilityTriple
	HomeLabel  string `json:"homeLabel"`
	AwayLabel  string `json:"awayLabel"`
	Method     string `json:"method"`
	SampleSize int    `json:"sampleSize,omitempty"`
}

const (
	MethodModel    = "model"
	MethodOdds     = "odds"
	MethodFallback = "fallback"
)

// Report is the full derived view of one match.
type Report struct {
	Timeline       []TimelineEvent `json:"timeline"`
	Leaders        Leaders         `json:"leaders"`
	BestPlayer     *BestPlayer     `json:"bestPlayer"`
	WinProbability WinProbability  `json:"winProbability"`
}
