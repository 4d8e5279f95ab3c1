package normalize

// Alias tables are static configuration: adding a new provider format means
// appending keys here, not touching the normalization logic.

var (
	goalArrayKeys         = []string{"goalscorers", "goals", "scorers", "goal_events"}
	cardArrayKeys         = []string{"cards", "bookings", "card_events", "discipline"}
	substitutionArrayKeys = []string{"substitutions", "subs", "substitutes", "changes"}
	commentaryArrayKeys   = []string{"timeline", "comments", "commentary", "play_by_play", "events"}

	minuteKeys = []string{"time", "minute", "elapsed", "event_minute", "clock"}

	goalScorerKeys = []string{"scorer", "home_scorer", "away_scorer", "player", "player_name", "goal_scorer"}
	goalAssistKeys = []string{"assist", "home_assist", "away_assist", "assist_name", "assist_player"}
	goalInfoKeys   = []string{"info", "score_info", "note", "description", "type"}

	cardPlayerKeys = []string{"player", "home_fault", "away_fault", "player_name", "booked"}
	cardTypeKeys   = []string{"card", "card_type", "type", "color"}
	cardInfoKeys   = []string{"info", "reason", "note", "description"}

	subInKeys   = []string{"in", "player_in", "substitution", "player_on", "in_player"}
	subOutKeys  = []string{"out", "player_out", "player_off", "out_player"}
	subInfoKeys = []string{"info", "note", "description"}

	commentTagKeys    = []string{"type", "tag", "label", "event", "kind"}
	commentTextKeys   = []string{"text", "comment", "description", "note", "detail"}
	commentPlayerKeys = []string{"player", "player_name", "scorer", "primary_player"}
	commentAssistKeys = []string{"assist", "secondary_player", "related_player"}
)
