package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/danurahman/matchlens/internal/domain/match"
	"github.com/danurahman/matchlens/internal/domain/normalize"
	"github.com/danurahman/matchlens/internal/domain/roster"
	"github.com/danurahman/matchlens/internal/domain/scoring"
	"github.com/danurahman/matchlens/internal/domain/teamside"
	"github.com/danurahman/matchlens/internal/domain/timeline"
	"github.com/danurahman/matchlens/internal/domain/winprob"
	"github.com/danurahman/matchlens/internal/platform/extract"
	"github.com/danurahman/matchlens/internal/platform/logging"
)

const (
	defaultBatchWorkers  = 8
	defaultBatchMaxItems = 64
)

var (
	homeTeamKeys = []string{"home_team", "hometeam", "home_name", "local_team", "home"}
	awayTeamKeys = []string{"away_team", "awayteam", "away_name", "visitor_team", "away"}
	venueKeys    = []string{"venue_country", "country", "venue"}
)

// DeriveInput carries one match worth of already-fetched provider payloads.
// Every section is optional; the engine produces a well-formed report from
// whatever is present.
type DeriveInput struct {
	Match       extract.Record
	PlayersHome []extract.Record
	PlayersAway []extract.Record
	Probability extract.Record

	// Explicit team names take precedence over anything extracted from
	// the match document.
	HomeTeam     string
	AwayTeam     string
	VenueCountry string
}

type DerivationService struct {
	weights       scoring.Weights
	batchWorkers  int
	batchMaxItems int
	logger        *logging.Logger
}

func NewDerivationService(weights scoring.Weights, batchWorkers, batchMaxItems int, logger *logging.Logger) *DerivationService {
	if logger == nil {
		logger = logging.Default()
	}
	if batchWorkers <= 0 {
		batchWorkers = defaultBatchWorkers
	}
	if batchMaxItems <= 0 {
		batchMaxItems = defaultBatchMaxItems
	}
	return &DerivationService{
		weights:       weights,
		batchWorkers:  batchWorkers,
		batchMaxItems: batchMaxItems,
		logger:        logger,
	}
}

// Derive rebuilds the full match report from scratch. It is pure over its
// input and never fails: malformed provider sections degrade to safe
// defaults instead of errors.
func (s *DerivationService) Derive(ctx context.Context, input DeriveInput) match.Report {
	ctx, span := startUsecaseSpan(ctx, "usecase.DerivationService.Derive")
	defer span.End()

	teams := s.resolveTeams(input)

	structured := normalize.Structured(input.Match, teams)
	fallback := normalize.Commentary(input.Match, teams)
	fused := timeline.Fuse(structured, fallback)

	players := roster.Build(input.PlayersHome, input.PlayersAway)

	leaders := scoring.Leaders(fused)
	enrichLeaders(&leaders, players)

	best := scoring.BestPlayer(fused, s.weights)
	if best != nil {
		if record, ok := roster.Lookup(players, best.PlayerName); ok {
			best.ImageURL = record.ImageURL
			best.Position = record.Position
		}
	}

	probabilityDoc := input.Probability
	if probabilityDoc == nil {
		probabilityDoc = input.Match
	}
	probability := winprob.Normalize(probabilityDoc, teams.Home, teams.Away, s.resolveVenueCountry(input))

	s.logger.DebugContext(ctx, "match report derived",
		"events", len(fused),
		"structured", len(structured),
		"fallback", len(fallback),
		"probability_method", probability.Method,
	)

	return match.Report{
		Timeline:       fused,
		Leaders:        leaders,
		BestPlayer:     best,
		WinProbability: probability,
	}
}

// DeriveBatch fans independent derivations out over a worker pool and
// returns reports in input order. Individual derivations cannot fail, so
// the only error is pool setup.
func (s *DerivationService) DeriveBatch(ctx context.Context, inputs []DeriveInput) ([]match.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DerivationService.DeriveBatch")
	defer span.End()

	if len(inputs) == 0 {
		return []match.Report{}, nil
	}
	if len(inputs) > s.batchMaxItems {
		return nil, errors.Wrapf(ErrBatchTooLarge, "%d items, limit %d", len(inputs), s.batchMaxItems)
	}

	pool, err := ants.NewPool(s.batchWorkers)
	if err != nil {
		return nil, fmt.Errorf("create derivation worker pool: %w", err)
	}
	defer pool.Release()

	return s.fanOut(ctx, inputs, pool.Submit), nil
}

// fanOut runs every derivation through submit and waits for all of them
// before returning, so the result slice is never written to after the
// function exits. A rejected submission runs inline rather than dropping
// the item.
func (s *DerivationService) fanOut(ctx context.Context, inputs []DeriveInput, submit func(func()) error) []match.Report {
	reports := make([]match.Report, len(inputs))

	var workers sync.WaitGroup
	for index, input := range inputs {
		index, input := index, input
		workers.Add(1)
		task := func() {
			defer workers.Done()
			reports[index] = s.Derive(ctx, input)
		}
		if err := submit(task); err != nil {
			task()
		}
	}
	workers.Wait()

	return reports
}

// resolveTeams prefers caller-provided names and falls back to aliased
// fields on the match document.
func (s *DerivationService) resolveTeams(input DeriveInput) teamside.Teams {
	teams := teamside.Teams{Home: input.HomeTeam, Away: input.AwayTeam}
	if teams.Home == "" {
		teams.Home = extract.String(input.Match, homeTeamKeys, "")
	}
	if teams.Away == "" {
		teams.Away = extract.String(input.Match, awayTeamKeys, "")
	}
	return teams
}

func (s *DerivationService) resolveVenueCountry(input DeriveInput) string {
	if input.VenueCountry != "" {
		return input.VenueCountry
	}
	return extract.String(input.Match, venueKeys, "")
}

func enrichLeaders(leaders *match.Leaders, players []match.PlayerRecord) {
	for _, entry := range []*match.LeaderEntry{
		leaders.Home.Goals, leaders.Home.Assists, leaders.Home.Cards,
		leaders.Away.Goals, leaders.Away.Assists, leaders.Away.Cards,
	} {
		if entry == nil {
			continue
		}
		if record, ok := roster.Lookup(players, entry.PlayerName); ok {
			entry.ImageURL = record.ImageURL
		}
	}
}
