package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/cubebag/internal/domain"
	"github.com/aalvaropc/cubebag/internal/ports"
)

type Solve struct {
	games ports.GameLoader
	store ports.ReportStore
	now   func() time.Time
	newID func() string
}

type SolveOption func(*Solve)

// WithReportStore saves every successful report. A nil store disables saving.
func WithReportStore(rs ports.ReportStore) SolveOption {
	return func(uc *Solve) { uc.store = rs }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SolveOption {
	return func(uc *Solve) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithIDGenerator(gen func() string) SolveOption {
	return func(uc *Solve) {
		if gen != nil {
			uc.newID = gen
		}
	}
}

func NewSolve(gl ports.GameLoader, opts ...SolveOption) *Solve {
	uc := &Solve{
		games: gl,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads every game from inputPath and computes both answers.
//
// The returned id is the saved report's id, empty when no store is configured.
// If saving fails, the report is still returned alongside the error.
func (uc *Solve) Execute(ctx context.Context, inputPath string) (domain.Report, string, error) {
	report := domain.Report{
		ID:        uc.newID(),
		InputPath: inputPath,
		StartedAt: uc.now(),
	}

	games, err := uc.games.LoadGames(ctx, inputPath)
	if err != nil {
		return domain.Report{}, "", err
	}

	// Games are never mutated, so both passes can share the slice.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Part1 = domain.SumPossibleIDs(games)
		return nil
	})
	g.Go(func() error {
		report.Part2 = domain.SumPowers(games)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Report{}, "", err
	}

	report.Games = len(games)
	for _, game := range games {
		if game.Possible() {
			report.PossibleGames++
		}
	}
	report.FinishedAt = uc.now()

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, id, nil
}

// Summaries loads every game from inputPath and describes each one.
func (uc *Solve) Summaries(ctx context.Context, inputPath string) ([]domain.GameSummary, error) {
	games, err := uc.games.LoadGames(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	out := make([]domain.GameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, domain.Summarize(g))
	}
	return out, nil
}
