package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/cubebag/internal/domain"
)

type fakeGameLoader struct {
	games []domain.Game
	err   error
	path  string
}

func (f *fakeGameLoader) LoadGames(_ context.Context, path string) ([]domain.Game, error) {
	f.path = path
	return f.games, f.err
}

type fakeReportStore struct {
	saved []domain.Report
	id    string
	err   error
}

func (f *fakeReportStore) SaveReport(r domain.Report) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, r)
	return f.id, nil
}

func sampleGames() []domain.Game {
	return []domain.Game{
		{ID: 1, Draws: []domain.Draw{{Red: 4, Blue: 3}, {Red: 1, Green: 2, Blue: 6}, {Green: 2}}},
		{ID: 2, Draws: []domain.Draw{{Green: 2, Blue: 1}, {Red: 1, Green: 3, Blue: 4}, {Green: 1, Blue: 1}}},
		{ID: 3, Draws: []domain.Draw{{Red: 20, Green: 8, Blue: 6}, {Red: 4, Green: 13, Blue: 5}, {Red: 1, Green: 5}}},
		{ID: 4, Draws: []domain.Draw{{Red: 3, Green: 1, Blue: 6}, {Red: 6, Green: 3}, {Red: 14, Green: 3, Blue: 15}}},
		{ID: 5, Draws: []domain.Draw{{Red: 6, Green: 3, Blue: 1}, {Red: 1, Green: 2, Blue: 2}}},
	}
}

func fixedClock() func() time.Time {
	t0 := time.Date(2023, 12, 2, 5, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func TestSolve_ComputesBothParts(t *testing.T) {
	loader := &fakeGameLoader{games: sampleGames()}
	uc := NewSolve(loader, WithClock(fixedClock()), WithIDGenerator(func() string { return "r-1" }))

	report, id, err := uc.Execute(context.Background(), "input.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no saved id without a store, got %q", id)
	}
	if loader.path != "input.txt" {
		t.Fatalf("expected loader to receive input path, got %q", loader.path)
	}
	if report.Part1 != 8 {
		t.Fatalf("expected part1=8, got %d", report.Part1)
	}
	if report.Part2 != 2286 {
		t.Fatalf("expected part2=2286, got %d", report.Part2)
	}
	if report.Games != 5 || report.PossibleGames != 3 {
		t.Fatalf("unexpected counts: games=%d possible=%d", report.Games, report.PossibleGames)
	}
	if report.ID != "r-1" {
		t.Fatalf("expected injected id, got %q", report.ID)
	}
}

func TestSolve_EmptyInput(t *testing.T) {
	uc := NewSolve(&fakeGameLoader{games: []domain.Game{}})

	report, _, err := uc.Execute(context.Background(), "input.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Part1 != 0 || report.Part2 != 0 {
		t.Fatalf("expected zero answers, got %d/%d", report.Part1, report.Part2)
	}
}

func TestSolve_LoadErrorYieldsNoAnswers(t *testing.T) {
	loadErr := &domain.OpError{Op: "gamefile.parse", Kind: domain.KindUnknownColor, Line: 1, Err: domain.ErrUnknownColor}
	store := &fakeReportStore{id: "x"}
	uc := NewSolve(&fakeGameLoader{err: loadErr}, WithReportStore(store))

	report, id, err := uc.Execute(context.Background(), "input.txt")
	if !errors.Is(err, domain.ErrUnknownColor) {
		t.Fatalf("expected unknown color error, got %v", err)
	}
	if report != (domain.Report{}) || id != "" {
		t.Fatalf("expected empty report on error, got %+v id=%q", report, id)
	}
	if len(store.saved) != 0 {
		t.Fatalf("nothing should be saved on error")
	}
}

func TestSolve_SavesReport(t *testing.T) {
	store := &fakeReportStore{id: "20231202T050000Z_input"}
	uc := NewSolve(&fakeGameLoader{games: sampleGames()}, WithReportStore(store), WithClock(fixedClock()))

	report, id, err := uc.Execute(context.Background(), "input.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != store.id {
		t.Fatalf("expected id %q, got %q", store.id, id)
	}
	if len(store.saved) != 1 || store.saved[0].Part2 != report.Part2 {
		t.Fatalf("expected the report to be saved once, got %+v", store.saved)
	}
}

func TestSolve_SaveErrorKeepsReport(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewSolve(&fakeGameLoader{games: sampleGames()}, WithReportStore(&fakeReportStore{err: saveErr}))

	report, _, err := uc.Execute(context.Background(), "input.txt")
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if report.Part1 != 8 {
		t.Fatalf("expected answers to survive a save failure, got %+v", report)
	}
}

func TestSolve_Summaries(t *testing.T) {
	uc := NewSolve(&fakeGameLoader{games: sampleGames()})

	got, err := uc.Summaries(context.Background(), "input.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 summaries, got %d", len(got))
	}
	if got[2].ID != 3 || got[2].Possible || got[2].Power != 1560 {
		t.Fatalf("unexpected summary for game 3: %+v", got[2])
	}
}
