package ports

import (
	"context"

	"github.com/aalvaropc/cubebag/internal/domain"
)

// GameLoader reads every game record from a source (e.g., a puzzle input file).
type GameLoader interface {
	LoadGames(ctx context.Context, path string) ([]domain.Game, error)
}
