package gamefile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/aalvaropc/cubebag/internal/domain"
	"github.com/aalvaropc/cubebag/internal/ports"
)

// Loader reads a puzzle input file, one game record per line.
type Loader struct {
	failFast bool
}

type Option func(*Loader)

// WithFailFast stops at the first bad line instead of reporting all of them.
func WithFailFast(enabled bool) Option {
	return func(l *Loader) { l.failFast = enabled }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.GameLoader = (*Loader)(nil)

// LoadGames reads path in full and parses every line. If any line fails, no games
// are returned and the error lists each failing line.
func (l *Loader) LoadGames(ctx context.Context, path string) ([]domain.Game, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "gamefile.load",
			Kind: domain.KindIOFailure,
			Path: path,
			Err:  err,
		}
	}

	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 4096), max(len(b)+1, bufio.MaxScanTokenSize))

	var (
		games []domain.Game
		errs  []error
		line  int
	)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++

		g, err := domain.ParseGame(sc.Text())
		if err != nil {
			errs = append(errs, locate(err, path, line))
			if l.failFast {
				break
			}
			continue
		}
		games = append(games, g)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "gamefile.load",
			Kind: domain.KindIOFailure,
			Path: path,
			Err:  err,
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}

// locate stamps a parse error with the file and line it came from.
func locate(err error, path string, line int) error {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return &domain.OpError{Op: "gamefile.parse", Kind: domain.KindMalformedRecord, Path: path, Line: line, Err: err}
	}
	return &domain.OpError{
		Op:   "gamefile.parse",
		Kind: oe.Kind,
		Path: path,
		Line: line,
		Err:  oe.Err,
	}
}
