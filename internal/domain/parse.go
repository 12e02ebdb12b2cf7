package domain

import (
	"strconv"
	"strings"
)

const gamePrefix = "Game "

// ParseGame parses one record of the form
//
//	Game <id>: <count> <color>, ...; <count> <color>, ...
//
// Parsing is all-or-nothing: on error the zero Game is returned.
func ParseGame(line string) (Game, error) {
	idPart, drawsPart, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, parseError(KindMalformedRecord, ErrMalformedRecord, "missing ':' in %q", line)
	}

	id, err := parseID(idPart)
	if err != nil {
		return Game{}, err
	}

	segments := strings.Split(drawsPart, ";")
	draws := make([]Draw, 0, len(segments))
	for _, seg := range segments {
		d, err := parseDraw(strings.TrimSpace(seg))
		if err != nil {
			return Game{}, err
		}
		draws = append(draws, d)
	}

	return Game{ID: id, Draws: draws}, nil
}

func parseID(s string) (uint32, error) {
	raw, ok := strings.CutPrefix(s, gamePrefix)
	if !ok {
		return 0, parseError(KindInvalidID, ErrInvalidID, "expected %q prefix, got %q", gamePrefix, s)
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, parseError(KindInvalidID, ErrInvalidID, "%q", raw)
	}
	return uint32(n), nil
}

func parseDraw(s string) (Draw, error) {
	var d Draw
	for _, pair := range strings.Split(s, ",") {
		countPart, colorPart, _ := strings.Cut(strings.TrimSpace(pair), " ")

		n, err := strconv.ParseUint(countPart, 10, 16)
		if err != nil {
			return Draw{}, parseError(KindInvalidCount, ErrInvalidCount, "%q", countPart)
		}
		count := uint16(n)

		switch Color(colorPart) {
		case Red:
			d.Red = count
		case Green:
			d.Green = count
		case Blue:
			d.Blue = count
		default:
			return Draw{}, parseError(KindUnknownColor, ErrUnknownColor, "%q", colorPart)
		}
	}
	return d, nil
}
