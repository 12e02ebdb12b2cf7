package domain

import "time"

// Report is the outcome of solving one input file.
type Report struct {
	ID        string `json:"id"`
	InputPath string `json:"input_path"`

	Games         int `json:"games"`
	PossibleGames int `json:"possible_games"`

	Part1 uint64 `json:"part1"`
	Part2 uint64 `json:"part2"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
