package domain

// Color is one of the three cube colors a bag can hold.
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

// Draw is one observed handful of cubes. Colors not mentioned are zero.
type Draw struct {
	Red   uint16 `json:"red"`
	Green uint16 `json:"green"`
	Blue  uint16 `json:"blue"`
}

// Power is the product of the three counts, widened so it cannot overflow.
func (d Draw) Power() uint64 {
	return uint64(d.Red) * uint64(d.Green) * uint64(d.Blue)
}

// Game is an identified sequence of draws from the same bag.
type Game struct {
	ID    uint32 `json:"id"`
	Draws []Draw `json:"draws"`
}

// Limits holds per-color maxima a bag can satisfy.
type Limits struct {
	Red   uint16
	Green uint16
	Blue  uint16
}

// BagLimits is the bag every game is checked against: 12 red, 13 green, 14 blue.
var BagLimits = Limits{Red: 12, Green: 13, Blue: 14}

// Allows reports whether d could have been drawn from a bag holding l.
func (l Limits) Allows(d Draw) bool {
	return d.Red <= l.Red && d.Green <= l.Green && d.Blue <= l.Blue
}

// Possible reports whether every draw of g fits BagLimits.
// A game without draws is vacuously possible.
func (g Game) Possible() bool {
	for _, d := range g.Draws {
		if !BagLimits.Allows(d) {
			return false
		}
	}
	return true
}

// MinimumPick returns the smallest bag consistent with every draw of g:
// the per-color maximum over all draws.
func (g Game) MinimumPick() Draw {
	var out Draw
	for _, d := range g.Draws {
		out.Red = max(out.Red, d.Red)
		out.Green = max(out.Green, d.Green)
		out.Blue = max(out.Blue, d.Blue)
	}
	return out
}

// GameSummary is the per-game view printed by `cubebag games`.
type GameSummary struct {
	ID          uint32 `json:"id"`
	Possible    bool   `json:"possible"`
	MinimumPick Draw   `json:"minimum_pick"`
	Power       uint64 `json:"power"`
}

func Summarize(g Game) GameSummary {
	pick := g.MinimumPick()
	return GameSummary{
		ID:          g.ID,
		Possible:    g.Possible(),
		MinimumPick: pick,
		Power:       pick.Power(),
	}
}
