package domain

// SumPossibleIDs sums the ids of the games that fit BagLimits.
func SumPossibleIDs(games []Game) uint64 {
	var sum uint64
	for _, g := range games {
		if g.Possible() {
			sum += uint64(g.ID)
		}
	}
	return sum
}

// SumPowers sums the power of every game's minimum pick, possible or not.
func SumPowers(games []Game) uint64 {
	var sum uint64
	for _, g := range games {
		sum += g.MinimumPick().Power()
	}
	return sum
}
