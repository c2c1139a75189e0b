package parlay

// prizePercent maps leaderboard rank to its share of the prize pool.
// Ranks beyond 5 receive nothing.
var prizePercent = map[int]uint64{
	1: 40,
	2: 30,
	3: 20,
	4: 5,
	5: 5,
}

// PrizeAmount returns the payout for a rank out of a prize pool,
// floor-divided so the rank shares can never sum past the pool.
func PrizeAmount(rank int, prizePool uint64) uint64 {
	pct, ok := prizePercent[rank]
	if !ok {
		return 0
	}
	return prizePool * pct / 100
}

// PrizeEligible reports whether a rank pays out at all.
func PrizeEligible(rank int) bool {
	_, ok := prizePercent[rank]
	return ok
}
