package back

import "math"

// Standard two-party Elo, K=32 and a 400 scale by default.
// https://metinmediamath.wordpress.com/2013/11/27/how-to-calculate-the-elo-rating-including-example/

// expected returns the probability of the first rating winning against the
// second one.
func (r Rules) expected(rating, opponent float64) float64 {
	qa := math.Pow(10, rating/r.RatingScale)
	qb := math.Pow(10, opponent/r.RatingScale)

	return qa / (qa + qb)
}

// winnerDelta returns the real-valued rating gain of the winning side, the
// losing side loses the same amount.
func (r Rules) winnerDelta(winner, loser float64) float64 {
	return r.KFactor * (1 - r.expected(winner, loser))
}

// NewTeamRatings returns the post-match ratings of the winning and the
// losing Team given their pre-match ratings.
func (r Rules) NewTeamRatings(winner, loser int) (newWinner, newLoser int) {
	delta := r.winnerDelta(float64(winner), float64(loser))

	return int(math.Round(float64(winner) + delta)),
		int(math.Round(float64(loser) - delta))
}

// NewPlayerRatings returns the post-match individual ratings of the two
// winning and the two losing players.
//
// Each side plays as a notional team rated at the sum of its two members
// (not the Team entity rating, which evolves separately). The side delta is
// computed from the sums with the usual Elo formula, then split between the
// two members in inverse proportion of their contribution to the sum: the
// weaker player of a pair moves more than the stronger one, in both
// directions. The four ratings round independently.
// https://gamedesignerkid.blogspot.com/2017/04/how-to-use-elo-ranking-for-team.html
func (r Rules) NewPlayerRatings(winners, losers [2]int) (newWinners, newLosers [2]int) {
	winningSum := float64(winners[0] + winners[1])
	losingSum := float64(losers[0] + losers[1])

	delta := r.winnerDelta(winningSum, losingSum)

	winnersShare := inverseShares(winners)
	losersShare := inverseShares(losers)

	for i := range winners {
		newWinners[i] = int(math.Round(float64(winners[i]) + delta*winnersShare[i]))
		newLosers[i] = int(math.Round(float64(losers[i]) - delta*losersShare[i]))
	}

	return newWinners, newLosers
}

// inverseShares returns each member's share of the side delta, ie. the other
// member's fraction of the side rating sum.
func inverseShares(pair [2]int) [2]float64 {
	sum := float64(pair[0] + pair[1])
	if sum == 0 {
		// Can't happen with a 1000 baseline, but don't divide by zero.
		return [2]float64{0.5, 0.5}
	}

	return [2]float64{
		float64(pair[1]) / sum,
		float64(pair[0]) / sum,
	}
}
