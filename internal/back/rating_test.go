package back // nolint:testpackage

import (
	"math"
	"testing"
)

func TestNewTeamRatings(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		winner, loser       int
		newWinner, newLoser int
	}{
		// Even match: both sides move by K/2.
		{1000, 1000, 1016, 984},
		// The favorite wins: small swing.
		{1200, 1000, 1208, 992},
		// The underdog wins: large swing.
		{1000, 1200, 1024, 1176},
		// Extreme gap: the favorite gains nothing.
		{2400, 1000, 2400, 1000},
	}

	for k, v := range cases {
		newWinner, newLoser := rules.NewTeamRatings(v.winner, v.loser)
		if newWinner != v.newWinner || newLoser != v.newLoser {
			t.Errorf(
				"case #%d: expected %d/%d got %d/%d",
				k, v.newWinner, v.newLoser, newWinner, newLoser,
			)
		}
	}
}

func TestNewPlayerRatings(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		winners, losers       [2]int
		newWinners, newLosers [2]int
	}{
		// All at the baseline: everyone moves by K/4.
		{[2]int{1000, 1000}, [2]int{1000, 1000}, [2]int{1008, 1008}, [2]int{992, 992}},
		// Uneven winning side, even sums: the weaker winner gains more.
		{[2]int{1200, 800}, [2]int{1000, 1000}, [2]int{1206, 810}, [2]int{992, 992}},
		// Uneven losing side, even sums: the weaker loser loses more.
		{[2]int{1000, 1000}, [2]int{1200, 800}, [2]int{1008, 1008}, [2]int{1194, 790}},
	}

	for k, v := range cases {
		newWinners, newLosers := rules.NewPlayerRatings(v.winners, v.losers)
		if newWinners != v.newWinners || newLosers != v.newLosers {
			t.Errorf(
				"case #%d: expected %v/%v got %v/%v",
				k, v.newWinners, v.newLosers, newWinners, newLosers,
			)
		}
	}
}

// The two members of a side split exactly the delta their notional team
// earned, whatever the rating distribution.
func TestPlayerDeltaSplitsAddUp(t *testing.T) {
	rules := DefaultRules()

	cases := [][2]int{
		{1000, 1000},
		{1351, 964},
		{800, 1714},
		{1, 2},
	}

	for k, v := range cases {
		delta := rules.winnerDelta(float64(v[0]+v[1]), 2000)
		shares := inverseShares(v)

		if got := shares[0] + shares[1]; math.Abs(got-1) > 1e-9 {
			t.Errorf("case #%d: shares add up to %f, expected 1", k, got)
		}

		split := delta*shares[0] + delta*shares[1]
		if math.Abs(split-delta) > 1e-9 {
			t.Errorf("case #%d: split delta %f does not add up to %f", k, split, delta)
		}
	}
}

func TestZeroRatingSumSplitsEvenly(t *testing.T) {
	shares := inverseShares([2]int{0, 0})
	if shares[0] != 0.5 || shares[1] != 0.5 {
		t.Errorf("expected a 50/50 split, got %v", shares)
	}
}

func TestAlternateRules(t *testing.T) {
	rules := DefaultRules()
	rules.KFactor = 16

	newWinner, newLoser := rules.NewTeamRatings(1000, 1000)
	if newWinner != 1008 || newLoser != 992 {
		t.Errorf("expected 1008/992 got %d/%d", newWinner, newLoser)
	}
}
