package back

// Rules holds the constants of the rating system. They never change in
// normal operation but are passed around explicitly rather than read from
// globals so tests can run with alternate values.
type Rules struct {
	// KFactor is the maximum rating swing of a single match.
	KFactor float64

	// RatingScale is the divisor mapping a rating gap to a win probability.
	RatingScale float64

	// StartingRating is given to new players and teams, recalculation
	// resets every rating to it.
	StartingRating int

	// WinningScore is the score a team must reach to win a match.
	WinningScore int
}

func DefaultRules() Rules {
	return Rules{
		KFactor:        32,
		RatingScale:    400,
		StartingRating: 1000,
		WinningScore:   5,
	}
}
