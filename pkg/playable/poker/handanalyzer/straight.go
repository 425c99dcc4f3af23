package handanalyzer

import "holdem-server/pkg/deck"

// longestRun finds the longest run of consecutive ranks
// An ace counts as both high (14) and low (1). When two runs are equally long the higher one wins.
// The returned high card is the top of the run.
func longestRun(ranks []int) (length int, high int) {
	var present [deck.Ace + 1]bool
	for _, r := range ranks {
		present[r] = true
		if r == deck.Ace {
			present[deck.LowAce] = true
		}
	}

	run := 0
	for r := deck.LowAce; r <= deck.Ace; r++ {
		if !present[r] {
			run = 0
			continue
		}

		run++
		if run >= length {
			length = run
			high = r
		}
	}

	return length, high
}

// straightHigh returns the high card of the best five-card straight, if there is one
func straightHigh(ranks []int) (high int, numNeeded int) {
	length, high := longestRun(ranks)
	numNeeded = 5 - length
	if numNeeded < 0 {
		numNeeded = 0
	}

	return high, numNeeded
}
