package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"holdem-server/pkg/deck"
)

// ErrNoContenders is returned when Winners() is called without any hands
var ErrNoContenders = errors.New("no contenders")

// ErrNoWinners is returned when no hand qualifies for any category
// This can only happen if every contender has no cards
var ErrNoWinners = errors.New("no winners found")

// Evaluation is a hand category along with the information needed to break a tie
// within that category
type Evaluation struct {
	Hand Hand
	tie  tieBreaker
}

// analysis is the rank and suit breakdown of a set of cards
type analysis struct {
	nCards     int
	rankCounts [deck.Ace + 1]int
	// ranks sorted high to low, duplicates included
	ranks []int
	// distinct ranks sorted high to low
	distinct []int
	// ranks of each suit sorted high to low
	bySuit map[deck.Suit][]int
	// every rank that appears at least n times, high to low
	groups map[int][]int
}

func analyze(cards []*deck.Card) *analysis {
	a := &analysis{
		nCards: len(cards),
		ranks:  make([]int, 0, len(cards)),
		bySuit: make(map[deck.Suit][]int),
		groups: make(map[int][]int),
	}

	for _, card := range cards {
		a.rankCounts[card.Rank]++
		a.ranks = append(a.ranks, card.Rank)
		a.bySuit[card.Suit] = append(a.bySuit[card.Suit], card.Rank)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(a.ranks)))
	for _, ranks := range a.bySuit {
		sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	}

	for rank := deck.Ace; rank >= 2; rank-- {
		count := a.rankCounts[rank]
		if count == 0 {
			continue
		}

		a.distinct = append(a.distinct, rank)
		for n := 2; n <= count; n++ {
			a.groups[n] = append(a.groups[n], rank)
		}
	}

	return a
}

// flushSuit returns the ranks of the suit with the most cards
func (a *analysis) flushSuit() []int {
	var best []int
	for _, suit := range deck.Suits {
		if ranks := a.bySuit[suit]; len(ranks) > len(best) {
			best = ranks
		}
	}

	return best
}

// topCounts returns the two largest rank counts
func (a *analysis) topCounts() (first, second int) {
	for _, rank := range a.distinct {
		count := a.rankCounts[rank]
		if count > first {
			first, second = count, first
		} else if count > second {
			second = count
		}
	}

	return first, second
}

// highest returns up to n distinct ranks, high to low, skipping the excluded ranks
func (a *analysis) highest(n int, exclude ...int) []int {
	ranks := make([]int, 0, n)
	for _, rank := range a.distinct {
		if len(ranks) == n {
			break
		}

		if !contains(exclude, rank) {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

func contains(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}

	return false
}

func shortfall(want, have int) int {
	if have >= want {
		return 0
	}

	return want - have
}

// test checks the cards for a single category
// The tie breaker is only valid when numNeeded is zero
func (a *analysis) test(h Hand) (tieBreaker, int) {
	first, second := a.topCounts()

	switch h {
	case StraightFlush:
		high, numNeeded := straightHigh(a.flushSuit())
		if numNeeded > 0 {
			return nil, numNeeded
		}

		return straightFlush{high: high}, 0
	case FourOfAKind:
		if first < 4 {
			return nil, shortfall(4, first)
		}

		rank := a.groups[4][0]
		kicker := 0
		for _, r := range a.ranks {
			if r != rank {
				kicker = r
				break
			}
		}

		return fourOfAKind{rank: rank, kicker: kicker}, 0
	case FullHouse:
		if first < 3 || second < 2 {
			return nil, shortfall(3, first) + shortfall(2, second)
		}

		trips := a.groups[3][0]
		for _, rank := range a.groups[2] {
			if rank != trips {
				return fullHouse{trips: trips, pair: rank}, 0
			}
		}

		panic("full house detected without a pair")
	case Flush:
		suited := a.flushSuit()
		if len(suited) < 5 {
			return nil, 5 - len(suited)
		}

		return flush{ranks: suited[:5]}, 0
	case Straight:
		high, numNeeded := straightHigh(a.distinct)
		if numNeeded > 0 {
			return nil, numNeeded
		}

		return straight{high: high}, 0
	case ThreeOfAKind:
		if first < 3 {
			return nil, shortfall(3, first)
		}

		rank := a.groups[3][0]
		return threeOfAKind{rank: rank, kickers: a.highest(2, rank)}, 0
	case TwoPair:
		if first < 2 || second < 2 {
			return nil, shortfall(2, first) + shortfall(2, second)
		}

		high, low := a.groups[2][0], a.groups[2][1]
		kicker := 0
		for _, r := range a.ranks {
			if r != high && r != low {
				kicker = r
				break
			}
		}

		return twoPair{high: high, low: low, kicker: kicker}, 0
	case OnePair:
		if first < 2 {
			return nil, shortfall(2, first)
		}

		rank := a.groups[2][0]
		return onePair{rank: rank, kickers: a.highest(3, rank)}, 0
	case HighCard:
		if a.nCards == 0 {
			return nil, 1
		}

		return highCard{ranks: a.highest(5)}, 0
	}

	panic(fmt.Sprintf("unknown hand: %d", h))
}

// Test checks whether the cards qualify for the hand category
func Test(h Hand, cards []*deck.Card) (Evaluation, bool) {
	tie, numNeeded := analyze(cards).test(h)
	if numNeeded > 0 {
		return Evaluation{}, false
	}

	return Evaluation{Hand: h, tie: tie}, true
}

// NumNeeded returns how many more cards are needed to make the category
// A value of zero means the cards already qualify.
func NumNeeded(h Hand, cards []*deck.Card) int {
	_, numNeeded := analyze(cards).test(h)
	return numNeeded
}

// Evaluate returns the strongest category the cards qualify for
// Evaluate panics if cards is empty
func Evaluate(cards []*deck.Card) Evaluation {
	a := analyze(cards)
	for _, h := range Categories {
		if tie, numNeeded := a.test(h); numNeeded == 0 {
			return Evaluation{Hand: h, tie: tie}
		}
	}

	panic("cannot evaluate an empty hand")
}

// Compare compares two evaluations of the same category
// Returns 1 if a wins, -1 if b wins, and 0 on a tie.
func Compare(a, b Evaluation) int {
	if a.Hand != b.Hand {
		panic(fmt.Sprintf("cannot compare %s to %s", a.Hand, b.Hand))
	}

	return a.tie.compare(b.tie)
}

// Winners determines the best hand among the contenders
// Each category is tried from strongest to weakest, the first category with at least one
// qualifying hand decides. The indexes of every hand tied for best are returned.
func Winners(hands [][]*deck.Card) (Hand, []int, error) {
	if len(hands) == 0 {
		return 0, nil, ErrNoContenders
	}

	analyses := make([]*analysis, len(hands))
	for i, cards := range hands {
		analyses[i] = analyze(cards)
	}

	for _, h := range Categories {
		var best tieBreaker
		var winners []int
		for i, a := range analyses {
			tie, numNeeded := a.test(h)
			if numNeeded > 0 {
				continue
			}

			if best == nil {
				best, winners = tie, []int{i}
				continue
			}

			switch tie.compare(best) {
			case 1:
				best, winners = tie, []int{i}
			case 0:
				winners = append(winners, i)
			}
		}

		if len(winners) > 0 {
			return h, winners, nil
		}
	}

	return 0, nil, ErrNoWinners
}
