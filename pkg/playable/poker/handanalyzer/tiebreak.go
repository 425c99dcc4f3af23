package handanalyzer

import (
	"fmt"

	"holdem-server/pkg/deck"
)

// tieBreaker is implemented by the payload of each hand category
// compare must only be called with a payload of the same category
type tieBreaker interface {
	compare(other tieBreaker) int
	describe() string
}

type straightFlush struct {
	high int
}

type fourOfAKind struct {
	rank   int
	kicker int
}

type fullHouse struct {
	trips int
	pair  int
}

type flush struct {
	ranks []int
}

type straight struct {
	high int
}

type threeOfAKind struct {
	rank    int
	kickers []int
}

type twoPair struct {
	high   int
	low    int
	kicker int
}

type onePair struct {
	rank    int
	kickers []int
}

type highCard struct {
	ranks []int
}

func cmpInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}

	return 0
}

// cmpRanks compares two rank lists positionally, highest first
func cmpRanks(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmpInt(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmpInt(len(a), len(b))
}

func (s straightFlush) compare(other tieBreaker) int {
	return cmpInt(s.high, other.(straightFlush).high)
}

func (f fourOfAKind) compare(other tieBreaker) int {
	o := other.(fourOfAKind)
	return cmpRanks([]int{f.rank, f.kicker}, []int{o.rank, o.kicker})
}

func (f fullHouse) compare(other tieBreaker) int {
	o := other.(fullHouse)
	return cmpRanks([]int{f.trips, f.pair}, []int{o.trips, o.pair})
}

func (f flush) compare(other tieBreaker) int {
	return cmpRanks(f.ranks, other.(flush).ranks)
}

func (s straight) compare(other tieBreaker) int {
	return cmpInt(s.high, other.(straight).high)
}

func (t threeOfAKind) compare(other tieBreaker) int {
	o := other.(threeOfAKind)
	if c := cmpInt(t.rank, o.rank); c != 0 {
		return c
	}

	return cmpRanks(t.kickers, o.kickers)
}

func (t twoPair) compare(other tieBreaker) int {
	o := other.(twoPair)
	return cmpRanks([]int{t.high, t.low, t.kicker}, []int{o.high, o.low, o.kicker})
}

func (p onePair) compare(other tieBreaker) int {
	o := other.(onePair)
	if c := cmpInt(p.rank, o.rank); c != 0 {
		return c
	}

	return cmpRanks(p.kickers, o.kickers)
}

func (h highCard) compare(other tieBreaker) int {
	return cmpRanks(h.ranks, other.(highCard).ranks)
}

func plural(rank int) string {
	return deck.RankName(rank) + "s"
}

func (s straightFlush) describe() string {
	if s.high == deck.Ace {
		return "Royal flush"
	}

	return fmt.Sprintf("Straight flush, %s high", deck.RankName(s.high))
}

func (f fourOfAKind) describe() string {
	return fmt.Sprintf("Four of a kind, %s", plural(f.rank))
}

func (f fullHouse) describe() string {
	return fmt.Sprintf("Full house, %s over %s", plural(f.trips), plural(f.pair))
}

func (f flush) describe() string {
	return fmt.Sprintf("Flush, %s high", deck.RankName(f.ranks[0]))
}

func (s straight) describe() string {
	return fmt.Sprintf("Straight, %s high", deck.RankName(s.high))
}

func (t threeOfAKind) describe() string {
	return fmt.Sprintf("Three of a kind, %s", plural(t.rank))
}

func (t twoPair) describe() string {
	return fmt.Sprintf("Two pair, %s and %s", plural(t.high), plural(t.low))
}

func (p onePair) describe() string {
	return fmt.Sprintf("Pair of %s", plural(p.rank))
}

func (h highCard) describe() string {
	return fmt.Sprintf("High card %s", deck.RankName(h.ranks[0]))
}

// Describe returns a human readable description, i.e., "Full house, Kings over 3s"
func (e Evaluation) Describe() string {
	if e.tie == nil {
		return ""
	}

	return e.tie.describe()
}

// TieBreak returns the ranks used to break ties within the category, most significant first
// A zero denotes a missing kicker.
func (e Evaluation) TieBreak() []int {
	switch t := e.tie.(type) {
	case straightFlush:
		return []int{t.high}
	case fourOfAKind:
		return []int{t.rank, t.kicker}
	case fullHouse:
		return []int{t.trips, t.pair}
	case flush:
		return append([]int(nil), t.ranks...)
	case straight:
		return []int{t.high}
	case threeOfAKind:
		return append([]int{t.rank}, t.kickers...)
	case twoPair:
		return []int{t.high, t.low, t.kicker}
	case onePair:
		return append([]int{t.rank}, t.kickers...)
	case highCard:
		return append([]int(nil), t.ranks...)
	}

	return nil
}
