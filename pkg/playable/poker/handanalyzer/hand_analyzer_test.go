package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/deck"
)

func TestEvaluate(t *testing.T) {
	type testCase struct {
		cards     string
		hand      Hand
		tieBreak  []int
		describes string
	}

	tests := []testCase{
		{"10s,11s,12s,13s,14s,2c,3d", StraightFlush, []int{14}, "Royal flush"},
		{"14h,2h,3h,4h,5h,9c,9d", StraightFlush, []int{5}, "Straight flush, 5 high"},
		{"4d,5d,6d,7d,8d,9d,14c", StraightFlush, []int{9}, "Straight flush, 9 high"},
		{"9c,9d,9h,9s,2c,14d,3h", FourOfAKind, []int{9, 14}, "Four of a kind, 9s"},
		{"13c,13d,13h,3s,3c,3d,2h", FullHouse, []int{13, 3}, "Full house, Kings over 3s"},
		{"3c,3d,3h,4c,4d,4h,5c", FullHouse, []int{4, 3}, "Full house, 4s over 3s"},
		{"12c,12d,12h,5s,5c,9d,9h", FullHouse, []int{12, 9}, "Full house, Queens over 9s"},
		{"2h,5h,7h,9h,11h,13h,14c", Flush, []int{13, 11, 9, 7, 5}, "Flush, King high"},
		{"14c,2d,3h,4s,5c,9d,13h", Straight, []int{5}, "Straight, 5 high"},
		{"10c,11d,12h,13s,14c,2d,3h", Straight, []int{14}, "Straight, Ace high"},
		{"4c,5d,6h,7s,8c,9d,2h", Straight, []int{9}, "Straight, 9 high"},
		{"7c,7d,7h,2s,9c,13d,4h", ThreeOfAKind, []int{7, 13, 9}, "Three of a kind, 7s"},
		{"11c,11d,4h,4s,9c,9d,14h", TwoPair, []int{11, 9, 14}, "Two pair, Jacks and 9s"},
		{"11c,11d,4h,4s,9c,9d,2h", TwoPair, []int{11, 9, 4}, "Two pair, Jacks and 9s"},
		{"10c,10d,2h,6s,9c,12d,14h", OnePair, []int{10, 14, 12, 9}, "Pair of 10s"},
		{"2c,4d,6h,8s,10c,12d,13h", HighCard, []int{13, 12, 10, 8, 6}, "High card King"},
		{"2c,14d", HighCard, []int{14, 2}, "High card Ace"},
		{"14c,14d", OnePair, []int{14}, "Pair of Aces"},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			a := assert.New(t)
			e := Evaluate(deck.CardsFromString(test.cards))
			a.Equal(test.hand, e.Hand)
			a.Equal(test.tieBreak, e.TieBreak())
			a.Equal(test.describes, e.Describe())
		})
	}

	assert.Panics(t, func() { Evaluate(nil) })
}

func TestTest(t *testing.T) {
	a := assert.New(t)
	cards := deck.CardsFromString("13c,13d,13h,3s,3c,3d,2h")

	_, ok := Test(StraightFlush, cards)
	a.False(ok)
	_, ok = Test(FourOfAKind, cards)
	a.False(ok)

	e, ok := Test(FullHouse, cards)
	a.True(ok)
	a.Equal(FullHouse, e.Hand)

	// lower categories also qualify
	e, ok = Test(ThreeOfAKind, cards)
	a.True(ok)
	a.Equal([]int{13, 3, 2}, e.TieBreak())

	e, ok = Test(TwoPair, cards)
	a.True(ok)
	a.Equal([]int{13, 3, 2}, e.TieBreak())
}

func TestNumNeeded(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, NumNeeded(Straight, deck.CardsFromString("5c,6d,7h,8s")))
	a.Equal(1, NumNeeded(Straight, deck.CardsFromString("14c,2d,3h,4s")))
	a.Equal(0, NumNeeded(Straight, deck.CardsFromString("14c,2d,3h,4s,5c")))
	a.Equal(2, NumNeeded(Flush, deck.CardsFromString("2h,5h,9h,13c")))
	a.Equal(2, NumNeeded(StraightFlush, deck.CardsFromString("2h,3h,4h,13c")))
	a.Equal(1, NumNeeded(FullHouse, deck.CardsFromString("2h,2c,4h,4c")))
	a.Equal(2, NumNeeded(FourOfAKind, deck.CardsFromString("2h,2c,4h")))
	a.Equal(0, NumNeeded(HighCard, deck.CardsFromString("2h")))
	a.Equal(1, NumNeeded(HighCard, nil))
}

func TestCompare(t *testing.T) {
	cmp := func(h Hand, c1, c2 string) int {
		t.Helper()
		e1, ok := Test(h, deck.CardsFromString(c1))
		assert.True(t, ok, c1)
		e2, ok := Test(h, deck.CardsFromString(c2))
		assert.True(t, ok, c2)
		return Compare(e1, e2)
	}

	a := assert.New(t)
	a.Equal(1, cmp(StraightFlush, "5h,6h,7h,8h,9h", "14h,2h,3h,4h,5h"))
	a.Equal(1, cmp(FourOfAKind, "9c,9d,9h,9s,14d", "9c,9d,9h,9s,13d"))
	a.Equal(-1, cmp(FullHouse, "3c,3d,3h,14c,14d", "4c,4d,4h,2c,2d"))
	a.Equal(1, cmp(FullHouse, "4c,4d,4h,6c,6d", "4c,4d,4h,5c,5d"))
	a.Equal(-1, cmp(Flush, "2h,5h,7h,9h,13h", "3h,5h,7h,9h,13h"))
	a.Equal(0, cmp(Straight, "14c,2d,3h,4s,5c", "14d,2h,3s,4c,5h"))
	a.Equal(1, cmp(Straight, "2c,3d,4h,5s,6c", "14d,2h,3s,4c,5h"))
	a.Equal(1, cmp(ThreeOfAKind, "7c,7d,7h,13c,2d", "7c,7d,7h,12c,11d"))
	a.Equal(-1, cmp(TwoPair, "11c,11d,4h,4s,2c", "11c,11d,5h,5s,2c"))
	a.Equal(1, cmp(TwoPair, "11c,11d,4h,4s,3c", "11c,11d,4h,4s,2c"))
	a.Equal(1, cmp(OnePair, "10c,10d,14h,6s,3c", "10h,10s,13h,12s,11c"))
	a.Equal(-1, cmp(OnePair, "10c,10d,14h,6s,3c", "10h,10s,14c,6d,4c"))
	a.Equal(0, cmp(HighCard, "14c,12d,9h,6s,3c", "14d,12h,9s,6c,3d"))
	a.Equal(-1, cmp(HighCard, "14c,12d,9h,6s,2c", "14d,12h,9s,6c,3d"))

	e1 := Evaluate(deck.CardsFromString("14c,14d"))
	e2 := Evaluate(deck.CardsFromString("14c,13d"))
	a.Panics(func() { Compare(e1, e2) })
}

func TestWinners(t *testing.T) {
	winners := func(board string, holes ...string) (Hand, []int) {
		t.Helper()
		hands := make([][]*deck.Card, len(holes))
		for i, hole := range holes {
			hands[i] = deck.CardsFromString(hole + "," + board)
		}

		h, w, err := Winners(hands)
		assert.NoError(t, err)
		return h, w
	}

	a := assert.New(t)

	h, w := winners("2c,6c,9c,12c,14c", "10h,4h", "10d,4s")
	a.Equal(Flush, h, "the board plays a flush for both")
	a.Equal([]int{0, 1}, w)

	h, w = winners("2c,6d,9s,10c,14c", "10h,4h", "10d,4s")
	a.Equal(OnePair, h, "both play a pair of 10s with A-9-6")
	a.Equal([]int{0, 1}, w)

	h, w = winners("2c,6d,9s,12h,14c", "10h,4h", "10d,4s")
	a.Equal(HighCard, h)
	a.Equal([]int{0, 1}, w)

	h, w = winners("2c,6d,9s,10c,14c", "10h,4h", "10d,5s", "3c,3d")
	a.Equal(OnePair, h)
	a.Equal([]int{0, 1}, w, "kickers past the fifth card do not count")

	h, w = winners("2c,6d,9s,12h,14c", "13h,4h", "14d,3s", "3c,3d")
	a.Equal(OnePair, h)
	a.Equal([]int{1}, w)

	h, w = winners("2c,3d,4s,12h,13c", "14h,5h", "5d,6s", "12c,12d")
	a.Equal(Straight, h)
	a.Equal([]int{1}, w)

	h, w = winners("9c,9d,9h,2s,3c", "9s,4h", "2c,2d", "14c,14d")
	a.Equal(FourOfAKind, h)
	a.Equal([]int{0}, w)

	_, _, err := Winners(nil)
	a.Equal(ErrNoContenders, err)

	_, _, err = Winners([][]*deck.Card{{}, {}})
	a.Equal(ErrNoWinners, err)
}

func TestWinners_CategoryMonotonicity(t *testing.T) {
	a := assert.New(t)

	// one example of every category, strongest first
	examples := []string{
		"5h,6h,7h,8h,9h,2c,2d",
		"3c,3d,3h,3s,14c,13d,12h",
		"13c,13d,13h,3s,3c,7d,2h",
		"2h,5h,7h,9h,11h,13c,14c",
		"14c,2d,3h,4s,5c,9d,13h",
		"7c,7d,7h,2s,9c,13d,4h",
		"11c,11d,4h,4s,9c,2d,14h",
		"10c,10d,2h,6s,9c,12d,14h",
		"2c,4d,6h,8s,10c,12d,13h",
	}

	for i, stronger := range examples {
		a.Equal(Categories[i], Evaluate(deck.CardsFromString(stronger)).Hand)
		for _, weaker := range examples[i+1:] {
			h, w, err := Winners([][]*deck.Card{
				deck.CardsFromString(weaker),
				deck.CardsFromString(stronger),
			})
			a.NoError(err)
			a.Equal(Categories[i], h)
			a.Equal([]int{1}, w)
		}
	}
}

func TestHand_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Straight flush", StraightFlush.String())
	a.Equal("High card", HighCard.String())
	a.Panics(func() { _ = Hand(99).String() })

	b, err := FullHouse.MarshalJSON()
	a.NoError(err)
	a.JSONEq(`{"id":6,"name":"Full house"}`, string(b))
}
