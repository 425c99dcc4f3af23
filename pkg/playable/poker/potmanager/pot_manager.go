package potmanager

import (
	"fmt"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/handanalyzer"
)

// Distribution is the result of splitting the pot at showdown
type Distribution struct {
	Pots    Pots
	Payouts map[int64]int
	// Remainder are chips that could not be awarded to anyone
	// They are carried into the next hand's pot.
	Remainder int
}

// Distribute splits the pot among the participants
//
// participants must be ordered clockwise starting with the first seat left of the button, and
// must include every player that put chips in the pot. extra is added to the first pot awarded.
//
// The pot is built up in layers. The winners among the remaining contenders are found, and the
// smallest remaining contribution among the winners caps the layer. Every participant puts up
// to the cap into the layer, which is split evenly between the winners. Odd chips go one at a
// time to the winners in seat order. Contenders with nothing left in the pot drop out and the
// process repeats until no contenders remain.
func Distribute(participants []Participant, extra int) (*Distribution, error) {
	pips := make([]*participantInPot, len(participants))
	for i, p := range participants {
		pips[i] = &participantInPot{
			Participant: p,
			remaining:   p.Contribution(),
			cards:       p.ShowdownCards(),
		}
	}

	d := &Distribution{
		Pots:    make(Pots, 0),
		Payouts: make(map[int64]int),
	}

	for {
		contenders := make([]*participantInPot, 0, len(pips))
		for _, pip := range pips {
			if pip.cards != nil && pip.remaining > 0 {
				contenders = append(contenders, pip)
			}
		}

		if len(contenders) == 0 {
			break
		}

		hands := make([][]*deck.Card, len(contenders))
		for i, pip := range contenders {
			hands[i] = pip.cards
		}

		hand, winnerIndexes, err := handanalyzer.Winners(hands)
		if err != nil {
			return nil, fmt.Errorf("could not determine winners: %w", err)
		}

		winners := make([]*participantInPot, len(winnerIndexes))
		layerCap := -1
		for i, idx := range winnerIndexes {
			winners[i] = contenders[idx]
			if layerCap < 0 || winners[i].remaining < layerCap {
				layerCap = winners[i].remaining
			}
		}

		amount := extra
		extra = 0
		for _, pip := range pips {
			amount += pip.take(layerCap)
		}

		share := amount / len(winners)
		oddChips := amount % len(winners)
		for i, winner := range winners {
			payout := share
			if i < oddChips {
				payout++
			}

			d.Payouts[winner.ID()] += payout
		}

		d.Pots = append(d.Pots, &Pot{
			Amount:     amount,
			Hand:       hand,
			Contenders: unwrap(contenders),
			Winners:    unwrap(winners),
			Share:      share,
		})
	}

	d.Remainder = extra
	for _, pip := range pips {
		d.Remainder += pip.remaining
	}

	return d, nil
}

func unwrap(pips []*participantInPot) []Participant {
	participants := make([]Participant, len(pips))
	for i, pip := range pips {
		participants[i] = pip.Participant
	}

	return participants
}
