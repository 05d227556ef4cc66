package bridge

import (
	"errors"
	"fmt"
)

// Sentinel errors for deals that cannot be completed or validated.
var (
	// ErrAmbiguousDeal is returned when two or more seats have no cards, so
	// there is no unique way to reconstruct the omitted hand.
	ErrAmbiguousDeal = errors.New("ambiguous deal: more than one seat has no cards")

	// ErrInvalidDeal is returned when a deal does not contain each of the 52
	// cards exactly once with 13 cards per seat.
	ErrInvalidDeal = errors.New("invalid deal")
)

// Deal maps each seat to its hand. A complete, valid deal holds every one of
// the 52 cards exactly once.
type Deal map[Seat]Hand

// NewDeal returns a deal with an empty hand for every seat.
func NewDeal() Deal {
	d := make(Deal, 4)
	for _, seat := range Seats {
		d[seat] = NewHand()
	}
	return d
}

// missingSeats returns the seats whose hands are absent or hold zero cards,
// in LIN deal order so reconstruction is deterministic.
func (d Deal) missingSeats() []Seat {
	var missing []Seat
	for _, seat := range DealOrder {
		hand, ok := d[seat]
		if !ok || hand.Count() == 0 {
			missing = append(missing, seat)
		}
	}
	return missing
}

// Complete fills in a single omitted hand and validates the result.
//
// LIN files commonly leave the fourth hand out (or encode it with no cards)
// because it is derivable from the other three. Exactly one empty seat is
// therefore repaired from the complement of the 52-card deck; zero empty
// seats means the deal is used as decoded. Two or more empty seats cannot be
// repaired unambiguously and return ErrAmbiguousDeal. Any deal that does not
// come out of this as 4 hands of 13 unique cards returns ErrInvalidDeal.
func (d Deal) Complete() error {
	missing := d.missingSeats()
	switch len(missing) {
	case 0:
		// All four hands were decoded.
	case 1:
		d.reconstruct(missing[0])
	default:
		return fmt.Errorf("%w: seats %v", ErrAmbiguousDeal, missing)
	}
	return d.Validate()
}

// reconstruct derives the hand for seat as the deck complement of the other
// three hands, sorted high to low within each suit.
func (d Deal) reconstruct(seat Seat) {
	// remaining[suit][rank] is true while the card is still unaccounted for.
	var remaining [4][13]bool
	for _, suit := range Suits {
		for _, rank := range Ranks {
			remaining[suit][rank] = true
		}
	}

	for other, hand := range d {
		if other == seat {
			continue
		}
		for suit, ranks := range hand {
			for _, rank := range ranks {
				remaining[suit][rank] = false
			}
		}
	}

	rebuilt := NewHand()
	for _, suit := range Suits {
		for _, rank := range Ranks {
			if remaining[suit][rank] {
				rebuilt[suit] = append(rebuilt[suit], rank)
			}
		}
	}
	d[seat] = rebuilt
}

// Validate checks the card-conservation invariant: each seat holds exactly 13
// cards and no card appears in two hands. Together those guarantee the union
// of the four hands is the full deck.
func (d Deal) Validate() error {
	var seen [4][13]bool
	for _, seat := range Seats {
		hand, ok := d[seat]
		if !ok {
			return fmt.Errorf("%w: no hand for seat %s", ErrInvalidDeal, seat)
		}
		if n := hand.Count(); n != 13 {
			return fmt.Errorf("%w: seat %s holds %d cards, want 13", ErrInvalidDeal, seat, n)
		}
		for suit, ranks := range hand {
			for _, rank := range ranks {
				if rank < Ace || rank > Two {
					return fmt.Errorf("%w: seat %s holds unknown rank in %s", ErrInvalidDeal, seat, suit)
				}
				if seen[suit][rank] {
					card := Card{Suit: suit, Rank: rank}
					return fmt.Errorf("%w: card %s dealt twice", ErrInvalidDeal, card)
				}
				seen[suit][rank] = true
			}
		}
	}
	return nil
}

// PBN renders the deal as a PBN deal string starting from North, e.g.
// "N:AKQ.432.432.432 ... ... ...". This is the interchange form double-dummy
// solvers consume.
func (d Deal) PBN() string {
	out := "N:"
	for i, seat := range Seats {
		if i > 0 {
			out += " "
		}
		out += d[seat].PBNSuits()
	}
	return out
}
