// Package advisor suggests SAYC opening bids and first responses from the
// raw strength and shape of a hand. It exists to anchor downstream reporting
// in arithmetic rather than guesswork: high-card points and suit lengths are
// counted, never estimated.
package advisor

import (
	"fmt"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// hcpValues are the Milton Work point counts for the honour cards.
var hcpValues = map[bridge.Rank]int{
	bridge.Ace:   4,
	bridge.King:  3,
	bridge.Queen: 2,
	bridge.Jack:  1,
}

// HCP returns the hand's high-card point count (A=4, K=3, Q=2, J=1).
func HCP(hand bridge.Hand) int {
	points := 0
	for _, ranks := range hand {
		for _, rank := range ranks {
			points += hcpValues[rank]
		}
	}
	return points
}

// Distribution returns the suit lengths in display order S, H, D, C.
func Distribution(hand bridge.Hand) [4]int {
	var dist [4]int
	for i, suit := range bridge.Suits {
		dist[i] = hand.SuitLength(suit)
	}
	return dist
}

// Balanced reports whether the hand has a balanced shape: no void or
// singleton, at most one doubleton, and no suit longer than five. That
// covers 4-3-3-3, 4-4-3-2, and 5-3-3-2.
func Balanced(hand bridge.Hand) bool {
	doubletons := 0
	for _, suit := range bridge.Suits {
		switch n := hand.SuitLength(suit); {
		case n <= 1:
			return false
		case n == 2:
			doubletons++
		case n > 5:
			return false
		}
	}
	return doubletons <= 1
}

// Opening is a suggested opening bid with its rule-based explanation.
type Opening struct {
	HCP      int
	Balanced bool
	Bid      string
	Reason   string
}

// SuggestOpening walks the SAYC opening ladder for the given hand:
// strong 2C, then the notrump range bids, then one-level suit openings,
// then weak twos and three-level preempts, and finally pass.
func SuggestOpening(hand bridge.Hand) Opening {
	hcp := HCP(hand)
	balanced := Balanced(hand)

	bid, reason := openingBid(hand, hcp, balanced)
	return Opening{HCP: hcp, Balanced: balanced, Bid: bid, Reason: reason}
}

func openingBid(hand bridge.Hand, hcp int, balanced bool) (string, string) {
	if hcp >= 22 {
		return "2C", "Strong opening (22+ HCP)"
	}

	if balanced {
		if hcp >= 20 && hcp <= 21 {
			return "2NT", "20-21 HCP, balanced"
		}
		if hcp >= 15 && hcp <= 17 {
			return "1NT", "15-17 HCP, balanced"
		}
	}

	if hcp >= 12 {
		return standardOpening(hand)
	}

	// Weak two: a six-card suit other than clubs with 5-10 HCP.
	if hcp >= 5 && hcp <= 10 {
		for _, suit := range [3]bridge.Suit{bridge.Spades, bridge.Hearts, bridge.Diamonds} {
			if hand.SuitLength(suit) == 6 {
				return "2" + suit.String(), fmt.Sprintf("Weak two (6-card %s, 5-10 HCP)", suit)
			}
		}
	}

	// Three-level preempt: a seven-card suit below opening strength.
	for _, suit := range bridge.Suits {
		if hand.SuitLength(suit) >= 7 {
			return "3" + suit.String(), fmt.Sprintf("Preemptive (7+ card %s)", suit)
		}
	}

	return "PASS", "Insufficient values for opening"
}

// standardOpening picks the one-level opening for a hand with opening
// strength: the longer five-card major first, otherwise the better minor.
func standardOpening(hand bridge.Hand) (string, string) {
	spades := hand.SuitLength(bridge.Spades)
	hearts := hand.SuitLength(bridge.Hearts)

	if spades >= 5 || hearts >= 5 {
		switch {
		case spades > hearts:
			return "1S", "Longest major (5+ spades)"
		case hearts > spades:
			return "1H", "Longest major (5+ hearts)"
		default:
			return "1S", "5-5 majors, open the higher"
		}
	}

	diamonds := hand.SuitLength(bridge.Diamonds)
	clubs := hand.SuitLength(bridge.Clubs)
	switch {
	case diamonds > clubs:
		return "1D", "Longer minor"
	case clubs > diamonds:
		return "1C", "Longer minor"
	case diamonds == 4:
		return "1D", "4-4 minors, standard 1D"
	case diamonds == 3:
		return "1C", "3-3 minors, standard 1C"
	default:
		return "1D", "5-5 minors, open the higher"
	}
}
