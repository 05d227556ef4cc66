package lin

import "github.com/bridgelab/bridgemaster/internal/bridge"

// decodeHand converts one seat's raw hand string, e.g. "SAKQH432D432C432",
// into a Hand. Each suit marker opens a run that accumulates rank characters
// until the next marker or the end of the string. The decoder is permissive:
// whitespace inside a run is dropped, "10" is read as ten, and characters
// that are neither suit markers nor ranks are ignored. Suit lengths are not
// checked here; that is the deal validator's job.
func decodeHand(s string) bridge.Hand {
	hand := bridge.NewHand()

	haveSuit := false
	var suit bridge.Suit
	for i := 0; i < len(s); i++ {
		b := s[i]
		if marker, ok := bridge.SuitFromByte(b); ok {
			suit = marker
			haveSuit = true
			continue
		}
		if !haveSuit {
			continue // junk before the first suit marker
		}
		if b == '1' && i+1 < len(s) && s[i+1] == '0' {
			hand[suit] = append(hand[suit], bridge.Ten)
			i++
			continue
		}
		if rank, ok := bridge.RankFromByte(b); ok {
			hand[suit] = append(hand[suit], rank)
		}
	}

	hand.Sort()
	return hand
}
