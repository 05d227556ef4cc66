package advisor

import (
	"fmt"
	"strings"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// Response is a suggested first response to partner's opening bid, with the
// convention it belongs to and a short explanation.
type Response struct {
	HCP        int
	Bid        string
	Convention string
	Reason     string
}

// SuggestResponse suggests responder's first call after partner's opening.
// The opening is given in display form, e.g. "1H", "1NT", "PASS". Auctions
// this advisor has no rule for come back with bid "N/A".
func SuggestResponse(hand bridge.Hand, opening string) Response {
	hcp := HCP(hand)

	level, strain, ok := parseOpening(opening)
	if !ok {
		return Response{HCP: hcp, Bid: "N/A", Convention: "None",
			Reason: "Partner passed or the opening could not be read"}
	}

	switch {
	case strain == "H" || strain == "S":
		return respondToMajor(hand, hcp, strain)
	case (strain == "C" || strain == "D") && level == 1:
		return respondToMinor(hand, hcp)
	case strain == "NT" && level == 1:
		return respondTo1NT(hand, hcp)
	}

	return Response{HCP: hcp, Bid: "N/A", Convention: "None",
		Reason: "No rule for this opening yet"}
}

// parseOpening splits "1H" into (1, "H"). NT suffixes normalize to "NT".
func parseOpening(bid string) (int, string, bool) {
	bid = strings.ToUpper(strings.TrimSpace(bid))
	if len(bid) < 2 || bid == "PASS" {
		return 0, "", false
	}
	if bid[0] < '1' || bid[0] > '7' {
		return 0, "", false
	}
	strain := bid[1:]
	if strain == "N" || strain == "NT" {
		strain = "NT"
	}
	return int(bid[0] - '0'), strain, true
}

// respondToMajor handles first responses to a 1H or 1S opening: raise with
// a fit, otherwise show spades over hearts, otherwise 1NT or a new suit.
func respondToMajor(hand bridge.Hand, hcp int, strain string) Response {
	openSuit := bridge.Hearts
	if strain == "S" {
		openSuit = bridge.Spades
	}

	if support := hand.SuitLength(openSuit); support >= 3 {
		switch {
		case hcp >= 6 && hcp <= 9:
			return Response{HCP: hcp, Bid: "2" + strain, Convention: "Single Raise",
				Reason: fmt.Sprintf("6-9 HCP with %d-card support", support)}
		case hcp >= 10 && hcp <= 12:
			return Response{HCP: hcp, Bid: "3" + strain, Convention: "Limit Raise",
				Reason: fmt.Sprintf("10-12 HCP with %d-card support", support)}
		case hcp >= 13:
			return Response{HCP: hcp, Bid: "4" + strain, Convention: "Game Raise",
				Reason: "13+ HCP, game-forcing values with a fit"}
		}
	}

	if strain == "H" && hand.SuitLength(bridge.Spades) >= 4 && hcp >= 6 {
		return Response{HCP: hcp, Bid: "1S", Convention: "Natural",
			Reason: "4+ spades, 6+ HCP (forcing)"}
	}

	if hcp >= 6 && hcp <= 9 {
		return Response{HCP: hcp, Bid: "1NT", Convention: "Natural",
			Reason: "6-9 HCP, no fit, denies four spades"}
	}

	if hcp >= 11 {
		minor := bridge.Clubs
		if hand.SuitLength(bridge.Diamonds) >= hand.SuitLength(bridge.Clubs) {
			minor = bridge.Diamonds
		}
		if hand.SuitLength(minor) >= 4 {
			return Response{HCP: hcp, Bid: "2" + minor.String(), Convention: "New Suit (Forcing)",
				Reason: fmt.Sprintf("11+ HCP, 4+ %s", minor)}
		}
	}

	return Response{HCP: hcp, Bid: "PASS", Convention: "Weak", Reason: "Fewer than 6 HCP"}
}

// respondToMinor handles first responses to 1C or 1D: find a four-card
// major first, otherwise climb the notrump ladder.
func respondToMinor(hand bridge.Hand, hcp int) Response {
	if hcp < 6 {
		return Response{HCP: hcp, Bid: "PASS", Convention: "Weak", Reason: "Fewer than 6 HCP"}
	}

	hearts := hand.SuitLength(bridge.Hearts)
	spades := hand.SuitLength(bridge.Spades)
	switch {
	case hearts >= 4 && spades >= 4:
		return Response{HCP: hcp, Bid: "1H", Convention: "Natural",
			Reason: "4-4 majors, bid up the line"}
	case hearts >= 4:
		return Response{HCP: hcp, Bid: "1H", Convention: "Natural", Reason: "4+ hearts, 6+ HCP"}
	case spades >= 4:
		return Response{HCP: hcp, Bid: "1S", Convention: "Natural", Reason: "4+ spades, 6+ HCP"}
	}

	switch {
	case hcp <= 10:
		return Response{HCP: hcp, Bid: "1NT", Convention: "Natural",
			Reason: "6-10 HCP, no four-card major"}
	case hcp <= 12:
		return Response{HCP: hcp, Bid: "2NT", Convention: "Natural",
			Reason: "11-12 HCP, invitational, no four-card major"}
	case hcp <= 15:
		return Response{HCP: hcp, Bid: "3NT", Convention: "Natural",
			Reason: "13-15 HCP, game values, no four-card major"}
	}

	return Response{HCP: hcp, Bid: "2NT", Convention: "Natural",
		Reason: "Strong balanced raise, no four-card major"}
}

// respondTo1NT handles first responses to a 15-17 1NT: Jacoby transfers
// with a five-card major, Stayman with an invitational four-card major,
// otherwise the natural notrump ladder.
func respondTo1NT(hand bridge.Hand, hcp int) Response {
	if hand.SuitLength(bridge.Hearts) >= 5 {
		return Response{HCP: hcp, Bid: "2D", Convention: "Jacoby Transfer",
			Reason: "5+ hearts (transfer to hearts)"}
	}
	if hand.SuitLength(bridge.Spades) >= 5 {
		return Response{HCP: hcp, Bid: "2H", Convention: "Jacoby Transfer",
			Reason: "5+ spades (transfer to spades)"}
	}

	if hcp >= 8 && (hand.SuitLength(bridge.Hearts) == 4 || hand.SuitLength(bridge.Spades) == 4) {
		return Response{HCP: hcp, Bid: "2C", Convention: "Stayman",
			Reason: "8+ HCP, asking for a four-card major"}
	}

	switch {
	case hcp >= 8 && hcp <= 9:
		return Response{HCP: hcp, Bid: "2NT", Convention: "Invitational",
			Reason: "8-9 HCP, balanced"}
	case hcp >= 10 && hcp <= 15:
		return Response{HCP: hcp, Bid: "3NT", Convention: "Game",
			Reason: "10-15 HCP, balanced"}
	}

	return Response{HCP: hcp, Bid: "PASS", Convention: "Weak",
		Reason: "Under 8 HCP with no five-card major"}
}
