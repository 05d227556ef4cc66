// Package viewer builds Bridge Base Online handviewer links for decoded
// boards, so a report can point at an interactive rendering of the deal.
package viewer

import (
	"net/url"
	"strings"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// BaseURL is the BBO handviewer endpoint.
const BaseURL = "https://www.bridgebase.com/tools/handviewer.html"

// seatParams maps each seat to its handviewer query parameter.
var seatParams = map[bridge.Seat]string{
	bridge.North: "n",
	bridge.East:  "e",
	bridge.South: "s",
	bridge.West:  "w",
}

// vulCodes maps vulnerability to the handviewer code: n (none), b (both),
// e (EW), s (NS).
var vulCodes = map[bridge.Vulnerability]string{
	bridge.VulNone: "n",
	bridge.VulAll:  "b",
	bridge.VulEW:   "e",
	bridge.VulNS:   "s",
}

// URL renders the board as a handviewer link carrying the four hands, the
// dealer, the vulnerability, the board id, and the auction.
func URL(board *bridge.Board) string {
	params := url.Values{}

	for seat, key := range seatParams {
		params.Set(key, handParam(board.Deal[seat]))
	}

	params.Set("d", strings.ToLower(board.Dealer.String()))
	params.Set("v", vulCodes[board.Vulnerability])
	if board.ID != "" {
		params.Set("b", board.ID)
	}
	if len(board.Auction) > 0 {
		params.Set("a", auctionParam(board.Auction))
	}

	return BaseURL + "?" + params.Encode()
}

// handParam renders a hand as "s{spades}h{hearts}d{diamonds}c{clubs}".
func handParam(hand bridge.Hand) string {
	var b strings.Builder
	for _, suit := range bridge.Suits {
		b.WriteString(strings.ToLower(suit.String()))
		for _, rank := range hand[suit] {
			b.WriteString(rank.String())
		}
	}
	return b.String()
}

// auctionParam joins the calls with dashes, passes rendered as "p".
func auctionParam(calls []bridge.Call) string {
	parts := make([]string, 0, len(calls))
	for _, call := range calls {
		switch call.Kind {
		case bridge.CallPass:
			parts = append(parts, "p")
		case bridge.CallDouble:
			parts = append(parts, "d")
		case bridge.CallRedouble:
			parts = append(parts, "r")
		default:
			parts = append(parts, call.String())
		}
	}
	return strings.Join(parts, "-")
}
