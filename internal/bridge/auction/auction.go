// Package auction replays a bidding sequence to determine the final
// contract, its declarer, and the doubling state.
package auction

import (
	"fmt"
	"strconv"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// Doubling is the doubling state of a contract.
type Doubling int

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

// String renders the conventional doubling marker: "", "X", or "XX".
func (d Doubling) String() string {
	switch d {
	case Doubled:
		return "X"
	case Redoubled:
		return "XX"
	}
	return ""
}

// Contract is the outcome of an auction. When Passed is true no bid was ever
// made and the remaining fields are meaningless.
type Contract struct {
	Passed   bool
	Level    int
	Strain   bridge.Strain
	Declarer bridge.Seat
	Doubling Doubling
}

// String renders the contract, e.g. "4S", "3NTXX", or "PASS" for a
// passed-out board.
func (c Contract) String() string {
	if c.Passed {
		return "PASS"
	}
	return strconv.Itoa(c.Level) + c.Strain.String() + c.Doubling.String()
}

// Resolve replays the auction from the dealer's seat and returns the final
// contract.
//
// Calls rotate one seat to the left per call. A bid records its maker as the
// partnership's first bidder of that strain (if the side had not named it
// before) and clears any pending double; doubles and redoubles only set the
// pending marker. The declarer of the final contract is the winning side's
// first bidder of the winning strain, which is not necessarily the seat that
// made the last bid.
//
// Resolve is a best-effort interpreter, not a legality checker: structurally
// odd auctions (a double out of turn, a redouble with nothing to redouble)
// are accepted without complaint. An empty auction or one with no bids at
// all resolves to the passed-out contract.
func Resolve(dealer bridge.Seat, calls []bridge.Call) (Contract, error) {
	// firstBidder[side][strain] is the seat that first named the strain for
	// that side, or nil while the side has not bid it.
	var firstBidder [2][5]*bridge.Seat

	seat := dealer
	var (
		lastBid    *bridge.Call
		lastBidder bridge.Seat
		doubling   Doubling
	)

	for _, call := range calls {
		switch call.Kind {
		case bridge.CallDouble:
			doubling = Doubled
		case bridge.CallRedouble:
			doubling = Redoubled
		case bridge.CallBid:
			doubling = Undoubled
			bid := call
			lastBid = &bid
			lastBidder = seat

			side := seat.Side()
			if firstBidder[side][call.Strain] == nil {
				bidder := seat
				firstBidder[side][call.Strain] = &bidder
			}
		case bridge.CallPass:
			// Only advances the rotation.
		}
		seat = seat.Next()
	}

	if lastBid == nil {
		return Contract{Passed: true}, nil
	}

	declarer := firstBidder[lastBidder.Side()][lastBid.Strain]
	if declarer == nil {
		// Cannot happen: the winning bid itself records a first bidder.
		return Contract{}, fmt.Errorf("auction: no recorded bidder for strain %s on side %s",
			lastBid.Strain, lastBidder.Side())
	}

	return Contract{
		Level:    lastBid.Level,
		Strain:   lastBid.Strain,
		Declarer: *declarer,
		Doubling: doubling,
	}, nil
}
