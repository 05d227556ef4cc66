package bridge

// Board is the structured record for one decoded deal: identity, players,
// the deal itself, and everything that happened at the table. It is built up
// during decoding and treated as read-only once handed to analyzers.
type Board struct {
	// ID is the board identifier from the source, e.g. "o1".
	ID string

	// Players maps each seat to the player name, when the source names them.
	Players map[Seat]string

	// Dealer made the first call of the auction.
	Dealer Seat

	// Vulnerability of the board.
	Vulnerability Vulnerability

	// Deal holds the four hands. After decoding it always satisfies the
	// 52-unique-cards invariant.
	Deal Deal

	// Auction is the sequence of calls starting from the dealer.
	Auction []Call

	// PlayLog is the sequence of cards played, in play order. Cards that
	// could not be parsed are dropped during decoding.
	PlayLog []Card

	// ClaimedTricks is the number of tricks claimed at the end of play, or
	// nil when no claim was recorded.
	ClaimedTricks *int
}

// PlayerName returns the recorded name for a seat, or the seat code itself
// when the source never named the player.
func (b *Board) PlayerName(seat Seat) string {
	if name, ok := b.Players[seat]; ok && name != "" {
		return name
	}
	return seat.String()
}
