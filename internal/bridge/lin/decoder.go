package lin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// dealerDigits maps the leading digit of an "md" value to the dealer seat.
var dealerDigits = map[byte]bridge.Seat{
	'1': bridge.South,
	'2': bridge.West,
	'3': bridge.North,
	'4': bridge.East,
}

// vulCodes maps the "sv" value to a vulnerability.
var vulCodes = map[string]bridge.Vulnerability{
	"o": bridge.VulNone,
	"0": bridge.VulNone,
	"n": bridge.VulNS,
	"e": bridge.VulEW,
	"b": bridge.VulAll,
}

// boardBuilder accumulates one in-progress board. A builder is consumed when
// its board is emitted and replaced wholesale at the next board boundary, so
// no field can leak from one board into the next. Player names are the one
// deliberate exception: LIN names the players once per session, so they carry
// forward into each fresh builder.
type boardBuilder struct {
	id      string
	players map[bridge.Seat]string
	dealer  bridge.Seat
	vul     bridge.Vulnerability
	deal    bridge.Deal
	auction []bridge.Call
	play    []bridge.Card
	claimed *int
}

// newBoardBuilder starts a fresh builder carrying over the session players.
func newBoardBuilder(players map[bridge.Seat]string) *boardBuilder {
	return &boardBuilder{
		players: players,
		dealer:  bridge.South,
		vul:     bridge.VulNone,
	}
}

// hasDeal reports whether the builder has accumulated deal data, which is
// what decides whether a board boundary flushes it.
func (b *boardBuilder) hasDeal() bool {
	return b.deal != nil
}

// build completes the deal and returns the finished board. The returned
// error wraps bridge.ErrInvalidDeal or bridge.ErrAmbiguousDeal when the deal
// cannot be made whole.
func (b *boardBuilder) build() (*bridge.Board, error) {
	if err := b.deal.Complete(); err != nil {
		return nil, fmt.Errorf("board %s: %w", b.id, err)
	}

	players := make(map[bridge.Seat]string, len(b.players))
	for seat, name := range b.players {
		players[seat] = name
	}

	return &bridge.Board{
		ID:            b.id,
		Players:       players,
		Dealer:        b.dealer,
		Vulnerability: b.vul,
		Deal:          b.deal,
		Auction:       b.auction,
		PlayLog:       b.play,
		ClaimedTricks: b.claimed,
	}, nil
}

// Decode turns raw LIN text into one Board per deal found in it.
//
// Boards that decode cleanly are always returned. Boards whose deals cannot
// be completed or validated are left out and reported through the joined
// error, so a single bad board never hides or corrupts its neighbours.
// Content with no deals at all yields an empty slice and a nil error.
func Decode(content string) ([]*bridge.Board, error) {
	var (
		boards  []*bridge.Board
		errs    []error
		players = make(map[bridge.Seat]string, 4)
		builder = newBoardBuilder(players)
	)

	flush := func() {
		if !builder.hasDeal() {
			return
		}
		board, err := builder.build()
		if err != nil {
			errs = append(errs, err)
		} else {
			boards = append(boards, board)
		}
	}

	tok := NewTokenizer(content)
	for {
		tv, ok := tok.Next()
		if !ok {
			break
		}

		switch tagOf(tv.Tag) {
		case TagBoard:
			flush()
			builder = newBoardBuilder(players)
			builder.id = tv.Value

		case TagPlayers:
			for i, name := range strings.Split(tv.Value, ",") {
				if i >= len(bridge.DealOrder) {
					break
				}
				players[bridge.DealOrder[i]] = name
			}

		case TagDeal:
			if tv.Value == "" {
				break
			}
			if dealer, ok := dealerDigits[tv.Value[0]]; ok {
				builder.dealer = dealer
			} else {
				builder.dealer = bridge.South
			}
			deal := bridge.NewDeal()
			for i, handStr := range strings.Split(tv.Value[1:], ",") {
				if i >= len(bridge.DealOrder) {
					break
				}
				deal[bridge.DealOrder[i]] = decodeHand(handStr)
			}
			builder.deal = deal

		case TagVulnerability:
			if vul, ok := vulCodes[strings.ToLower(tv.Value)]; ok {
				builder.vul = vul
			} else {
				builder.vul = bridge.VulNone
			}

		case TagCall:
			if tv.Value != "" {
				builder.auction = append(builder.auction, bridge.ParseCall(tv.Value))
			}

		case TagPlay:
			if card, err := bridge.ParseCard(tv.Value); err == nil {
				builder.play = append(builder.play, card)
			}

		case TagClaim:
			if n, err := strconv.Atoi(strings.TrimSpace(tv.Value)); err == nil {
				builder.claimed = &n
			}

		case TagUnknown:
			// Skipped along with its value token.
		}
	}

	flush()
	return boards, errors.Join(errs...)
}
