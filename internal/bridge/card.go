// Package bridge defines the core domain model for contract bridge deals:
// cards, seats, hands, deals, calls, and the validation rules that a decoded
// deal must satisfy before it is handed to analyzers.
package bridge

import "fmt"

// Suit is one of the four card suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists the suits in conventional display order (spades high).
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the single-letter suit code used by LIN and PBN.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	}
	return "?"
}

// SuitFromByte maps a suit marker character to its Suit.
// The second return value reports whether the character was a suit marker.
func SuitFromByte(b byte) (Suit, bool) {
	switch b {
	case 'S', 's':
		return Spades, true
	case 'H', 'h':
		return Hearts, true
	case 'D', 'd':
		return Diamonds, true
	case 'C', 'c':
		return Clubs, true
	}
	return 0, false
}

// Rank is a card rank. Ranks are ordered high to low: Ace is the highest.
type Rank int

const (
	Ace Rank = iota
	King
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Two
)

// Ranks lists all thirteen ranks from Ace down to Two.
var Ranks = [13]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

const rankLetters = "AKQJT98765432"

// String returns the single-character rank code. Ten renders as "T".
func (r Rank) String() string {
	if r < Ace || r > Two {
		return "?"
	}
	return string(rankLetters[r])
}

// RankFromByte maps a rank character to its Rank. It accepts upper and lower
// case and treats 'T' as ten; the two-character "10" form is handled by the
// hand decoder before ranks reach this function.
func RankFromByte(b byte) (Rank, bool) {
	switch b {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	case '9':
		return Nine, true
	case '8':
		return Eight, true
	case '7':
		return Seven, true
	case '6':
		return Six, true
	case '5':
		return Five, true
	case '4':
		return Four, true
	case '3':
		return Three, true
	case '2':
		return Two, true
	}
	return 0, false
}

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the card in "SA" style (suit then rank), matching the LIN
// play-log notation.
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// ParseCard parses a card written as suit then rank, e.g. "SA" or "h10".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("card %q too short", s)
	}
	suit, ok := SuitFromByte(s[0])
	if !ok {
		return Card{}, fmt.Errorf("card %q: unknown suit %q", s, s[0])
	}
	if s[1:] == "10" {
		return Card{Suit: suit, Rank: Ten}, nil
	}
	rank, ok := RankFromByte(s[1])
	if !ok || len(s) > 2 {
		return Card{}, fmt.Errorf("card %q: unknown rank %q", s, s[1:])
	}
	return Card{Suit: suit, Rank: rank}, nil
}
