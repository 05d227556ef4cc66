package bridge

import (
	"sort"
	"strings"
)

// Hand holds one seat's cards, grouped by suit. Rank slices are kept in
// descending order (Ace first). A nil slice and an empty slice both mean the
// suit is void.
type Hand map[Suit][]Rank

// NewHand returns an empty hand with all four suits present.
func NewHand() Hand {
	return Hand{Spades: nil, Hearts: nil, Diamonds: nil, Clubs: nil}
}

// Count returns the total number of cards in the hand.
func (h Hand) Count() int {
	n := 0
	for _, ranks := range h {
		n += len(ranks)
	}
	return n
}

// SuitLength returns the number of cards held in the given suit.
func (h Hand) SuitLength(s Suit) int {
	return len(h[s])
}

// Sort orders every suit's ranks high to low.
func (h Hand) Sort() {
	for suit, ranks := range h {
		sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
		h[suit] = ranks
	}
}

// Cards returns every card in the hand, suits in display order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Count())
	for _, suit := range Suits {
		for _, rank := range h[suit] {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// String renders the hand in LIN style, e.g. "SAKQH432D432C432".
func (h Hand) String() string {
	var b strings.Builder
	for _, suit := range Suits {
		b.WriteString(suit.String())
		for _, rank := range h[suit] {
			b.WriteString(rank.String())
		}
	}
	return b.String()
}

// PBNSuits renders the hand as the dot-separated suit holdings used inside a
// PBN deal string, e.g. "AKQ.432.432.432".
func (h Hand) PBNSuits() string {
	parts := make([]string, 0, 4)
	for _, suit := range Suits {
		var b strings.Builder
		for _, rank := range h[suit] {
			b.WriteString(rank.String())
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ".")
}
