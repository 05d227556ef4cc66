package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// hand builds a Hand from per-suit rank lists in S, H, D, C order.
func hand(spades, hearts, diamonds, clubs []bridge.Rank) bridge.Hand {
	return bridge.Hand{
		bridge.Spades:   spades,
		bridge.Hearts:   hearts,
		bridge.Diamonds: diamonds,
		bridge.Clubs:    clubs,
	}
}

func TestHCP(t *testing.T) {
	h := hand(
		[]bridge.Rank{bridge.Ace, bridge.King, bridge.Queen, bridge.Jack},
		[]bridge.Rank{bridge.Ten, bridge.Nine, bridge.Eight},
		[]bridge.Rank{bridge.Four, bridge.Three, bridge.Two},
		[]bridge.Rank{bridge.Four, bridge.Three, bridge.Two},
	)
	assert.Equal(t, 10, HCP(h), "AKQJ should count 4+3+2+1")
	assert.Equal(t, 0, HCP(bridge.NewHand()))
}

func TestBalanced(t *testing.T) {
	tests := []struct {
		name string
		dist [4]int
		want bool
	}{
		{"4-3-3-3", [4]int{4, 3, 3, 3}, true},
		{"4-4-3-2", [4]int{4, 4, 3, 2}, true},
		{"5-3-3-2", [4]int{5, 3, 3, 2}, true},
		{"5-4-2-2", [4]int{5, 4, 2, 2}, false},
		{"6-3-2-2", [4]int{6, 3, 2, 2}, false},
		{"singleton", [4]int{5, 4, 3, 1}, false},
		{"void", [4]int{5, 4, 4, 0}, false},
	}

	low := []bridge.Rank{bridge.Nine, bridge.Eight, bridge.Seven, bridge.Six, bridge.Five, bridge.Four}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := bridge.NewHand()
			for i, suit := range bridge.Suits {
				h[suit] = low[:tt.dist[i]]
			}
			assert.Equal(t, tt.want, Balanced(h))
		})
	}
}

func TestSuggestOpening(t *testing.T) {
	r := func(ranks ...bridge.Rank) []bridge.Rank { return ranks }

	tests := []struct {
		name    string
		hand    bridge.Hand
		wantBid string
		wantHCP int
	}{
		{
			name: "strong two clubs",
			hand: hand(
				r(bridge.Ace, bridge.King, bridge.Queen, bridge.Jack),
				r(bridge.Ace, bridge.King, bridge.Queen),
				r(bridge.Ace, bridge.King, bridge.Queen),
				r(bridge.Ace, bridge.King, bridge.Queen),
			),
			wantBid: "2C",
			wantHCP: 37,
		},
		{
			name: "two notrump",
			hand: hand(
				r(bridge.Ace, bridge.King, bridge.Queen, bridge.Four),
				r(bridge.King, bridge.Queen, bridge.Three),
				r(bridge.Ace, bridge.Five, bridge.Four),
				r(bridge.Queen, bridge.Three, bridge.Two),
			),
			wantBid: "2NT",
			wantHCP: 20,
		},
		{
			name: "one notrump",
			hand: hand(
				r(bridge.King, bridge.Queen, bridge.Three, bridge.Two),
				r(bridge.Ace, bridge.Four, bridge.Three),
				r(bridge.King, bridge.Three, bridge.Two),
				r(bridge.King, bridge.Three, bridge.Two),
			),
			wantBid: "1NT",
			wantHCP: 15,
		},
		{
			name: "five-card major",
			hand: hand(
				r(bridge.Ace, bridge.King, bridge.Queen, bridge.Three, bridge.Two),
				r(bridge.King, bridge.Three, bridge.Two),
				r(bridge.Four, bridge.Three, bridge.Two),
				r(bridge.Four, bridge.Two),
			),
			wantBid: "1S",
			wantHCP: 12,
		},
		{
			name: "longer minor",
			hand: hand(
				r(bridge.King, bridge.Three, bridge.Two),
				r(bridge.Ace, bridge.Three, bridge.Two),
				r(bridge.Queen, bridge.Jack, bridge.Three, bridge.Two),
				r(bridge.King, bridge.Three, bridge.Two),
			),
			wantBid: "1D",
			wantHCP: 13,
		},
		{
			name: "weak two hearts",
			hand: hand(
				r(bridge.Four, bridge.Three, bridge.Two),
				r(bridge.King, bridge.Queen, bridge.Jack, bridge.Four, bridge.Three, bridge.Two),
				r(bridge.Ace, bridge.Three, bridge.Two),
				r(bridge.Two),
			),
			wantBid: "2H",
			wantHCP: 10,
		},
		{
			name: "three-level preempt",
			hand: hand(
				r(bridge.Three, bridge.Two),
				r(bridge.Three, bridge.Two),
				r(bridge.Three, bridge.Two),
				r(bridge.King, bridge.Queen, bridge.Jack, bridge.Five, bridge.Four, bridge.Three, bridge.Two),
			),
			wantBid: "3C",
			wantHCP: 6,
		},
		{
			name: "pass",
			hand: hand(
				r(bridge.Four, bridge.Three, bridge.Two),
				r(bridge.Four, bridge.Three, bridge.Two),
				r(bridge.Four, bridge.Three, bridge.Two),
				r(bridge.Five, bridge.Four, bridge.Three, bridge.Two),
			),
			wantBid: "PASS",
			wantHCP: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestOpening(tt.hand)
			assert.Equal(t, tt.wantBid, got.Bid)
			assert.Equal(t, tt.wantHCP, got.HCP)
			assert.NotEmpty(t, got.Reason)
		})
	}
}
