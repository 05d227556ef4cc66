package auction

import (
	"testing"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// calls parses a whitespace-free list of auction tokens.
func calls(tokens ...string) []bridge.Call {
	out := make([]bridge.Call, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, bridge.ParseCall(tok))
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		dealer   bridge.Seat
		calls    []bridge.Call
		want     string
		declarer bridge.Seat
	}{
		{
			name:   "passed out",
			dealer: bridge.North,
			calls:  calls("p", "p", "p", "p"),
			want:   "PASS",
		},
		{
			name:   "empty auction",
			dealer: bridge.South,
			calls:  nil,
			want:   "PASS",
		},
		{
			name:     "simple game",
			dealer:   bridge.North,
			calls:    calls("1N", "p", "3N", "p", "p", "p"),
			want:     "3NT",
			declarer: bridge.North,
		},
		{
			name:   "declarer is first to name the strain",
			dealer: bridge.South,
			// South passes, West opens 1S, East raises. West declares even
			// though East made the final bid.
			calls:    calls("p", "1S", "p", "2S", "p", "p", "p"),
			want:     "2S",
			declarer: bridge.West,
		},
		{
			name:   "partner strain does not transfer across sides",
			dealer: bridge.West,
			// West's hearts lose to North-South's spades; North bid spades
			// first for NS.
			calls:    calls("1H", "1S", "p", "2S", "p", "p", "p"),
			want:     "2S",
			declarer: bridge.North,
		},
		{
			name:     "doubled final contract",
			dealer:   bridge.East,
			calls:    calls("1S", "p", "p", "X", "p", "p", "p"),
			want:     "1SX",
			declarer: bridge.East,
		},
		{
			name:     "redoubled final contract",
			dealer:   bridge.East,
			calls:    calls("1S", "p", "p", "X", "XX", "p", "p", "p"),
			want:     "1SXX",
			declarer: bridge.East,
		},
		{
			name:   "later bid clears a pending double",
			dealer: bridge.North,
			// 2H is doubled but East takes the double out to 2S, which
			// plays undoubled.
			calls:    calls("1H", "p", "2H", "X", "p", "2S", "p", "p", "p"),
			want:     "2S",
			declarer: bridge.East,
		},
		{
			name:   "dealer rotation from west",
			dealer: bridge.West,
			// West, North, East, South in turn; South's 4H stands and South
			// is the first NS heart bidder.
			calls:    calls("p", "p", "p", "4H", "p", "p", "p"),
			want:     "4H",
			declarer: bridge.South,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.dealer, tt.calls)
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("Resolve() = %q, want %q", got.String(), tt.want)
			}
			if got.Passed {
				return
			}
			if got.Declarer != tt.declarer {
				t.Errorf("declarer = %v, want %v", got.Declarer, tt.declarer)
			}
		})
	}
}

func TestContractString(t *testing.T) {
	c := Contract{Level: 6, Strain: bridge.StrainNoTrump, Declarer: bridge.South, Doubling: Doubled}
	if got := c.String(); got != "6NTX" {
		t.Errorf("String() = %q, want 6NTX", got)
	}
	if got := (Contract{Passed: true}).String(); got != "PASS" {
		t.Errorf("passed-out String() = %q, want PASS", got)
	}
}
