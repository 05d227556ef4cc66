// Package solver integrates an external double-dummy solver. The solver
// answers the question "how many tricks can each seat take in each strain
// with perfect play?", which downstream reporting uses as ground truth for a
// board. The deal travels to the solver in PBN form.
package solver

import (
	"context"
	"fmt"
	"strings"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

// Table is a double-dummy result: makeable tricks per declaring seat and
// strain.
type Table struct {
	// Tricks[seat][strain] is the number of tricks the seat can take as
	// declarer in the strain, 0-13.
	Tricks map[bridge.Seat]map[bridge.Strain]int
}

// Get returns the makeable tricks for a seat and strain, or 0 when the
// table has no entry.
func (t *Table) Get(seat bridge.Seat, strain bridge.Strain) int {
	return t.Tricks[seat][strain]
}

// SideMax returns the better of the two partners' trick counts in a strain.
func (t *Table) SideMax(side bridge.Side, strain bridge.Strain) int {
	a, b := bridge.North, bridge.South
	if side == bridge.EastWest {
		a, b = bridge.East, bridge.West
	}
	x, y := t.Get(a, strain), t.Get(b, strain)
	if x > y {
		return x
	}
	return y
}

// Summary renders a short per-side ceiling report, one line per partnership,
// naming every strain that ties for the side's best trick count.
func (t *Table) Summary() string {
	var lines []string
	lines = append(lines, "Double dummy analysis (optimal play):")
	for _, side := range [2]bridge.Side{bridge.NorthSouth, bridge.EastWest} {
		best := 0
		var strains []string
		// Walk notrump first, then spades down to clubs.
		for i := len(bridge.Strains) - 1; i >= 0; i-- {
			strain := bridge.Strains[i]
			n := t.SideMax(side, strain)
			if n > best {
				best = n
				strains = strains[:0]
			}
			if n == best && best > 0 {
				strains = append(strains, strain.String())
			}
		}
		if best == 0 {
			lines = append(lines, fmt.Sprintf("- %s ceiling: none", side))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s ceiling: %d in %s", side, best, strings.Join(strains, ", ")))
	}
	return strings.Join(lines, "\n")
}

// Solver computes double-dummy tables for complete deals.
type Solver interface {
	// Solve analyzes the deal and returns its double-dummy table. The deal
	// must already satisfy the 52-unique-cards invariant.
	Solve(ctx context.Context, deal bridge.Deal) (*Table, error)
}
