package bridge

// Seat is one of the four positions at the table. The zero value is North.
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

// Seats lists the seats in rotation order North -> East -> South -> West.
var Seats = [4]Seat{North, East, South, West}

// DealOrder is the fixed seat order LIN files use for player names and
// hand strings: South, West, North, East.
var DealOrder = [4]Seat{South, West, North, East}

// String returns the one-letter seat code.
func (s Seat) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Next returns the seat to the left, i.e. the next seat to call or play.
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

// Side returns the partnership the seat belongs to.
func (s Seat) Side() Side {
	if s == North || s == South {
		return NorthSouth
	}
	return EastWest
}

// Side is a partnership: North-South or East-West.
type Side int

const (
	NorthSouth Side = iota
	EastWest
)

// String returns "NS" or "EW".
func (p Side) String() string {
	if p == NorthSouth {
		return "NS"
	}
	return "EW"
}

// Vulnerability is the scoring state of a board.
type Vulnerability int

const (
	VulNone Vulnerability = iota
	VulNS
	VulEW
	VulAll
)

// String returns the conventional display form.
func (v Vulnerability) String() string {
	switch v {
	case VulNS:
		return "NS"
	case VulEW:
		return "EW"
	case VulAll:
		return "All"
	}
	return "None"
}

// Vulnerable reports whether the given side is vulnerable.
func (v Vulnerability) Vulnerable(side Side) bool {
	switch v {
	case VulAll:
		return true
	case VulNS:
		return side == NorthSouth
	case VulEW:
		return side == EastWest
	}
	return false
}
