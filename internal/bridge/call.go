package bridge

import "strings"

// Strain is the denomination named by a bid: a suit or notrump.
type Strain int

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	StrainNoTrump
)

// Strains lists the strains from clubs up to notrump.
var Strains = [5]Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, StrainNoTrump}

// String renders the strain as its contract suffix; notrump is always the
// two-character "NT".
func (s Strain) String() string {
	switch s {
	case StrainClubs:
		return "C"
	case StrainDiamonds:
		return "D"
	case StrainHearts:
		return "H"
	case StrainSpades:
		return "S"
	case StrainNoTrump:
		return "NT"
	}
	return "?"
}

// CallKind distinguishes the four kinds of call.
type CallKind int

const (
	CallPass CallKind = iota
	CallBid
	CallDouble
	CallRedouble
)

// Call is one entry in an auction. Level and Strain are meaningful only for
// CallBid. Raw preserves the token exactly as it appeared in the source.
type Call struct {
	Kind   CallKind
	Level  int
	Strain Strain
	Raw    string
}

// String renders the call in display form: "PASS", "X", "XX", or e.g. "3NT".
func (c Call) String() string {
	switch c.Kind {
	case CallBid:
		return string('0'+byte(c.Level)) + c.Strain.String()
	case CallDouble:
		return "X"
	case CallRedouble:
		return "XX"
	}
	return "PASS"
}

// ParseCall interprets one auction token. It is deliberately permissive, the
// way LIN consumers have to be: case-insensitive, tolerant of the alert
// suffix "!", and accepting both "N" and "NT" for notrump. Tokens that fit no
// known shape come back as a pass so a garbled call never sinks the board.
func ParseCall(raw string) Call {
	c := Call{Kind: CallPass, Raw: raw}

	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "!")
	switch s {
	case "", "P", "PASS":
		return c
	case "D", "X", "DBL":
		c.Kind = CallDouble
		return c
	case "R", "XX", "RDBL":
		c.Kind = CallRedouble
		return c
	}

	if s[0] < '1' || s[0] > '7' {
		return c
	}
	strain, ok := parseStrain(s[1:])
	if !ok {
		return c
	}
	c.Kind = CallBid
	c.Level = int(s[0] - '0')
	c.Strain = strain
	return c
}

// parseStrain maps a bid suffix to its strain. A trailing "T" (the alternate
// notrump notation "1NT" vs "1N") is treated identically to "N".
func parseStrain(s string) (Strain, bool) {
	switch s {
	case "C":
		return StrainClubs, true
	case "D":
		return StrainDiamonds, true
	case "H":
		return StrainHearts, true
	case "S":
		return StrainSpades, true
	case "N", "NT":
		return StrainNoTrump, true
	}
	return 0, false
}
