package lin

import "strings"

// Tag is the closed set of LIN tags the decoder acts on. Tags outside this
// set classify as TagUnknown.
type Tag int

const (
	// TagUnknown covers every tag the decoder does not recognize. Unknown
	// tags are skipped together with their value token.
	TagUnknown Tag = iota

	// TagBoard ("qx") starts a new board and carries its identifier.
	TagBoard

	// TagPlayers ("pn") carries the comma-joined player names in seat order
	// South, West, North, East.
	TagPlayers

	// TagDeal ("md") carries the dealer digit followed by the comma-joined
	// hand strings in seat order South, West, North, East.
	TagDeal

	// TagVulnerability ("sv") carries the vulnerability code.
	TagVulnerability

	// TagCall ("mb") carries one auction call.
	TagCall

	// TagPlay ("pc") carries one played card.
	TagPlay

	// TagClaim ("mc") carries the number of tricks claimed.
	TagClaim
)

// tagNames maps the lowercase wire form to its Tag.
var tagNames = map[string]Tag{
	"qx": TagBoard,
	"pn": TagPlayers,
	"md": TagDeal,
	"sv": TagVulnerability,
	"mb": TagCall,
	"pc": TagPlay,
	"mc": TagClaim,
}

// tagOf classifies a raw tag token. Matching is case-insensitive.
func tagOf(raw string) Tag {
	if t, ok := tagNames[strings.ToLower(raw)]; ok {
		return t
	}
	return TagUnknown
}
