// Package report writes per-source JSON result files for a session, one
// file per processed LIN source.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bridgelab/bridgemaster/internal/engine"
)

// BoardResult is the JSON shape of one analyzed board.
type BoardResult struct {
	BoardID       string            `json:"board_id"`
	Players       map[string]string `json:"players,omitempty"`
	Dealer        string            `json:"dealer"`
	Vulnerability string            `json:"vulnerability"`
	DealPBN       string            `json:"deal_pbn"`
	Auction       []string          `json:"auction,omitempty"`
	Contract      string            `json:"contract"`
	Declarer      string            `json:"declarer,omitempty"`
	Doubling      string            `json:"doubling,omitempty"`
	ClaimedTricks *int              `json:"claimed_tricks,omitempty"`

	OpeningBid     string `json:"opening_bid"`
	OpeningReason  string `json:"opening_reason"`
	ResponseBid    string `json:"response_bid,omitempty"`
	ResponseConv   string `json:"response_convention,omitempty"`
	DoubleDummy    string `json:"double_dummy,omitempty"`
	HandViewerLink string `json:"hand_viewer_link"`
}

// SessionResult is the JSON document written for one source.
type SessionResult struct {
	Source      string        `json:"source"`
	GeneratedAt time.Time     `json:"generated_at"`
	Boards      []BoardResult `json:"boards"`
}

// Clean removes previous result files from the directory so sessions are
// never mixed. A missing directory is not an error.
func Clean(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read results directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("remove old result %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Write renders the analyses for one source into dir and returns the path
// of the written file.
func Write(dir, source string, analyses []*engine.Analysis) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create results directory: %w", err)
	}

	result := SessionResult{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Boards:      make([]BoardResult, 0, len(analyses)),
	}
	for _, a := range analyses {
		result.Boards = append(result.Boards, boardResult(a))
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal session result: %w", err)
	}

	name := strings.TrimSuffix(source, filepath.Ext(source)) + ".json"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write session result: %w", err)
	}
	return path, nil
}

// boardResult flattens one analysis for serialization.
func boardResult(a *engine.Analysis) BoardResult {
	b := a.Board

	r := BoardResult{
		BoardID:        b.ID,
		Dealer:         b.Dealer.String(),
		Vulnerability:  b.Vulnerability.String(),
		DealPBN:        b.Deal.PBN(),
		Contract:       a.Contract.String(),
		ClaimedTricks:  b.ClaimedTricks,
		OpeningBid:     a.Opening.Bid,
		OpeningReason:  a.Opening.Reason,
		HandViewerLink: a.ViewerURL,
	}

	if len(b.Players) > 0 {
		r.Players = make(map[string]string, len(b.Players))
		for seat, name := range b.Players {
			r.Players[seat.String()] = name
		}
	}
	for _, call := range b.Auction {
		r.Auction = append(r.Auction, call.String())
	}
	if !a.Contract.Passed {
		r.Declarer = a.Contract.Declarer.String()
		r.Doubling = a.Contract.Doubling.String()
	}
	if a.Response != nil {
		r.ResponseBid = a.Response.Bid
		r.ResponseConv = a.Response.Convention
	}
	if a.DD != nil {
		r.DoubleDummy = a.DD.Summary()
	}
	return r
}
