// Package engine runs the per-board analysis pipeline: decode LIN content
// into boards, resolve each board's contract, suggest the rule-based opening
// and response, optionally consult the double-dummy solver, and persist the
// results.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bridgelab/bridgemaster/internal/bridge"
	"github.com/bridgelab/bridgemaster/internal/bridge/advisor"
	"github.com/bridgelab/bridgemaster/internal/bridge/auction"
	"github.com/bridgelab/bridgemaster/internal/bridge/lin"
	"github.com/bridgelab/bridgemaster/internal/bridge/solver"
	"github.com/bridgelab/bridgemaster/internal/bridge/viewer"
	"github.com/bridgelab/bridgemaster/internal/storage"
)

// Analysis is everything the pipeline derives for one board.
type Analysis struct {
	Board    *bridge.Board
	Contract auction.Contract

	// Opening is the advised opening for the dealer's hand; Response is the
	// advised first response for the dealer's partner, present only when the
	// advised opening is not a pass.
	Opening  advisor.Opening
	Response *advisor.Response

	// DD holds the double-dummy table when a solver is configured and
	// reachable; nil otherwise.
	DD *solver.Table

	ViewerURL string
}

// Service wires the pipeline's collaborators together. Store and Solver are
// both optional: without a store results are only returned, without a solver
// the double-dummy step is skipped.
type Service struct {
	store  *storage.DB
	solver solver.Solver
	log    zerolog.Logger
}

// NewService creates a pipeline service.
func NewService(store *storage.DB, ddSolver solver.Solver, log zerolog.Logger) *Service {
	return &Service{store: store, solver: ddSolver, log: log}
}

// AnalyzeBoard derives the analysis for one decoded board.
func (s *Service) AnalyzeBoard(ctx context.Context, board *bridge.Board) (*Analysis, error) {
	contract, err := auction.Resolve(board.Dealer, board.Auction)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", board.ID, err)
	}

	a := &Analysis{
		Board:     board,
		Contract:  contract,
		Opening:   advisor.SuggestOpening(board.Deal[board.Dealer]),
		ViewerURL: viewer.URL(board),
	}

	if a.Opening.Bid != "PASS" {
		resp := advisor.SuggestResponse(board.Deal[board.Dealer.Partner()], a.Opening.Bid)
		a.Response = &resp
	}

	if s.solver != nil {
		table, err := s.solver.Solve(ctx, board.Deal)
		if err != nil {
			s.log.Warn().Err(err).Str("board", board.ID).Msg("double dummy analysis unavailable")
		} else {
			a.DD = table
		}
	}

	return a, nil
}

// ProcessContent decodes raw LIN content and analyzes every board in it.
// source names the content's origin for storage and logging. Boards that
// fail to decode are logged and skipped; the remaining boards still go
// through. The returned error is reserved for storage failures.
func (s *Service) ProcessContent(ctx context.Context, source, content string) ([]*Analysis, error) {
	boards, err := lin.Decode(content)
	if err != nil {
		s.log.Warn().Err(err).Str("source", source).Msg("some boards failed to decode")
	}
	s.log.Info().Str("source", source).Int("boards", len(boards)).Msg("decoded boards")

	var analyses []*Analysis
	for _, board := range boards {
		a, err := s.AnalyzeBoard(ctx, board)
		if err != nil {
			s.log.Warn().Err(err).Str("board", board.ID).Msg("skipping board")
			continue
		}
		analyses = append(analyses, a)

		if s.store == nil {
			continue
		}
		if _, err := s.store.SaveBoard(ctx, toRecord(source, a)); err != nil {
			return analyses, fmt.Errorf("store board %s: %w", board.ID, err)
		}
	}

	return analyses, nil
}

// ProcessFile reads and processes one LIN file.
func (s *Service) ProcessFile(ctx context.Context, path string) ([]*Analysis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s.ProcessContent(ctx, filepath.Base(path), string(content))
}

// ProcessDir processes every .lin file in a directory, in name order. A
// file that fails is logged and the batch continues; the per-file results
// are keyed by file name.
func (s *Service) ProcessDir(ctx context.Context, dir string) (map[string][]*Analysis, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".lin") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	results := make(map[string][]*Analysis, len(files))
	for _, name := range files {
		analyses, err := s.ProcessFile(ctx, filepath.Join(dir, name))
		if err != nil {
			s.log.Error().Err(err).Str("file", name).Msg("failed to process file")
			continue
		}
		results[name] = analyses
	}
	return results, nil
}

// toRecord flattens an analysis into its persisted form.
func toRecord(source string, a *Analysis) *storage.BoardRecord {
	b := a.Board

	calls := make([]string, 0, len(b.Auction))
	for _, call := range b.Auction {
		calls = append(calls, call.String())
	}
	plays := make([]string, 0, len(b.PlayLog))
	for _, card := range b.PlayLog {
		plays = append(plays, card.String())
	}

	rec := &storage.BoardRecord{
		Source:        source,
		BoardID:       b.ID,
		North:         b.Players[bridge.North],
		East:          b.Players[bridge.East],
		South:         b.Players[bridge.South],
		West:          b.Players[bridge.West],
		Dealer:        b.Dealer.String(),
		Vulnerability: b.Vulnerability.String(),
		DealPBN:       b.Deal.PBN(),
		Auction:       strings.Join(calls, " "),
		PlayLog:       strings.Join(plays, " "),
		ClaimedTricks: b.ClaimedTricks,
		Contract:      a.Contract.String(),
		OpeningBid:    a.Opening.Bid,
		OpeningReason: a.Opening.Reason,
		ViewerURL:     a.ViewerURL,
	}
	if !a.Contract.Passed {
		rec.Declarer = a.Contract.Declarer.String()
		rec.Doubling = a.Contract.Doubling.String()
	}
	if a.Response != nil {
		rec.ResponseBid = a.Response.Bid
		rec.ResponseConvention = a.Response.Convention
	}
	if a.DD != nil {
		rec.DDSummary = a.DD.Summary()
	}
	return rec
}
