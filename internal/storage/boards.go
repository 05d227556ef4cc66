package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// BoardRecord is the flat, persisted form of one analyzed board. The engine
// converts its domain types into this shape before storing.
type BoardRecord struct {
	ID            int64
	Source        string
	BoardID       string
	North         string
	East          string
	South         string
	West          string
	Dealer        string
	Vulnerability string
	DealPBN       string
	Auction       string
	PlayLog       string
	ClaimedTricks *int

	Contract string
	Declarer string
	Doubling string

	OpeningBid         string
	OpeningReason      string
	ResponseBid        string
	ResponseConvention string

	ViewerURL string
	DDSummary string

	CreatedAt time.Time
}

// SaveBoard inserts or replaces the record for (source, board id) and
// returns its row id.
func (db *DB) SaveBoard(ctx context.Context, rec *BoardRecord) (int64, error) {
	if rec == nil {
		return 0, fmt.Errorf("record cannot be nil")
	}

	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO boards (
			source, board_id, north, east, south, west,
			dealer, vulnerability, deal_pbn, auction, play_log, claimed_tricks,
			contract, declarer, doubling,
			opening_bid, opening_reason, response_bid, response_convention,
			viewer_url, dd_summary
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (source, board_id) DO UPDATE SET
			north = excluded.north,
			east = excluded.east,
			south = excluded.south,
			west = excluded.west,
			dealer = excluded.dealer,
			vulnerability = excluded.vulnerability,
			deal_pbn = excluded.deal_pbn,
			auction = excluded.auction,
			play_log = excluded.play_log,
			claimed_tricks = excluded.claimed_tricks,
			contract = excluded.contract,
			declarer = excluded.declarer,
			doubling = excluded.doubling,
			opening_bid = excluded.opening_bid,
			opening_reason = excluded.opening_reason,
			response_bid = excluded.response_bid,
			response_convention = excluded.response_convention,
			viewer_url = excluded.viewer_url,
			dd_summary = excluded.dd_summary`,
		rec.Source, rec.BoardID, rec.North, rec.East, rec.South, rec.West,
		rec.Dealer, rec.Vulnerability, rec.DealPBN, rec.Auction, rec.PlayLog, rec.ClaimedTricks,
		rec.Contract, rec.Declarer, rec.Doubling,
		rec.OpeningBid, rec.OpeningReason, rec.ResponseBid, rec.ResponseConvention,
		rec.ViewerURL, rec.DDSummary,
	)
	if err != nil {
		return 0, fmt.Errorf("save board %s/%s: %w", rec.Source, rec.BoardID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("board row id: %w", err)
	}
	return id, nil
}

// GetBoard returns the record for a source and board id, or nil when none
// was stored.
func (db *DB) GetBoard(ctx context.Context, source, boardID string) (*BoardRecord, error) {
	row := db.conn.QueryRowContext(ctx,
		selectBoards+" WHERE source = ? AND board_id = ?", source, boardID)

	rec, err := scanBoard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get board %s/%s: %w", source, boardID, err)
	}
	return rec, nil
}

// ListBoards returns every record for a source, oldest first.
func (db *DB) ListBoards(ctx context.Context, source string) ([]*BoardRecord, error) {
	rows, err := db.conn.QueryContext(ctx,
		selectBoards+" WHERE source = ? ORDER BY id", source)
	if err != nil {
		return nil, fmt.Errorf("list boards for %s: %w", source, err)
	}
	defer rows.Close()

	var records []*BoardRecord
	for rows.Next() {
		rec, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boards: %w", err)
	}
	return records, nil
}

// Sources returns the distinct sources with stored boards, oldest first.
func (db *DB) Sources(ctx context.Context) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT source FROM boards GROUP BY source ORDER BY min(id)")
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

const selectBoards = `
	SELECT id, source, board_id, north, east, south, west,
	       dealer, vulnerability, deal_pbn, auction, play_log, claimed_tricks,
	       contract, declarer, doubling,
	       opening_bid, opening_reason, response_bid, response_convention,
	       viewer_url, dd_summary, created_at
	FROM boards`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBoard(s scanner) (*BoardRecord, error) {
	rec := &BoardRecord{}
	var claimed sql.NullInt64
	err := s.Scan(
		&rec.ID, &rec.Source, &rec.BoardID, &rec.North, &rec.East, &rec.South, &rec.West,
		&rec.Dealer, &rec.Vulnerability, &rec.DealPBN, &rec.Auction, &rec.PlayLog, &claimed,
		&rec.Contract, &rec.Declarer, &rec.Doubling,
		&rec.OpeningBid, &rec.OpeningReason, &rec.ResponseBid, &rec.ResponseConvention,
		&rec.ViewerURL, &rec.DDSummary, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if claimed.Valid {
		n := int(claimed.Int64)
		rec.ClaimedTricks = &n
	}
	return rec, nil
}
