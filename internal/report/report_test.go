package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bridgelab/bridgemaster/internal/engine"
)

// Three hands in LIN deal order (South, West, North); East is reconstructed.
const linBoard = "pn|alice,bob,carol,dave|qx|o1|" +
	"md|1SAKQJHAKQDAKQCAKQ,ST98HJT98DJT9CJT9,S765H765D8765C876,|sv|b|" +
	"mb|2C|mb|p|mb|2D|mb|p|mb|3N|mb|p|mb|p|mb|p|"

func analyses(t *testing.T) []*engine.Analysis {
	t.Helper()
	svc := engine.NewService(nil, nil, zerolog.Nop())
	out, err := svc.ProcessContent(context.Background(), "session.lin", linBoard)
	if err != nil {
		t.Fatalf("ProcessContent() failed: %v", err)
	}
	return out
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, "session.lin", analyses(t))
	if err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if filepath.Base(path) != "session.json" {
		t.Errorf("result file = %q, want session.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	var result SessionResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}

	if result.Source != "session.lin" {
		t.Errorf("source = %q, want session.lin", result.Source)
	}
	if result.GeneratedAt.IsZero() {
		t.Error("generated_at is zero")
	}
	if len(result.Boards) != 1 {
		t.Fatalf("result holds %d boards, want 1", len(result.Boards))
	}

	board := result.Boards[0]
	if board.BoardID != "o1" {
		t.Errorf("board_id = %q, want o1", board.BoardID)
	}
	if board.Contract != "3NT" || board.Declarer != "S" {
		t.Errorf("contract = %s by %s, want 3NT by S", board.Contract, board.Declarer)
	}
	if board.Vulnerability != "All" {
		t.Errorf("vulnerability = %q, want All", board.Vulnerability)
	}
	if board.OpeningBid != "2C" {
		t.Errorf("opening_bid = %q, want 2C", board.OpeningBid)
	}
	if board.Players["N"] != "carol" {
		t.Errorf("players[N] = %q, want carol", board.Players["N"])
	}
	if len(board.Auction) != 8 {
		t.Errorf("auction holds %d calls, want 8", len(board.Auction))
	}
	if board.HandViewerLink == "" {
		t.Error("hand_viewer_link is empty")
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	if _, err := Write(dir, "s.lin", nil); err != nil {
		t.Fatalf("Write() into a missing directory failed: %v", err)
	}
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"old1.json", "old2.json", "keep.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := Clean(dir); err != nil {
		t.Fatalf("Clean() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep.txt" {
		t.Errorf("Clean() left %v, want just keep.txt", entries)
	}
}

func TestCleanMissingDir(t *testing.T) {
	if err := Clean(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("Clean() on a missing directory = %v, want nil", err)
	}
}
