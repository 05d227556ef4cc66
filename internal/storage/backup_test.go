package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBackupAndRestore(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(DefaultConfig(filepath.Join(dir, "live.db")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	if _, err := db.SaveBoard(context.Background(), testRecord("s.lin", "o1")); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}

	backupDir := filepath.Join(dir, "backups")
	path, err := db.Backup(BackupOptions{Dir: backupDir})
	if err != nil {
		t.Fatalf("Backup() failed: %v", err)
	}
	if filepath.Ext(path) != ".db" {
		t.Errorf("plain backup path = %q, want a .db file", path)
	}

	// The backup must itself be an openable database with the data in it.
	restored := filepath.Join(dir, "restored.db")
	if err := RestoreBackup(path, restored, ""); err != nil {
		t.Fatalf("RestoreBackup() failed: %v", err)
	}
	check, err := Open(DefaultConfig(restored))
	if err != nil {
		t.Fatalf("Open(restored) failed: %v", err)
	}
	defer check.Close()

	rec, err := check.GetBoard(context.Background(), "s.lin", "o1")
	if err != nil {
		t.Fatalf("GetBoard() on restored database failed: %v", err)
	}
	if rec == nil || rec.Contract != "3NT" {
		t.Errorf("restored record = %+v, want the saved 3NT board", rec)
	}
}

func TestEncryptedBackup(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(DefaultConfig(filepath.Join(dir, "live.db")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	path, err := db.Backup(BackupOptions{Dir: filepath.Join(dir, "backups"), Password: "hunter2"})
	if err != nil {
		t.Fatalf("Backup() failed: %v", err)
	}
	if !strings.HasSuffix(path, ".enc") {
		t.Errorf("encrypted backup path = %q, want a .enc file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !bytes.HasPrefix(data, []byte(backupMagic)) {
		t.Error("encrypted backup does not carry the magic header")
	}
	if bytes.Contains(data, []byte("SQLite format 3")) {
		t.Error("encrypted backup leaks the plaintext database header")
	}

	// Restoring without the password must fail; with it, succeed.
	restored := filepath.Join(dir, "restored.db")
	if err := RestoreBackup(path, restored, ""); err == nil {
		t.Error("RestoreBackup() without a password succeeded on an encrypted backup")
	}
	if err := RestoreBackup(path, restored, "wrong"); err == nil {
		t.Error("RestoreBackup() with the wrong password succeeded")
	}
	if err := RestoreBackup(path, restored, "hunter2"); err != nil {
		t.Fatalf("RestoreBackup() with the right password failed: %v", err)
	}
	if check, err := Open(DefaultConfig(restored)); err != nil {
		t.Errorf("Open(restored) failed: %v", err)
	} else {
		check.Close()
	}
}

func TestEncryptDecryptRoundtrip(t *testing.T) {
	plaintext := []byte("board data")

	sealed, err := encrypt(plaintext, "secret")
	if err != nil {
		t.Fatalf("encrypt() failed: %v", err)
	}
	out, err := decrypt(sealed, "secret")
	if err != nil {
		t.Fatalf("decrypt() failed: %v", err)
	}
	if !bytes.Equal(out, plaintext) {
		t.Errorf("roundtrip = %q, want %q", out, plaintext)
	}

	if _, err := decrypt(sealed, "other"); err == nil {
		t.Error("decrypt() with the wrong password succeeded")
	}
	if _, err := decrypt(sealed[:10], "secret"); err == nil {
		t.Error("decrypt() of truncated data succeeded")
	}
}
