package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/argon2"
)

const (
	// backupMagic identifies an encrypted backup file.
	backupMagic = "BMSTENC1"

	// Argon2id parameters (RFC 9106 recommendations).
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // KiB
	argon2Threads = 4
	argon2KeyLen  = 32 // AES-256

	saltLength = 32
)

// BackupOptions controls a database backup.
type BackupOptions struct {
	// Dir is where the backup is written. Defaults to a "backups"
	// subdirectory next to the database file.
	Dir string

	// Password, when non-empty, encrypts the backup with AES-256-GCM using
	// an Argon2id-derived key.
	Password string
}

// Backup writes an atomic snapshot of the database and returns its path.
// SQLite's VACUUM INTO produces a consistent copy without exclusive locks.
func (db *DB) Backup(opts BackupOptions) (string, error) {
	if db.path == ":memory:" {
		return "", fmt.Errorf("cannot back up an in-memory database")
	}

	dir := opts.Dir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(db.path), "backups")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	name := fmt.Sprintf("backup_%s.db", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if _, err := db.conn.Exec(fmt.Sprintf("VACUUM INTO %q", path)); err != nil {
		return "", fmt.Errorf("vacuum into backup: %w", err)
	}

	if opts.Password == "" {
		return path, nil
	}

	encPath := path + ".enc"
	if err := encryptFile(path, encPath, opts.Password); err != nil {
		_ = os.Remove(encPath)
		return "", fmt.Errorf("encrypt backup: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("remove plaintext backup: %w", err)
	}
	return encPath, nil
}

// RestoreBackup decrypts (when needed) and copies a backup over the target
// path. The database connection must be closed before restoring.
func RestoreBackup(backupPath, targetPath, password string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	if len(data) >= len(backupMagic) && string(data[:len(backupMagic)]) == backupMagic {
		if password == "" {
			return fmt.Errorf("backup is encrypted: password required")
		}
		data, err = decrypt(data[len(backupMagic):], password)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(targetPath, data, 0o644); err != nil {
		return fmt.Errorf("write restored database: %w", err)
	}
	return nil
}

// deriveKey derives the AES key from the password with Argon2id.
func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// encrypt seals plaintext as salt || nonce || ciphertext.
func encrypt(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// decrypt reverses encrypt.
func decrypt(data []byte, password string) ([]byte, error) {
	if len(data) < saltLength+12+16 {
		return nil, fmt.Errorf("encrypted backup too short")
	}
	salt, data := data[:saltLength], data[saltLength:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	if len(data) < gcm.NonceSize() {
		return nil, fmt.Errorf("encrypted backup too short for nonce")
	}
	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt backup (wrong password or corrupted data): %w", err)
	}
	return plaintext, nil
}

// encryptFile encrypts src into dst with the magic header prepended.
func encryptFile(src, dst, password string) error {
	plaintext, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	sealed, err := encrypt(plaintext, password)
	if err != nil {
		return err
	}
	out := append([]byte(backupMagic), sealed...)
	if err := os.WriteFile(dst, out, 0o600); err != nil {
		return fmt.Errorf("write encrypted backup: %w", err)
	}
	return nil
}
