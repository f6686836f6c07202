// Package vault keeps rolling autosave snapshots of the project document in a
// SQLite sidecar next to the save file. The snapshots exist only for crash
// recovery; the YAML project file remains the canonical save.
package vault

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

// Vault wraps the snapshot database. Writes are serialized through a single
// background worker; callers pass fully rendered document bytes, so live
// entities are never read off-thread.
type Vault struct {
	conn *sqlx.DB
	keep int

	enc *zstd.Encoder
	dec *zstd.Decoder

	ch     chan []byte
	wg     sync.WaitGroup
	once   sync.Once
	closed chan struct{}
}

// Open opens or creates the snapshot database at path, retaining at most keep
// snapshots.
func Open(path string, keep int) (*Vault, error) {
	if keep < 1 {
		keep = 1
	}
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	v := &Vault{
		conn:   conn,
		keep:   keep,
		enc:    enc,
		dec:    dec,
		ch:     make(chan []byte, 4),
		closed: make(chan struct{}),
	}
	if err := v.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate vault: %w", err)
	}

	v.wg.Add(1)
	go v.worker()
	return v, nil
}

func (v *Vault) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		doc BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS vault_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := v.conn.Exec(schema)
	return err
}

// Store writes one snapshot synchronously and prunes old ones past the
// retention limit.
func (v *Vault) Store(doc []byte) error {
	blob := v.enc.EncodeAll(doc, nil)
	if _, err := v.conn.Exec(
		"INSERT INTO snapshots (created_at, doc) VALUES (?, ?)",
		time.Now().UTC().Format(time.RFC3339), blob,
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	if _, err := v.conn.Exec(
		`DELETE FROM snapshots WHERE id NOT IN
		 (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`, v.keep,
	); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// StoreAsync queues a snapshot for the background worker. The caller must
// hand over bytes it will not mutate afterward. When the queue is full the
// snapshot is dropped; a newer one is always right behind it.
func (v *Vault) StoreAsync(doc []byte) {
	select {
	case <-v.closed:
		return
	default:
	}
	select {
	case v.ch <- doc:
	default:
		slog.Debug("autosave queue full, dropping snapshot")
	}
}

func (v *Vault) worker() {
	defer v.wg.Done()
	for doc := range v.ch {
		if err := v.Store(doc); err != nil {
			slog.Warn("autosave failed", "err", err)
		}
	}
}

// Latest returns the most recent snapshot's document bytes, or ok=false when
// the vault is empty.
func (v *Vault) Latest() ([]byte, bool, error) {
	var blob []byte
	err := v.conn.Get(&blob, "SELECT doc FROM snapshots ORDER BY id DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}
	doc, err := v.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, false, fmt.Errorf("decompress snapshot: %w", err)
	}
	return doc, true, nil
}

// Count returns the number of retained snapshots.
func (v *Vault) Count() (int, error) {
	var n int
	err := v.conn.Get(&n, "SELECT COUNT(*) FROM snapshots")
	return n, err
}

// SetMeta stores a key-value pair in vault metadata.
func (v *Vault) SetMeta(key, value string) error {
	_, err := v.conn.Exec(
		"INSERT OR REPLACE INTO vault_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (v *Vault) GetMeta(key string) (string, error) {
	var value string
	err := v.conn.Get(&value, "SELECT value FROM vault_meta WHERE key = ?", key)
	return value, err
}

// Close drains pending snapshots and closes the database.
func (v *Vault) Close() error {
	v.once.Do(func() {
		close(v.closed)
		close(v.ch)
	})
	v.wg.Wait()
	return v.conn.Close()
}
