package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// HistoryEntry is one recorded migration run for a single file.
type HistoryEntry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Status    string    `json:"status"`
	Changes   int       `json:"changes"`
	Tags      []string  `json:"tags,omitempty"`
	Notes     []string  `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// History stores migration outcomes with compressed source snapshots so a
// run can be inspected or diffed later.
type History struct {
	db      *DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewHistory creates a History store backed by db.
func NewHistory(db *DB) (*History, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &History{db: db, encoder: enc, decoder: dec}, nil
}

// Record stores one migration outcome along with the input and output
// sources. Returns the generated record id.
func (h *History) Record(entry HistoryEntry, input, output string) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	tagsJSON, err := json.Marshal(entry.Tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	notesJSON, err := json.Marshal(entry.Notes)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notes: %w", err)
	}

	inputBlob := h.encoder.EncodeAll([]byte(input), nil)
	outputBlob := h.encoder.EncodeAll([]byte(output), nil)

	err = h.db.WithTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO migrations
				(id, file, status, changes, tags_json, notes_json, input_snapshot, output_snapshot, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, entry.ID, entry.File, entry.Status, entry.Changes,
			string(tagsJSON), string(notesJSON), inputBlob, outputBlob,
			entry.CreatedAt.Format(time.RFC3339))
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to record migration: %w", err)
	}

	return entry.ID, nil
}

// List returns the most recent entries, newest first, up to limit. A limit
// of 0 means no limit.
func (h *History) List(limit int) ([]HistoryEntry, error) {
	query := `
		SELECT id, file, status, changes, tags_json, notes_json, created_at
		FROM migrations ORDER BY created_at DESC, id
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// ForFile returns all entries recorded for one file, newest first.
func (h *History) ForFile(file string) ([]HistoryEntry, error) {
	rows, err := h.db.Query(`
		SELECT id, file, status, changes, tags_json, notes_json, created_at
		FROM migrations WHERE file = ? ORDER BY created_at DESC, id
	`, file)
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Snapshots returns the decompressed input and output sources for a record.
func (h *History) Snapshots(id string) (input, output string, err error) {
	var inputBlob, outputBlob []byte
	err = h.db.QueryRow(`
		SELECT input_snapshot, output_snapshot FROM migrations WHERE id = ?
	`, id).Scan(&inputBlob, &outputBlob)
	if err == sql.ErrNoRows {
		return "", "", fmt.Errorf("no migration record with id %s", id)
	}
	if err != nil {
		return "", "", err
	}

	inputBytes, err := h.decoder.DecodeAll(inputBlob, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to decompress input snapshot: %w", err)
	}
	outputBytes, err := h.decoder.DecodeAll(outputBlob, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to decompress output snapshot: %w", err)
	}

	return string(inputBytes), string(outputBytes), nil
}

func scanEntry(rows *sql.Rows) (HistoryEntry, error) {
	var entry HistoryEntry
	var tagsJSON, notesJSON sql.NullString
	var createdAt string

	if err := rows.Scan(&entry.ID, &entry.File, &entry.Status, &entry.Changes,
		&tagsJSON, &notesJSON, &createdAt); err != nil {
		return entry, fmt.Errorf("failed to scan migration row: %w", err)
	}

	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &entry.Tags); err != nil {
			return entry, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	if notesJSON.Valid && notesJSON.String != "" {
		if err := json.Unmarshal([]byte(notesJSON.String), &entry.Notes); err != nil {
			return entry, fmt.Errorf("failed to unmarshal notes: %w", err)
		}
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return entry, fmt.Errorf("failed to parse created_at: %w", err)
	}
	entry.CreatedAt = t

	return entry, nil
}
