package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const winnerPrefix = "winner:"

// WinnerRecord is one line of the winner log: who topped the board when a
// room's window closed. This is the only history kept beyond the current
// window.
type WinnerRecord struct {
	Room        string    `json:"room"`
	Title       string    `json:"title"`
	EndedAt     time.Time `json:"ended_at"`
	User        string    `json:"user"`
	Avatar      string    `json:"avatar,omitempty"`
	Total       int64     `json:"total"`
	TotalRaised int64     `json:"total_raised"`
}

// WinnerRepository appends closed-window winners to BadgerDB. Keys embed
// the end timestamp so a reverse scan yields most recent first.
type WinnerRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewWinnerRepository(db *badger.DB, log *slog.Logger) *WinnerRepository {
	return &WinnerRepository{db: db, log: log}
}

func (r *WinnerRepository) Append(record WinnerRecord) error {
	key := fmt.Sprintf("%s%020d:%s", winnerPrefix, record.EndedAt.UnixNano(), record.Room)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal winner record: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Recent returns up to limit records, most recent window first.
func (r *WinnerRepository) Recent(limit int) ([]WinnerRecord, error) {
	var records []WinnerRecord
	prefix := []byte(winnerPrefix)
	// Seek target for a reverse scan: just past the last possible key.
	seek := append(append([]byte{}, prefix...), 0xFF)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(seek); it.ValidForPrefix(prefix) && len(records) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record WinnerRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return fmt.Errorf("unmarshal winner record: %w", err)
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
