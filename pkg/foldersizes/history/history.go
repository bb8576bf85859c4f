// Package history records completed scans in a Badger-backed store so
// earlier results can be listed, inspected, and pruned.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/logging"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// ErrNotFound is returned when a history record doesn't exist.
var ErrNotFound = errors.New("history record not found")

// recordPrefix namespaces scan records inside the database.
const recordPrefix = "r:"

// Record is one completed scan.
type Record struct {
	ID          string          `json:"id"`
	Root        string          `json:"root"`
	Stats       types.ScanStats `json:"stats"`
	FolderCount int             `json:"folder_count"`
	Interrupted bool            `json:"interrupted,omitempty"`
	ErrorCount  int             `json:"error_count,omitempty"`
	ReportPath  string          `json:"report_path,omitempty"`
	Format      string          `json:"format,omitempty"`
}

// Store is the scan history backed by Badger DB.
type Store struct {
	db *badger.DB
}

// Open opens or creates a history store at the given path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable badger logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores a scan record. A missing ID is assigned.
func (s *Store) Append(rec *Record) error {
	if rec.Stats.StartTime.IsZero() {
		return fmt.Errorf("record has no start time")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rec), data)
	})
	if err != nil {
		return err
	}

	logging.Get("history").Debug("scan recorded", "id", rec.ID, "root", rec.Root)
	return nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns all records.
func (s *Store) List(limit int) ([]*Record, error) {
	var records []*Record

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recordPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec Record
				if err := json.Unmarshal(val, &rec); err != nil {
					return nil // Skip invalid records
				}
				records = append(records, &rec)
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

	// Sort by start time descending
	sort.Slice(records, func(i, j int) bool {
		return records[i].Stats.StartTime.After(records[j].Stats.StartTime)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Get returns the record with the given ID. A unique ID prefix is
// accepted.
func (s *Store) Get(id string) (*Record, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	records, err := s.List(0)
	if err != nil {
		return nil, err
	}

	var found *Record
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
		if strings.HasPrefix(rec.ID, id) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous record id %q", id)
			}
			found = rec
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Last returns the most recent record.
func (s *Store) Last() (*Record, error) {
	records, err := s.List(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// Prune removes records whose scan started before cutoff. It reports
// how many records were removed.
func (s *Store) Prune(cutoff time.Time) (int, error) {
	var removed int

	err := s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var keysToDelete [][]byte
		prefix := []byte(recordPrefix)

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			start, ok := keyStartTime(key)
			if !ok || !start.Before(cutoff) {
				continue
			}
			keysToDelete = append(keysToDelete, key)
		}

		for _, key := range keysToDelete {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		removed = len(keysToDelete)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		logging.Get("history").Info("history pruned", "removed", removed)
	}
	return removed, nil
}

// Clear removes all records.
func (s *Store) Clear() (int, error) {
	return s.Prune(time.Unix(1<<62, 0))
}

// recordKey builds the time-ordered key for a record:
// r:<20-digit unix nanos>:<id>.
func recordKey(rec *Record) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", recordPrefix,
		rec.Stats.StartTime.UTC().UnixNano(), rec.ID))
}

// keyStartTime extracts the start time encoded in a record key.
func keyStartTime(key []byte) (time.Time, bool) {
	s := strings.TrimPrefix(string(key), recordPrefix)
	idx := strings.IndexByte(s, ':')
	if idx == -1 {
		return time.Time{}, false
	}
	nanos, err := strconv.ParseInt(s[:idx], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(0, nanos), true
}
