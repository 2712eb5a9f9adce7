package store

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"

	"github.com/chego-engine/chego/internal/board"
	"github.com/chego-engine/chego/internal/tt"
)

// Store wraps a BadgerDB database holding one record per transposition
// table entry, keyed by the 8-byte big-endian hash that tt.Table.Export
// rebuilds for its slot (key tag plus slot index).
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the BadgerDB database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveTable writes every occupied slot of table to the database in one
// transaction.
func (s *Store) SaveTable(table *tt.Table) error {
	return s.db.Update(func(txn *badger.Txn) error {
		var txErr error
		table.Export(func(hash uint64, e tt.Entry) {
			if txErr != nil {
				return
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, hash)
			txErr = txn.Set(key, encodeEntry(e))
		})
		return txErr
	})
}

// LoadTable reads every record from the database into table, overwriting
// whatever it already holds at those slots.
func (s *Store) LoadTable(table *tt.Table) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			hash := binary.BigEndian.Uint64(item.Key())

			err := item.Value(func(val []byte) error {
				e, ok := decodeEntry(val)
				if !ok {
					return nil
				}
				table.Import(hash, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

const entryEncodedSize = 4 + 2 + 2 + 1 // score + bestMove + depth + bound

func encodeEntry(e tt.Entry) []byte {
	buf := make([]byte, entryEncodedSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(int32(e.Score)))
	binary.BigEndian.PutUint16(buf[4:6], uint16(e.BestMove))
	binary.BigEndian.PutUint16(buf[6:8], uint16(int16(e.Depth)))
	buf[8] = byte(e.Bound)
	return buf
}

func decodeEntry(buf []byte) (tt.Entry, bool) {
	if len(buf) != entryEncodedSize {
		return tt.Entry{}, false
	}
	return tt.Entry{
		Score:    int(int32(binary.BigEndian.Uint32(buf[0:4]))),
		BestMove: board.Move(binary.BigEndian.Uint16(buf[4:6])),
		Depth:    int(int16(binary.BigEndian.Uint16(buf[6:8]))),
		Bound:    tt.Bound(buf[8]),
	}, true
}
