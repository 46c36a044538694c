package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBackend implements Backend on a Badger database.
type BadgerBackend struct {
	db     *badger.DB
	logger *slog.Logger
}

// NewBadgerBackend opens (or creates) the Badger database at path.
func NewBadgerBackend(path string, logger *slog.Logger) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return &BadgerBackend{db: db, logger: logger}, nil
}

// Get returns the value for key, or ErrKeyNotFound.
func (b *BadgerBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set writes the value for key as a single full replace.
func (b *BadgerBackend) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes the value for key. Absent keys are a no-op.
func (b *BadgerBackend) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close gracefully closes the database.
func (b *BadgerBackend) Close() error {
	if b.logger != nil {
		b.logger.Info("Closing database connection")
	}
	return b.db.Close()
}
