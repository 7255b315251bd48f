//go:build !sqlite

package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"
)

// FileName is the default database file inside the application directory.
const FileName = "ghexplorer.bolt"

const boltBucketKV = "kv" // key: storage key -> serialized value

type Bolt struct {
	storage *bbolt.DB
}

// Open opens the default backend at path.
func Open(path string) (Store, error) {
	return NewBolt(path)
}

// NewBolt creates or opens a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketKV))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Ping() error {
	return b.view(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := b.view(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketKV)).Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid for the life of the transaction
		value = string(v)
		found = true

		return nil
	})

	return value, found, err
}

func (b *Bolt) Set(key, value string) error {
	err := b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketKV)).Put([]byte(key), []byte(value))
	})

	return translate(err)
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) view(fn func(tx *bbolt.Tx) error) error {
	return translate(b.storage.View(fn))
}

func translate(err error) error {
	if errors.Is(err, berrors.ErrDatabaseNotOpen) {
		return ErrClosed
	}

	return err
}
