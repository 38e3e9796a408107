// Package bolt is a small expiring key/value store on bbolt, used for recent
// searches when no Redis instance is configured. Values are stored with an
// 8-byte big-endian expiry (unix nanoseconds, 0 = never) in front.
package bolt

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketKV = []byte("kv")

const expiryLen = 8

// Store implements the recent.Storage interface backed by bbolt.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Get returns the value for key, or nil, nil when it is missing or expired.
func (s *Store) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketKV).Get([]byte(key))
		if len(v) < expiryLen {
			return nil
		}
		if exp := int64(binary.BigEndian.Uint64(v[:expiryLen])); exp != 0 && s.now().UnixNano() >= exp {
			return nil
		}
		// bbolt slices are only valid within the transaction
		out = make([]byte, len(v)-expiryLen)
		copy(out, v[expiryLen:])
		return nil
	})
	return out, err
}

// Set stores val under key. A zero exp keeps the value forever.
func (s *Store) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	var expiresAt int64
	if exp > 0 {
		expiresAt = s.now().Add(exp).UnixNano()
	}
	buf := make([]byte, expiryLen+len(val))
	binary.BigEndian.PutUint64(buf[:expiryLen], uint64(expiresAt))
	copy(buf[expiryLen:], val)

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKV).Put([]byte(key), buf)
	})
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKV).Delete([]byte(key))
	})
}

// Purge drops every expired entry and reports how many were removed.
func (s *Store) Purge() (int, error) {
	now := s.now().UnixNano()
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		var expired [][]byte
		if err := b.ForEach(func(k, v []byte) error {
			if len(v) < expiryLen {
				expired = append(expired, append([]byte(nil), k...))
				return nil
			}
			if exp := int64(binary.BigEndian.Uint64(v[:expiryLen])); exp != 0 && now >= exp {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, k := range expired {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(expired)
		return nil
	})
	return removed, err
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}
