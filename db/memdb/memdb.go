package memdb

import (
	"errors"
	"strings"
	"sync"

	"github.com/helioledger/go-helio/db"
)

var errClosed = errors.New("memdb is closed")

type memdb struct {
	db map[string][]byte
	sync.RWMutex
}

// New creates a memory-based key-value store which is mainly
// used for testing.
func New() db.Database {
	return &memdb{db: make(map[string][]byte)}
}

func memKey(bucket string, key []byte) string {
	return bucket + "/" + string(key)
}

func (m *memdb) NewBucket(name string) error {
	return nil
}

// Put writes the key/value pair to the database.
func (m *memdb) Put(bucket string, key, value []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return errClosed
	}

	m.db[memKey(bucket, key)] = value
	return nil
}

// Delete deletes the key from the database.
func (m *memdb) Delete(bucket string, key []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return errClosed
	}

	delete(m.db, memKey(bucket, key))
	return nil
}

// Get retrieves the value of the key from the database.
func (m *memdb) Get(bucket string, key []byte) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, errClosed
	}

	if val, ok := m.db[memKey(bucket, key)]; ok {
		return val, nil
	}
	return nil, nil
}

// GetAll retrieves the values of the keys with the prefix from
// the database.
func (m *memdb) GetAll(bucket string, keyPrefix []byte) ([][]byte, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, errClosed
	}

	prefix := memKey(bucket, keyPrefix)
	var vals [][]byte
	for k, v := range m.db {
		if strings.HasPrefix(k, prefix) {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

// Close closes the underlying database.
func (m *memdb) Close() error {
	m.Lock()
	defer m.Unlock()

	m.db = nil
	return nil
}

// Begin starts a staged transaction, the writes are buffered
// and applied to the store in one step on commit.
func (m *memdb) Begin() (db.Tx, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, errClosed
	}

	return &memdbTx{
		db:     m,
		staged: make(map[string][]byte),
	}, nil
}

// memdbTx buffers the writes of a transaction, a nil value in
// the staged map marks a pending delete.
type memdbTx struct {
	db     *memdb
	staged map[string][]byte
	done   bool
}

func (t *memdbTx) Get(bucket string, key []byte) ([]byte, error) {
	if t.done {
		return nil, errors.New("tx is finished")
	}
	if val, ok := t.staged[memKey(bucket, key)]; ok {
		return val, nil
	}
	return t.db.Get(bucket, key)
}

func (t *memdbTx) GetAll(bucket string, keyPrefix []byte) ([][]byte, error) {
	if t.done {
		return nil, errors.New("tx is finished")
	}

	prefix := memKey(bucket, keyPrefix)

	seen := make(map[string]struct{})
	var vals [][]byte
	for k, v := range t.staged {
		if strings.HasPrefix(k, prefix) {
			seen[k] = struct{}{}
			if v != nil {
				vals = append(vals, v)
			}
		}
	}

	t.db.RLock()
	defer t.db.RUnlock()
	if t.db.db == nil {
		return nil, errClosed
	}
	for k, v := range t.db.db {
		if _, ok := seen[k]; ok {
			continue
		}
		if strings.HasPrefix(k, prefix) {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

func (t *memdbTx) Put(bucket string, key, value []byte) error {
	if t.done {
		return errors.New("tx is finished")
	}
	t.staged[memKey(bucket, key)] = value
	return nil
}

func (t *memdbTx) Delete(bucket string, key []byte) error {
	if t.done {
		return errors.New("tx is finished")
	}
	t.staged[memKey(bucket, key)] = nil
	return nil
}

func (t *memdbTx) Commit() error {
	if t.done {
		return errors.New("tx is finished")
	}
	t.done = true

	t.db.Lock()
	defer t.db.Unlock()
	if t.db.db == nil {
		return errClosed
	}

	for k, v := range t.staged {
		if v == nil {
			delete(t.db.db, k)
			continue
		}
		t.db.db[k] = v
	}
	return nil
}

func (t *memdbTx) Rollback() error {
	if t.done {
		return errors.New("tx is finished")
	}
	t.done = true
	t.staged = nil
	return nil
}
