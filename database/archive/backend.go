// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.


package archive

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// backend is the key-value storage holding archive records. All records
// passed to one Write call become visible together or not at all.
type backend interface {
	Get(key []byte) ([]byte, error)
	Write(records ...record) error
	Close() error
}

type record struct {
	key   []byte
	value []byte
}

// levelDbBackend keeps archive records in a LevelDB instance on disk.
type levelDbBackend struct {
	db *leveldb.DB
}

// openLevelDbBackend opens the LevelDB instance in the given directory. If
// create is false, the instance must already exist.
func openLevelDbBackend(dir string, create bool) (*levelDbBackend, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{ErrorIfMissing: !create})
	if err != nil {
		return nil, err
	}
	return &levelDbBackend{db: db}, nil
}

func (b *levelDbBackend) Get(key []byte) ([]byte, error) {
	data, err := b.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	return data, err
}

func (b *levelDbBackend) Write(records ...record) error {
	batch := new(leveldb.Batch)
	for _, r := range records {
		batch.Put(r.key, r.value)
	}
	return b.db.Write(batch, &opt.WriteOptions{Sync: true})
}

func (b *levelDbBackend) Close() error {
	return b.db.Close()
}

// memoryBackend keeps archive records in a map.
type memoryBackend struct {
	records map[string][]byte
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{records: make(map[string][]byte)}
}

func (b *memoryBackend) Get(key []byte) ([]byte, error) {
	value, found := b.records[string(key)]
	if !found {
		return nil, ErrNotFound
	}
	return value, nil
}

func (b *memoryBackend) Write(records ...record) error {
	for _, r := range records {
		b.records[string(r.key)] = r.value
	}
	return nil
}

func (b *memoryBackend) Close() error {
	return nil
}
