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
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/0xsoniclabs/ledger/common/result"
	"github.com/0xsoniclabs/ledger/types"
	"github.com/golang/snappy"
)

const (
	ErrNotFound   = common.ConstError("not found")
	ErrOutOfOrder = common.ConstError("block height out of order")
	ErrCorrupted  = common.ConstError("corrupted archive record")
)

var heightKey = []byte("height")

// Store is an append-only archive of committed blocks. Blocks are stored as
// snappy-compressed RLP records keyed by their big-endian height, heights
// forming a gap-free sequence starting at 0.
type Store struct {
	mu     sync.Mutex
	db     backend
	height uint64 // number of archived blocks
}

// OpenLevelDb opens the archive in the given directory, creating it if
// it does not exist yet.
func OpenLevelDb(dir string) (*Store, error) {
	return openLevelDb(dir, true)
}

// OpenExistingLevelDb opens the archive in the given directory, failing
// with ErrNotFound if there is none.
func OpenExistingLevelDb(dir string) (*Store, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: no archive in %s", ErrNotFound, dir)
	}
	return openLevelDb(dir, false)
}

func openLevelDb(dir string, create bool) (*Store, error) {
	db, err := openLevelDbBackend(dir, create)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive in %s: %w", dir, err)
	}
	store, err := open(db)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return store, nil
}

// NewMemory creates an empty archive retaining blocks in memory only.
func NewMemory() *Store {
	return &Store{db: newMemoryBackend()}
}

func open(db backend) (*Store, error) {
	data, err := db.Get(heightKey)
	if errors.Is(err, ErrNotFound) {
		return &Store{db: db}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) != 8 {
		return nil, fmt.Errorf("%w: height record of %d bytes", ErrCorrupted, len(data))
	}
	return &Store{db: db, height: binary.BigEndian.Uint64(data)}, nil
}

// Append adds the block at the given height, which must be the current
// height of the archive.
func (s *Store) Append(height uint64, block *types.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if height != s.height {
		return fmt.Errorf("%w: got %d, expected %d", ErrOutOfOrder, height, s.height)
	}
	data, err := types.EncodeBlock(block)
	if err != nil {
		return err
	}
	err = s.db.Write(
		record{key: blockKey(height), value: snappy.Encode(nil, data)},
		record{key: heightKey, value: binary.BigEndian.AppendUint64(nil, height+1)},
	)
	if err != nil {
		return err
	}
	s.height = height + 1
	return nil
}

// Get loads the block archived at the given height.
func (s *Store) Get(height uint64) (*types.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(height)
}

func (s *Store) get(height uint64) (*types.Block, error) {
	if height >= s.height {
		return nil, fmt.Errorf("%w: block %d", ErrNotFound, height)
	}
	compressed, err := s.db.Get(blockKey(height))
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", height, err)
	}
	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: block %d: %w", ErrCorrupted, height, err)
	}
	block, err := types.DecodeBlock(data)
	if err != nil {
		return nil, fmt.Errorf("%w: block %d: %w", ErrCorrupted, height, err)
	}
	return block, nil
}

// Height returns the number of archived blocks.
func (s *Store) Height() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

// Head returns the most recently archived block.
func (s *Store) Head() (*types.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.height == 0 {
		return nil, ErrNotFound
	}
	return s.get(s.height - 1)
}

// Blocks streams all archived blocks in height order. The stream ends after
// the last block, after the first error, or when the context is cancelled.
func (s *Store) Blocks(ctx context.Context) <-chan result.Result[*types.Block] {
	out := make(chan result.Result[*types.Block])
	end := s.Height()
	go func() {
		defer close(out)
		for height := uint64(0); height < end; height++ {
			block, err := s.Get(height)
			res := result.Ok(block)
			if err != nil {
				res = result.Err[*types.Block](err)
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
			if res.Failed() {
				return
			}
		}
	}()
	return out
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func blockKey(height uint64) []byte {
	return binary.BigEndian.AppendUint64([]byte{'b'}, height)
}
