// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/0xsoniclabs/ledger/executor"
	"github.com/0xsoniclabs/ledger/state"
	"github.com/0xsoniclabs/ledger/types"
	"github.com/0xsoniclabs/ledger/validation"
	"github.com/sirupsen/logrus"
)

// Blockchain is an append-only ledger of blocks together with the account
// table resulting from executing all of their transactions in order. The
// account table never reflects a partially applied block: AppendBlock either
// commits a whole block or leaves the ledger untouched.
//
// A Blockchain is safe for concurrent use. Appending blocks is serialized
// behind a single writer lock; readers only ever observe committed state.
type Blockchain struct {
	mu       sync.RWMutex
	blocks   []*types.Block
	accounts *state.Store
	pending  []types.Transaction
	executor *executor.Executor
	archive  Archive
	log      logrus.FieldLogger
}

func NewBlockchain(params Parameters) *Blockchain {
	log := params.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Blockchain{
		accounts: state.NewStore(),
		executor: executor.New(executor.Config{MaxMintAmount: params.MaxMintAmount}),
		archive:  params.Archive,
		log:      log,
	}
}

// AppendBlock validates the candidate block against the current head and, if
// valid, executes its transactions in order. If any transaction fails, all
// modifications made by the block are reverted and a *ChainError naming the
// failing transaction is returned. Otherwise, the block becomes the new head.
//
// If an archive is configured and fails to store the committed block, an
// error wrapping ErrArchive is returned. The block remains committed.
func (c *Blockchain) AppendBlock(candidate *types.Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.appendBlock(candidate); err != nil {
		return err
	}
	c.prunePending(candidate)
	return c.syncArchive()
}

func (c *Blockchain) appendBlock(candidate *types.Block) error {
	height := len(c.blocks)
	if err := validation.ValidateBlock(candidate, c.head()); err != nil {
		c.log.WithFields(logrus.Fields{
			"height": height,
			"reason": err,
		}).Warn("block rejected by validation")
		return &ChainError{Cause: err}
	}

	genesis := height == 0
	snapshot := c.accounts.Snapshot()
	for i := range candidate.Transactions {
		tx := &candidate.Transactions[i]
		if err := c.executor.Apply(c.accounts, tx, genesis); err != nil {
			c.log.WithFields(logrus.Fields{
				"height":      height,
				"transaction": i + 1,
				"kind":        tx.Data.Kind(),
				"sender":      tx.Sender,
				"reason":      err,
			}).Warn("block rejected by execution, rolling back")
			res := error(&ChainError{Index: i + 1, Cause: err})
			if revertErr := c.accounts.RevertToSnapshot(snapshot); revertErr != nil {
				res = errors.Join(res, fmt.Errorf("failed to roll back block: %w", revertErr))
			}
			return res
		}
	}
	c.accounts.Commit()

	block := candidate.Clone()
	c.blocks = append(c.blocks, block)
	hash, _ := block.Hash()
	c.log.WithFields(logrus.Fields{
		"height":       height,
		"hash":         hash.Short(),
		"transactions": len(block.Transactions),
		"genesis":      genesis,
	}).Info("block committed")
	return nil
}

// syncArchive writes all committed blocks the archive is missing, so that a
// failed write is retried with the next commit.
func (c *Blockchain) syncArchive() error {
	if c.archive == nil {
		return nil
	}
	for height := c.archive.Height(); height < uint64(len(c.blocks)); height++ {
		if err := c.archive.Append(height, c.blocks[height]); err != nil {
			c.log.WithFields(logrus.Fields{
				"height": height,
				"head":   len(c.blocks) - 1,
				"reason": err,
			}).Error("failed to archive committed block")
			return fmt.Errorf("%w %d: %w", ErrArchive, height, err)
		}
	}
	return nil
}

// head returns the last committed block or nil if the chain is empty. The
// caller must hold the lock.
func (c *Blockchain) head() *types.Block {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.blocks[len(c.blocks)-1]
}

// --- Pending Transactions ---

// Submit adds a transaction to the pool of pending transactions. Pending
// transactions are not executed until they are included in a block.
func (c *Blockchain) Submit(tx types.Transaction) error {
	if tx.Data == nil {
		return types.ErrMissingPayload
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, tx)
	return nil
}

// Pending returns a copy of the pending transactions in submission order.
func (c *Blockchain) Pending() []types.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]types.Transaction(nil), c.pending...)
}

// ProposeBlock assembles a sealed block on top of the current head
// containing all pending transactions. The block is not appended; pass it
// to AppendBlock to commit it, which also removes its transactions from the
// pending pool.
func (c *Blockchain) ProposeBlock(nonce uint64) (*types.Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.pending) == 0 {
		return nil, validation.ErrEmptyBlock
	}
	var prev *common.Hash
	if head := c.head(); head != nil {
		prev = head.TransHash
	}
	return types.NewBlock(prev, nonce, c.pending...)
}

// prunePending removes all transactions included in the given block from
// the pending pool. The caller must hold the write lock.
func (c *Blockchain) prunePending(block *types.Block) {
	if len(c.pending) == 0 {
		return
	}
	// Each included transaction removes at most one pending copy.
	included := make(map[common.Hash]int, len(block.Transactions))
	for i := range block.Transactions {
		if hash, err := block.Transactions[i].Hash(); err == nil {
			included[hash]++
		}
	}
	remaining := c.pending[:0]
	for _, tx := range c.pending {
		hash, err := tx.Hash()
		if err == nil && included[hash] > 0 {
			included[hash]--
			continue
		}
		remaining = append(remaining, tx)
	}
	clear(c.pending[len(remaining):])
	c.pending = remaining
}

// --- Queries ---

// Height returns the number of committed blocks.
func (c *Blockchain) Height() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// Head returns a copy of the most recently committed block.
func (c *Blockchain) Head() (*types.Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	head := c.head()
	if head == nil {
		return nil, false
	}
	return head.Clone(), true
}

// HeadHash returns the hash a block extending the chain has to refer to, or
// nil if the chain is empty.
func (c *Blockchain) HeadHash() *common.Hash {
	c.mu.RLock()
	defer c.mu.RUnlock()
	head := c.head()
	if head == nil {
		return nil
	}
	hash := *head.TransHash
	return &hash
}

// Blocks returns copies of all committed blocks in chain order.
func (c *Blockchain) Blocks() []*types.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make([]*types.Block, len(c.blocks))
	for i, block := range c.blocks {
		res[i] = block.Clone()
	}
	return res
}

// Account returns a copy of the committed state of the given account.
func (c *Blockchain) Account(id string) (*state.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accounts.GetAccount(id)
}

// AccountIDs lists all known account identifiers in ascending order.
func (c *Blockchain) AccountIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accounts.AccountIDs()
}

// Accounts returns a deep copy of the committed account table.
func (c *Blockchain) Accounts() *state.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accounts.Clone()
}

// StateHash returns a commitment to the committed account table.
func (c *Blockchain) StateHash() (common.Hash, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accounts.Hash()
}
