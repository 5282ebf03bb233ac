// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package types

import (
	"bytes"
	"slices"

	"github.com/0xsoniclabs/ledger/common"
)

// Block is an ordered batch of transactions extending the chain. PrevHash
// refers to the hash of the preceding block and is nil only for the first
// block of a chain. TransHash is the content hash committing to PrevHash,
// the transactions, and the nonce; it doubles as the block's identity.
type Block struct {
	PrevHash     *common.Hash
	TransHash    *common.Hash
	Nonce        uint64
	Transactions []Transaction
}

// NewBlock assembles a block on top of the given predecessor hash and seals
// it by computing its content hash.
func NewBlock(prev *common.Hash, nonce uint64, transactions ...Transaction) (*Block, error) {
	block := &Block{
		Nonce:        nonce,
		Transactions: slices.Clone(transactions),
	}
	if prev != nil {
		hash := *prev
		block.PrevHash = &hash
	}
	if err := block.Seal(); err != nil {
		return nil, err
	}
	return block, nil
}

// Seal recomputes the content hash of the block and stores it in TransHash.
func (b *Block) Seal() error {
	hash, err := b.ContentHash()
	if err != nil {
		return err
	}
	b.TransHash = &hash
	return nil
}

// Hash returns the identity of the block, which is its stored content hash.
// The result is false if the block has not been sealed.
func (b *Block) Hash() (common.Hash, bool) {
	if b.TransHash == nil {
		return common.Hash{}, false
	}
	return *b.TransHash, true
}

// Clone creates a deep copy of the block.
func (b *Block) Clone() *Block {
	res := &Block{
		Nonce:        b.Nonce,
		Transactions: make([]Transaction, len(b.Transactions)),
	}
	if b.PrevHash != nil {
		hash := *b.PrevHash
		res.PrevHash = &hash
	}
	if b.TransHash != nil {
		hash := *b.TransHash
		res.TransHash = &hash
	}
	for i, tx := range b.Transactions {
		tx.Signature = bytes.Clone(tx.Signature)
		res.Transactions[i] = tx
	}
	return res
}
