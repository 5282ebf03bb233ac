// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package validation

import (
	"fmt"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/0xsoniclabs/ledger/types"
)

const (
	ErrEmptyBlock      = common.ConstError("empty block")
	ErrBrokenChainLink = common.ConstError("broken chain link")
	ErrHashMismatch    = common.ConstError("hash mismatch")
)

// ValidateBlock checks whether the candidate block may be appended to a chain
// whose current head is the given block. A nil head denotes an empty chain.
// The checks are performed in order and the first failure is reported:
//
//  1. the block contains at least one transaction,
//  2. its PrevHash refers to the head, or is absent iff the chain is empty,
//  3. its TransHash equals the recomputed content hash.
//
// No state is consulted or modified.
func ValidateBlock(candidate *types.Block, head *types.Block) error {
	if len(candidate.Transactions) == 0 {
		return ErrEmptyBlock
	}
	if err := checkLink(candidate, head); err != nil {
		return err
	}
	return checkContentHash(candidate)
}

func checkLink(candidate *types.Block, head *types.Block) error {
	if head == nil {
		if candidate.PrevHash != nil {
			return fmt.Errorf("%w: first block must not refer to a predecessor, got %v", ErrBrokenChainLink, *candidate.PrevHash)
		}
		return nil
	}
	if candidate.PrevHash == nil {
		return fmt.Errorf("%w: missing predecessor hash", ErrBrokenChainLink)
	}
	headHash, sealed := head.Hash()
	if !sealed {
		return fmt.Errorf("%w: head block is not sealed", ErrBrokenChainLink)
	}
	if *candidate.PrevHash != headHash {
		return fmt.Errorf("%w: expected predecessor %v, got %v", ErrBrokenChainLink, headHash, *candidate.PrevHash)
	}
	return nil
}

func checkContentHash(candidate *types.Block) error {
	if candidate.TransHash == nil {
		return fmt.Errorf("%w: block is not sealed", ErrHashMismatch)
	}
	want, err := candidate.ContentHash()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHashMismatch, err)
	}
	if *candidate.TransHash != want {
		return fmt.Errorf("%w: stored %v, computed %v", ErrHashMismatch, *candidate.TransHash, want)
	}
	return nil
}
