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
	"fmt"

	"github.com/0xsoniclabs/ledger/common"
)

const (
	// ErrArchive is reported if a committed block could not be archived.
	ErrArchive = common.ConstError("failed to archive block")
)

// ChainError describes why a block was not appended to the chain. Index is
// the 1-based position of the transaction that failed to execute, or zero if
// the block was rejected by validation before any transaction was executed.
type ChainError struct {
	Index int
	Cause error
}

func (e *ChainError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("block rejected: %v", e.Cause)
	}
	return fmt.Sprintf("block rejected: transaction %d failed: %v", e.Index, e.Cause)
}

func (e *ChainError) Unwrap() error {
	return e.Cause
}
