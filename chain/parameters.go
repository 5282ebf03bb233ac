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
	"github.com/0xsoniclabs/ledger/common/amount"
	"github.com/0xsoniclabs/ledger/types"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source parameters.go -destination parameters_mocks.go -package chain

// Parameters configure a Blockchain instance.
type Parameters struct {
	// Logger receives commit and rejection events. If nil, the logrus
	// standard logger is used.
	Logger logrus.FieldLogger

	// MaxMintAmount caps the amount a single CreateTokens transaction may
	// mint outside the genesis block. Zero disables the cap.
	MaxMintAmount amount.Amount

	// Archive, if set, receives every committed block.
	Archive Archive
}

// Archive is a sink for committed blocks, for instance a persistent block
// store. Blocks are passed in commit order starting at height 0.
type Archive interface {
	// Append stores the block at the given height, which equals the
	// current Height of the archive.
	Append(height uint64, block *types.Block) error
	// Height returns the number of blocks stored so far.
	Height() uint64
}
