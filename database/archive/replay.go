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
	"fmt"

	"github.com/0xsoniclabs/ledger/chain"
)

// Replay appends all blocks of the archive to the given chain, which is
// expected to be empty. It returns the number of blocks appended. Every
// block passes the chain's full validation and execution.
func Replay(ctx context.Context, source *Store, target *chain.Blockchain) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	count := 0
	for res := range source.Blocks(ctx) {
		block, err := res.Get()
		if err != nil {
			return count, err
		}
		if err := target.AppendBlock(block); err != nil {
			return count, fmt.Errorf("failed to replay block %d: %w", count, err)
		}
		count++
	}
	return count, ctx.Err()
}
