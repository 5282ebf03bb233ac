// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/ledger/chain"
	"github.com/0xsoniclabs/ledger/common/amount"
	"github.com/0xsoniclabs/ledger/database/archive"
	"github.com/0xsoniclabs/ledger/executor"
	"github.com/0xsoniclabs/ledger/types"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// createArchive fills an archive directory with a genesis block followed by
// a block minting the given amount.
func createArchive(t *testing.T, mint uint64) string {
	t.Helper()
	require := require.New(t)
	dir := t.TempDir()
	store, err := archive.OpenLevelDb(dir)
	require.NoError(err)

	logger, _ := test.NewNullLogger()
	c := chain.NewBlockchain(chain.Parameters{Logger: logger, Archive: store})
	genesis, err := types.NewBlock(nil, 0,
		types.NewTransaction("val", 0, types.CreateValidatorAccount{ID: "val"}),
		types.NewTransaction("val", 1, types.CreateUserAccount{ID: "alice"}),
	)
	require.NoError(err)
	require.NoError(c.AppendBlock(genesis))

	minting, err := types.NewBlock(c.HeadHash(), 1,
		types.NewTransaction("val", 2, types.CreateTokens{Receiver: "alice", Amount: amount.New(mint)}),
	)
	require.NoError(err)
	require.NoError(c.AppendBlock(minting))
	require.NoError(store.Close())
	return dir
}

func TestVerify_AcceptsValidArchive(t *testing.T) {
	dir := createArchive(t, 100)
	require.NoError(t, newApp().Run([]string{"ledger-tool", "verify", dir}))
}

func TestVerify_DetectsBlocksViolatingMintCap(t *testing.T) {
	dir := createArchive(t, 100)
	err := newApp().Run([]string{"ledger-tool", "verify", "--mint-cap", "50", dir})
	require.ErrorIs(t, err, executor.ErrMintCapExceeded)
}

func TestVerify_RequiresDirectory(t *testing.T) {
	require.Error(t, newApp().Run([]string{"ledger-tool", "verify"}))
}

func TestInfo_ReportsArchiveContent(t *testing.T) {
	dir := createArchive(t, 100)
	require.NoError(t, newApp().Run([]string{"ledger-tool", "info", dir}))
	require.Error(t, newApp().Run([]string{"ledger-tool", "info"}))
}

func TestCommands_FailOnMissingArchive(t *testing.T) {
	for _, command := range []string{"verify", "info"} {
		t.Run(command, func(t *testing.T) {
			missing := filepath.Join(t.TempDir(), "typo")
			err := newApp().Run([]string{"ledger-tool", command, missing})
			require.ErrorIs(t, err, archive.ErrNotFound)
			_, err = os.Stat(missing)
			require.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}
