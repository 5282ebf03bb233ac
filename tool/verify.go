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
	"errors"
	"fmt"

	"github.com/0xsoniclabs/ledger/chain"
	"github.com/0xsoniclabs/ledger/common/amount"
	"github.com/0xsoniclabs/ledger/database/archive"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var mintCapFlag = cli.Uint64Flag{
	Name:  "mint-cap",
	Usage: "maximum amount a single mint may create outside genesis, 0 for no limit",
}

var Verify = cli.Command{
	Action:    verify,
	Name:      "verify",
	Usage:     "replays an archive into a fresh chain, re-validating every block",
	ArgsUsage: "<directory>",
	Flags:     []cli.Flag{&mintCapFlag},
}

func verify(context *cli.Context) error {
	// parse the directory argument
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing directory storing the archive")
	}
	dir := context.Args().Get(0)

	store, err := archive.OpenExistingLevelDb(dir)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("Replaying %d blocks from %s ...", store.Height(), dir)
	target := chain.NewBlockchain(chain.Parameters{
		Logger:        logrus.StandardLogger(),
		MaxMintAmount: amount.New(context.Uint64(mintCapFlag.Name)),
	})
	count, err := archive.Replay(context.Context, store, target)
	if err = errors.Join(err, store.Close()); err != nil {
		return fmt.Errorf("verification failed after %d blocks: %w", count, err)
	}

	stateHash, err := target.StateHash()
	if err != nil {
		return err
	}
	err = pterm.DefaultTable.WithData(pterm.TableData{
		{"Height", fmt.Sprint(target.Height())},
		{"Accounts", fmt.Sprint(len(target.AccountIDs()))},
		{"Head", headHash(target)},
		{"State hash", stateHash.String()},
	}).Render()
	if err != nil {
		return err
	}
	pterm.Success.Println("All blocks verified!")
	return nil
}

func headHash(c *chain.Blockchain) string {
	if hash := c.HeadHash(); hash != nil {
		return hash.String()
	}
	return "-"
}
