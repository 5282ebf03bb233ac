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

	"github.com/0xsoniclabs/ledger/database/archive"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var Info = cli.Command{
	Action:    info,
	Name:      "info",
	Usage:     "prints the height and head of an archive",
	ArgsUsage: "<directory>",
}

func info(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing directory storing the archive")
	}
	dir := context.Args().Get(0)

	store, err := archive.OpenExistingLevelDb(dir)
	if err != nil {
		return err
	}
	data := pterm.TableData{
		{"Directory", dir},
		{"Height", fmt.Sprint(store.Height())},
	}
	head, err := store.Head()
	switch {
	case errors.Is(err, archive.ErrNotFound):
		data = append(data, []string{"Head", "-"})
	case err != nil:
		return errors.Join(err, store.Close())
	default:
		data = append(data,
			[]string{"Head", head.TransHash.String()},
			[]string{"Head transactions", fmt.Sprint(len(head.Transactions))},
		)
	}
	if err := store.Close(); err != nil {
		return err
	}
	return pterm.DefaultTable.WithHasHeader(false).WithData(data).Render()
}
