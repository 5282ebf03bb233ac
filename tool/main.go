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
	"os"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var verboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "log every replayed block",
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ledger-tool",
		Usage: "ledger archive maintenance tool",
		Flags: []cli.Flag{&verboseFlag},
		Before: func(context *cli.Context) error {
			if !context.Bool(verboseFlag.Name) {
				logrus.SetLevel(logrus.WarnLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			&Verify,
			&Info,
		},
	}
}
