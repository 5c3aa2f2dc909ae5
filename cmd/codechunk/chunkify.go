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
	"fmt"

	"github.com/0xsoniclabs/codechunk/chunk"
	"github.com/0xsoniclabs/codechunk/codefile"
	"github.com/urfave/cli/v2"
)

var Chunkify = cli.Command{
	Action:    chunkify,
	Name:      "chunkify",
	Usage:     "prints the chunks of hex-encoded bytecode as JSON",
	ArgsUsage: "<code-file>",
}

func chunkify(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing code file")
	}
	code, err := codefile.ReadHexFile(context.Args().Get(0))
	if err != nil {
		return err
	}
	report := codefile.NewReport(code.Hex, chunk.Split(code.Bytes))
	return report.Write(context.App.Writer)
}
