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

	"github.com/0xsoniclabs/codechunk/codefile"
	"github.com/0xsoniclabs/codechunk/stats"
	"github.com/urfave/cli/v2"
)

var Stats = cli.Command{
	Action:    printStats,
	Name:      "stats",
	Usage:     "prints chunking statistics for hex-encoded bytecode",
	ArgsUsage: "<code-file>...",
}

func printStats(context *cli.Context) error {
	if context.Args().Len() == 0 {
		return fmt.Errorf("missing code files")
	}
	out := context.App.Writer
	summary := stats.Summary{}
	for _, path := range context.Args().Slice() {
		code, err := codefile.ReadHexFile(path)
		if err != nil {
			return err
		}
		codeStats := stats.Analyze(code.Bytes)
		fmt.Fprintf(out, "%s: %d bytes, %d chunks, %d pushes, %d push data bytes, %d chunks starting in push data, %d leaves\n",
			path, codeStats.CodeSize, codeStats.NumChunks, codeStats.NumPushes(), codeStats.PushDataBytes, codeStats.ChunksWithPushData, codeStats.NumLeaves,
		)
		summary.Add(codeStats)
	}
	fmt.Fprintln(out)
	return summary.Print(out)
}
