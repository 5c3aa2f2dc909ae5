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
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/0xsoniclabs/codechunk/chunk"
	"github.com/0xsoniclabs/codechunk/codefile"
	"github.com/0xsoniclabs/codechunk/common"
	"github.com/0xsoniclabs/codechunk/store"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var (
	dbFlag = cli.StringFlag{
		Name:     "db",
		Usage:    "directory of the chunk store",
		Required: true,
	}
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "storage backend: leveldb or sqlite",
		Value: string(store.LevelDb),
	}
	cacheSizeFlag = cli.IntFlag{
		Name:  "cache-size",
		Usage: "LevelDB block cache size in bytes, 0 for a default based on system memory",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of workers splitting code, 0 for one per CPU",
	}
)

var Import = cli.Command{
	Action:    addStore(importCode),
	Name:      "import",
	Usage:     "splits hex-encoded bytecode into chunks and adds them to a chunk store",
	ArgsUsage: "<code-file>...",
	Flags: []cli.Flag{
		&dbFlag,
		&backendFlag,
		&cacheSizeFlag,
		&workersFlag,
	},
}

var Export = cli.Command{
	Action:    addStore(exportCode),
	Name:      "export",
	Usage:     "restores bytecode from a chunk store and prints it hex-encoded",
	ArgsUsage: "<code-hash> <code-size>",
	Flags: []cli.Flag{
		&dbFlag,
		&backendFlag,
		&cacheSizeFlag,
	},
}

// addStore opens the store configured by the command line flags for the
// duration of the given action.
func addStore(action func(*cli.Context, store.Store) error) cli.ActionFunc {
	return func(context *cli.Context) error {
		params := store.Parameters{
			Backend:   store.Backend(context.String(backendFlag.Name)),
			Directory: context.String(dbFlag.Name),
			CacheSize: context.Int(cacheSizeFlag.Name),
		}
		db, err := store.Open(params)
		if err != nil {
			return err
		}
		return errors.Join(
			action(context, db),
			db.Close(),
		)
	}
}

func importCode(context *cli.Context, db store.Store) error {
	paths := context.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("missing code files")
	}
	codes := make([][]byte, 0, len(paths))
	for _, path := range paths {
		code, err := codefile.ReadHexFile(path)
		if err != nil {
			return err
		}
		codes = append(codes, code.Bytes)
	}

	pool := chunk.NewPool(context.Int(workersFlag.Name))
	defer pool.Close()
	hashes, err := store.ImportAll(db, pool, codes)
	if err != nil {
		return err
	}
	for i, hash := range hashes {
		fmt.Fprintf(context.App.Writer, "%v %d %s\n", hash, len(codes[i]), paths[i])
	}
	log.Info("Imported codes", "count", len(codes))
	return nil
}

func exportCode(context *cli.Context, db store.Store) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected code hash and code size")
	}
	hash, err := common.ParseHash(context.Args().Get(0))
	if err != nil {
		return err
	}
	size, err := strconv.Atoi(context.Args().Get(1))
	if err != nil || size < 0 {
		return fmt.Errorf("invalid code size: %q", context.Args().Get(1))
	}
	code, err := store.Export(db, hash, size)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(context.App.Writer, hex.EncodeToString(code))
	return err
}
