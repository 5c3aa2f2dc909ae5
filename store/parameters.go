// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package store

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
)

// Backend names the storage engine used by a store.
type Backend string

const (
	LevelDb Backend = "leveldb"
	Sqlite  Backend = "sqlite"
	Memory  Backend = "memory"
)

// Parameters configure the store created by Open.
type Parameters struct {
	Backend   Backend
	Directory string // < ignored by the memory backend
	CacheSize int    // < LevelDB block cache in bytes, 0 for a default
}

// Open creates or opens a chunk store as described by the given parameters.
func Open(params Parameters) (Store, error) {
	var (
		store Store
		err   error
	)
	switch params.Backend {
	case LevelDb, "":
		store, err = newLevelDbStore(params.Directory, params.CacheSize)
	case Sqlite:
		store, err = newSqliteStore(params.Directory)
	case Memory:
		store = newMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported store backend: %q", params.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store in %s: %w", params.Backend, params.Directory, err)
	}
	log.Debug("Opened chunk store", "backend", params.Backend, "dir", params.Directory)
	return store, nil
}
