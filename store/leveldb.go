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
	"github.com/0xsoniclabs/codechunk/chunk"
	"github.com/0xsoniclabs/codechunk/common"
	"github.com/pbnjay/memory"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// maxDefaultCacheSize caps the block cache chosen when no size is configured.
const maxDefaultCacheSize = 256 << 20

// levelDbStore is a Store implementation backed by LevelDB.
type levelDbStore struct {
	db *leveldb.DB
}

func newLevelDbStore(path string, cacheSize int) (*levelDbStore, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize()
	}
	db, err := leveldb.OpenFile(path, &opt.Options{
		BlockCacheCapacity: cacheSize,
	})
	if err != nil {
		return nil, err
	}
	return &levelDbStore{db: db}, nil
}

// defaultCacheSize uses 1/64 of the system memory, up to a fixed limit. If the
// system memory can not be determined, LevelDB's default is used.
func defaultCacheSize() int {
	return int(min(memory.TotalMemory()/64, maxDefaultCacheSize))
}

func (s *levelDbStore) Get(hash common.Hash) ([]chunk.Chunk, error) {
	data, err := s.db.Get(hash[:], &opt.ReadOptions{})
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeChunks(data)
}

func (s *levelDbStore) Has(hash common.Hash) (bool, error) {
	return s.db.Has(hash[:], &opt.ReadOptions{})
}

func (s *levelDbStore) Set(hash common.Hash, chunks []chunk.Chunk) error {
	return s.db.Put(hash[:], encodeChunks(chunks), &opt.WriteOptions{})
}

func (s *levelDbStore) Close() error {
	return s.db.Close()
}
