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
	"sync"

	"github.com/0xsoniclabs/codechunk/chunk"
	"github.com/0xsoniclabs/codechunk/common"
	"golang.org/x/exp/slices"
)

// memoryStore is a simple in-memory implementation of Store for testing purposes.
type memoryStore struct {
	store map[common.Hash][]chunk.Chunk
	lock  sync.Mutex
}

func newMemoryStore() *memoryStore {
	return &memoryStore{store: make(map[common.Hash][]chunk.Chunk)}
}

func (s *memoryStore) Get(hash common.Hash) ([]chunk.Chunk, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	chunks, ok := s.store[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(chunks), nil
}

func (s *memoryStore) Has(hash common.Hash) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.store[hash]
	return ok, nil
}

func (s *memoryStore) Set(hash common.Hash, chunks []chunk.Chunk) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.store[hash] = slices.Clone(chunks)
	return nil
}

func (s *memoryStore) Close() error {
	// No resources to clean up for in-memory store.
	return nil
}
