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
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xsoniclabs/codechunk/chunk"
	"github.com/0xsoniclabs/codechunk/common"
	_ "github.com/mattn/go-sqlite3"
)

// sqliteStore is a Store implementation keeping chunks in a single SQLite
// table.
type sqliteStore struct {
	db *sql.DB
}

func newSqliteStore(directory string) (_ *sqliteStore, err error) {
	if err := os.MkdirAll(directory, 0700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", filepath.Join(directory, "chunks.db"))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, db.Close())
		}
	}()
	const schema = "CREATE TABLE IF NOT EXISTS chunks (hash BLOB PRIMARY KEY, data BLOB NOT NULL)"
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create chunk table: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(hash common.Hash) ([]chunk.Chunk, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM chunks WHERE hash = ?", hash[:]).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeChunks(data)
}

func (s *sqliteStore) Has(hash common.Hash) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM chunks WHERE hash = ?", hash[:]).Scan(&count)
	return count > 0, err
}

func (s *sqliteStore) Set(hash common.Hash, chunks []chunk.Chunk) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO chunks (hash, data) VALUES (?, ?)", hash[:], encodeChunks(chunks))
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
