// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package codefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/0xsoniclabs/codechunk/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// ErrCodeFileNotFound is returned when a code file does not exist.
	ErrCodeFileNotFound = common.ConstError("code file not found")
	// ErrInvalidHex is returned when a code file does not contain valid hex.
	ErrInvalidHex = common.ConstError("invalid hex encoding")
)

// Code is EVM bytecode together with the hex string it was decoded from.
type Code struct {
	Hex   string // < as found in the source, without 0x prefix
	Bytes []byte
}

// ReadHexFile reads a file containing hex-encoded EVM bytecode. Surrounding
// whitespace and an optional 0x prefix are ignored.
func ReadHexFile(path string) (Code, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Code{}, fmt.Errorf("%w: %s", ErrCodeFileNotFound, path)
	}
	if err != nil {
		return Code{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	code, err := ParseHex(string(data))
	if err != nil {
		return Code{}, fmt.Errorf("%s: %w", path, err)
	}
	return code, nil
}

// ParseHex decodes hex-encoded bytecode. Surrounding whitespace and an
// optional 0x prefix are ignored.
func ParseHex(input string) (Code, error) {
	trimmed := common.TrimHexPrefix(strings.TrimSpace(input))
	bytes, err := hexutil.Decode("0x" + trimmed)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return Code{Hex: trimmed, Bytes: bytes}, nil
}
