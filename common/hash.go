// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Hash is a 32-byte Keccak-256 hash, used to identify code.
type Hash [32]byte

// String returns the hex encoding of the hash without 0x prefix.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Keccak256 computes the Keccak-256 hash of the given data.
func Keccak256(data []byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	var res Hash
	hasher.Sum(res[:0])
	return res
}

// TrimHexPrefix removes a single leading 0x or 0X from the given string.
func TrimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// ErrInvalidHash is returned when a string does not encode a 32-byte hash.
const ErrInvalidHash = ConstError("invalid hash")

// ParseHash parses a hex-encoded hash, with or without 0x prefix.
func ParseHash(s string) (Hash, error) {
	s = TrimHexPrefix(s)
	data, err := hex.DecodeString(s)
	if err != nil || len(data) != len(Hash{}) {
		return Hash{}, fmt.Errorf("%w: %q", ErrInvalidHash, s)
	}
	return Hash(data), nil
}
