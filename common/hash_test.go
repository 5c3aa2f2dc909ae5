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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256_EmptyInputMatchesKnownHash(t *testing.T) {
	// The hash of empty code, as used for accounts without code.
	want, err := ParseHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.NoError(t, err)
	require.Equal(t, want, Keccak256(nil))
}

func TestParseHash_AcceptsOptionalPrefix(t *testing.T) {
	require := require.New(t)
	hash := Keccak256([]byte{1, 2, 3})

	got, err := ParseHash(hash.String())
	require.NoError(err)
	require.Equal(hash, got)

	got, err = ParseHash("0x" + hash.String())
	require.NoError(err)
	require.Equal(hash, got)
}

func TestTrimHexPrefix_RemovesSinglePrefix(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"0":      "0",
		"0x":     "",
		"0X12":   "12",
		"0x0X12": "0X12",
		"x012":   "x012",
		"1234":   "1234",
	}
	for input, want := range tests {
		require.Equal(t, want, TrimHexPrefix(input), "input %q", input)
	}
}

func TestParseHash_RejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "0x", "zz", "0102", "0x0X" + Keccak256(nil).String()[2:], "0x" + string(make([]byte, 64))} {
		_, err := ParseHash(input)
		require.ErrorIs(t, err, ErrInvalidHash, "input %q", input)
	}
}

func TestConstError_ReportsMessage(t *testing.T) {
	const err = ConstError("some issue")
	require.Equal(t, "some issue", err.Error())
}
