// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chunk

import "github.com/holiman/uint256"

const (
	// CodeOffset is the position of the first code chunk within the leaf
	// space of an account. Positions below it hold the account header.
	CodeOffset = 128
	// NodeWidth is the number of values stored in a single leaf node.
	NodeWidth = 256
)

// Position locates a code chunk in the tree of an account. The tree index
// selects the leaf node (stem) while the sub index selects the value within
// that leaf.
type Position struct {
	TreeIndex uint256.Int
	SubIndex  byte
}

// GetPosition returns the position of the code chunk with the given index.
func GetPosition(index int) Position {
	pos := uint256.NewInt(uint64(index))
	pos.AddUint64(pos, CodeOffset)

	var res Position
	res.TreeIndex.Rsh(pos, 8)
	res.SubIndex = byte(pos.Uint64() % NodeWidth)
	return res
}
