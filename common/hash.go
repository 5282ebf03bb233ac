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
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// Hash is a 32-byte Keccak256 digest.
type Hash [32]byte

// Keccak256 computes the Keccak256 digest of the concatenation of the given
// byte slices.
func Keccak256(data ...[]byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	for _, cur := range data {
		hasher.Write(cur)
	}
	var res Hash
	hasher.Sum(res[:0])
	return res
}

// HashFromString parses a 0x-prefixed hex string of exactly 32 bytes.
func HashFromString(s string) (Hash, error) {
	data, err := hexutil.Decode(s)
	if err != nil {
		return Hash{}, err
	}
	if len(data) != len(Hash{}) {
		return Hash{}, fmt.Errorf("invalid hash length %d, expected %d", len(data), len(Hash{}))
	}
	return Hash(data), nil
}

func (h Hash) String() string {
	return hexutil.Encode(h[:])
}

// Short returns the first four bytes of the hash in hex, for log output.
func (h Hash) Short() string {
	return fmt.Sprintf("%x", h[:4])
}
