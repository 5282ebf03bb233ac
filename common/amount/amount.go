// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package amount

import (
	"io"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

const (
	ErrOverflow  = common.ConstError("amount overflow")
	ErrUnderflow = common.ConstError("amount underflow")
)

// Amount is a non-negative 256-bit token quantity. The zero value is zero.
// Amounts are immutable; all arithmetic returns new values.
type Amount struct {
	internal uint256.Int
}

// New creates an amount from a uint64.
func New(value uint64) Amount {
	return Amount{internal: *uint256.NewInt(value)}
}

// Max returns the largest representable amount.
func Max() Amount {
	res := Amount{}
	res.internal.SetAllOne()
	return res
}

// Add returns a + b or ErrOverflow if the sum does not fit into 256 bits.
func Add(a, b Amount) (Amount, error) {
	res := Amount{}
	if _, overflow := res.internal.AddOverflow(&a.internal, &b.internal); overflow {
		return Amount{}, ErrOverflow
	}
	return res, nil
}

// Sub returns a - b or ErrUnderflow if b is larger than a.
func Sub(a, b Amount) (Amount, error) {
	res := Amount{}
	if _, underflow := res.internal.SubOverflow(&a.internal, &b.internal); underflow {
		return Amount{}, ErrUnderflow
	}
	return res, nil
}

func (a Amount) IsZero() bool {
	return a.internal.IsZero()
}

func (a Amount) Less(b Amount) bool {
	return a.internal.Lt(&b.internal)
}

func (a Amount) String() string {
	return a.internal.Dec()
}

// EncodeRLP encodes the amount as an RLP big-endian integer.
func (a Amount) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, a.internal.ToBig())
}

// DecodeRLP decodes an RLP integer into the amount.
func (a *Amount) DecodeRLP(s *rlp.Stream) error {
	value, err := s.BigInt()
	if err != nil {
		return err
	}
	if a.internal.SetFromBig(value) {
		return ErrOverflow
	}
	return nil
}
