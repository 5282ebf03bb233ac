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
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

func TestAmount_ZeroValueIsZero(t *testing.T) {
	require := require.New(t)
	var a Amount
	require.True(a.IsZero())
	require.Equal(New(0), a)
	require.Equal("0", a.String())
}

func TestAmount_AddAndSub(t *testing.T) {
	require := require.New(t)

	sum, err := Add(New(30), New(12))
	require.NoError(err)
	require.Equal(New(42), sum)

	diff, err := Sub(sum, New(2))
	require.NoError(err)
	require.Equal(New(40), diff)
}

func TestAmount_SubDetectsUnderflow(t *testing.T) {
	_, err := Sub(New(1), New(2))
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestAmount_AddDetectsOverflow(t *testing.T) {
	_, err := Add(Max(), New(1))
	require.ErrorIs(t, err, ErrOverflow)

	res, err := Add(Max(), New(0))
	require.NoError(t, err)
	require.Equal(t, Max(), res)
}

func TestAmount_Comparison(t *testing.T) {
	require := require.New(t)
	require.True(New(1).Less(New(2)))
	require.False(New(2).Less(New(2)))
	require.True(New(6).Less(New(7)))
}

func TestAmount_RlpEncodingRoundTrips(t *testing.T) {
	require := require.New(t)
	for _, value := range []Amount{New(0), New(1), New(1 << 40), Max()} {
		data, err := rlp.EncodeToBytes(value)
		require.NoError(err)
		var restored Amount
		require.NoError(rlp.DecodeBytes(data, &restored))
		require.Equal(value, restored)
	}
}

func TestAmount_RlpDecodingRejectsValuesExceeding256Bits(t *testing.T) {
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)
	data, err := rlp.EncodeToBytes(tooLarge)
	require.NoError(t, err)
	var restored Amount
	require.ErrorIs(t, rlp.DecodeBytes(data, &restored), ErrOverflow)
}
