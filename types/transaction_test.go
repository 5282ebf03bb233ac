// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package types

import (
	"testing"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/0xsoniclabs/ledger/common/amount"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

func allPayloads() []TransactionData {
	return []TransactionData{
		CreateUserAccount{ID: "alice"},
		ChangeStoreValue{Key: "color", Value: "blue"},
		TransferTokens{To: "bob", Amount: amount.New(50)},
		CreateTokens{Receiver: "alice", Amount: amount.New(100)},
		CreateValidatorAccount{ID: "val"},
	}
}

func TestTransaction_AllPayloadKindsCanBeEncodedAndDecoded(t *testing.T) {
	for _, data := range allPayloads() {
		t.Run(data.Kind().String(), func(t *testing.T) {
			require := require.New(t)
			tx := Transaction{
				Sender:    "alice",
				Timestamp: 1234,
				Nonce:     7,
				Signature: []byte{1, 2, 3},
				Data:      data,
			}
			encoded, err := rlp.EncodeToBytes(tx)
			require.NoError(err)

			var restored Transaction
			require.NoError(rlp.DecodeBytes(encoded, &restored))
			require.Equal(tx, restored)
		})
	}
}

func TestTransaction_EmptySignatureDecodesAsNil(t *testing.T) {
	require := require.New(t)
	tx := Transaction{Sender: "alice", Data: CreateUserAccount{ID: "alice"}}
	encoded, err := rlp.EncodeToBytes(tx)
	require.NoError(err)
	var restored Transaction
	require.NoError(rlp.DecodeBytes(encoded, &restored))
	require.Nil(restored.Signature)
	require.Equal(tx, restored)
}

func TestTransaction_EncodingWithoutPayloadFails(t *testing.T) {
	_, err := rlp.EncodeToBytes(Transaction{Sender: "alice"})
	require.ErrorIs(t, err, ErrMissingPayload)
}

func TestTransaction_DecodingUnknownKindFails(t *testing.T) {
	encoded, err := rlp.EncodeToBytes(&txRecord{Sender: "alice", Kind: 99, Payload: []byte{0xc0}})
	require.NoError(t, err)
	var restored Transaction
	require.ErrorIs(t, rlp.DecodeBytes(encoded, &restored), ErrUnknownKind)
}

func TestTransaction_HashDistinguishesPayloads(t *testing.T) {
	require := require.New(t)
	seen := map[common.Hash]bool{}
	for _, data := range allPayloads() {
		tx := Transaction{Sender: "alice", Data: data}
		hash, err := tx.Hash()
		require.NoError(err)
		require.False(seen[hash])
		seen[hash] = true
	}
}

func TestTransaction_NewTransactionIsTimestamped(t *testing.T) {
	require := require.New(t)
	tx := NewTransaction("alice", 3, CreateUserAccount{ID: "alice"})
	require.Equal("alice", tx.Sender)
	require.Equal(uint64(3), tx.Nonce)
	require.NotZero(tx.Timestamp)
	require.Nil(tx.Signature)
	require.Contains(tx.String(), "alice")
}

func TestKind_String(t *testing.T) {
	require := require.New(t)
	require.Equal("TransferTokens", KindTransferTokens.String())
	require.Equal("Kind(42)", Kind(42).String())
}
