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
	"github.com/stretchr/testify/require"
)

func testTransactions() []Transaction {
	return []Transaction{
		{Sender: "alice", Timestamp: 1, Data: CreateUserAccount{ID: "bob"}},
		{Sender: "alice", Timestamp: 2, Nonce: 1, Data: TransferTokens{To: "bob", Amount: amount.New(5)}},
	}
}

func TestBlock_NewBlockIsSealed(t *testing.T) {
	require := require.New(t)
	block, err := NewBlock(nil, 42, testTransactions()...)
	require.NoError(err)
	require.Nil(block.PrevHash)
	require.NotNil(block.TransHash)

	want, err := block.ContentHash()
	require.NoError(err)
	hash, sealed := block.Hash()
	require.True(sealed)
	require.Equal(want, hash)
}

func TestBlock_UnsealedBlockHasNoHash(t *testing.T) {
	block := &Block{Transactions: testTransactions()}
	_, sealed := block.Hash()
	require.False(t, sealed)
}

func TestBlock_NewBlockCopiesPredecessorHash(t *testing.T) {
	require := require.New(t)
	prev := common.Hash{1, 2, 3}
	block, err := NewBlock(&prev, 0, testTransactions()...)
	require.NoError(err)
	prev[0] = 9
	require.Equal(common.Hash{1, 2, 3}, *block.PrevHash)
}

func TestBlock_ContentHashCoversAllContent(t *testing.T) {
	require := require.New(t)
	base, err := NewBlock(nil, 1, testTransactions()...)
	require.NoError(err)
	baseHash, err := base.ContentHash()
	require.NoError(err)

	prev := common.Hash{1}
	mutations := map[string]func(*Block){
		"nonce": func(b *Block) { b.Nonce++ },
		"order": func(b *Block) {
			b.Transactions[0], b.Transactions[1] = b.Transactions[1], b.Transactions[0]
		},
		"sender":    func(b *Block) { b.Transactions[0].Sender = "eve" },
		"timestamp": func(b *Block) { b.Transactions[1].Timestamp++ },
		"signature": func(b *Block) { b.Transactions[1].Signature = []byte{1} },
		"payload": func(b *Block) {
			b.Transactions[1].Data = TransferTokens{To: "bob", Amount: amount.New(6)}
		},
		"dropped":  func(b *Block) { b.Transactions = b.Transactions[:1] },
		"prevHash": func(b *Block) { b.PrevHash = &prev },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			block := base.Clone()
			mutate(block)
			hash, err := block.ContentHash()
			require.NoError(err)
			require.NotEqual(baseHash, hash)
		})
	}
}

func TestBlock_ContentHashIgnoresStoredHash(t *testing.T) {
	require := require.New(t)
	block, err := NewBlock(nil, 1, testTransactions()...)
	require.NoError(err)
	want := *block.TransHash
	block.TransHash = &common.Hash{}
	got, err := block.ContentHash()
	require.NoError(err)
	require.Equal(want, got)
}

func TestBlock_CloneIsDeep(t *testing.T) {
	require := require.New(t)
	prev := common.Hash{7}
	block, err := NewBlock(&prev, 1, testTransactions()...)
	require.NoError(err)
	block.Transactions[0].Signature = []byte{1, 2}

	clone := block.Clone()
	require.Equal(block, clone)

	clone.PrevHash[0] = 8
	clone.TransHash[0]++
	clone.Transactions[0].Signature[0] = 9
	clone.Transactions[1].Sender = "eve"

	require.Equal(common.Hash{7}, *block.PrevHash)
	require.Equal([]byte{1, 2}, block.Transactions[0].Signature)
	require.Equal("alice", block.Transactions[1].Sender)
	require.NotEqual(*block.TransHash, *clone.TransHash)
}

func TestBlock_EncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)
	first, err := NewBlock(nil, 1, testTransactions()...)
	require.NoError(err)
	second, err := NewBlock(first.TransHash, 2, testTransactions()[1])
	require.NoError(err)

	for _, block := range []*Block{first, second, {Transactions: testTransactions()}} {
		data, err := EncodeBlock(block)
		require.NoError(err)
		restored, err := DecodeBlock(data)
		require.NoError(err)
		require.Equal(block, restored)
	}
}

func TestBlock_DecodeRejectsMalformedInput(t *testing.T) {
	_, err := DecodeBlock([]byte{0x01, 0x02})
	require.Error(t, err)

	data, err := EncodeBlock(&Block{Transactions: testTransactions()})
	require.NoError(t, err)
	_, err = DecodeBlock(data[:len(data)-1])
	require.Error(t, err)
}
