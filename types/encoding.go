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
	"fmt"
	"io"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// The hashed layout of a block is
//
//	RLP([prevHash, [tx_1, ..., tx_n], nonce])
//
// where prevHash is the 32-byte hash or an empty string if absent, and every
// transaction is encoded as
//
//	RLP([sender, timestamp, nonce, signature, kind, RLP(payload)])
//
// with the payload being the list of the payload type's fields in declaration
// order. The content hash is the Keccak256 digest of the block encoding.

const (
	ErrMissingPayload = common.ConstError("transaction has no payload")
	ErrUnknownKind    = common.ConstError("unknown transaction kind")
	ErrInvalidHash    = common.ConstError("invalid hash length")
)

type txRecord struct {
	Sender    string
	Timestamp uint64
	Nonce     uint64
	Signature []byte
	Kind      uint8
	Payload   rlp.RawValue
}

func (tx Transaction) EncodeRLP(w io.Writer) error {
	if tx.Data == nil {
		return ErrMissingPayload
	}
	payload, err := rlp.EncodeToBytes(tx.Data)
	if err != nil {
		return fmt.Errorf("failed to encode %v payload: %w", tx.Data.Kind(), err)
	}
	return rlp.Encode(w, &txRecord{
		Sender:    tx.Sender,
		Timestamp: tx.Timestamp,
		Nonce:     tx.Nonce,
		Signature: tx.Signature,
		Kind:      uint8(tx.Data.Kind()),
		Payload:   payload,
	})
}

func (tx *Transaction) DecodeRLP(s *rlp.Stream) error {
	var record txRecord
	if err := s.Decode(&record); err != nil {
		return err
	}
	data, err := decodePayload(Kind(record.Kind), record.Payload)
	if err != nil {
		return err
	}
	*tx = Transaction{
		Sender:    record.Sender,
		Timestamp: record.Timestamp,
		Nonce:     record.Nonce,
		Data:      data,
	}
	if len(record.Signature) > 0 {
		tx.Signature = record.Signature
	}
	return nil
}

func decodePayload(kind Kind, payload []byte) (TransactionData, error) {
	switch kind {
	case KindCreateUserAccount:
		return decodeAs[CreateUserAccount](payload)
	case KindChangeStoreValue:
		return decodeAs[ChangeStoreValue](payload)
	case KindTransferTokens:
		return decodeAs[TransferTokens](payload)
	case KindCreateTokens:
		return decodeAs[CreateTokens](payload)
	case KindCreateValidatorAccount:
		return decodeAs[CreateValidatorAccount](payload)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
}

func decodeAs[T TransactionData](payload []byte) (TransactionData, error) {
	var res T
	if err := rlp.DecodeBytes(payload, &res); err != nil {
		return nil, fmt.Errorf("failed to decode %v payload: %w", res.Kind(), err)
	}
	return res, nil
}

type blockContent struct {
	PrevHash     []byte
	Transactions []Transaction
	Nonce        uint64
}

// ContentHash computes the digest over the block's predecessor hash,
// transactions, and nonce. TransHash is not part of the digest.
func (b *Block) ContentHash() (common.Hash, error) {
	data, err := rlp.EncodeToBytes(&blockContent{
		PrevHash:     hashToBytes(b.PrevHash),
		Transactions: b.Transactions,
		Nonce:        b.Nonce,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode block: %w", err)
	}
	return common.Keccak256(data), nil
}

type blockRecord struct {
	PrevHash     []byte
	TransHash    []byte
	Nonce        uint64
	Transactions []Transaction
}

// EncodeBlock serializes a complete block, including its stored TransHash.
func EncodeBlock(b *Block) ([]byte, error) {
	return rlp.EncodeToBytes(&blockRecord{
		PrevHash:     hashToBytes(b.PrevHash),
		TransHash:    hashToBytes(b.TransHash),
		Nonce:        b.Nonce,
		Transactions: b.Transactions,
	})
}

// DecodeBlock restores a block serialized by EncodeBlock.
func DecodeBlock(data []byte) (*Block, error) {
	var record blockRecord
	if err := rlp.DecodeBytes(data, &record); err != nil {
		return nil, err
	}
	prev, err := hashFromBytes(record.PrevHash)
	if err != nil {
		return nil, err
	}
	trans, err := hashFromBytes(record.TransHash)
	if err != nil {
		return nil, err
	}
	return &Block{
		PrevHash:     prev,
		TransHash:    trans,
		Nonce:        record.Nonce,
		Transactions: record.Transactions,
	}, nil
}

func hashToBytes(hash *common.Hash) []byte {
	if hash == nil {
		return []byte{}
	}
	return hash[:]
}

func hashFromBytes(data []byte) (*common.Hash, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) != len(common.Hash{}) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHash, len(data))
	}
	hash := common.Hash(data)
	return &hash, nil
}
