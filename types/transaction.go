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
	"time"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/0xsoniclabs/ledger/common/amount"
	"github.com/ethereum/go-ethereum/rlp"
)

// Transaction is a request by a sender to modify the ledger. The signature is
// opaque to the ledger; it is produced and checked by external collaborators.
type Transaction struct {
	Sender    string
	Timestamp uint64 // < creation time in Unix milliseconds
	Nonce     uint64
	Signature []byte
	Data      TransactionData
}

// NewTransaction creates an unsigned transaction stamped with the current
// time.
func NewTransaction(sender string, nonce uint64, data TransactionData) Transaction {
	return Transaction{
		Sender:    sender,
		Timestamp: uint64(time.Now().UnixMilli()),
		Nonce:     nonce,
		Data:      data,
	}
}

// Hash computes the Keccak256 digest of the transaction's RLP encoding.
func (tx *Transaction) Hash() (common.Hash, error) {
	data, err := rlp.EncodeToBytes(tx)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256(data), nil
}

func (tx Transaction) String() string {
	return fmt.Sprintf("Tx{from:%q, nonce:%d, %v}", tx.Sender, tx.Nonce, tx.Data)
}

// Kind identifies the type of a transaction payload. The numeric values are
// part of the hashed encoding and must not change.
type Kind uint8

const (
	KindCreateUserAccount      Kind = 1
	KindChangeStoreValue       Kind = 2
	KindTransferTokens         Kind = 3
	KindCreateTokens           Kind = 4
	KindCreateValidatorAccount Kind = 5
)

func (k Kind) String() string {
	switch k {
	case KindCreateUserAccount:
		return "CreateUserAccount"
	case KindChangeStoreValue:
		return "ChangeStoreValue"
	case KindTransferTokens:
		return "TransferTokens"
	case KindCreateTokens:
		return "CreateTokens"
	case KindCreateValidatorAccount:
		return "CreateValidatorAccount"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// TransactionData is the payload of a transaction. The set of payloads is
// closed; only types of this package implement it.
type TransactionData interface {
	Kind() Kind
	isTransactionData()
}

// CreateUserAccount registers a new user account.
type CreateUserAccount struct {
	ID string
}

// ChangeStoreValue sets a key in the sender's key-value store.
type ChangeStoreValue struct {
	Key   string
	Value string
}

// TransferTokens moves tokens from the sender to another account.
type TransferTokens struct {
	To     string
	Amount amount.Amount
}

// CreateTokens mints tokens for a receiver.
type CreateTokens struct {
	Receiver string
	Amount   amount.Amount
}

// CreateValidatorAccount registers a new validator account.
type CreateValidatorAccount struct {
	ID string
}

func (CreateUserAccount) Kind() Kind      { return KindCreateUserAccount }
func (ChangeStoreValue) Kind() Kind       { return KindChangeStoreValue }
func (TransferTokens) Kind() Kind         { return KindTransferTokens }
func (CreateTokens) Kind() Kind           { return KindCreateTokens }
func (CreateValidatorAccount) Kind() Kind { return KindCreateValidatorAccount }

func (CreateUserAccount) isTransactionData()      {}
func (ChangeStoreValue) isTransactionData()       {}
func (TransferTokens) isTransactionData()         {}
func (CreateTokens) isTransactionData()           {}
func (CreateValidatorAccount) isTransactionData() {}
