// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"github.com/0xsoniclabs/ledger/common/amount"
	"golang.org/x/exp/maps"
)

// AccountKind enumerates the roles an account can have.
type AccountKind uint8

const (
	User AccountKind = iota
	Contract
	Validator
)

func (k AccountKind) String() string {
	switch k {
	case User:
		return "user"
	case Contract:
		return "contract"
	case Validator:
		return "validator"
	}
	return "unknown"
}

// AccountType is the role of an account. The validation counters are only
// meaningful for Validator accounts and are zero for all other kinds.
type AccountType struct {
	Kind                 AccountKind
	CorrectlyValidated   uint64
	IncorrectlyValidated uint64
}

func UserType() AccountType {
	return AccountType{Kind: User}
}

func ContractType() AccountType {
	return AccountType{Kind: Contract}
}

func ValidatorType() AccountType {
	return AccountType{Kind: Validator}
}

func (t AccountType) IsValidator() bool {
	return t.Kind == Validator
}

// Account is the state of a single ledger participant. Its identifier is the
// key it is registered under in a Store and is not part of the account.
type Account struct {
	Store   map[string]string
	Type    AccountType
	Balance amount.Amount
}

// NewAccount creates an account of the given type with an empty key-value
// store and zero balance.
func NewAccount(accountType AccountType) *Account {
	return &Account{
		Store: map[string]string{},
		Type:  accountType,
	}
}

// Clone creates a deep copy of the account.
func (a *Account) Clone() *Account {
	res := *a
	res.Store = maps.Clone(a.Store)
	return &res
}
