// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executor

import (
	"fmt"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/0xsoniclabs/ledger/common/amount"
	"github.com/0xsoniclabs/ledger/state"
	"github.com/0xsoniclabs/ledger/types"
)

const (
	ErrUnknownAccount           = common.ConstError("unknown account")
	ErrInsufficientFunds        = common.ConstError("insufficient funds")
	ErrUnauthorizedMint         = common.ConstError("unauthorized mint")
	ErrUnauthorizedRegistration = common.ConstError("unauthorized validator registration")
	ErrMintCapExceeded          = common.ConstError("mint amount exceeds cap")
)

// Config holds the policy knobs of the executor.
type Config struct {
	// MaxMintAmount caps the amount a single CreateTokens transaction may
	// mint outside the genesis block. Zero disables the cap.
	MaxMintAmount amount.Amount
}

// Executor applies individual transactions to a world state. Each
// application either performs all of its state changes or none of them:
// every precondition is checked before the first modification is made.
type Executor struct {
	config Config
}

func New(config Config) *Executor {
	return &Executor{config: config}
}

// Apply executes the given transaction on the world state. The genesis flag
// indicates that the transaction is part of the first block of a chain, in
// which minting and validator registration are not restricted.
func (e *Executor) Apply(ws state.WorldState, tx *types.Transaction, genesis bool) error {
	if tx.Data == nil {
		return types.ErrMissingPayload
	}
	switch data := tx.Data.(type) {
	case types.CreateUserAccount:
		return createAccount(ws, data.ID, state.UserType())
	case types.CreateValidatorAccount:
		return e.createValidatorAccount(ws, tx.Sender, data, genesis)
	case types.ChangeStoreValue:
		return changeStoreValue(ws, tx.Sender, data)
	case types.TransferTokens:
		return transferTokens(ws, tx.Sender, data)
	case types.CreateTokens:
		return e.createTokens(ws, tx.Sender, data, genesis)
	default:
		return fmt.Errorf("%w: %T", types.ErrUnknownKind, data)
	}
}

func createAccount(ws state.WorldState, id string, accountType state.AccountType) error {
	if err := ws.CreateAccount(id, accountType); err != nil {
		return fmt.Errorf("failed to create %v account: %w", accountType.Kind, err)
	}
	return nil
}

func (e *Executor) createValidatorAccount(
	ws state.WorldState,
	sender string,
	data types.CreateValidatorAccount,
	genesis bool,
) error {
	if !genesis && !isValidator(ws, sender) {
		return fmt.Errorf("%w: sender %q is not a validator", ErrUnauthorizedRegistration, sender)
	}
	return createAccount(ws, data.ID, state.ValidatorType())
}

func changeStoreValue(ws state.WorldState, sender string, data types.ChangeStoreValue) error {
	account, found := ws.GetAccountMut(sender)
	if !found {
		return fmt.Errorf("%w: sender %q", ErrUnknownAccount, sender)
	}
	account.Store[data.Key] = data.Value
	return nil
}

func transferTokens(ws state.WorldState, sender string, data types.TransferTokens) error {
	from, found := ws.GetAccount(sender)
	if !found {
		return fmt.Errorf("%w: sender %q", ErrUnknownAccount, sender)
	}
	to, found := ws.GetAccount(data.To)
	if !found {
		return fmt.Errorf("%w: recipient %q", ErrUnknownAccount, data.To)
	}
	if from.Balance.Less(data.Amount) {
		return fmt.Errorf("%w: %q has %v, needs %v", ErrInsufficientFunds, sender, from.Balance, data.Amount)
	}
	if sender == data.To {
		return nil
	}

	remaining, err := amount.Sub(from.Balance, data.Amount)
	if err != nil {
		return err
	}
	credited, err := amount.Add(to.Balance, data.Amount)
	if err != nil {
		return fmt.Errorf("failed to credit %q: %w", data.To, err)
	}

	fromAccount, _ := ws.GetAccountMut(sender)
	toAccount, _ := ws.GetAccountMut(data.To)
	fromAccount.Balance = remaining
	toAccount.Balance = credited
	return nil
}

func (e *Executor) createTokens(
	ws state.WorldState,
	sender string,
	data types.CreateTokens,
	genesis bool,
) error {
	if !genesis {
		if !isValidator(ws, sender) {
			return fmt.Errorf("%w: sender %q is not a validator", ErrUnauthorizedMint, sender)
		}
		if limit := e.config.MaxMintAmount; !limit.IsZero() && limit.Less(data.Amount) {
			return fmt.Errorf("%w: %v > %v", ErrMintCapExceeded, data.Amount, limit)
		}
	}

	var balance amount.Amount
	receiver, found := ws.GetAccount(data.Receiver)
	if found {
		balance = receiver.Balance
	}
	credited, err := amount.Add(balance, data.Amount)
	if err != nil {
		return fmt.Errorf("failed to credit %q: %w", data.Receiver, err)
	}
	if !found {
		if err := createAccount(ws, data.Receiver, state.UserType()); err != nil {
			return err
		}
	}
	account, _ := ws.GetAccountMut(data.Receiver)
	account.Balance = credited
	return nil
}

func isValidator(ws state.WorldState, id string) bool {
	account, found := ws.GetAccount(id)
	return found && account.Type.IsValidator()
}
