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

//go:generate mockgen -source world_state.go -destination world_state_mocks.go -package state

// WorldState is the narrow set of operations a transaction may perform on the
// ledger's accounts. It hides the rest of the Store, in particular its
// journal, from transaction processing.
type WorldState interface {
	// AccountIDs lists the identifiers of all known accounts. The order has no
	// meaning.
	AccountIDs() []string

	// GetAccount returns a detached copy of the account registered under the
	// given id. Modifying the result has no effect on the state.
	GetAccount(id string) (*Account, bool)

	// GetAccountMut returns the live account registered under the given id.
	// Modifications of the result are part of the state. Implementations may
	// record the account's prior content to be able to undo them, so callers
	// should only request mutable access to accounts they are about to modify.
	GetAccountMut(id string) (*Account, bool)

	// CreateAccount registers a fresh account with an empty store and zero
	// balance. It fails with ErrAccountExists if the id is already taken.
	CreateAccount(id string, accountType AccountType) error
}
