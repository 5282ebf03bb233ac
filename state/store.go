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
	"fmt"
	"slices"

	"github.com/0xsoniclabs/ledger/common"
	"github.com/0xsoniclabs/ledger/common/amount"
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/exp/maps"
)

const (
	ErrAccountExists   = common.ConstError("account already exists")
	ErrInvalidSnapshot = common.ConstError("invalid snapshot")
)

// Store is the in-memory account table of the ledger. Every modification
// made through the WorldState interface is journaled, so that all changes
// since a snapshot can be undone with RevertToSnapshot. Store is not safe for
// concurrent use.
type Store struct {
	accounts map[string]*Account
	journal  []journalEntry
}

// journalEntry records the content of an account before it got modified. A
// nil previous value marks an account that did not exist before.
type journalEntry struct {
	id       string
	previous *Account
}

func NewStore() *Store {
	return &Store{
		accounts: map[string]*Account{},
	}
}

var _ WorldState = (*Store)(nil)

func (s *Store) AccountIDs() []string {
	ids := maps.Keys(s.accounts)
	slices.Sort(ids)
	return ids
}

func (s *Store) GetAccount(id string) (*Account, bool) {
	account, found := s.accounts[id]
	if !found {
		return nil, false
	}
	return account.Clone(), true
}

func (s *Store) GetAccountMut(id string) (*Account, bool) {
	account, found := s.accounts[id]
	if !found {
		return nil, false
	}
	s.journal = append(s.journal, journalEntry{id: id, previous: account.Clone()})
	return account, true
}

func (s *Store) CreateAccount(id string, accountType AccountType) error {
	if _, found := s.accounts[id]; found {
		return fmt.Errorf("%w: %q", ErrAccountExists, id)
	}
	s.journal = append(s.journal, journalEntry{id: id})
	s.accounts[id] = NewAccount(accountType)
	return nil
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}

// --- Journal ---

// Snapshot returns an identifier of the current state that can be passed to
// RevertToSnapshot to undo all changes made after this call.
func (s *Store) Snapshot() int {
	return len(s.journal)
}

// RevertToSnapshot undoes all modifications made since the given snapshot
// was taken. Snapshots taken after the given one become invalid.
func (s *Store) RevertToSnapshot(snapshot int) error {
	if snapshot < 0 || snapshot > len(s.journal) {
		return fmt.Errorf("%w: %d, journal length %d", ErrInvalidSnapshot, snapshot, len(s.journal))
	}
	for i := len(s.journal) - 1; i >= snapshot; i-- {
		entry := s.journal[i]
		if entry.previous == nil {
			delete(s.accounts, entry.id)
		} else {
			s.accounts[entry.id] = entry.previous
		}
	}
	clear(s.journal[snapshot:])
	s.journal = s.journal[:snapshot]
	return nil
}

// Commit makes all modifications permanent by dropping the journal. All
// previously taken snapshots become invalid.
func (s *Store) Commit() {
	clear(s.journal)
	s.journal = s.journal[:0]
}

// --- Copies and Commitments ---

// Clone creates a deep copy of the accounts in this store. The journal is not
// copied.
func (s *Store) Clone() *Store {
	res := &Store{
		accounts: make(map[string]*Account, len(s.accounts)),
	}
	for id, account := range s.accounts {
		res.accounts[id] = account.Clone()
	}
	return res
}

// Equal reports whether both stores contain the same accounts with the same
// content.
func (s *Store) Equal(other *Store) bool {
	return maps.EqualFunc(s.accounts, other.accounts, func(a, b *Account) bool {
		return a.Type == b.Type &&
			a.Balance == b.Balance &&
			maps.Equal(a.Store, b.Store)
	})
}

type accountRecord struct {
	ID        string
	Kind      uint8
	Correct   uint64
	Incorrect uint64
	Balance   amount.Amount
	Store     []storeEntry
}

type storeEntry struct {
	Key   string
	Value string
}

// Hash computes a commitment to the full account table. Accounts and store
// entries are ordered by key before being RLP encoded and hashed, so the
// result only depends on the content of the store.
func (s *Store) Hash() (common.Hash, error) {
	records := make([]accountRecord, 0, len(s.accounts))
	for _, id := range s.AccountIDs() {
		account := s.accounts[id]
		keys := maps.Keys(account.Store)
		slices.Sort(keys)
		entries := make([]storeEntry, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, storeEntry{Key: key, Value: account.Store[key]})
		}
		records = append(records, accountRecord{
			ID:        id,
			Kind:      uint8(account.Type.Kind),
			Correct:   account.Type.CorrectlyValidated,
			Incorrect: account.Type.IncorrectlyValidated,
			Balance:   account.Balance,
			Store:     entries,
		})
	}
	data, err := rlp.EncodeToBytes(records)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode accounts: %w", err)
	}
	return common.Keccak256(data), nil
}
