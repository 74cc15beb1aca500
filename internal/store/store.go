// Package store persists the serialized ledger blob. The adapter contract is
// a plain save/load of one opaque value: writes are last-writer-wins and
// non-transactional, and the in-memory ledger remains the source of truth.
package store

// Namespace is the key under which the ledger blob is stored.
const Namespace = "stock-game-storage"

// Adapter durably stores and restores the serialized ledger state.
// Load returns (nil, nil) when nothing has been saved yet.
type Adapter interface {
	Save(data []byte) error
	Load() ([]byte, error)
}
