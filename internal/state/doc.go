// Package state holds the latest friends list shared between the poller and the UI.
//
// # Overview
//
// The poller writes into a Store after every fetch; the UI reads a Snapshot
// on its refresh tick. The Store is the only point where the two goroutines
// meet, guarded by a sync.RWMutex.
//
//	Poller:                        UI (Bubble Tea):
//	FetchFriends()                 refresh tick
//	     ↓                              ↓
//	store.Update() ──(mutex)──→  store.Version() changed?
//	                                    ↓
//	                             store.Snapshot() → coordinator.SetEntities
//
// # Update Semantics
//
//	// Success: replace the set, bump Version only if it differs
//	store.Update(entities, nil)
//
//	// Error: keep the previous set, record the error
//	store.Update(nil, err)
//
// Version lets the UI skip rebuilds when a poll returns the same friends.
// The comparison is element-wise and order-sensitive: the feed returns a
// stable order, and a reorder is cheap to rebuild anyway.
//
// # Copying
//
// Update and Snapshot both deep-copy the entity slice, including rank
// pointers, so neither side can mutate the other's view. Errors are wrapped
// on the way out so callers never hold the stored instance.
//
// # Offline Detection
//
// ConsecutiveFailures counts failed polls since the last success.
// IsOffline reports true from the second failure on, which is when the
// header marks the list as stale.
//
// The zero Store is ready to use.
package state
