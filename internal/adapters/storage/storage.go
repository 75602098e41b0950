// Package storage defines the durable snapshot store interface and its
// backends. A store is a flat key-value map: each key holds the entire
// JSON-serialized collection, rewritten whole on every save. There is no
// cross-key transaction; callers that touch two collections persist each
// one independently.
package storage

import "context"

// Well-known snapshot keys. The four entity collections each own one key;
// the welcome flag is an independent boolean with no relation to them.
const (
	KeyAthletes    = "athletes"
	KeyTeams       = "teams"
	KeyEvents      = "events"
	KeyAttendance  = "attendance"
	KeyWelcomeSeen = "hasSeenWelcomePopup"
)

// Store provides durable access to whole-collection snapshots.
type Store interface {
	// Load returns the snapshot stored under key, or ErrNotFound if the key
	// has never been saved.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save durably replaces the snapshot under key.
	Save(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}
