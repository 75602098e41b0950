// Package model contains the roster domain entities passed between layers.
//
// Entities reference each other by identifier only; lookups are resolved at
// read time and a reference that no longer resolves must be tolerated by the
// caller, never treated as fatal.
package model

// AttendanceStatus enumerates the recognized attendance states. The values
// are the user-facing Italian labels and are persisted and exported verbatim.
type AttendanceStatus string

const (
	// StatusPresent marks an athlete as present at an event.
	StatusPresent AttendanceStatus = "Presente"
	// StatusAbsent marks an athlete as absent from an event.
	StatusAbsent AttendanceStatus = "Assente"
)

// Valid reports whether s is one of the recognized statuses.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Athlete is a registered club member. The ID is assigned on creation and
// never changes; every other field is replaceable by an update.
type Athlete struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD, no timezone
}

// Team groups athletes by identifier. AthleteIDs preserves insertion order
// for display and must not contain duplicates.
type Team struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	AthleteIDs []string `json:"athleteIds"`
}

// HasAthlete reports whether id is on the team roster.
func (t Team) HasAthlete(id string) bool {
	for _, a := range t.AthleteIDs {
		if a == id {
			return true
		}
	}
	return false
}

// RemoveAthlete drops id from the roster, preserving the order of the
// remaining members. It returns true if the roster changed.
func (t *Team) RemoveAthlete(id string) bool {
	kept := t.AthleteIDs[:0]
	removed := false
	for _, a := range t.AthleteIDs {
		if a == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	t.AthleteIDs = kept
	return removed
}

// DedupeIDs returns ids with duplicates removed, keeping the first
// occurrence of each and the original ordering.
func DedupeIDs(ids []string) []string {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Event is a scheduled activity for a single team. There is no constraint
// that TeamID still resolves after the team is deleted; readers must degrade
// gracefully when it does not.
type Event struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:mm, 24-hour
	TeamID string `json:"teamId"`
}

// AttendanceRecord captures one athlete's status at one event. The pair
// (EventID, AthleteID) is the natural key: at most one record may exist per
// pair, and writes for an existing pair replace the stored record.
type AttendanceRecord struct {
	EventID   string           `json:"eventId"`
	AthleteID string           `json:"athleteId"`
	Status    AttendanceStatus `json:"status"`
	Notes     string           `json:"notes,omitempty"`
}

// Key returns the natural key of the record.
func (r AttendanceRecord) Key() AttendanceKey {
	return AttendanceKey{EventID: r.EventID, AthleteID: r.AthleteID}
}

// AttendanceKey identifies an (event, athlete) pair.
type AttendanceKey struct {
	EventID   string
	AthleteID string
}

// DefaultAttendance synthesizes the implicit record for a pair that has no
// stored entry. Defaults are never persisted by reads; a record is only
// materialized when a non-default status or notes are written.
func DefaultAttendance(eventID, athleteID string) AttendanceRecord {
	return AttendanceRecord{
		EventID:   eventID,
		AthleteID: athleteID,
		Status:    StatusPresent,
		Notes:     "",
	}
}
