// Package app provides the roster service that owns the entity collections
// and enforces their consistency rules.
//
// The four collections (athletes, teams, events, attendance) live in memory
// and are rewritten whole to the snapshot store on every mutation. A failed
// load falls back to the empty collection; a failed save keeps the in-memory
// state and logs. Neither is surfaced to callers: no operation here is fatal.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/okian/appello/internal/adapters/storage"
	"github.com/okian/appello/internal/domain/ident"
	"github.com/okian/appello/internal/domain/model"
	"github.com/okian/appello/pkg/logger"
	"github.com/okian/appello/pkg/metrics"
)

// Service implements the roster operations behind the HTTP API.
type Service struct {
	mu sync.RWMutex

	store  storage.Store
	ids    ident.Generator
	logger logger.Logger

	athletes    []model.Athlete
	teams       []model.Team
	events      []model.Event
	attendance  []model.AttendanceRecord
	welcomeSeen bool

	started bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the snapshot store backing the service.
func WithStore(store storage.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithIDGenerator sets the identifier generator for new entities.
func WithIDGenerator(g ident.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		ids: ident.NewUUID(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the persisted collections. Each key loads independently; a
// missing, unreadable or unparsable snapshot degrades to the empty default.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.store == nil {
		return ErrNoStore
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.athletes = loadCollection[model.Athlete](ctx, s, storage.KeyAthletes)
	s.teams = loadCollection[model.Team](ctx, s, storage.KeyTeams)
	s.events = loadCollection[model.Event](ctx, s, storage.KeyEvents)
	s.attendance = loadCollection[model.AttendanceRecord](ctx, s, storage.KeyAttendance)
	s.welcomeSeen = s.loadWelcomeFlag(ctx)

	s.started = true
	s.logger.Info(ctx, "roster service started",
		logger.Int("athletes", len(s.athletes)),
		logger.Int("teams", len(s.teams)),
		logger.Int("events", len(s.events)),
		logger.Int("attendance", len(s.attendance)),
	)
	return nil
}

// Stop marks the service stopped. The snapshot store is owned by the caller
// and closed there.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// --- Athletes ---

// Athletes returns a copy of the athlete collection.
func (s *Service) Athletes(_ context.Context) []model.Athlete {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Athlete(nil), s.athletes...)
}

// Athlete looks up an athlete by id.
func (s *Service) Athlete(_ context.Context, id string) (model.Athlete, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.athletes {
		if a.ID == id {
			return a, true
		}
	}
	return model.Athlete{}, false
}

// AddAthlete assigns a fresh id, appends the athlete and persists the
// collection. The created athlete is returned.
func (s *Service) AddAthlete(ctx context.Context, a model.Athlete) model.Athlete {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.ids.NewID()
	s.athletes = append(s.athletes, a)
	s.persist(ctx, storage.KeyAthletes, s.athletes)
	metrics.RecordMutation("athlete", "add")
	return a
}

// UpdateAthlete replaces the athlete with the matching id. An unknown id is
// a silent no-op.
func (s *Service) UpdateAthlete(ctx context.Context, a model.Athlete) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.athletes {
		if s.athletes[i].ID == a.ID {
			s.athletes[i] = a
			break
		}
	}
	s.persist(ctx, storage.KeyAthletes, s.athletes)
	metrics.RecordMutation("athlete", "update")
}

// DeleteAthlete removes the athlete and cascades into every team roster,
// rewriting AthleteIDs to exclude the id. Attendance records referencing
// the athlete are not pruned; exports drop them at read time instead.
// Deleting an unknown id is a no-op, so the operation is idempotent.
func (s *Service) DeleteAthlete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.athletes[:0]
	for _, a := range s.athletes {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.athletes = kept

	removed := 0
	for i := range s.teams {
		if s.teams[i].RemoveAthlete(id) {
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug(ctx, "athlete removed from team rosters",
			logger.String("athleteId", id),
			logger.Int("teams", removed),
		)
		metrics.RecordCascadeRemovals(removed)
	}

	s.persist(ctx, storage.KeyAthletes, s.athletes)
	s.persist(ctx, storage.KeyTeams, s.teams)
	metrics.RecordMutation("athlete", "delete")
}

// --- Teams ---

// Teams returns a copy of the team collection.
func (s *Service) Teams(_ context.Context) []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Team(nil), s.teams...)
}

// Team looks up a team by id.
func (s *Service) Team(_ context.Context, id string) (model.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			return t, true
		}
	}
	return model.Team{}, false
}

// AddTeam assigns a fresh id, deduplicates the roster preserving insertion
// order, appends and persists.
func (s *Service) AddTeam(ctx context.Context, t model.Team) model.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.ids.NewID()
	t.AthleteIDs = model.DedupeIDs(t.AthleteIDs)
	s.teams = append(s.teams, t)
	s.persist(ctx, storage.KeyTeams, s.teams)
	metrics.RecordMutation("team", "add")
	return t
}

// UpdateTeam replaces the team with the matching id, deduplicating the
// roster. An unknown id is a silent no-op.
func (s *Service) UpdateTeam(ctx context.Context, t model.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.AthleteIDs = model.DedupeIDs(t.AthleteIDs)
	for i := range s.teams {
		if s.teams[i].ID == t.ID {
			s.teams[i] = t
			break
		}
	}
	s.persist(ctx, storage.KeyTeams, s.teams)
	metrics.RecordMutation("team", "update")
}

// DeleteTeam removes only the team. Events keeping the dead TeamID and
// their attendance records survive; read paths resolve them defensively.
func (s *Service) DeleteTeam(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.teams[:0]
	for _, t := range s.teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.teams = kept
	s.persist(ctx, storage.KeyTeams, s.teams)
	metrics.RecordMutation("team", "delete")
}

// --- Events ---

// Events returns a copy of the event collection.
func (s *Service) Events(_ context.Context) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event(nil), s.events...)
}

// Event looks up an event by id.
func (s *Service) Event(_ context.Context, id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// EventsOn returns the events whose date equals the given day key, compared
// by exact string equality.
func (s *Service) EventsOn(_ context.Context, date string) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Event
	for _, e := range s.events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// AddEvent assigns a fresh id, appends the event and persists.
func (s *Service) AddEvent(ctx context.Context, e model.Event) model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.ids.NewID()
	s.events = append(s.events, e)
	s.persist(ctx, storage.KeyEvents, s.events)
	metrics.RecordMutation("event", "add")
	return e
}

// UpdateEvent replaces the event with the matching id. An unknown id is a
// silent no-op. There is no delete for events.
func (s *Service) UpdateEvent(ctx context.Context, e model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			break
		}
	}
	s.persist(ctx, storage.KeyEvents, s.events)
	metrics.RecordMutation("event", "update")
}

// --- Attendance ---

// AttendanceRecords returns a copy of the attendance collection.
func (s *Service) AttendanceRecords(_ context.Context) []model.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.AttendanceRecord(nil), s.attendance...)
}

// Attendance resolves the record for an (event, athlete) pair. When no
// record is stored it synthesizes the Presente default without persisting
// anything.
func (s *Service) Attendance(_ context.Context, eventID, athleteID string) model.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveAttendance(eventID, athleteID)
}

// resolveAttendance is Attendance without locking; callers hold the lock.
func (s *Service) resolveAttendance(eventID, athleteID string) model.AttendanceRecord {
	for _, r := range s.attendance {
		if r.EventID == eventID && r.AthleteID == athleteID {
			return r
		}
	}
	return model.DefaultAttendance(eventID, athleteID)
}

// UpsertAttendance replaces the record with the same (event, athlete) key in
// place, preserving its position, or appends a new one. This is the only
// write path for attendance; there is no delete.
func (s *Service) UpsertAttendance(ctx context.Context, rec model.AttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertAttendanceLocked(rec)
	s.persist(ctx, storage.KeyAttendance, s.attendance)
	metrics.RecordAttendanceUpsert()
}

func (s *Service) upsertAttendanceLocked(rec model.AttendanceRecord) {
	for i := range s.attendance {
		if s.attendance[i].EventID == rec.EventID && s.attendance[i].AthleteID == rec.AthleteID {
			s.attendance[i] = rec
			return
		}
	}
	s.attendance = append(s.attendance, rec)
}

// MarkAllPresent upserts a Presente record with empty notes for every
// listed athlete whose resolved status is not already Presente. Athletes
// already present are left untouched. It returns the number of records
// written.
func (s *Service) MarkAllPresent(ctx context.Context, eventID string, athleteIDs []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for _, athleteID := range athleteIDs {
		current := s.resolveAttendance(eventID, athleteID)
		if current.Status == model.StatusPresent {
			continue
		}
		current.Status = model.StatusPresent
		current.Notes = ""
		s.upsertAttendanceLocked(current)
		changed++
	}
	if changed > 0 {
		s.persist(ctx, storage.KeyAttendance, s.attendance)
		metrics.RecordMutation("attendance", "mark_all_present")
	}
	return changed
}

// --- Welcome flag ---

// WelcomeSeen reports whether the onboarding popup was acknowledged.
func (s *Service) WelcomeSeen(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.welcomeSeen
}

// MarkWelcomeSeen persists the acknowledgement flag. The flag is orthogonal
// to the entity collections and stored under its own key.
func (s *Service) MarkWelcomeSeen(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.welcomeSeen = true
	s.persist(ctx, storage.KeyWelcomeSeen, true)
}

// --- Stats ---

// GetStats returns service statistics for monitoring and refreshes the
// entity-count gauges.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":    s.started,
		"athletes":   len(s.athletes),
		"teams":      len(s.teams),
		"events":     len(s.events),
		"attendance": len(s.attendance),
	}

	metrics.UpdateEntityCount("athletes", len(s.athletes))
	metrics.UpdateEntityCount("teams", len(s.teams))
	metrics.UpdateEntityCount("events", len(s.events))
	metrics.UpdateEntityCount("attendance", len(s.attendance))

	return stats
}

// --- Persistence helpers ---

// persist serializes v and rewrites the whole snapshot for key. A failure
// is logged and counted; the in-memory mutation stands regardless, an
// accepted divergence between memory and durable storage.
func (s *Service) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "snapshot marshal failed", logger.String("key", key), logger.Error(err))
		metrics.RecordStorageSaveFailure(key)
		return
	}
	if err := s.store.Save(ctx, key, data); err != nil {
		s.logger.Error(ctx, "snapshot save failed; in-memory state kept", logger.String("key", key), logger.Error(err))
		metrics.RecordStorageSaveFailure(key)
	}
}

// loadCollection loads one collection snapshot, substituting the empty
// default when the key is absent, unreadable or unparsable.
func loadCollection[T any](ctx context.Context, s *Service, key string) []T {
	raw, err := s.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn(ctx, "snapshot load failed; using empty collection",
				logger.String("key", key), logger.Error(err))
			metrics.RecordStorageLoadFailure(key)
		}
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.logger.Warn(ctx, "snapshot parse failed; using empty collection",
			logger.String("key", key), logger.Error(err))
		metrics.RecordStorageLoadFailure(key)
		return nil
	}
	return out
}

// loadWelcomeFlag reads the onboarding flag, defaulting to false.
func (s *Service) loadWelcomeFlag(ctx context.Context) bool {
	raw, err := s.store.Load(ctx, storage.KeyWelcomeSeen)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn(ctx, "welcome flag load failed; assuming unseen", logger.Error(err))
			metrics.RecordStorageLoadFailure(storage.KeyWelcomeSeen)
		}
		return false
	}
	var seen bool
	if err := json.Unmarshal(raw, &seen); err != nil {
		s.logger.Warn(ctx, "welcome flag parse failed; assuming unseen", logger.Error(err))
		metrics.RecordStorageLoadFailure(storage.KeyWelcomeSeen)
		return false
	}
	return seen
}
