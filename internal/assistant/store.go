package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asifrahman/gradus/internal/repository"
	"github.com/asifrahman/gradus/internal/scheduler"
)

// ThreadStore persists a chat Store per user key through a ThreadRepo.
// Legacy version-0 payloads (a bare message array, or an object holding
// messages plus meta) are migrated to the threaded shape on load.
type ThreadStore struct {
	repo repository.ThreadRepo
}

func NewThreadStore(repo repository.ThreadRepo) *ThreadStore {
	return &ThreadStore{repo: repo}
}

// Load fetches the user's chat store, creating a fresh one when none
// exists yet.
func (ts *ThreadStore) Load(ctx context.Context, userKey string) (*Store, error) {
	rec, err := ts.repo.Load(ctx, userKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("load chat store: %w", err)
	}
	if rec.Version == 0 {
		return migrateLegacy(rec.Payload), nil
	}
	var store Store
	if err := json.Unmarshal(rec.Payload, &store); err != nil {
		return nil, fmt.Errorf("decode chat store: %w", err)
	}
	if len(store.Threads) == 0 {
		return NewStore(), nil
	}
	return &store, nil
}

// Save writes the store back under the current schema version.
func (ts *ThreadStore) Save(ctx context.Context, userKey string, store *Store) error {
	payload, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("encode chat store: %w", err)
	}
	if err := ts.repo.Save(ctx, userKey, StoreVersion, payload); err != nil {
		return fmt.Errorf("save chat store: %w", err)
	}
	return nil
}

// RecordPlan caches a freshly built plan on the user's current thread.
func (ts *ThreadStore) RecordPlan(ctx context.Context, userKey string, plan scheduler.Plan) error {
	store, err := ts.Load(ctx, userKey)
	if err != nil {
		return err
	}
	store.Current().Meta.LastSessions = FromPlan(plan)
	return ts.Save(ctx, userKey, store)
}

// LastPlan returns the cached plan from the user's current thread, or nil
// when no plan has been built yet.
func (ts *ThreadStore) LastPlan(ctx context.Context, userKey string) (*scheduler.Plan, error) {
	store, err := ts.Load(ctx, userKey)
	if err != nil {
		return nil, err
	}
	cached := store.Current().Meta.LastSessions
	if cached == nil || len(cached.Sessions) == 0 {
		return nil, nil
	}
	plan := cached.ToPlan()
	return &plan, nil
}

// legacyEnvelope is the old single-chat payload: either a raw message
// array or an object wrapping messages and meta.
type legacyEnvelope struct {
	Messages []Message       `json:"messages"`
	Meta     json.RawMessage `json:"meta"`
}

type legacyMeta struct {
	AwaitingCGPA  bool      `json:"awaitingCgpa"`
	LastCGPA      *float64  `json:"lastCgpa"`
	PendingAction string    `json:"pendingAction"`
	LastSessions  *LastPlan `json:"lastSessions"`
}

func migrateLegacy(payload []byte) *Store {
	var messages []Message
	var meta Meta

	if err := json.Unmarshal(payload, &messages); err != nil {
		var env legacyEnvelope
		if err := json.Unmarshal(payload, &env); err != nil {
			return NewStore()
		}
		messages = env.Messages
		if len(env.Meta) > 0 {
			var lm legacyMeta
			if json.Unmarshal(env.Meta, &lm) == nil {
				meta = Meta{
					AwaitingCGPA:  lm.AwaitingCGPA,
					LastCGPA:      lm.LastCGPA,
					PendingAction: lm.PendingAction,
					LastSessions:  lm.LastSessions,
				}
			}
		}
	}
	if len(messages) == 0 {
		return NewStore()
	}

	t := NewWelcomeThread()
	t.Title = importedThreadTitle
	t.Meta = meta
	t.Messages = messages
	return &Store{
		CurrentID: t.ID,
		Order:     []string{t.ID},
		Threads:   map[string]*Thread{t.ID: t},
	}
}
