package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/healthcalc/healthcalc/internal/config"
)

// Store holds the single stored profile and notifies subscribers of changes.
type Store struct {
	kv  KV
	key string

	// mu serializes read-merge-write cycles.
	mu sync.Mutex

	subMu  sync.RWMutex
	subs   map[int]func(Profile)
	nextID int
}

// NewStore returns a Store keeping its profile under key in kv.
func NewStore(kv KV, key string) *Store {
	if key == "" {
		key = config.DefaultProfileKey
	}
	return &Store{kv: kv, key: key, subs: make(map[int]func(Profile))}
}

// Open builds the KV backend named by cfg and returns a Store over it.
func Open(ctx context.Context, cfg config.ProfileConfig) (*Store, error) {
	var (
		kv  KV
		err error
	)
	switch cfg.Backend {
	case "memory", "":
		kv = NewMemoryKV()
	case "file":
		kv, err = NewFileKV(cfg.Path)
	case "sqlite":
		kv, err = NewSQLiteKV(cfg.Path)
	case "redis":
		kv, err = NewRedisKV(ctx, cfg.Redis.Addr, cfg.Redis.Password(), cfg.Redis.DB, cfg.Redis.Prefix)
	default:
		return nil, fmt.Errorf("profile: unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("profile: store opened", "backend", cfg.Backend, "key", cfg.Key)
	return NewStore(kv, cfg.Key), nil
}

// Load returns the stored profile, or an empty Profile if none is stored.
func (s *Store) Load(ctx context.Context) (Profile, error) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode stored profile: %w", err)
	}
	return p, nil
}

// Save merges update over the stored profile, writes the result and returns it.
// Subscribers are notified before the next Save or Clear can start, so they
// observe writes in order.
func (s *Store) Save(ctx context.Context, update Profile) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.Load(ctx)
	if err != nil {
		return Profile{}, err
	}
	merged := Merge(cur, update)
	data, err := json.Marshal(merged)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: encode profile: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return Profile{}, err
	}
	s.notify(merged)
	return merged, nil
}

// Clear deletes the stored profile.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, s.key); err != nil {
		return err
	}
	s.notify(Profile{})
	return nil
}

// Subscribe registers fn to be called with the new profile after every Save
// and Clear. fn runs with the write lock held and must not call Save or Clear.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Profile)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) notify(p Profile) {
	s.subMu.RLock()
	fns := make([]func(Profile), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range fns {
		fn(p)
	}
}
