// Package dealstore keeps a registry of played deals, keyed by deal ID, so a
// deal seen in a batch log can be reloaded and replayed.
package dealstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/stats"
)

var ErrNotFound = errors.New("deal not found")

// Deal is a stored deal and, once played, how it went.
type Deal struct {
	ID      string
	Seed    string
	Deck    cards.Deck
	Played  bool
	Result  stats.Result
	Created time.Time
}

// Repo is the interface for deal persistence. Implementations must be safe
// for concurrent use.
type Repo interface {
	Save(ctx context.Context, d Deal) error
	Load(ctx context.Context, id string) (Deal, error)
	// List returns the IDs of every stored deal, sorted.
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Open returns an in-memory repo for an empty path and a SQLite repo
// otherwise.
func Open(path string) (Repo, error) {
	if path == "" {
		return NewMemoryRepo(), nil
	}
	return NewSQLiteRepo(path)
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	deals map[string]Deal
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{deals: make(map[string]Deal)}
}

func (r *MemoryRepo) Save(ctx context.Context, d Deal) error {
	_ = ctx
	d.Deck = d.Deck.Copy()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deals[d.ID] = d
	return nil
}

func (r *MemoryRepo) Load(ctx context.Context, id string) (Deal, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deals[id]
	if !ok {
		return Deal{}, ErrNotFound
	}
	d.Deck = d.Deck.Copy()
	return d, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]string, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.deals))
	for id := range r.deals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *MemoryRepo) Close() error { return nil }
