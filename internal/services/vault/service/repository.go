// Package service holds the vault Repository: decoded snapshots over a KV,
// serialized read modify write updates and change notifications
package service

import (
	"context"
	"encoding/json"
	"sync"

	perr "floaty/internal/platform/errors"
	"floaty/internal/platform/logger"
	ptime "floaty/internal/platform/time"
	"floaty/internal/services/vault/domain"
)

// Repository implements domain.RepositoryPort
type Repository struct {
	kv    domain.KV
	ids   *IDs
	clock ptime.Clock
	log   logger.Logger

	// mu serializes Update so concurrent writers never lose each other's records
	mu sync.Mutex

	lmu       sync.RWMutex
	listeners map[int]domain.Listener
	nextL     int
}

var _ domain.RepositoryPort = (*Repository)(nil)

// New builds a Repository over kv. A nil clock means the system clock
func New(kv domain.KV, clock ptime.Clock) *Repository {
	if kv == nil {
		panic("vault.Repository requires a non nil KV")
	}
	clock = ptime.Or(clock)
	return &Repository{
		kv:        kv,
		ids:       NewIDs(clock),
		clock:     clock,
		log:       *logger.Named("vault"),
		listeners: map[int]domain.Listener{},
	}
}

// Clock is the repository clock, used for record timestamps
func (r *Repository) Clock() ptime.Clock { return r.clock }

// NextID issues a record id
func (r *Repository) NextID() int64 { return r.ids.Next() }

func defaultBag() domain.Bag {
	settings, _ := json.Marshal(domain.DefaultSettings())
	return domain.Bag{
		domain.KeyNotes:      json.RawMessage(`[]`),
		domain.KeyHighlights: json.RawMessage(`[]`),
		domain.KeyTasks:      json.RawMessage(`[]`),
		domain.KeySettings:   settings,
	}
}

// Load reads and decodes every key. Missing keys take their defaults and
// settings fields absent from storage keep their default value
func (r *Repository) Load(ctx context.Context) (domain.Snapshot, error) {
	bag, err := r.kv.Get(ctx, defaultBag())
	if err != nil {
		return domain.Snapshot{}, err
	}
	s, err := decode(bag)
	if err != nil {
		return domain.Snapshot{}, err
	}
	r.observe(s)
	return s, nil
}

// Save encodes and writes every key in one Set
func (r *Repository) Save(ctx context.Context, s domain.Snapshot) error {
	bag, err := encode(s)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, bag)
}

// Update loads, applies fn, saves and notifies listeners, all under one lock.
// An error from fn aborts without saving
func (r *Repository) Update(ctx context.Context, reason string, fn domain.Mutation) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	count, err := fn(&s)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := r.Save(ctx, s); err != nil {
		return domain.Snapshot{}, err
	}

	r.log.Debug().Str("reason", reason).Int("count", count).Msg("vault updated")
	r.publish(ctx, domain.Change{Reason: reason, Count: count, At: r.clock.Now(), Snapshot: s})
	return s, nil
}

// Subscribe registers l for every later change. cancel is idempotent
func (r *Repository) Subscribe(l domain.Listener) (cancel func()) {
	if l == nil {
		return func() {}
	}
	r.lmu.Lock()
	id := r.nextL
	r.nextL++
	r.listeners[id] = l
	r.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.lmu.Lock()
			delete(r.listeners, id)
			r.lmu.Unlock()
		})
	}
}

func (r *Repository) publish(ctx context.Context, c domain.Change) {
	r.lmu.RLock()
	ls := make([]domain.Listener, 0, len(r.listeners))
	for i := 0; i < r.nextL; i++ {
		if l, ok := r.listeners[i]; ok {
			ls = append(ls, l)
		}
	}
	r.lmu.RUnlock()

	for _, l := range ls {
		func() {
			defer func() {
				if v := recover(); v != nil {
					r.log.Error().Interface("panic", v).Str("reason", c.Reason).Msg("vault listener panicked")
				}
			}()
			l(ctx, c)
		}()
	}
}

// observe keeps generated ids above any id already stored
func (r *Repository) observe(s domain.Snapshot) {
	var hi int64
	for _, n := range s.Notes {
		hi = max(hi, n.ID)
	}
	for _, h := range s.Highlights {
		hi = max(hi, h.ID)
	}
	for _, t := range s.Tasks {
		hi = max(hi, t.ID)
	}
	r.ids.Observe(hi)
}

func decode(bag domain.Bag) (domain.Snapshot, error) {
	s := domain.Snapshot{Settings: domain.DefaultSettings()}
	fields := []struct {
		key string
		dst any
	}{
		{domain.KeyNotes, &s.Notes},
		{domain.KeyHighlights, &s.Highlights},
		{domain.KeyTasks, &s.Tasks},
		{domain.KeySettings, &s.Settings},
	}
	for _, f := range fields {
		raw := bag[f.key]
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return domain.Snapshot{}, perr.Wrapf(err, perr.ErrorCodeJSON, "vault: decode %s", f.key)
		}
	}
	if s.Notes == nil {
		s.Notes = []domain.Note{}
	}
	if s.Highlights == nil {
		s.Highlights = []domain.Highlight{}
	}
	if s.Tasks == nil {
		s.Tasks = []domain.Task{}
	}
	return s, nil
}

func encode(s domain.Snapshot) (domain.Bag, error) {
	if s.Notes == nil {
		s.Notes = []domain.Note{}
	}
	if s.Highlights == nil {
		s.Highlights = []domain.Highlight{}
	}
	if s.Tasks == nil {
		s.Tasks = []domain.Task{}
	}
	bag := make(domain.Bag, len(domain.Keys))
	values := map[string]any{
		domain.KeyNotes:      s.Notes,
		domain.KeyHighlights: s.Highlights,
		domain.KeyTasks:      s.Tasks,
		domain.KeySettings:   s.Settings,
	}
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "vault: encode %s", k)
		}
		bag[k] = raw
	}
	return bag, nil
}
