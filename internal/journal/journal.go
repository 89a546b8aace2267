package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"fishguide/internal/store"
)

const (
	EntriesKey = "fishing-journal-entries"
	CatchesKey = "fish-caught-gallery"

	dateLayout = "2006-01-02"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
	ErrCatchNotFound = errors.New("catch not found")
)

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rand = r }
}

// Service keeps the journal and the catch gallery as two JSON arrays in a
// KV store. Read-modify-write cycles are serialized within the process;
// across processes the last write wins.
type Service struct {
	kv   store.KV
	now  func() time.Time
	rand *rand.Rand

	mu     sync.Mutex
	randMu sync.Mutex
}

func New(kv store.KV, opts ...Option) *Service {
	s := &Service{
		kv:   kv,
		now:  time.Now,
		rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entries returns the journal newest-first. Storage or decode failures are
// logged and yield an empty journal.
func (s *Service) Entries(ctx context.Context) []Entry {
	var entries []Entry
	if err := s.load(ctx, EntriesKey, &entries); err != nil {
		zap.L().Error("loading journal entries", zap.Error(err))
		return []Entry{}
	}
	if entries == nil {
		return []Entry{}
	}
	return entries
}

func (s *Service) Entry(ctx context.Context, id string) (Entry, error) {
	for _, e := range s.Entries(ctx) {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// SaveEntry replaces the entry with the same id in place, or prepends it
// when the id is new. A missing id or date is filled in.
func (s *Service) SaveEntry(ctx context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = s.NewID()
	}
	if e.Date == "" {
		e.Date = s.Today()
	}
	e = e.normalized()

	entries, err := loadForUpdate[Entry](ctx, s, EntriesKey)
	if err != nil {
		return Entry{}, fmt.Errorf("saving journal entry: %w", err)
	}
	idx := slices.IndexFunc(entries, func(x Entry) bool { return x.ID == e.ID })
	if idx >= 0 {
		entries[idx] = e
	} else {
		entries = slices.Insert(entries, 0, e)
	}

	if err := s.store(ctx, EntriesKey, entries); err != nil {
		return Entry{}, fmt.Errorf("saving journal entry: %w", err)
	}
	return e, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := loadForUpdate[Entry](ctx, s, EntriesKey)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	kept := slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool { return e.ID == id })
	if len(kept) == len(entries) {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	if err := s.store(ctx, EntriesKey, kept); err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	return nil
}

// Catches returns the gallery newest-first.
func (s *Service) Catches(ctx context.Context) []Catch {
	var catches []Catch
	if err := s.load(ctx, CatchesKey, &catches); err != nil {
		zap.L().Error("loading fish caught", zap.Error(err))
		return []Catch{}
	}
	if catches == nil {
		return []Catch{}
	}
	return catches
}

func (s *Service) AddCatch(ctx context.Context, c Catch) (Catch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = s.NewID()
	}
	if c.Date == "" {
		c.Date = s.Today()
	}

	catches, err := loadForUpdate[Catch](ctx, s, CatchesKey)
	if err != nil {
		return Catch{}, fmt.Errorf("adding fish caught: %w", err)
	}
	catches = slices.Insert(catches, 0, c)
	if err := s.store(ctx, CatchesKey, catches); err != nil {
		return Catch{}, fmt.Errorf("adding fish caught: %w", err)
	}
	return c, nil
}

func (s *Service) DeleteCatch(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catches, err := loadForUpdate[Catch](ctx, s, CatchesKey)
	if err != nil {
		return fmt.Errorf("deleting fish caught: %w", err)
	}
	kept := slices.DeleteFunc(slices.Clone(catches), func(c Catch) bool { return c.ID == id })
	if len(kept) == len(catches) {
		return fmt.Errorf("%w: %s", ErrCatchNotFound, id)
	}
	if err := s.store(ctx, CatchesKey, kept); err != nil {
		return fmt.Errorf("deleting fish caught: %w", err)
	}
	return nil
}

func (s *Service) CatchesForEntry(ctx context.Context, entryID string) []Catch {
	out := []Catch{}
	for _, c := range s.Catches(ctx) {
		if c.JournalEntryID == entryID {
			out = append(out, c)
		}
	}
	return out
}

// Today formats the service clock as YYYY-MM-DD in UTC.
func (s *Service) Today() string {
	return s.now().UTC().Format(dateLayout)
}

func (s *Service) load(ctx context.Context, key string, v any) error {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// loadForUpdate reads the list under key before a write. Storage failures
// abort the write; a value that no longer decodes is treated as empty and
// gets overwritten.
func loadForUpdate[T any](ctx context.Context, s *Service, key string) ([]T, error) {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		zap.L().Warn("overwriting undecodable value", zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	return items, nil
}

func (s *Service) store(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.kv.Put(ctx, key, data)
}
