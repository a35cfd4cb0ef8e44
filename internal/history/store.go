// Package history keeps the process-lifetime, append-only reading sequences
// per vital type. Appends and trend reads go through one lock so concurrent
// monitor calls cannot interleave into a corrupted sequence.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vitalstack/vitals-engine/internal/cache"
	"github.com/vitalstack/vitals-engine/internal/models"
)

// DefaultSnapshotWindow bounds how many recent readings per vital are written
// to the cache snapshot.
const DefaultSnapshotWindow = 50

// Store is the in-memory history. The in-memory sequences are authoritative;
// the cache snapshot is a best-effort convenience for restarts.
type Store struct {
	mu       sync.RWMutex
	readings map[models.VitalType][]models.Reading

	cache  cache.Provider
	ttl    time.Duration
	window int
	logger *slog.Logger
}

// NewStore creates a history store. provider may be a NoopProvider when
// snapshotting is disabled.
func NewStore(logger *slog.Logger, provider cache.Provider, ttl time.Duration, window int) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if provider == nil {
		provider = cache.NoopProvider{}
	}
	if window <= 0 {
		window = DefaultSnapshotWindow
	}
	return &Store{
		readings: make(map[models.VitalType][]models.Reading),
		cache:    provider,
		ttl:      ttl,
		window:   window,
		logger:   logger,
	}
}

// Append records a reading at the end of the vital's sequence.
func (s *Store) Append(ctx context.Context, vital models.VitalType, reading models.Reading) {
	s.mu.Lock()
	s.readings[vital] = append(s.readings[vital], reading)
	snapshot := s.tail(vital, s.window)
	s.mu.Unlock()

	if err := s.snapshot(ctx, vital, snapshot); err != nil {
		s.logger.Warn("history snapshot failed", slog.String("vital_type", string(vital)), slog.Any("error", err))
	}
}

// Recent returns up to limit of the most recent readings in chronological
// order. The result is a copy; history is never mutated by reads.
func (s *Store) Recent(vital models.VitalType, limit int) []models.Reading {
	if limit <= 0 {
		limit = 10
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tail(vital, limit)
}

// Len reports the number of readings recorded for the vital.
func (s *Store) Len(vital models.VitalType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings[vital])
}

// tail copies the last n readings. Callers must hold the lock.
func (s *Store) tail(vital models.VitalType, n int) []models.Reading {
	seq := s.readings[vital]
	if len(seq) > n {
		seq = seq[len(seq)-n:]
	}
	out := make([]models.Reading, len(seq))
	copy(out, seq)
	return out
}

// Restore seeds empty sequences from cache snapshots left by a previous run.
func (s *Store) Restore(ctx context.Context) error {
	for _, vital := range models.KnownVitalTypes() {
		payload, err := s.cache.Get(ctx, snapshotKey(vital))
		if err != nil {
			if errors.Is(err, cache.ErrCacheMiss) {
				continue
			}
			return fmt.Errorf("restore %s history: %w", vital, err)
		}
		var readings []models.Reading
		if err := json.Unmarshal(payload, &readings); err != nil {
			s.logger.Warn("discarding unreadable history snapshot", slog.String("vital_type", string(vital)), slog.Any("error", err))
			continue
		}
		s.mu.Lock()
		if len(s.readings[vital]) == 0 {
			s.readings[vital] = readings
		}
		s.mu.Unlock()
		s.logger.Info("history restored from snapshot", slog.String("vital_type", string(vital)), slog.Int("readings", len(readings)))
	}
	return nil
}

func (s *Store) snapshot(ctx context.Context, vital models.VitalType, readings []models.Reading) error {
	payload, err := json.Marshal(readings)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, snapshotKey(vital), payload, s.ttl)
}

func snapshotKey(vital models.VitalType) string {
	return "vitals:history:" + string(vital)
}
