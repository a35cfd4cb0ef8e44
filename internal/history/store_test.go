package history

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/vitalstack/vitals-engine/internal/cache"
	"github.com/vitalstack/vitals-engine/internal/models"
)

type stubProvider struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newStubProvider() *stubProvider {
	return &stubProvider{data: make(map[string][]byte)}
}

func (s *stubProvider) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return payload, nil
}

func (s *stubProvider) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *stubProvider) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *stubProvider) Close() error { return nil }

func TestStoreAppendAndRecent(t *testing.T) {
	store := NewStore(nil, nil, 0, 0)
	ctx := context.Background()

	for _, v := range []float64{97, 98, 99, 100} {
		store.Append(ctx, models.VitalTemperature, models.NewReading(v, "F", "test"))
	}

	if store.Len(models.VitalTemperature) != 4 {
		t.Fatalf("expected 4 readings, got %d", store.Len(models.VitalTemperature))
	}

	recent := store.Recent(models.VitalTemperature, 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(recent))
	}
	if recent[0].Value != 99 || recent[1].Value != 100 {
		t.Fatalf("expected chronological tail [99 100], got %+v", recent)
	}

	// Reads return copies; mutating the result must not touch the sequence.
	recent[0].Value = 0
	again := store.Recent(models.VitalTemperature, 2)
	if again[0].Value != 99 {
		t.Fatalf("history mutated through a read copy")
	}
}

func TestStoreRecentDefaultsLimit(t *testing.T) {
	store := NewStore(nil, nil, 0, 0)
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		store.Append(ctx, models.VitalPulseRate, models.NewReading(float64(60+i), "", ""))
	}
	if got := len(store.Recent(models.VitalPulseRate, 0)); got != 10 {
		t.Fatalf("expected default limit 10, got %d", got)
	}
}

func TestStoreRecentEmptyVital(t *testing.T) {
	store := NewStore(nil, nil, 0, 0)
	if got := store.Recent(models.VitalSpO2, 5); len(got) != 0 {
		t.Fatalf("expected empty history, got %+v", got)
	}
}

func TestStoreSnapshots(t *testing.T) {
	provider := newStubProvider()
	store := NewStore(nil, provider, time.Hour, 3)
	ctx := context.Background()

	for _, v := range []float64{91, 92, 93, 94} {
		store.Append(ctx, models.VitalSpO2, models.NewReading(v, "", ""))
	}

	payload, err := provider.Get(ctx, "vitals:history:spo2")
	if err != nil {
		t.Fatalf("expected snapshot: %v", err)
	}
	var readings []models.Reading
	if err := json.Unmarshal(payload, &readings); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if len(readings) != 3 {
		t.Fatalf("snapshot must hold the window, got %d readings", len(readings))
	}
	if readings[0].Value != 92 || readings[2].Value != 94 {
		t.Fatalf("expected windowed tail [92 93 94], got %+v", readings)
	}
}

func TestStoreRestore(t *testing.T) {
	provider := newStubProvider()
	seed := NewStore(nil, provider, time.Hour, 10)
	ctx := context.Background()
	seed.Append(ctx, models.VitalTemperature, models.NewReading(98.6, "F", "sensor"))
	seed.Append(ctx, models.VitalTemperature, models.NewReading(99.1, "F", "sensor"))

	restored := NewStore(nil, provider, time.Hour, 10)
	if err := restored.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Len(models.VitalTemperature) != 2 {
		t.Fatalf("expected 2 restored readings, got %d", restored.Len(models.VitalTemperature))
	}
}

func TestStoreRestoreSkipsCorruptSnapshot(t *testing.T) {
	provider := newStubProvider()
	provider.data["vitals:history:pulseRate"] = []byte("not json")

	store := NewStore(nil, provider, time.Hour, 10)
	if err := store.Restore(context.Background()); err != nil {
		t.Fatalf("corrupt snapshot must be discarded, not fatal: %v", err)
	}
	if store.Len(models.VitalPulseRate) != 0 {
		t.Fatalf("expected empty history after discard")
	}
}
