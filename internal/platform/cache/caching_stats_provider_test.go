package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"hr_backend/internal/feature/employees/domain/entity"
	"hr_backend/internal/feature/employees/usecase"
)

// mockStatsProvider is a mock implementation of the StatsProvider interface.
type mockStatsProvider struct {
	getStatsFn func(ctx context.Context) (*usecase.StatsSnapshot, error)
	calls      int
}

func (m *mockStatsProvider) GetStats(ctx context.Context) (*usecase.StatsSnapshot, error) {
	m.calls++
	if m.getStatsFn != nil {
		return m.getStatsFn(ctx)
	}
	return &usecase.StatsSnapshot{}, nil
}

func sampleSnapshot() *usecase.StatsSnapshot {
	return &usecase.StatsSnapshot{
		StatusCounts: map[entity.Status]int{
			entity.StatusEmployed:    2,
			entity.StatusNotEmployed: 0,
			entity.StatusSuspended:   0,
			entity.StatusSickLeave:   1,
		},
		Monthly: []usecase.MonthlyCount{{Label: "May 2024", Count: 3}},
	}
}

func TestNewCachingStatsProvider_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", time.Minute, "stats"},
		{"negative ttl uses default", -time.Minute, "", time.Minute, "stats"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewCachingStatsProvider(nil, tt.ttl, &mockStatsProvider{}, tt.namespace)

			if p.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, p.ttl)
			}
			if p.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, p.namespace)
			}
		})
	}
}

func TestCachingStatsProvider_GetStats_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockStatsProvider{
		getStatsFn: func(ctx context.Context) (*usecase.StatsSnapshot, error) {
			return sampleSnapshot(), nil
		},
	}

	// Redis is nil - should bypass the cache and call inner directly.
	p := NewCachingStatsProvider(nil, time.Minute, inner, "stats")

	snap, err := p.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.StatusCounts[entity.StatusEmployed] != 2 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
}

func TestCachingStatsProvider_GetStats_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached, err := json.Marshal(sampleSnapshot())
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	mock.ExpectGet("stats:snapshot").SetVal(string(cached))

	inner := &mockStatsProvider{}
	p := NewCachingStatsProvider(rdb, time.Minute, inner, "stats")

	snap, err := p.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.StatusCounts[entity.StatusSickLeave] != 1 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if inner.calls != 0 {
		t.Errorf("inner provider called on a cache hit: %d calls", inner.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingStatsProvider_GetStats_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	snap := sampleSnapshot()
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	mock.ExpectGet("stats:snapshot").RedisNil()
	mock.ExpectSet("stats:snapshot", b, time.Minute).SetVal("OK")

	inner := &mockStatsProvider{
		getStatsFn: func(ctx context.Context) (*usecase.StatsSnapshot, error) {
			return snap, nil
		},
	}
	p := NewCachingStatsProvider(rdb, time.Minute, inner, "stats")

	got, err := p.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StatusCounts[entity.StatusEmployed] != 2 {
		t.Errorf("unexpected snapshot: %+v", got)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingStatsProvider_GetStats_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("stats:snapshot").RedisNil()

	inner := &mockStatsProvider{
		getStatsFn: func(ctx context.Context) (*usecase.StatsSnapshot, error) {
			return nil, errors.New("db gone")
		},
	}
	p := NewCachingStatsProvider(rdb, time.Minute, inner, "stats")

	if _, err := p.GetStats(context.Background()); err == nil {
		t.Error("expected error from failing inner provider")
	}
}

func TestCachingStatsProvider_InvalidateStats(t *testing.T) {
	t.Parallel()

	t.Run("deletes the snapshot key", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectDel("stats:snapshot").SetVal(1)

		p := NewCachingStatsProvider(rdb, time.Minute, &mockStatsProvider{}, "stats")
		if err := p.InvalidateStats(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet redis expectations: %v", err)
		}
	})

	t.Run("nil redis is a no-op", func(t *testing.T) {
		t.Parallel()

		p := NewCachingStatsProvider(nil, time.Minute, &mockStatsProvider{}, "stats")
		if err := p.InvalidateStats(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
