package availability

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menuboard/internal/locale"
	"menuboard/internal/schedule"
)

// Monday 2026-09-07.
var monNoon = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
var monNight = time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC)

func lunchHours() schedule.Weekly {
	w := schedule.Weekly{}
	for _, d := range schedule.Weekdays() {
		w[d] = schedule.Day{Open: true, Slots: []schedule.Range{{
			From: schedule.MustClock("11:00"),
			To:   schedule.MustClock("15:00"),
		}}}
	}
	return w
}

func discard() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

func TestEvaluateNilSchedule(t *testing.T) {
	svc := NewService(locale.English(), "en", discard(), nil)

	res := svc.Evaluate(context.Background(), nil, monNoon)
	assert.True(t, res.Open)
	assert.Empty(t, res.Label, "no schedule has nothing to show")
}

func TestEvaluateWithoutCache(t *testing.T) {
	svc := NewService(locale.English(), "en", discard(), nil)
	hours := lunchHours()

	open := svc.Evaluate(context.Background(), hours, monNoon)
	assert.True(t, open.Open)
	assert.Equal(t, "Mon–Sun 11:00–15:00", open.Label)

	closed := svc.Evaluate(context.Background(), hours, monNight)
	assert.False(t, closed.Open)
	assert.Equal(t, "Closed now; available Mon–Sun 11:00–15:00", closed.Label)
}

func TestEvaluateRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisCache(client, time.Minute)

	svc := NewService(locale.English(), "en", discard(), cache)
	hours := lunchHours()
	ctx := context.Background()

	first := svc.Evaluate(ctx, hours, monNoon)
	require.Len(t, mr.Keys(), 1, "first evaluation fills the cache")

	// Poison the cached entry to prove the second call reads it.
	mr.Set(mr.Keys()[0], "cached-label")

	second := svc.Evaluate(ctx, hours, monNoon)
	assert.Equal(t, "cached-label", second.Label)
	assert.Equal(t, first.Open, second.Open, "open/closed is never cached, only the label")
}

func TestEvaluateCacheKeyedByOutcomeAndPack(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	hours := lunchHours()
	ctx := context.Background()

	en := NewService(locale.English(), "en", discard(), NewRedisCache(client, time.Minute))
	en.Evaluate(ctx, hours, monNoon)
	en.Evaluate(ctx, hours, monNight)
	assert.Len(t, mr.Keys(), 2, "open and closed labels cache separately")

	ru := NewService(locale.Russian(), "ru", discard(), NewRedisCache(client, time.Minute))
	res := ru.Evaluate(ctx, hours, monNoon)
	assert.Len(t, mr.Keys(), 3, "pack name is part of the key")
	assert.Equal(t, "Пн–Вс 11:00–15:00", res.Label)
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	cache.entries["k"] = memoryEntry{value: "v", expires: time.Now().Add(-time.Second)}
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound, "expired entry reads as a miss")
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func TestFailoverCache(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("PrimarySuccess", func(t *testing.T) {
		primary := new(mockCache)
		fallback := new(mockCache)
		primary.On("Get", ctx, "k").Return("v", nil).Once()

		c := NewFailoverCache(primary, fallback, discard())
		val, err := c.Get(ctx, "k")
		assert.NoError(t, err)
		assert.Equal(t, "v", val)
		primary.AssertExpectations(t)
		fallback.AssertNotCalled(t, "Get", ctx, "k")
	})

	t.Run("PrimaryMissIsNotFailure", func(t *testing.T) {
		primary := new(mockCache)
		fallback := new(mockCache)
		primary.On("Get", ctx, "k").Return("", ErrNotFound).Once()

		c := NewFailoverCache(primary, fallback, discard())
		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNotFound)
		fallback.AssertNotCalled(t, "Get", ctx, "k")
	})

	t.Run("PrimaryErrorFallsBack", func(t *testing.T) {
		primary := new(mockCache)
		fallback := new(mockCache)
		primary.On("Get", ctx, "k").Return("", boom).Once()
		fallback.On("Get", ctx, "k").Return("v", nil).Once()

		c := NewFailoverCache(primary, fallback, discard())
		val, err := c.Get(ctx, "k")
		assert.NoError(t, err)
		assert.Equal(t, "v", val)
		primary.AssertExpectations(t)
		fallback.AssertExpectations(t)
	})

	t.Run("SetWritesBoth", func(t *testing.T) {
		primary := new(mockCache)
		fallback := new(mockCache)
		primary.On("Set", ctx, "k", "v").Return(boom).Once()
		fallback.On("Set", ctx, "k", "v").Return(nil).Once()

		c := NewFailoverCache(primary, fallback, discard())
		assert.NoError(t, c.Set(ctx, "k", "v"))
		primary.AssertExpectations(t)
		fallback.AssertExpectations(t)
	})
}

func TestScheduleHashStable(t *testing.T) {
	a := lunchHours()
	b := lunchHours()
	assert.Equal(t, scheduleHash(a), scheduleHash(b))

	b[schedule.Monday] = schedule.Day{Open: false}
	assert.NotEqual(t, scheduleHash(a), scheduleHash(b))
}
