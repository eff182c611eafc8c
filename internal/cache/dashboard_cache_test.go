package cache_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"mela-ticketing/config"
	"mela-ticketing/internal/cache"
	"mela-ticketing/internal/database"
	"mela-ticketing/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRedis 連不上測試 Redis 時保持 nil，個別測試跳過
var testRedis *redis.Client

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	client, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Println("Test redis unavailable, cache tests will be skipped")
	} else {
		testRedis = client
	}

	code := m.Run()
	if testRedis != nil {
		testRedis.Close()
	}

	os.Exit(code)
}

func requireRedis(t *testing.T) {
	t.Helper()
	if testRedis == nil {
		t.Skip("test redis unavailable")
	}
}

func sampleSummary() *model.DashboardSummary {
	return &model.DashboardSummary{
		TotalBookings: 42,
		TotalRevenue:  8400,
		DailyLabels:   []string{"2025-06-14", "2025-06-15"},
		DailyCounts:   []int{3, 5},
	}
}

func TestDashboardCache_SetGet(t *testing.T) {
	requireRedis(t)

	c := cache.NewRedisDashboardCache(testRedis)
	ctx := context.Background()

	require.NoError(t, c.Invalidate(ctx))

	require.NoError(t, c.Set(ctx, sampleSummary(), time.Minute))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, got.TotalBookings)
	assert.Equal(t, 8400, got.TotalRevenue)
	assert.Equal(t, []string{"2025-06-14", "2025-06-15"}, got.DailyLabels)
	assert.Equal(t, []int{3, 5}, got.DailyCounts)
}

func TestDashboardCache_GetMiss(t *testing.T) {
	requireRedis(t)

	c := cache.NewRedisDashboardCache(testRedis)
	ctx := context.Background()

	require.NoError(t, c.Invalidate(ctx))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDashboardCache_Invalidate(t *testing.T) {
	requireRedis(t)

	c := cache.NewRedisDashboardCache(testRedis)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleSummary(), time.Minute))
	require.NoError(t, c.Invalidate(ctx))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDashboardCache_TTLExpiry(t *testing.T) {
	requireRedis(t)

	c := cache.NewRedisDashboardCache(testRedis)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleSummary(), 100*time.Millisecond))

	time.Sleep(200 * time.Millisecond)

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
