package ban

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStore_StrikesAndBans(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	n, _ := s.Strike(ctx, "1.2.3.4", time.Minute)
	assert.Equal(t, int64(1), n)
	n, _ = s.Strike(ctx, "1.2.3.4", time.Minute)
	assert.Equal(t, int64(2), n)

	now = now.Add(2 * time.Minute)
	n, _ = s.Strike(ctx, "1.2.3.4", time.Minute)
	assert.Equal(t, int64(1), n, "strikes expire")

	require.NoError(t, s.Ban(ctx, BanLogEntry{Target: "1.2.3.4", Route: "/products", Strikes: 3, Time: now}, time.Hour))
	banned, _ := s.IsBanned(ctx, "1.2.3.4")
	assert.True(t, banned)

	now = now.Add(time.Hour)
	banned, _ = s.IsBanned(ctx, "1.2.3.4")
	assert.False(t, banned, "bans expire")
}

func TestSendDailyBanSummary(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Ban(ctx, BanLogEntry{Target: "a", Route: "/products"}, time.Hour)
	_ = s.Ban(ctx, BanLogEntry{Target: "b", Route: "/products"}, time.Hour)
	_ = s.Ban(ctx, BanLogEntry{Target: "a", Route: "/summary"}, time.Hour)

	summary, err := SendDailyBanSummary(ctx, s, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, map[string]int{"/products": 2, "/summary": 1}, summary.ByRoute)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, summary.ByTarget)

	again, _ := SendDailyBanSummary(ctx, s, zap.NewNop())
	assert.Zero(t, again.Total, "the log is drained")
}

func TestNextRun(t *testing.T) {
	morning := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2025, 1, 1, 23, 59, 30, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC), nextRun(morning, 24*time.Hour))
	assert.Equal(t, time.Date(2025, 1, 2, 23, 59, 0, 0, time.UTC), nextRun(late, 24*time.Hour))
}
