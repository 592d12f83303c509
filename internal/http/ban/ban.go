package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/commerce-dashboard/internal/redissvc"
	"go.uber.org/zap"
)

const (
	DailyBanLogKey  = "ratelimit:banlog:daily"
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
)

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int64     `json:"strikes"`
	Time    time.Time `json:"time"`
}

// Store keeps strike counters, active bans and the log of bans since the last summary.
type Store interface {
	IsBanned(ctx context.Context, target string) (bool, error)
	Strike(ctx context.Context, target string, ttl time.Duration) (int64, error)
	Ban(ctx context.Context, entry BanLogEntry, ttl time.Duration) error
	DrainLog(ctx context.Context) ([]BanLogEntry, error)
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rs *redissvc.RedisService) *RedisStore {
	return &RedisStore{rdb: rs.Rdb()}
}

func (s *RedisStore) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Strike counts one more violation for target. The counter expires ttl after the last strike.
func (s *RedisStore) Strike(ctx context.Context, target string, ttl time.Duration) (int64, error) {
	key := strikeKeyPrefix + target
	var incr *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *RedisStore) Ban(ctx context.Context, entry BanLogEntry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, banKeyPrefix+entry.Target, entry.Strikes, ttl)
		pipe.Del(ctx, strikeKeyPrefix+entry.Target)
		pipe.RPush(ctx, DailyBanLogKey, data)
		return nil
	})
	return err
}

// DrainLog reads and clears the ban log in one transaction.
func (s *RedisStore) DrainLog(ctx context.Context) ([]BanLogEntry, error) {
	var items *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, DailyBanLogKey, 0, -1)
		pipe.Del(ctx, DailyBanLogKey)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var entries []BanLogEntry
	for _, item := range items.Val() {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type Summary struct {
	Total    int            `json:"total"`
	ByRoute  map[string]int `json:"byRoute"`
	ByTarget map[string]int `json:"byTarget"`
}

func Summarize(entries []BanLogEntry) Summary {
	s := Summary{
		Total:    len(entries),
		ByRoute:  map[string]int{},
		ByTarget: map[string]int{},
	}
	for _, e := range entries {
		s.ByRoute[e.Route]++
		s.ByTarget[e.Target]++
	}
	return s
}

// SendDailyBanSummary drains the ban log and reports it. An empty log reports nothing.
func SendDailyBanSummary(ctx context.Context, store Store, log *zap.Logger) (Summary, error) {
	entries, err := store.DrainLog(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("drain ban log: %w", err)
	}
	s := Summarize(entries)
	if s.Total > 0 {
		log.Info("daily ban summary",
			zap.Int("total", s.Total),
			zap.Any("by_route", s.ByRoute),
			zap.Any("by_target", s.ByTarget))
	}
	return s, nil
}

// nextRun is today's 23:59, or the same time after interval when that already passed.
func nextRun(now time.Time, interval time.Duration) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	if now.After(next) {
		next = next.Add(interval)
	}
	return next
}

func StartDailyBanSummary(ctx context.Context, store Store, log *zap.Logger, interval time.Duration) {
	for {
		timer := time.NewTimer(time.Until(nextRun(time.Now(), interval)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		if _, err := SendDailyBanSummary(ctx, store, log); err != nil {
			log.Warn("ban summary failed", zap.Error(err))
		}
	}
}
