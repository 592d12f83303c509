// Package config loads service settings through viper from flags, environment
// variables prefixed with DASHBOARD_ and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "DASHBOARD"

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Log       LogConfig       `mapstructure:"log"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SeedConfig struct {
	Source    string `mapstructure:"source" validate:"oneof=embedded file postgres fake"`
	File      string `mapstructure:"file" validate:"required_if=Source file"`
	FakeCount int    `mapstructure:"fake_count" validate:"gte=0"`
	FakeSeed  uint64 `mapstructure:"fake_seed"`
	Category  string `mapstructure:"category"`
	Limit     uint64 `mapstructure:"limit"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig leaves Addr empty to disable the ban store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type DashboardConfig struct {
	PageSize          int           `mapstructure:"page_size" validate:"gte=1"`
	LowStockThreshold int           `mapstructure:"low_stock_threshold" validate:"gte=1"`
	SearchDebounce    time.Duration `mapstructure:"search_debounce" validate:"gte=0"`
	TopProducts       int           `mapstructure:"top_products" validate:"gte=1"`
}

type RateLimitConfig struct {
	RPS        float64       `mapstructure:"rps" validate:"gt=0"`
	Burst      int           `mapstructure:"burst" validate:"gte=1"`
	MaxStrikes int           `mapstructure:"max_strikes" validate:"gte=1"`
	StrikeTTL  time.Duration `mapstructure:"strike_ttl"`
	BanTTL     time.Duration `mapstructure:"ban_ttl"`
}

var defaults = map[string]any{
	"http.addr":                     ":8080",
	"log.level":                     "info",
	"seed.source":                   "embedded",
	"seed.file":                     "",
	"seed.fake_count":               50,
	"seed.fake_seed":                1,
	"seed.category":                 "",
	"seed.limit":                    0,
	"database.url":                  "",
	"redis.addr":                    "",
	"redis.password":                "",
	"redis.db":                      0,
	"auth.jwt_secret":               "",
	"dashboard.page_size":           25,
	"dashboard.low_stock_threshold": 15,
	"dashboard.search_debounce":     "300ms",
	"dashboard.top_products":        5,
	"ratelimit.rps":                 5.0,
	"ratelimit.burst":               10,
	"ratelimit.max_strikes":         5,
	"ratelimit.strike_ttl":          "1m",
	"ratelimit.ban_ttl":             "15m",
}

// New returns a viper instance with defaults and environment lookup in place.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes v into a validated Config.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
