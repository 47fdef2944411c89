package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port"`

	Log          LogConfig          `mapstructure:"log"`
	Firebase     FirebaseConfig     `mapstructure:"firebase"`
	Notification NotificationConfig `mapstructure:"notification"`
	Sos          SosConfig          `mapstructure:"sos"`
	Location     LocationConfig     `mapstructure:"location"`
	Mongo        MongoConfig        `mapstructure:"mongo"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Consul       ConsulConfig       `mapstructure:"consul"`
	RateLimit    RateLimitConfig    `mapstructure:"ratelimit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type FirebaseConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	DryRun          bool   `mapstructure:"dry_run"`
}

type NotificationConfig struct {
	MaxAttempts    int           `mapstructure:"max_attempts"`
	Backoff        time.Duration `mapstructure:"backoff"`
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout"`
}

type SosConfig struct {
	RadiusKm     float64 `mapstructure:"radius_km"`
	FanoutLimit  int     `mapstructure:"fanout_limit"`
	NotifySender bool    `mapstructure:"notify_sender"`
	CounterStore string  `mapstructure:"counter_store"`
}

type LocationConfig struct {
	Store      string        `mapstructure:"store"`
	StaleAfter time.Duration `mapstructure:"stale_after"`
	EvictCron  string        `mapstructure:"evict_cron"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ConsulConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Address     string `mapstructure:"address"`
	ServiceName string `mapstructure:"service_name"`
	ServiceHost string `mapstructure:"service_host"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("firebase.credentials_file", "serviceAccountKey.json")
	v.SetDefault("firebase.dry_run", false)

	v.SetDefault("notification.max_attempts", 3)
	v.SetDefault("notification.backoff", time.Second)
	v.SetDefault("notification.attempt_timeout", 10*time.Second)

	v.SetDefault("sos.radius_km", 5.0)
	v.SetDefault("sos.fanout_limit", 64)
	v.SetDefault("sos.notify_sender", false)
	v.SetDefault("sos.counter_store", StoreMemory)

	v.SetDefault("location.store", StoreMemory)
	v.SetDefault("location.stale_after", time.Duration(0))
	v.SetDefault("location.evict_cron", "0 */1 * * * *")

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "sos")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("consul.enabled", false)
	v.SetDefault("consul.address", "localhost:8500")
	v.SetDefault("consul.service_name", "sos-service")
	v.SetDefault("consul.service_host", "localhost")

	v.SetDefault("ratelimit.rps", 10.0)
	v.SetDefault("ratelimit.burst", 20)
}

// LoadConfig reads defaults, then an optional config.yaml, then the environment.
// LOCATION_STALE_AFTER overrides location.stale_after and so on.
func LoadConfig() *Config {
	cfg, err := Load(viper.New(), ".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func Load(v *viper.Viper, paths ...string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.Notification.MaxAttempts < 1 {
		return errors.New("notification.max_attempts must be >= 1")
	}
	if c.Notification.Backoff < 0 {
		return errors.New("notification.backoff must not be negative")
	}
	if c.Sos.RadiusKm <= 0 {
		return errors.New("sos.radius_km must be positive")
	}
	if c.Sos.FanoutLimit < 1 {
		return errors.New("sos.fanout_limit must be >= 1")
	}
	switch c.Location.Store {
	case StoreMemory, StoreMongo:
	default:
		return errors.New("location.store must be memory or mongo")
	}
	switch c.Sos.CounterStore {
	case StoreMemory, StoreRedis:
	default:
		return errors.New("sos.counter_store must be memory or redis")
	}
	return nil
}
