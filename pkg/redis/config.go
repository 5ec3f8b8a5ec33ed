package redis

import "time"

// Config holds the configuration for the Redis client.
type Config struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`

	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
	MaxRetries     int           `env:"MAX_RETRIES" envDefault:"3"`
	PoolSize       int           `env:"POOL_SIZE" envDefault:"10"`
	PrefixKey      string        `env:"PREFIX_KEY" envDefault:"quantstream:"`
	DefaultTTL     time.Duration `env:"DEFAULT_TTL" envDefault:"5m"`
}
