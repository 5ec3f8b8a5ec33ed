package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/quantstream/pkg/questdb"
	"github.com/muhammadchandra19/quantstream/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	QuestDB  questdb.Config `envPrefix:"QUESTDB_"`
	Redis    redis.Config   `envPrefix:"REDIS_"`
	BarKafka BarKafkaConfig `envPrefix:"BAR_KAFKA_"`
	Beta     BetaConfig     `envPrefix:"BETA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"beta-stream"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// BarKafkaConfig represents the Kafka configuration for the bar topic.
type BarKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"bars"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"beta-stream"`
}

// BetaConfig configures the beta indicator: the target symbol whose
// sensitivity is measured, the reference benchmark, and the rolling period.
type BetaConfig struct {
	TargetTicker          string `env:"TARGET_TICKER" envDefault:"SPY"`
	TargetMarket          string `env:"TARGET_MARKET" envDefault:"usa"`
	TargetSecurityType    string `env:"TARGET_SECURITY_TYPE" envDefault:"equity"`
	ReferenceTicker       string `env:"REFERENCE_TICKER" envDefault:"QQQ"`
	ReferenceMarket       string `env:"REFERENCE_MARKET" envDefault:"usa"`
	ReferenceSecurityType string `env:"REFERENCE_SECURITY_TYPE" envDefault:"equity"`
	Period                int    `env:"PERIOD" envDefault:"20"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
