package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	BrokerNone      = "none"
	BrokerGoChannel = "gochannel"
	BrokerKafka     = "kafka"
	BrokerRedis     = "redis"
)

// Config reúne a configuração do serviço, lida de variáveis de ambiente.
type Config struct {
	AppName         string        `env:"APP_NAME"         envDefault:"go-domain-events"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	HTTPAddr        string        `env:"HTTP_ADDR"        envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Storage     string `env:"STORAGE"      envDefault:"memory"`
	PostgresDSN string `env:"POSTGRES_DSN" envDefault:"host=localhost user=myuser password=mypassword dbname=mydb port=5432 sslmode=disable TimeZone=UTC"`

	EventBroker      string   `env:"EVENT_BROKER"       envDefault:"none"`
	EventTopicPrefix string   `env:"EVENT_TOPIC_PREFIX"`
	KafkaBrokers     []string `env:"KAFKA_BROKERS"      envDefault:"localhost:9092" envSeparator:","`
	RedisAddr        string   `env:"REDIS_ADDR"         envDefault:"localhost:6379"`
	RedisPassword    string   `env:"REDIS_PASSWORD"`
	RedisDB          int      `env:"REDIS_DB"           envDefault:"0"`
	ConsumerGroup    string   `env:"EVENT_CONSUMER_GROUP" envDefault:"go-domain-events-tail"`
}

// Load lê a configuração do ambiente do processo.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom lê a configuração de um mapa no lugar do ambiente do processo.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains([]string{StorageMemory, StoragePostgres}, c.Storage) {
		return fmt.Errorf("invalid STORAGE %q", c.Storage)
	}
	if !slices.Contains([]string{BrokerNone, BrokerGoChannel, BrokerKafka, BrokerRedis}, c.EventBroker) {
		return fmt.Errorf("invalid EVENT_BROKER %q", c.EventBroker)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.EventBroker == BrokerKafka && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when EVENT_BROKER=%s", BrokerKafka)
	}
	return nil
}
