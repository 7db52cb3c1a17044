package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Kafka      Kafka
	Metrics    Metrics
	Logger     Logger
	Platform   Platform
	Centrifuge Centrifuge
}

type Service struct {
	Name string `env:"CHAT_SERVICE_NAME" env-default:"chat-service"`
	Port string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST" env-required:"true"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC" env-default:"user.updates"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
