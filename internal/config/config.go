package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds file and environment based settings
type Config struct {
	Environment     string        `yaml:"environment"`
	ServerAddress   string        `yaml:"server_address"`
	DatabaseURL     string        `yaml:"database_url"`
	JWTSecret       string        `yaml:"jwt_secret"`
	LogLevel        string        `yaml:"log_level"`
	DisplayTimezone string        `yaml:"display_timezone"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`

	Redis    RedisConfig    `yaml:"redis"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type MQTTConfig struct {
	BrokerURL string `yaml:"broker_url"`
	ClientID  string `yaml:"client_id"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

// Load reads an optional YAML file, then lets environment variables
// override it. A .env file in the working directory is loaded first when
// present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Environment, "APP_ENV")
	set(&c.ServerAddress, "SERVER_ADDRESS")
	set(&c.DatabaseURL, "DATABASE_URL")
	set(&c.JWTSecret, "JWT_SECRET")
	set(&c.LogLevel, "LOG_LEVEL")
	set(&c.DisplayTimezone, "DISPLAY_TIMEZONE")
	set(&c.Redis.Address, "REDIS_ADDRESS")
	set(&c.Redis.Username, "REDIS_USERNAME")
	set(&c.Redis.Password, "REDIS_PASSWORD")
	set(&c.MQTT.BrokerURL, "MQTT_BROKER_URL")
	set(&c.MQTT.ClientID, "MQTT_CLIENT_ID")
	set(&c.RabbitMQ.URL, "AMQP_URL")
	set(&c.RabbitMQ.Exchange, "AMQP_EXCHANGE")

	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CACHE_TTL: %w", err)
		}
		c.CacheTTL = d
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.ServerAddress == "" {
		c.ServerAddress = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DisplayTimezone == "" {
		c.DisplayTimezone = "Local"
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 30 * time.Second
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = "marquee-server"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "marquee.events"
	}
}

// Location is the zone used for schedule windows, seed windows and the
// republish hour.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("DISPLAY_TIMEZONE %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}
