package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service  *svcConfig
	Estimate *estimateConfig
	Notify   *notifyConfig
	Events   *eventsConfig
}

type svcConfig struct {
	Address        string   `envconfig:"ROBOTNIK_ADDRESS" default:":8080"`
	MetricsAddress string   `envconfig:"ROBOTNIK_METRICS_ADDRESS" default:":8081"`
	LogLevel       string   `envconfig:"ROBOTNIK_LOG_LEVEL" default:"info"`
	StaticDir      string   `envconfig:"ROBOTNIK_STATIC_DIR" default:"static"`
	CorsOrigins    []string `envconfig:"ROBOTNIK_CORS_ORIGINS" default:"*"`
}

type estimateConfig struct {
	// Profile is used when a request names none.
	Profile     string `envconfig:"ROBOTNIK_PROFILE" default:"roi"`
	ProfileFile string `envconfig:"ROBOTNIK_PROFILE_FILE" default:""`
}

type notifyConfig struct {
	// WebhookURL enables webhook delivery of waitlist signups; signups are only logged when empty.
	WebhookURL string        `envconfig:"ROBOTNIK_NOTIFY_WEBHOOK_URL" default:""`
	Timeout    time.Duration `envconfig:"ROBOTNIK_NOTIFY_TIMEOUT" default:"5s"`
	MaxRetries uint64        `envconfig:"ROBOTNIK_NOTIFY_MAX_RETRIES" default:"3"`
}

type eventsConfig struct {
	// Enabled publishes anonymous estimation and signup events through the stdout writer.
	Enabled bool   `envconfig:"ROBOTNIK_EVENTS_ENABLED" default:"false"`
	Topic   string `envconfig:"ROBOTNIK_EVENTS_TOPIC" default:"ag.robotnik.events"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
